package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvamd5/storefront-admin/internal/service"
)

// 表单图片上限 8MB
const maxImageSize = 8 << 20

// UploadController 商品/分类表单的图片上传
type UploadController struct {
	storage service.ImageStorage
}

func NewUploadController(storage service.ImageStorage) *UploadController {
	return &UploadController{storage: storage}
}

// Image 上传一张图片，返回可填入表单 url 字段的地址
// @Summary 上传图片
// @Tags Upload
// @Accept multipart/form-data
// @Param file formData file true "图片文件"
// @Success 200 {object} map[string]any
// @Router /api/upload/image [post]
func (ctl *UploadController) Image(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "缺少上传文件"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "图片不能超过 8MB"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "读取上传文件失败"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "读取上传文件失败"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := ctl.storage.Upload(c.Request.Context(), data, fileHeader.Filename, contentType)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 502, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "上传成功", "data": gin.H{"url": url}})
}
