package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ==================== 存储接口 ====================

// ImageStorage 图片存储接口
// 商品/分类表单上传图片后得到可写入 url/altText 字段的公开地址
type ImageStorage interface {
	// Upload 上传图片，返回公开访问 URL
	Upload(ctx context.Context, data []byte, filename string, contentType string) (string, error)
	// Delete 删除图片
	Delete(ctx context.Context, imageURL string) error
}

// StorageConfig 存储配置
type StorageConfig struct {
	Provider  string // "s3" 或 "local"
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // 自定义端点（MinIO 等 S3 兼容服务）
	CDNDomain string // CDN 域名（可选）
	BasePath  string // 存储路径前缀
}

// NewImageStorage 根据配置创建存储实例
func NewImageStorage(cfg StorageConfig) (ImageStorage, error) {
	switch cfg.Provider {
	case "s3":
		return newS3Storage(cfg)
	case "local", "":
		log.Println("[Storage] 未配置远端存储，使用本地占位实现")
		return &localStorage{basePath: cfg.BasePath}, nil
	default:
		return nil, fmt.Errorf("不支持的存储类型: %s", cfg.Provider)
	}
}

// ==================== S3 实现 ====================

type s3Storage struct {
	client *s3.Client
	cfg    StorageConfig
}

func newS3Storage(cfg StorageConfig) (*s3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("加载 AWS 配置失败: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Storage{client: client, cfg: cfg}, nil
}

func (s *s3Storage) Upload(ctx context.Context, data []byte, filename string, contentType string) (string, error) {
	key := s.generateKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("上传图片到 S3 失败: %w", err)
	}

	url := s.publicURL(key)
	log.Printf("[Storage] 图片已上传: %s", url)
	return url, nil
}

func (s *s3Storage) Delete(ctx context.Context, imageURL string) error {
	key := s.extractKey(imageURL)
	if key == "" {
		return fmt.Errorf("无法从 URL 解析存储键: %s", imageURL)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("删除 S3 图片失败: %w", err)
	}
	return nil
}

// generateKey 生成对象键：前缀/日期/uuid.扩展名
func (s *s3Storage) generateKey(filename string) string {
	ext := filepath.Ext(filename)
	name := uuid.New().String() + ext
	datePath := time.Now().Format("2006/01/02")

	if s.cfg.BasePath != "" {
		return fmt.Sprintf("%s/%s/%s", strings.Trim(s.cfg.BasePath, "/"), datePath, name)
	}
	return fmt.Sprintf("%s/%s", datePath, name)
}

// publicURL 优先使用 CDN 域名
func (s *s3Storage) publicURL(key string) string {
	if s.cfg.CDNDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cfg.CDNDomain, key)
	}
	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.cfg.Endpoint, "/"), s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

func (s *s3Storage) extractKey(imageURL string) string {
	if s.cfg.CDNDomain != "" {
		if idx := strings.Index(imageURL, s.cfg.CDNDomain+"/"); idx >= 0 {
			return imageURL[idx+len(s.cfg.CDNDomain)+1:]
		}
	}
	if idx := strings.Index(imageURL, ".amazonaws.com/"); idx >= 0 {
		return imageURL[idx+len(".amazonaws.com/"):]
	}
	if s.cfg.Bucket != "" {
		if idx := strings.Index(imageURL, "/"+s.cfg.Bucket+"/"); idx >= 0 {
			return imageURL[idx+len(s.cfg.Bucket)+2:]
		}
	}
	return ""
}

// ==================== 本地占位实现 ====================

// localStorage 开发环境占位：不真正落盘，直接返回伪 URL
type localStorage struct {
	basePath string
}

func (l *localStorage) Upload(_ context.Context, _ []byte, filename string, _ string) (string, error) {
	ext := filepath.Ext(filename)
	name := uuid.New().String() + ext
	base := l.basePath
	if base == "" {
		base = "uploads"
	}
	return fmt.Sprintf("/%s/%s", strings.Trim(base, "/"), name), nil
}

func (l *localStorage) Delete(_ context.Context, _ string) error {
	return nil
}
