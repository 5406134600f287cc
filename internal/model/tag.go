package model

// Tag 商品标签
// ProductID 是指向商品的软引用，客户端不做完整性校验
type Tag struct {
	ID        EntityID `json:"id"`
	Tag       string   `json:"tag"`
	ProductID EntityID `json:"productId,omitempty"`
}

func (t Tag) EntityID() EntityID { return t.ID }

// TagPayload 标签创建/编辑请求体
type TagPayload struct {
	TagName   string   `json:"tagName"`
	ProductID EntityID `json:"productId,omitempty"`
}
