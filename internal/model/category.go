package model

// Category 商品分类
type Category struct {
	ID       EntityID `json:"id"`
	Category string   `json:"category"`
	URL      string   `json:"url"`
	AltText  string   `json:"altText"`
}

func (c Category) EntityID() EntityID { return c.ID }

// CategoryPayload 分类创建/编辑请求体
type CategoryPayload struct {
	CategoryName    string `json:"categoryName"`
	CategoryURL     string `json:"categoryUrl"`
	CategoryAltText string `json:"categoryAltText"`
}
