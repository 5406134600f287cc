package model

// Product 商品（列表视图字段，远端返回的扁平结构）
type Product struct {
	ID             EntityID `json:"id"`
	URL            string   `json:"url"`
	AltText        string   `json:"alt_text"`
	Product        string   `json:"product"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	RemainingStock int      `json:"remaining_stock"`
}

func (p Product) EntityID() EntityID { return p.ID }

// ==================== 创建/编辑请求体 ====================

// ProductPayload 商品创建/编辑请求体
// 远端要求嵌套结构：主体 + 分类 + 标签 + 变体 + 图片一次性提交
type ProductPayload struct {
	Product         ProductCore           `json:"product"`
	Category        ProductCategoryRef    `json:"category"`
	Tags            []ProductTagRef       `json:"tags"`
	ProductVariants []ProductVariantInput `json:"productVariants"`
	ProductImages   []ProductImageInput   `json:"productImages"`
}

// ProductCore 商品主体字段
type ProductCore struct {
	Title         string  `json:"title"`
	BodyHTML      string  `json:"bodyHtml"`
	Price         float64 `json:"price"`
	SKU           string  `json:"sku"`
	StoreID       string  `json:"storeId"`
	IsActive      bool    `json:"isActive"`
	StockQuantity int     `json:"stockQuantity"`
}

// ProductCategoryRef 分类软引用
type ProductCategoryRef struct {
	CategoryID EntityID `json:"categoryId"`
}

// ProductTagRef 标签软引用
type ProductTagRef struct {
	TagID EntityID `json:"tagId"`
}

// ProductVariantInput 变体输入
type ProductVariantInput struct {
	SKU            string   `json:"sku"`
	Price          float64  `json:"price"`
	VariantValueID EntityID `json:"variantValueId"`
}

// ProductImageInput 图片输入
type ProductImageInput struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	IsMain  bool   `json:"isMain"`
}
