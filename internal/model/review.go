package model

// ProductReview 商品评价
type ProductReview struct {
	ID         EntityID `json:"id"`
	ProductID  EntityID `json:"productId"`
	CustomerID EntityID `json:"customerId"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Rating     int      `json:"rating"`
	Review     string   `json:"review"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

func (r ProductReview) EntityID() EntityID { return r.ID }

// ProductReviewPayload 评价创建/编辑请求体
type ProductReviewPayload struct {
	ProductID  EntityID `json:"productId"`
	CustomerID EntityID `json:"customerId"`
	Rating     int      `json:"rating"`
	Review     string   `json:"review"`
}
