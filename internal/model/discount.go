package model

// ProductDiscount 商品折扣
type ProductDiscount struct {
	ID           EntityID     `json:"id"`
	ReferenceID  EntityID     `json:"referenceId,omitempty"`
	ProductID    EntityID     `json:"productId"`
	Product      string       `json:"product,omitempty"`
	DiscountType DiscountType `json:"discountType"`
	Value        float64      `json:"value"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
}

func (d ProductDiscount) EntityID() EntityID { return d.ID }

// ProductDiscountPayload 商品折扣创建/编辑请求体
type ProductDiscountPayload struct {
	ProductID    EntityID     `json:"productId"`
	DiscountType DiscountType `json:"discountType"`
	Value        float64      `json:"value"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
}

// OrderDiscount 订单折扣（满减/折扣码）
type OrderDiscount struct {
	ID            EntityID     `json:"id"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	Value         float64      `json:"value"`
	MinOrderTotal float64      `json:"minOrderTotal"`
	StartDate     string       `json:"startDate"`
	EndDate       string       `json:"endDate"`
	IsActive      bool         `json:"isActive"`
	UsageLimit    int          `json:"usageLimit"`
	TimesUsed     int          `json:"timesUsed,omitempty"`
	StoreID       string       `json:"storeId"`
}

func (d OrderDiscount) EntityID() EntityID { return d.ID }

// OrderDiscountPayload 订单折扣创建/编辑请求体
type OrderDiscountPayload struct {
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	Value         float64      `json:"value"`
	MinOrderTotal float64      `json:"minOrderTotal"`
	StartDate     string       `json:"startDate"`
	EndDate       string       `json:"endDate"`
	IsActive      bool         `json:"isActive"`
	UsageLimit    int          `json:"usageLimit"`
	TimesUsed     int          `json:"timesUsed,omitempty"`
	StoreID       string       `json:"storeId"`
}
