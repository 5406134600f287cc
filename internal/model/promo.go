package model

// PromoCode 推广码
type PromoCode struct {
	ID            EntityID     `json:"id"`
	Code          string       `json:"code"`
	Description   string       `json:"description"`
	DiscountType  DiscountType `json:"discountType"`
	Value         float64      `json:"value"`
	MinOrderTotal float64      `json:"minOrderTotal"`
	StartDate     string       `json:"startDate"`
	EndDate       string       `json:"endDate"`
	IsActive      bool         `json:"isActive"`
	UsageLimit    int          `json:"usageLimit"`
	TimesUsed     int          `json:"timesUsed"`
	StoreID       string       `json:"storeId"`
}

func (p PromoCode) EntityID() EntityID { return p.ID }

// PromoCodePayload 推广码创建/编辑请求体
type PromoCodePayload struct {
	Code          string       `json:"code"`
	Description   string       `json:"description"`
	DiscountType  DiscountType `json:"discountType"`
	Value         float64      `json:"value"`
	MinOrderTotal float64      `json:"minOrderTotal"`
	StartDate     string       `json:"startDate"`
	EndDate       string       `json:"endDate"`
	IsActive      bool         `json:"isActive"`
	UsageLimit    int          `json:"usageLimit"`
	TimesUsed     int          `json:"timesUsed"`
	StoreID       string       `json:"storeId"`
}
