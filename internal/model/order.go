package model

// Order 订单（列表视图）
type Order struct {
	ID              EntityID      `json:"id"`
	CustomerName    string        `json:"customerName"`
	MobileNumber    string        `json:"mobileNumber"`
	TrackingNumber  string        `json:"trackingNumber"`
	Address         string        `json:"address"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	PaidAmount      float64       `json:"paidAmount"`
	TotalPrice      float64       `json:"totalPrice"`
	OrderStatus     OrderStatus   `json:"orderStatus"`
	StatusRemarks   string        `json:"statusRemarks"`
	DeliveryStatus  string        `json:"deliveryStatus"`
	DeliveryRemarks string        `json:"deliveryRemarks"`
}

func (o Order) EntityID() EntityID { return o.ID }

// OrderItem 订单行项目（按订单 ID 单独拉取）
type OrderItem struct {
	ID             EntityID `json:"id"`
	Product        string   `json:"product"`
	ProductVariant string   `json:"productVariant"`
	Quantity       int      `json:"quantity"`
	UnitPrice      float64  `json:"unitPrice"`
}

// ==================== 创建请求体 ====================

// OrderPayload 订单创建请求体
// 订单主体 + 行项目 + 支付 + 物流 一次性提交
type OrderPayload struct {
	Order      OrderCore        `json:"order"`
	OrderItems []OrderItemInput `json:"orderItems"`
	Payment    PaymentInput     `json:"payment"`
	Shipping   ShippingInput    `json:"shipping"`
}

// OrderCore 订单主体
type OrderCore struct {
	CustomerID      EntityID    `json:"customerId"`
	TotalPrice      float64     `json:"totalPrice"`
	DiscountAmount  float64     `json:"discountAmount"`
	NetAmount       float64     `json:"netAmount"`
	OrderDiscountID EntityID    `json:"orderDiscountId"`
	PromoCodeID     EntityID    `json:"promoCodeId"`
	StoreID         string      `json:"storeId"`
	OrderStatus     OrderStatus `json:"orderStatus"`
}

// OrderItemInput 行项目输入
type OrderItemInput struct {
	ProductID        EntityID `json:"productId"`
	ProductVariantID EntityID `json:"productVariantId"`
	Quantity         int      `json:"quantity"`
	UnitPrice        float64  `json:"unitPrice"`
}

// PaymentInput 支付信息
type PaymentInput struct {
	PaymentMethod string        `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	AmountPaid    float64       `json:"amountPaid"`
	PaymentDate   string        `json:"paymentDate"`
}

// ShippingInput 物流信息
type ShippingInput struct {
	ShippingAddress string `json:"shippingAddress"`
	TrackingNumber  string `json:"trackingNumber"`
	ShippedDate     string `json:"shippedDate"`
}
