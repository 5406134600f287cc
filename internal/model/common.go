package model

// ==================== 公共枚举 ====================

// DiscountType 折扣类型
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypeFlat       DiscountType = "flat"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// PaymentStatus 支付状态
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// DeletePayload 软删除请求体
// 远端只做逻辑删除，voidRemarks 是必填的作废原因（审计用）
type DeletePayload struct {
	VoidRemarks string `json:"voidRemarks"`
}
