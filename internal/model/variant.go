package model

// VariantType 变体类型（如 颜色 / 尺码）
type VariantType struct {
	ID          EntityID `json:"id"`
	VariantType string   `json:"variantType"`
	ProductID   EntityID `json:"productId,omitempty"`
}

func (v VariantType) EntityID() EntityID { return v.ID }

// VariantValue 变体值（如 红色 / XL），挂在某个变体类型下
type VariantValue struct {
	ID            EntityID `json:"id"`
	VariantTypeID EntityID `json:"variantTypeId"`
	VariantName   string   `json:"variantName"`
	ProductID     EntityID `json:"productId,omitempty"`
}

func (v VariantValue) EntityID() EntityID { return v.ID }

// ==================== 请求体 ====================

// VariantTypePayload 变体类型创建/编辑请求体
type VariantTypePayload struct {
	VariantType string   `json:"variantType"`
	ProductID   EntityID `json:"productId,omitempty"`
}

// VariantValuePayload 变体值创建/编辑请求体
type VariantValuePayload struct {
	VariantTypeID EntityID `json:"variantTypeId"`
	VariantName   string   `json:"variantName"`
	ProductID     EntityID `json:"productId,omitempty"`
}
