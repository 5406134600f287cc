package model

// ==================== 认证相关 ====================

// LoginPayload 登录请求体（同时通过 Basic 头提交凭证）
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse 登录响应（带 token 与 storeId 的特殊信封）
type LoginResponse struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
	Token           string `json:"token"`
	StoreID         string `json:"storeId,omitempty"`
}

// RegisterPayload 店铺注册请求体
type RegisterPayload struct {
	StoreName       string `json:"storeName"`
	DomainName      string `json:"domainName"`
	UserName        string `json:"userName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	DateOfBirth     string `json:"dateOfBirth"`
	IsStaff         bool   `json:"isStaff"`
	IsCustomer      bool   `json:"isCustomer"`
	DateJoined      string `json:"dateJoined"`
}

// ForgotPasswordPayload 找回密码请求体
type ForgotPasswordPayload struct {
	Email string `json:"email"`
}

// ResetPasswordPayload 重置密码请求体
type ResetPasswordPayload struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Token           string `json:"token"`
}

// Store 店铺（选择器用）
type Store struct {
	StoreID   string `json:"storeId"`
	StoreName string `json:"storeName"`
}
