package model

// Customer 客户
type Customer struct {
	ID           EntityID `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	MobileNumber string   `json:"mobileNumber"`
	BirthDate    string   `json:"birthDate,omitempty"`
	JoinedDate   string   `json:"joinedDate,omitempty"`
	IsSubscribed bool     `json:"isSubscribed,omitempty"`
	IsActive     bool     `json:"isActive,omitempty"`
}

func (c Customer) EntityID() EntityID { return c.ID }

// CustomerRegisterPayload 客户注册请求体
// 注意：客户走 /customer/register 而不是通用的 /create
type CustomerRegisterPayload struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	MobileNumber string `json:"mobileNumber"`
	IsActive     bool   `json:"isActive"`
	DateOfBirth  string `json:"dateOfBirth"`
	StoreID      string `json:"storeId"`
}
