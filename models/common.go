package models

// Address is a postal address.
type Address struct {
	City              string `json:"city" validate:"required"`
	Country           string `json:"country" validate:"required,len=2"`
	HouseNumberOrName string `json:"houseNumberOrName" validate:"required"`
	PostalCode        string `json:"postalCode" validate:"required"`
	StateOrProvince   string `json:"stateOrProvince,omitempty"`
	Street            string `json:"street" validate:"required"`
}

type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LineItem is one line of an order, used by open invoice methods.
type LineItem struct {
	AmountExcludingTax int64  `json:"amountExcludingTax,omitempty"`
	AmountIncludingTax int64  `json:"amountIncludingTax,omitempty"`
	Description        string `json:"description,omitempty"`
	ID                 string `json:"id,omitempty"`
	ImageURL           string `json:"imageUrl,omitempty"`
	ItemCategory       string `json:"itemCategory,omitempty"`
	ProductURL         string `json:"productUrl,omitempty"`
	Quantity           int64  `json:"quantity,omitempty"`
	TaxAmount          int64  `json:"taxAmount,omitempty"`
	TaxPercentage      int64  `json:"taxPercentage,omitempty"`
}

// BrowserInfo is required for 3D Secure 2 browser flows.
type BrowserInfo struct {
	AcceptHeader      string `json:"acceptHeader"`
	ColorDepth        int    `json:"colorDepth"`
	JavaEnabled       bool   `json:"javaEnabled"`
	JavaScriptEnabled *bool  `json:"javaScriptEnabled,omitempty"`
	Language          string `json:"language"`
	ScreenHeight      int    `json:"screenHeight"`
	ScreenWidth       int    `json:"screenWidth"`
	TimeZoneOffset    int    `json:"timeZoneOffset"`
	UserAgent         string `json:"userAgent"`
}

// EncryptedOrderData references an order created with /orders.
type EncryptedOrderData struct {
	OrderData    string `json:"orderData" validate:"required"`
	PSPReference string `json:"pspReference" validate:"required"`
}

type CheckoutOrderResponse struct {
	Amount          *Amount `json:"amount,omitempty"`
	ExpiresAt       string  `json:"expiresAt,omitempty"`
	OrderData       string  `json:"orderData,omitempty"`
	PSPReference    string  `json:"pspReference"`
	Reference       string  `json:"reference,omitempty"`
	RemainingAmount *Amount `json:"remainingAmount,omitempty"`
}

// ResponsePaymentMethod identifies the method actually used for a payment.
type ResponsePaymentMethod struct {
	Brand string `json:"brand,omitempty"`
	Type  string `json:"type,omitempty"`
}

type FraudCheckResult struct {
	AccountScore int64  `json:"accountScore"`
	CheckID      int64  `json:"checkId"`
	Name         string `json:"name"`
}

type FraudResult struct {
	AccountScore int64              `json:"accountScore"`
	Results      []FraudCheckResult `json:"results,omitempty"`
}

// ServiceError is the body returned with a non-2xx status.
type ServiceError struct {
	AdditionalData map[string]string `json:"additionalData,omitempty"`
	ErrorCode      string            `json:"errorCode,omitempty"`
	ErrorType      string            `json:"errorType,omitempty"`
	Message        string            `json:"message,omitempty"`
	PSPReference   string            `json:"pspReference,omitempty"`
	Status         int               `json:"status,omitempty"`
}
