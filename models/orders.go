package models

// CheckoutCreateOrderRequest is the body of POST /orders. An order lets a
// shopper split a payment across several methods, such as gift cards.
type CheckoutCreateOrderRequest struct {
	Amount          *Amount `json:"amount" validate:"required"`
	ExpiresAt       string  `json:"expiresAt,omitempty"`
	MerchantAccount string  `json:"merchantAccount" validate:"required"`
	Reference       string  `json:"reference" validate:"required"`
}

type CheckoutCreateOrderResponse struct {
	AdditionalData  map[string]string `json:"additionalData,omitempty"`
	Amount          *Amount           `json:"amount"`
	ExpiresAt       string            `json:"expiresAt"`
	FraudResult     *FraudResult      `json:"fraudResult,omitempty"`
	OrderData       string            `json:"orderData"`
	PSPReference    string            `json:"pspReference,omitempty"`
	Reference       string            `json:"reference,omitempty"`
	RefusalReason   string            `json:"refusalReason,omitempty"`
	RemainingAmount *Amount           `json:"remainingAmount"`
	ResultCode      OrderResultCode   `json:"resultCode"`
}

type CheckoutOrder struct {
	OrderData    string `json:"orderData" validate:"required"`
	PSPReference string `json:"pspReference" validate:"required"`
}

// CheckoutCancelOrderRequest is the body of POST /orders/cancel.
type CheckoutCancelOrderRequest struct {
	MerchantAccount string         `json:"merchantAccount" validate:"required"`
	Order           *CheckoutOrder `json:"order" validate:"required"`
}

type CheckoutCancelOrderResponse struct {
	PSPReference string                `json:"pspReference"`
	ResultCode   CancelOrderResultCode `json:"resultCode"`
}
