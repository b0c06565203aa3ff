package models

// PaymentCaptureRequest is the body of POST /payments/{paymentPspReference}/captures.
type PaymentCaptureRequest struct {
	Amount          *Amount    `json:"amount" validate:"required"`
	LineItems       []LineItem `json:"lineItems,omitempty"`
	MerchantAccount string     `json:"merchantAccount" validate:"required"`
	Reference       string     `json:"reference,omitempty"`
}

type PaymentCaptureResponse struct {
	Amount              *Amount            `json:"amount"`
	LineItems           []LineItem         `json:"lineItems,omitempty"`
	MerchantAccount     string             `json:"merchantAccount"`
	PaymentPSPReference string             `json:"paymentPspReference"`
	PSPReference        string             `json:"pspReference"`
	Reference           string             `json:"reference,omitempty"`
	Status              ModificationStatus `json:"status"`
}

// PaymentRefundRequest is the body of POST /payments/{paymentPspReference}/refunds.
type PaymentRefundRequest struct {
	Amount               *Amount    `json:"amount" validate:"required"`
	LineItems            []LineItem `json:"lineItems,omitempty"`
	MerchantAccount      string     `json:"merchantAccount" validate:"required"`
	MerchantRefundReason string     `json:"merchantRefundReason,omitempty"`
	Reference            string     `json:"reference,omitempty"`
}

type PaymentRefundResponse struct {
	Amount               *Amount            `json:"amount"`
	MerchantAccount      string             `json:"merchantAccount"`
	MerchantRefundReason string             `json:"merchantRefundReason,omitempty"`
	PaymentPSPReference  string             `json:"paymentPspReference"`
	PSPReference         string             `json:"pspReference"`
	Reference            string             `json:"reference,omitempty"`
	Status               ModificationStatus `json:"status"`
}

// PaymentCancelRequest is the body of POST /payments/{paymentPspReference}/cancels.
type PaymentCancelRequest struct {
	MerchantAccount string `json:"merchantAccount" validate:"required"`
	Reference       string `json:"reference,omitempty"`
}

type PaymentCancelResponse struct {
	MerchantAccount     string             `json:"merchantAccount"`
	PaymentPSPReference string             `json:"paymentPspReference"`
	PSPReference        string             `json:"pspReference"`
	Reference           string             `json:"reference,omitempty"`
	Status              ModificationStatus `json:"status"`
}

// PaymentAmountUpdateRequest is the body of POST /payments/{paymentPspReference}/amountUpdates.
type PaymentAmountUpdateRequest struct {
	Amount          *Amount `json:"amount" validate:"required"`
	IndustryUsage   string  `json:"industryUsage,omitempty"`
	MerchantAccount string  `json:"merchantAccount" validate:"required"`
	Reference       string  `json:"reference,omitempty"`
}

type PaymentAmountUpdateResponse struct {
	Amount              *Amount            `json:"amount"`
	IndustryUsage       string             `json:"industryUsage,omitempty"`
	MerchantAccount     string             `json:"merchantAccount"`
	PaymentPSPReference string             `json:"paymentPspReference"`
	PSPReference        string             `json:"pspReference"`
	Reference           string             `json:"reference,omitempty"`
	Status              ModificationStatus `json:"status"`
}

// StandalonePaymentCancelRequest cancels a payment by the merchant reference
// given when it was made, for when the PSP reference is not yet known.
type StandalonePaymentCancelRequest struct {
	MerchantAccount  string `json:"merchantAccount" validate:"required"`
	PaymentReference string `json:"paymentReference" validate:"required"`
	Reference        string `json:"reference,omitempty"`
}

type StandalonePaymentCancelResponse struct {
	MerchantAccount  string             `json:"merchantAccount"`
	PaymentReference string             `json:"paymentReference"`
	PSPReference     string             `json:"pspReference"`
	Reference        string             `json:"reference,omitempty"`
	Status           ModificationStatus `json:"status"`
}

// PaymentReversalRequest is the body of POST /payments/{paymentPspReference}/reversals.
type PaymentReversalRequest = PaymentCancelRequest

// PaymentReversalResponse acknowledges a reversal.
type PaymentReversalResponse = PaymentCancelResponse
