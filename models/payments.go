package models

import "github.com/companieshouse/checkout.client.ch.gov.uk/codec"

// PaymentRequest is the body of POST /payments.
type PaymentRequest struct {
	AdditionalData            map[string]string        `json:"additionalData,omitempty"`
	Amount                    *Amount                  `json:"amount" validate:"required"`
	BillingAddress            *Address                 `json:"billingAddress,omitempty"`
	BrowserInfo               *BrowserInfo             `json:"browserInfo,omitempty"`
	Channel                   Channel                  `json:"channel,omitempty"`
	CheckoutAttemptID         string                   `json:"checkoutAttemptId,omitempty"`
	CountryCode               string                   `json:"countryCode,omitempty" validate:"omitempty,len=2"`
	DateOfBirth               *codec.DateTime          `json:"dateOfBirth,omitempty"`
	DeliveryAddress           *Address                 `json:"deliveryAddress,omitempty"`
	DeliveryDate              *codec.DateTime          `json:"deliveryDate,omitempty"`
	LineItems                 []LineItem               `json:"lineItems,omitempty"`
	MerchantAccount           string                   `json:"merchantAccount" validate:"required"`
	MerchantOrderReference    string                   `json:"merchantOrderReference,omitempty"`
	Metadata                  map[string]string        `json:"metadata,omitempty"`
	Order                     *EncryptedOrderData      `json:"order,omitempty"`
	Origin                    string                   `json:"origin,omitempty"`
	PaymentMethod             *CheckoutPaymentMethod   `json:"paymentMethod" validate:"required"`
	RecurringProcessingModel  RecurringProcessingModel `json:"recurringProcessingModel,omitempty"`
	RedirectFromIssuerMethod  string                   `json:"redirectFromIssuerMethod,omitempty"`
	RedirectToIssuerMethod    string                   `json:"redirectToIssuerMethod,omitempty"`
	Reference                 string                   `json:"reference" validate:"required"`
	ReturnURL                 string                   `json:"returnUrl" validate:"required"`
	SessionValidity           string                   `json:"sessionValidity,omitempty"`
	ShopperEmail              string                   `json:"shopperEmail,omitempty" validate:"omitempty,email"`
	ShopperIP                 string                   `json:"shopperIP,omitempty"`
	ShopperInteraction        ShopperInteraction       `json:"shopperInteraction,omitempty"`
	ShopperLocale             string                   `json:"shopperLocale,omitempty"`
	ShopperName               *Name                    `json:"shopperName,omitempty"`
	ShopperReference          string                   `json:"shopperReference,omitempty"`
	ShopperStatement          string                   `json:"shopperStatement,omitempty"`
	StorePaymentMethod        *bool                    `json:"storePaymentMethod,omitempty"`
	TelephoneNumber           string                   `json:"telephoneNumber,omitempty"`
	ThreeDSAuthenticationOnly *bool                    `json:"threeDSAuthenticationOnly,omitempty"`
}

// PaymentResponse is returned by POST /payments. When ResultCode asks for shopper
// interaction, Action describes what to do next.
type PaymentResponse struct {
	Action            *CheckoutAction        `json:"action,omitempty"`
	AdditionalData    map[string]string      `json:"additionalData,omitempty"`
	Amount            *Amount                `json:"amount,omitempty"`
	DonationToken     string                 `json:"donationToken,omitempty"`
	FraudResult       *FraudResult           `json:"fraudResult,omitempty"`
	MerchantReference string                 `json:"merchantReference,omitempty"`
	Order             *CheckoutOrderResponse `json:"order,omitempty"`
	PaymentMethod     *ResponsePaymentMethod `json:"paymentMethod,omitempty"`
	PSPReference      string                 `json:"pspReference,omitempty"`
	RefusalReason     string                 `json:"refusalReason,omitempty"`
	RefusalReasonCode string                 `json:"refusalReasonCode,omitempty"`
	ResultCode        ResultCode             `json:"resultCode,omitempty"`
}

// PaymentCompletionDetails carries the data returned to the shopper's return URL
// or produced by a native 3D Secure flow.
type PaymentCompletionDetails struct {
	MD                     string `json:"MD,omitempty"`
	PaReq                  string `json:"PaReq,omitempty"`
	PaRes                  string `json:"PaRes,omitempty"`
	BillingToken           string `json:"billingToken,omitempty"`
	FacilitatorAccessToken string `json:"facilitatorAccessToken,omitempty"`
	OneTimePasscode        string `json:"oneTimePasscode,omitempty"`
	OrderID                string `json:"orderID,omitempty"`
	PayerID                string `json:"payerID,omitempty"`
	Payload                string `json:"payload,omitempty"`
	PaymentID              string `json:"paymentID,omitempty"`
	PaymentStatus          string `json:"paymentStatus,omitempty"`
	RedirectResult         string `json:"redirectResult,omitempty"`
	ResultCode             string `json:"resultCode,omitempty"`
	ReturnURLQueryString   string `json:"returnUrlQueryString,omitempty"`
	ThreeDSResult          string `json:"threeDSResult,omitempty"`
	ChallengeResult        string `json:"threeds2.challengeResult,omitempty"`
	Fingerprint            string `json:"threeds2.fingerprint,omitempty"`
}

// PaymentDetailsRequest is the body of POST /payments/details.
type PaymentDetailsRequest struct {
	AuthenticationData        map[string]string         `json:"authenticationData,omitempty"`
	Details                   *PaymentCompletionDetails `json:"details,omitempty"`
	PaymentData               string                    `json:"paymentData,omitempty"`
	ThreeDSAuthenticationOnly *bool                     `json:"threeDSAuthenticationOnly,omitempty"`
}

type PaymentDetailsResponse struct {
	Action            *CheckoutAction        `json:"action,omitempty"`
	AdditionalData    map[string]string      `json:"additionalData,omitempty"`
	Amount            *Amount                `json:"amount,omitempty"`
	DonationToken     string                 `json:"donationToken,omitempty"`
	FraudResult       *FraudResult           `json:"fraudResult,omitempty"`
	MerchantReference string                 `json:"merchantReference,omitempty"`
	Order             *CheckoutOrderResponse `json:"order,omitempty"`
	PaymentMethod     *ResponsePaymentMethod `json:"paymentMethod,omitempty"`
	PSPReference      string                 `json:"pspReference,omitempty"`
	RefusalReason     string                 `json:"refusalReason,omitempty"`
	RefusalReasonCode string                 `json:"refusalReasonCode,omitempty"`
	ResultCode        ResultCode             `json:"resultCode,omitempty"`
	ShopperLocale     string                 `json:"shopperLocale,omitempty"`
}

// PaymentVerificationRequest is the body of POST /payments/result.
type PaymentVerificationRequest struct {
	Payload string `json:"payload" validate:"required"`
}

type PaymentVerificationResponse struct {
	AdditionalData    map[string]string      `json:"additionalData,omitempty"`
	FraudResult       *FraudResult           `json:"fraudResult,omitempty"`
	MerchantReference string                 `json:"merchantReference"`
	Order             *CheckoutOrderResponse `json:"order,omitempty"`
	PSPReference      string                 `json:"pspReference,omitempty"`
	RefusalReason     string                 `json:"refusalReason,omitempty"`
	RefusalReasonCode string                 `json:"refusalReasonCode,omitempty"`
	ResultCode        ResultCode             `json:"resultCode,omitempty"`
	ServiceError      *ServiceError          `json:"serviceError,omitempty"`
	ShopperLocale     string                 `json:"shopperLocale"`
}
