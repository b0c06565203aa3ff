package models

import "github.com/companieshouse/checkout.client.ch.gov.uk/codec"

// PaymentMethodsRequest is the body of POST /paymentMethods.
type PaymentMethodsRequest struct {
	AdditionalData          map[string]string   `json:"additionalData,omitempty"`
	AllowedPaymentMethods   []string            `json:"allowedPaymentMethods,omitempty"`
	Amount                  *Amount             `json:"amount,omitempty"`
	BlockedPaymentMethods   []string            `json:"blockedPaymentMethods,omitempty"`
	Channel                 Channel             `json:"channel,omitempty"`
	CountryCode             string              `json:"countryCode,omitempty" validate:"omitempty,len=2"`
	MerchantAccount         string              `json:"merchantAccount" validate:"required"`
	Order                   *EncryptedOrderData `json:"order,omitempty"`
	ShopperLocale           string              `json:"shopperLocale,omitempty"`
	ShopperReference        string              `json:"shopperReference,omitempty"`
	SplitCardFundingSources *bool               `json:"splitCardFundingSources,omitempty"`
	Store                   string              `json:"store,omitempty"`
}

type PaymentMethodGroup struct {
	Name              string `json:"name,omitempty"`
	PaymentMethodData string `json:"paymentMethodData,omitempty"`
	Type              string `json:"type,omitempty"`
}

type PaymentMethodIssuer struct {
	Disabled bool   `json:"disabled,omitempty"`
	ID       string `json:"id"`
	Name     string `json:"name"`
}

// PaymentMethod is one entry of the list returned by /paymentMethods. Type is kept
// as a plain string because the list legitimately contains methods this client
// does not model.
type PaymentMethod struct {
	Brand         string                `json:"brand,omitempty"`
	Brands        []string              `json:"brands,omitempty"`
	Configuration map[string]string     `json:"configuration,omitempty"`
	FundingSource FundingSource         `json:"fundingSource,omitempty"`
	Group         *PaymentMethodGroup   `json:"group,omitempty"`
	Issuers       []PaymentMethodIssuer `json:"issuers,omitempty"`
	Name          string                `json:"name,omitempty"`
	Type          string                `json:"type,omitempty"`
}

type StoredPaymentMethod struct {
	Brand                        string   `json:"brand,omitempty"`
	ExpiryMonth                  string   `json:"expiryMonth,omitempty"`
	ExpiryYear                   string   `json:"expiryYear,omitempty"`
	HolderName                   string   `json:"holderName,omitempty"`
	Iban                         string   `json:"iban,omitempty"`
	ID                           string   `json:"id,omitempty"`
	LastFour                     string   `json:"lastFour,omitempty"`
	Name                         string   `json:"name,omitempty"`
	OwnerName                    string   `json:"ownerName,omitempty"`
	ShopperEmail                 string   `json:"shopperEmail,omitempty"`
	SupportedShopperInteractions []string `json:"supportedShopperInteractions,omitempty"`
	Type                         string   `json:"type,omitempty"`
}

type PaymentMethodsResponse struct {
	PaymentMethods       []PaymentMethod       `json:"paymentMethods,omitempty"`
	StoredPaymentMethods []StoredPaymentMethod `json:"storedPaymentMethods,omitempty"`
}

// CheckoutBalanceCheckRequest is the body of POST /paymentMethods/balance. The
// payment method of a gift card balance check is a flat map, e.g. type, number
// and cvc, rather than a typed variant.
type CheckoutBalanceCheckRequest struct {
	AdditionalData   map[string]string `json:"additionalData,omitempty"`
	Amount           *Amount           `json:"amount" validate:"required"`
	DateOfBirth      *codec.DateTime   `json:"dateOfBirth,omitempty"`
	MerchantAccount  string            `json:"merchantAccount" validate:"required"`
	PaymentMethod    map[string]string `json:"paymentMethod" validate:"required"`
	Reference        string            `json:"reference,omitempty"`
	ShopperEmail     string            `json:"shopperEmail,omitempty"`
	ShopperReference string            `json:"shopperReference,omitempty"`
}

type CheckoutBalanceCheckResponse struct {
	AdditionalData   map[string]string `json:"additionalData,omitempty"`
	Balance          *Amount           `json:"balance"`
	FraudResult      *FraudResult      `json:"fraudResult,omitempty"`
	PSPReference     string            `json:"pspReference,omitempty"`
	RefusalReason    string            `json:"refusalReason,omitempty"`
	ResultCode       OrderResultCode   `json:"resultCode"`
	TransactionLimit *Amount           `json:"transactionLimit,omitempty"`
}

// CardDetailsRequest is the body of POST /cardDetails.
type CardDetailsRequest struct {
	CardNumber          string   `json:"cardNumber" validate:"required"`
	CountryCode         string   `json:"countryCode,omitempty"`
	EncryptedCardNumber string   `json:"encryptedCardNumber,omitempty"`
	MerchantAccount     string   `json:"merchantAccount" validate:"required"`
	SupportedBrands     []string `json:"supportedBrands,omitempty"`
}

type CardBrandDetails struct {
	Supported codec.LenientBool `json:"supported"`
	Type      string            `json:"type"`
}

type CardDetailsResponse struct {
	Brands             []CardBrandDetails `json:"brands,omitempty"`
	FundingSource      string             `json:"fundingSource,omitempty"`
	IsCardCommercial   *bool              `json:"isCardCommercial,omitempty"`
	IssuingCountryCode string             `json:"issuingCountryCode,omitempty"`
}

// CreateApplePaySessionRequest is the body of POST /applePay/sessions.
type CreateApplePaySessionRequest struct {
	DisplayName        string `json:"displayName" validate:"required,max=64"`
	DomainName         string `json:"domainName" validate:"required"`
	MerchantIdentifier string `json:"merchantIdentifier" validate:"required"`
}

// ApplePaySessionResponse carries the base64 session blob to hand to Apple Pay JS.
type ApplePaySessionResponse struct {
	Data string `json:"data"`
}
