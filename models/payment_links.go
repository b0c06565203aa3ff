package models

import "github.com/companieshouse/checkout.client.ch.gov.uk/codec"

// CreatePaymentLinkRequest is the body of POST /paymentLinks.
type CreatePaymentLinkRequest struct {
	AllowedPaymentMethods    []string                 `json:"allowedPaymentMethods,omitempty"`
	Amount                   *Amount                  `json:"amount" validate:"required"`
	BillingAddress           *Address                 `json:"billingAddress,omitempty"`
	BlockedPaymentMethods    []string                 `json:"blockedPaymentMethods,omitempty"`
	CountryCode              string                   `json:"countryCode,omitempty" validate:"omitempty,len=2"`
	DeliverAt                *codec.DateTime          `json:"deliverAt,omitempty"`
	DeliveryAddress          *Address                 `json:"deliveryAddress,omitempty"`
	Description              string                   `json:"description,omitempty"`
	ExpiresAt                *codec.DateTime          `json:"expiresAt,omitempty"`
	LineItems                []LineItem               `json:"lineItems,omitempty"`
	MerchantAccount          string                   `json:"merchantAccount" validate:"required"`
	MerchantOrderReference   string                   `json:"merchantOrderReference,omitempty"`
	Metadata                 map[string]string        `json:"metadata,omitempty"`
	RecurringProcessingModel RecurringProcessingModel `json:"recurringProcessingModel,omitempty"`
	Reference                string                   `json:"reference" validate:"required"`
	ReturnURL                string                   `json:"returnUrl,omitempty"`
	Reusable                 *bool                    `json:"reusable,omitempty"`
	ShopperEmail             string                   `json:"shopperEmail,omitempty"`
	ShopperLocale            string                   `json:"shopperLocale,omitempty"`
	ShopperName              *Name                    `json:"shopperName,omitempty"`
	ShopperReference         string                   `json:"shopperReference,omitempty"`
	SplitCardFundingSources  *bool                    `json:"splitCardFundingSources,omitempty"`
	Store                    string                   `json:"store,omitempty"`
	StorePaymentMethodMode   StorePaymentMethodMode   `json:"storePaymentMethodMode,omitempty"`
	ThemeID                  string                   `json:"themeId,omitempty"`
}

// PaymentLinkResponse is returned by every /paymentLinks operation.
type PaymentLinkResponse struct {
	AllowedPaymentMethods    []string                 `json:"allowedPaymentMethods,omitempty"`
	Amount                   *Amount                  `json:"amount"`
	BillingAddress           *Address                 `json:"billingAddress,omitempty"`
	BlockedPaymentMethods    []string                 `json:"blockedPaymentMethods,omitempty"`
	CountryCode              string                   `json:"countryCode,omitempty"`
	DeliverAt                *codec.DateTime          `json:"deliverAt,omitempty"`
	DeliveryAddress          *Address                 `json:"deliveryAddress,omitempty"`
	Description              string                   `json:"description,omitempty"`
	ExpiresAt                *codec.DateTime          `json:"expiresAt,omitempty"`
	ID                       string                   `json:"id"`
	LineItems                []LineItem               `json:"lineItems,omitempty"`
	MerchantAccount          string                   `json:"merchantAccount"`
	MerchantOrderReference   string                   `json:"merchantOrderReference,omitempty"`
	Metadata                 map[string]string        `json:"metadata,omitempty"`
	RecurringProcessingModel RecurringProcessingModel `json:"recurringProcessingModel,omitempty"`
	Reference                string                   `json:"reference"`
	ReturnURL                string                   `json:"returnUrl,omitempty"`
	Reusable                 *bool                    `json:"reusable,omitempty"`
	ShopperEmail             string                   `json:"shopperEmail,omitempty"`
	ShopperLocale            string                   `json:"shopperLocale,omitempty"`
	ShopperName              *Name                    `json:"shopperName,omitempty"`
	ShopperReference         string                   `json:"shopperReference,omitempty"`
	Status                   PaymentLinkStatus        `json:"status"`
	Store                    string                   `json:"store,omitempty"`
	StorePaymentMethodMode   StorePaymentMethodMode   `json:"storePaymentMethodMode,omitempty"`
	ThemeID                  string                   `json:"themeId,omitempty"`
	UpdatedAt                *codec.DateTime          `json:"updatedAt,omitempty"`
	URL                      string                   `json:"url"`
}

// UpdatePaymentLinkRequest is the body of PATCH /paymentLinks/{linkId}. The only
// supported change is forcing a link to expire.
type UpdatePaymentLinkRequest struct {
	Status PaymentLinkStatus `json:"status" validate:"required"`
}
