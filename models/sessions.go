package models

import "github.com/companieshouse/checkout.client.ch.gov.uk/codec"

// CreateCheckoutSessionRequest is the body of POST /sessions.
type CreateCheckoutSessionRequest struct {
	AllowedPaymentMethods    []string                 `json:"allowedPaymentMethods,omitempty"`
	Amount                   *Amount                  `json:"amount" validate:"required"`
	BillingAddress           *Address                 `json:"billingAddress,omitempty"`
	BlockedPaymentMethods    []string                 `json:"blockedPaymentMethods,omitempty"`
	Channel                  Channel                  `json:"channel,omitempty"`
	CountryCode              string                   `json:"countryCode,omitempty" validate:"omitempty,len=2"`
	DateOfBirth              *codec.DateTime          `json:"dateOfBirth,omitempty"`
	DeliveryAddress          *Address                 `json:"deliveryAddress,omitempty"`
	ExpiresAt                *codec.DateTime          `json:"expiresAt,omitempty"`
	LineItems                []LineItem               `json:"lineItems,omitempty"`
	MerchantAccount          string                   `json:"merchantAccount" validate:"required"`
	MerchantOrderReference   string                   `json:"merchantOrderReference,omitempty"`
	Metadata                 map[string]string        `json:"metadata,omitempty"`
	RecurringProcessingModel RecurringProcessingModel `json:"recurringProcessingModel,omitempty"`
	Reference                string                   `json:"reference" validate:"required"`
	ReturnURL                string                   `json:"returnUrl" validate:"required"`
	ShopperEmail             string                   `json:"shopperEmail,omitempty"`
	ShopperInteraction       ShopperInteraction       `json:"shopperInteraction,omitempty"`
	ShopperLocale            string                   `json:"shopperLocale,omitempty"`
	ShopperName              *Name                    `json:"shopperName,omitempty"`
	ShopperReference         string                   `json:"shopperReference,omitempty"`
	StorePaymentMethod       *bool                    `json:"storePaymentMethod,omitempty"`
}

// CreateCheckoutSessionResponse carries the session id and data that the Drop-in
// or Components need to render the checkout.
type CreateCheckoutSessionResponse struct {
	AllowedPaymentMethods    []string                 `json:"allowedPaymentMethods,omitempty"`
	Amount                   *Amount                  `json:"amount"`
	BlockedPaymentMethods    []string                 `json:"blockedPaymentMethods,omitempty"`
	Channel                  Channel                  `json:"channel,omitempty"`
	CountryCode              string                   `json:"countryCode,omitempty"`
	DateOfBirth              *codec.DateTime          `json:"dateOfBirth,omitempty"`
	ExpiresAt                *codec.DateTime          `json:"expiresAt"`
	ID                       string                   `json:"id"`
	LineItems                []LineItem               `json:"lineItems,omitempty"`
	MerchantAccount          string                   `json:"merchantAccount"`
	MerchantOrderReference   string                   `json:"merchantOrderReference,omitempty"`
	Metadata                 map[string]string        `json:"metadata,omitempty"`
	RecurringProcessingModel RecurringProcessingModel `json:"recurringProcessingModel,omitempty"`
	Reference                string                   `json:"reference"`
	ReturnURL                string                   `json:"returnUrl"`
	SessionData              string                   `json:"sessionData,omitempty"`
	ShopperEmail             string                   `json:"shopperEmail,omitempty"`
	ShopperLocale            string                   `json:"shopperLocale,omitempty"`
	ShopperReference         string                   `json:"shopperReference,omitempty"`
	StorePaymentMethod       *bool                    `json:"storePaymentMethod,omitempty"`
}
