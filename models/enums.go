package models

import "github.com/companieshouse/checkout.client.ch.gov.uk/codec"

// ResultCode is the outcome of a payment attempt.
type ResultCode int

// Values of ResultCode
const (
	ResultCodeAuthenticationFinished ResultCode = 1 + iota
	ResultCodeAuthenticationNotRequired
	ResultCodeAuthorised
	ResultCodeCancelled
	ResultCodeChallengeShopper
	ResultCodeError
	ResultCodeIdentifyShopper
	ResultCodePartiallyAuthorised
	ResultCodePending
	ResultCodePresentToShopper
	ResultCodeReceived
	ResultCodeRedirectShopper
	ResultCodeRefused
	ResultCodeSuccess
)

var resultCodes = codec.NewEnumTable[ResultCode]("resultCode",
	"AuthenticationFinished",
	"AuthenticationNotRequired",
	"Authorised",
	"Cancelled",
	"ChallengeShopper",
	"Error",
	"IdentifyShopper",
	"PartiallyAuthorised",
	"Pending",
	"PresentToShopper",
	"Received",
	"RedirectShopper",
	"Refused",
	"Success",
)

// String returns the wire value.
func (r ResultCode) String() string {
	return resultCodes.String(r)
}

// MarshalJSON implements json.Marshaler.
func (r ResultCode) MarshalJSON() ([]byte, error) {
	return resultCodes.Marshal(r)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ResultCode) UnmarshalJSON(data []byte) error {
	return resultCodes.Unmarshal(data, r)
}

// OrderResultCode is the outcome of an order or balance check.
type OrderResultCode int

// Values of OrderResultCode
const (
	OrderResultCodeSuccess OrderResultCode = 1 + iota
	OrderResultCodeNotEnoughBalance
	OrderResultCodeFailed
)

var orderResultCodes = codec.NewEnumTable[OrderResultCode]("resultCode",
	"Success",
	"NotEnoughBalance",
	"Failed",
)

// String returns the wire value.
func (o OrderResultCode) String() string {
	return orderResultCodes.String(o)
}

// MarshalJSON implements json.Marshaler.
func (o OrderResultCode) MarshalJSON() ([]byte, error) {
	return orderResultCodes.Marshal(o)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OrderResultCode) UnmarshalJSON(data []byte) error {
	return orderResultCodes.Unmarshal(data, o)
}

// CancelOrderResultCode is the outcome of an order cancellation.
type CancelOrderResultCode int

// Values of CancelOrderResultCode
const (
	CancelOrderResultCodeReceived CancelOrderResultCode = 1 + iota
)

var cancelOrderResultCodes = codec.NewEnumTable[CancelOrderResultCode]("resultCode",
	"Received",
)

// String returns the wire value.
func (c CancelOrderResultCode) String() string {
	return cancelOrderResultCodes.String(c)
}

// MarshalJSON implements json.Marshaler.
func (c CancelOrderResultCode) MarshalJSON() ([]byte, error) {
	return cancelOrderResultCodes.Marshal(c)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CancelOrderResultCode) UnmarshalJSON(data []byte) error {
	return cancelOrderResultCodes.Unmarshal(data, c)
}

// PaymentLinkStatus is the lifecycle state of a payment link.
type PaymentLinkStatus int

// Values of PaymentLinkStatus
const (
	PaymentLinkStatusActive PaymentLinkStatus = 1 + iota
	PaymentLinkStatusCompleted
	PaymentLinkStatusExpired
	PaymentLinkStatusPaid
	PaymentLinkStatusPaymentPending
)

var paymentLinkStatuss = codec.NewEnumTable[PaymentLinkStatus]("status",
	"active",
	"completed",
	"expired",
	"paid",
	"paymentPending",
)

// String returns the wire value.
func (p PaymentLinkStatus) String() string {
	return paymentLinkStatuss.String(p)
}

// MarshalJSON implements json.Marshaler.
func (p PaymentLinkStatus) MarshalJSON() ([]byte, error) {
	return paymentLinkStatuss.Marshal(p)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PaymentLinkStatus) UnmarshalJSON(data []byte) error {
	return paymentLinkStatuss.Unmarshal(data, p)
}

type DonationStatus int

// Values of DonationStatus
const (
	DonationStatusCompleted DonationStatus = 1 + iota
	DonationStatusPending
	DonationStatusRefused
)

var donationStatuss = codec.NewEnumTable[DonationStatus]("status",
	"completed",
	"pending",
	"refused",
)

// String returns the wire value.
func (d DonationStatus) String() string {
	return donationStatuss.String(d)
}

// MarshalJSON implements json.Marshaler.
func (d DonationStatus) MarshalJSON() ([]byte, error) {
	return donationStatuss.Marshal(d)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DonationStatus) UnmarshalJSON(data []byte) error {
	return donationStatuss.Unmarshal(data, d)
}

// ModificationStatus acknowledges a modification request. The final outcome
// arrives by webhook, so "received" is the only value.
type ModificationStatus int

// Values of ModificationStatus
const (
	ModificationStatusReceived ModificationStatus = 1 + iota
)

var modificationStatuss = codec.NewEnumTable[ModificationStatus]("status",
	"received",
)

// String returns the wire value.
func (m ModificationStatus) String() string {
	return modificationStatuss.String(m)
}

// MarshalJSON implements json.Marshaler.
func (m ModificationStatus) MarshalJSON() ([]byte, error) {
	return modificationStatuss.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *ModificationStatus) UnmarshalJSON(data []byte) error {
	return modificationStatuss.Unmarshal(data, m)
}

type RecurringProcessingModel int

// Values of RecurringProcessingModel
const (
	RecurringProcessingModelCardOnFile RecurringProcessingModel = 1 + iota
	RecurringProcessingModelSubscription
	RecurringProcessingModelUnscheduledCardOnFile
)

var recurringProcessingModels = codec.NewEnumTable[RecurringProcessingModel]("recurringProcessingModel",
	"CardOnFile",
	"Subscription",
	"UnscheduledCardOnFile",
)

// String returns the wire value.
func (r RecurringProcessingModel) String() string {
	return recurringProcessingModels.String(r)
}

// MarshalJSON implements json.Marshaler.
func (r RecurringProcessingModel) MarshalJSON() ([]byte, error) {
	return recurringProcessingModels.Marshal(r)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RecurringProcessingModel) UnmarshalJSON(data []byte) error {
	return recurringProcessingModels.Unmarshal(data, r)
}

type ShopperInteraction int

// Values of ShopperInteraction
const (
	ShopperInteractionEcommerce ShopperInteraction = 1 + iota
	ShopperInteractionContAuth
	ShopperInteractionMoto
	ShopperInteractionPOS
)

var shopperInteractions = codec.NewEnumTable[ShopperInteraction]("shopperInteraction",
	"Ecommerce",
	"ContAuth",
	"Moto",
	"POS",
)

// String returns the wire value.
func (s ShopperInteraction) String() string {
	return shopperInteractions.String(s)
}

// MarshalJSON implements json.Marshaler.
func (s ShopperInteraction) MarshalJSON() ([]byte, error) {
	return shopperInteractions.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ShopperInteraction) UnmarshalJSON(data []byte) error {
	return shopperInteractions.Unmarshal(data, s)
}

// Channel is the platform the shopper pays from.
type Channel int

// Values of Channel
const (
	ChannelIOS Channel = 1 + iota
	ChannelAndroid
	ChannelWeb
)

var channels = codec.NewEnumTable[Channel]("channel",
	"iOS",
	"Android",
	"Web",
)

// String returns the wire value.
func (c Channel) String() string {
	return channels.String(c)
}

// MarshalJSON implements json.Marshaler.
func (c Channel) MarshalJSON() ([]byte, error) {
	return channels.Marshal(c)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Channel) UnmarshalJSON(data []byte) error {
	return channels.Unmarshal(data, c)
}

type FundingSource int

// Values of FundingSource
const (
	FundingSourceCredit FundingSource = 1 + iota
	FundingSourceDebit
)

var fundingSources = codec.NewEnumTable[FundingSource]("fundingSource",
	"credit",
	"debit",
)

// String returns the wire value.
func (f FundingSource) String() string {
	return fundingSources.String(f)
}

// MarshalJSON implements json.Marshaler.
func (f FundingSource) MarshalJSON() ([]byte, error) {
	return fundingSources.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FundingSource) UnmarshalJSON(data []byte) error {
	return fundingSources.Unmarshal(data, f)
}

type StorePaymentMethodMode int

// Values of StorePaymentMethodMode
const (
	StorePaymentMethodModeAskForConsent StorePaymentMethodMode = 1 + iota
	StorePaymentMethodModeDisabled
	StorePaymentMethodModeEnabled
)

var storePaymentMethodModes = codec.NewEnumTable[StorePaymentMethodMode]("storePaymentMethodMode",
	"askForConsent",
	"disabled",
	"enabled",
)

// String returns the wire value.
func (s StorePaymentMethodMode) String() string {
	return storePaymentMethodModes.String(s)
}

// MarshalJSON implements json.Marshaler.
func (s StorePaymentMethodMode) MarshalJSON() ([]byte, error) {
	return storePaymentMethodModes.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *StorePaymentMethodMode) UnmarshalJSON(data []byte) error {
	return storePaymentMethodModes.Unmarshal(data, s)
}
