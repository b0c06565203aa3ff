package models

import (
	"encoding/json"

	"github.com/companieshouse/checkout.client.ch.gov.uk/codec"
)

// PaymentMethodType is the discriminator of a payment method object.
type PaymentMethodType int

// Values of PaymentMethodType
const (
	PaymentMethodTypeScheme PaymentMethodType = 1 + iota
	PaymentMethodTypeNetworkToken
	PaymentMethodTypeIdeal
	PaymentMethodTypeKlarna
	PaymentMethodTypeKlarnaPayments
	PaymentMethodTypeKlarnaPaymentsAccount
	PaymentMethodTypeKlarnaPaymentsB2B
	PaymentMethodTypeKlarnaPayNow
	PaymentMethodTypeKlarnaAccount
	PaymentMethodTypeKlarnaB2B
	PaymentMethodTypePayPal
	PaymentMethodTypeApplePay
	PaymentMethodTypeGooglePay
	PaymentMethodTypePayWithGoogle
	PaymentMethodTypeSepaDirectDebit
	PaymentMethodTypeSepaDirectDebitAmazonPay
	PaymentMethodTypeAch
	PaymentMethodTypeAchPlaid
	PaymentMethodTypeBlik
	PaymentMethodTypeGiropay
	PaymentMethodTypeAmazonPay
	PaymentMethodTypeAfterpayDefault
	PaymentMethodTypeAfterpayTouch
	PaymentMethodTypeAfterpayB2B
	PaymentMethodTypeClearpay
	PaymentMethodTypeDotpay
	PaymentMethodTypeMbway
	PaymentMethodTypeMobilePay
	PaymentMethodTypeSamsungPay
	PaymentMethodTypeVipps
	PaymentMethodTypeWeChatPay
	PaymentMethodTypeWeChatPayPOS
	PaymentMethodTypeZip
	PaymentMethodTypeZipPOS
	PaymentMethodTypeBacsDirectDebit
	PaymentMethodTypeUpiCollect
)

var paymentMethodTypes = codec.NewEnumTable[PaymentMethodType]("paymentMethod.type",
	"scheme",
	"networkToken",
	"ideal",
	"klarna",
	"klarnapayments",
	"klarnapayments_account",
	"klarnapayments_b2b",
	"klarna_paynow",
	"klarna_account",
	"klarna_b2b",
	"paypal",
	"applepay",
	"googlepay",
	"paywithgoogle",
	"sepadirectdebit",
	"sepadirectdebit_amazonpay",
	"ach",
	"ach_plaid",
	"blik",
	"giropay",
	"amazonpay",
	"afterpay_default",
	"afterpaytouch",
	"afterpay_b2b",
	"clearpay",
	"dotpay",
	"mbway",
	"mobilepay",
	"samsungpay",
	"vipps",
	"wechatpay",
	"wechatpay_pos",
	"zip",
	"zip_pos",
	"directdebit_GB",
	"upi_collect",
)

// String returns the wire value.
func (p PaymentMethodType) String() string {
	return paymentMethodTypes.String(p)
}

// MarshalJSON implements json.Marshaler.
func (p PaymentMethodType) MarshalJSON() ([]byte, error) {
	return paymentMethodTypes.Marshal(p)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PaymentMethodType) UnmarshalJSON(data []byte) error {
	return paymentMethodTypes.Unmarshal(data, p)
}

// PaymentMethodDetails is implemented by every payment method variant. The
// method set is closed: only types in this package satisfy it.
type PaymentMethodDetails interface {
	isPaymentMethodDetails()
}

// CardDetails carries raw or encrypted card data.
type CardDetails struct {
	Brand                    string            `json:"brand,omitempty"`
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	Cvc                      string            `json:"cvc,omitempty"`
	EncryptedCardNumber      string            `json:"encryptedCardNumber,omitempty"`
	EncryptedExpiryMonth     string            `json:"encryptedExpiryMonth,omitempty"`
	EncryptedExpiryYear      string            `json:"encryptedExpiryYear,omitempty"`
	EncryptedSecurityCode    string            `json:"encryptedSecurityCode,omitempty"`
	ExpiryMonth              string            `json:"expiryMonth,omitempty"`
	ExpiryYear               string            `json:"expiryYear,omitempty"`
	FundingSource            FundingSource     `json:"fundingSource,omitempty"`
	HolderName               string            `json:"holderName,omitempty"`
	Number                   string            `json:"number,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	ThreeDS2SdkVersion       string            `json:"threeDS2SdkVersion,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// IdealDetails is the ideal payment method.
type IdealDetails struct {
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	Issuer                   string            `json:"issuer,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// KlarnaDetails covers the klarna family of payment method types.
type KlarnaDetails struct {
	BillingAddress           string            `json:"billingAddress,omitempty"`
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	DeliveryAddress          string            `json:"deliveryAddress,omitempty"`
	PersonalDetails          string            `json:"personalDetails,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Subtype                  string            `json:"subtype,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// PayPalDetails is the paypal payment method.
type PayPalDetails struct {
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	OrderID                  string            `json:"orderID,omitempty"`
	PayeePreferred           string            `json:"payeePreferred,omitempty"`
	PayerID                  string            `json:"payerID,omitempty"`
	PayerSelected            string            `json:"payerSelected,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Subtype                  string            `json:"subtype,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// ApplePayDetails is the applepay payment method.
type ApplePayDetails struct {
	ApplePayToken            string            `json:"applePayToken,omitempty"`
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	FundingSource            FundingSource     `json:"fundingSource,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// GooglePayDetails covers both the current googlepay type and the legacy paywithgoogle type.
type GooglePayDetails struct {
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	FundingSource            FundingSource     `json:"fundingSource,omitempty"`
	GooglePayToken           string            `json:"googlePayToken,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// SepaDirectDebitDetails covers the sepadirectdebit family of payment method types.
type SepaDirectDebitDetails struct {
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	Iban                     string            `json:"iban,omitempty"`
	OwnerName                string            `json:"ownerName,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// AchDetails covers the ach family of payment method types.
type AchDetails struct {
	BankAccountNumber          string            `json:"bankAccountNumber,omitempty"`
	BankLocationID             string            `json:"bankLocationId,omitempty"`
	CheckoutAttemptID          string            `json:"checkoutAttemptId,omitempty"`
	EncryptedBankAccountNumber string            `json:"encryptedBankAccountNumber,omitempty"`
	EncryptedBankLocationID    string            `json:"encryptedBankLocationId,omitempty"`
	OwnerName                  string            `json:"ownerName,omitempty"`
	RecurringDetailReference   string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID      string            `json:"storedPaymentMethodId,omitempty"`
	Type                       PaymentMethodType `json:"type,omitempty"`
}

// BlikDetails is the blik payment method.
type BlikDetails struct {
	BlikCode                 string            `json:"blikCode,omitempty"`
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// GiropayDetails is the giropay payment method.
type GiropayDetails struct {
	CheckoutAttemptID string            `json:"checkoutAttemptId,omitempty"`
	Type              PaymentMethodType `json:"type,omitempty"`
}

// AmazonPayDetails is the amazonpay payment method.
type AmazonPayDetails struct {
	AmazonPayToken    string            `json:"amazonPayToken,omitempty"`
	CheckoutAttemptID string            `json:"checkoutAttemptId,omitempty"`
	CheckoutSessionID string            `json:"checkoutSessionId,omitempty"`
	Type              PaymentMethodType `json:"type,omitempty"`
}

// AfterpayDetails covers the afterpay_default family of payment method types.
type AfterpayDetails struct {
	BillingAddress           string            `json:"billingAddress,omitempty"`
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	DeliveryAddress          string            `json:"deliveryAddress,omitempty"`
	PersonalDetails          string            `json:"personalDetails,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// DotpayDetails is the dotpay payment method.
type DotpayDetails struct {
	CheckoutAttemptID string            `json:"checkoutAttemptId,omitempty"`
	Issuer            string            `json:"issuer,omitempty"`
	Type              PaymentMethodType `json:"type,omitempty"`
}

// MbwayDetails is the mbway payment method.
type MbwayDetails struct {
	CheckoutAttemptID string            `json:"checkoutAttemptId,omitempty"`
	ShopperEmail      string            `json:"shopperEmail,omitempty"`
	TelephoneNumber   string            `json:"telephoneNumber,omitempty"`
	Type              PaymentMethodType `json:"type,omitempty"`
}

// MobilePayDetails is the mobilepay payment method.
type MobilePayDetails struct {
	CheckoutAttemptID string            `json:"checkoutAttemptId,omitempty"`
	Type              PaymentMethodType `json:"type,omitempty"`
}

// SamsungPayDetails is the samsungpay payment method.
type SamsungPayDetails struct {
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	FundingSource            FundingSource     `json:"fundingSource,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	SamsungPayToken          string            `json:"samsungPayToken,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// VippsDetails is the vipps payment method.
type VippsDetails struct {
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	TelephoneNumber          string            `json:"telephoneNumber,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// WeChatPayDetails covers the wechatpay family of payment method types.
type WeChatPayDetails struct {
	CheckoutAttemptID string            `json:"checkoutAttemptId,omitempty"`
	Type              PaymentMethodType `json:"type,omitempty"`
}

// ZipDetails covers the zip family of payment method types.
type ZipDetails struct {
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	ClickAndCollect          string            `json:"clickAndCollect,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// BacsDirectDebitDetails is the UK direct debit, wire type directdebit_GB.
type BacsDirectDebitDetails struct {
	BankAccountNumber        string            `json:"bankAccountNumber,omitempty"`
	BankLocationID           string            `json:"bankLocationId,omitempty"`
	CheckoutAttemptID        string            `json:"checkoutAttemptId,omitempty"`
	HolderName               string            `json:"holderName,omitempty"`
	RecurringDetailReference string            `json:"recurringDetailReference,omitempty"`
	StoredPaymentMethodID    string            `json:"storedPaymentMethodId,omitempty"`
	Type                     PaymentMethodType `json:"type,omitempty"`
}

// UpiCollectDetails is the upi_collect payment method.
type UpiCollectDetails struct {
	BillingSequenceNumber        string            `json:"billingSequenceNumber,omitempty"`
	CheckoutAttemptID            string            `json:"checkoutAttemptId,omitempty"`
	RecurringDetailReference     string            `json:"recurringDetailReference,omitempty"`
	ShopperNotificationReference string            `json:"shopperNotificationReference,omitempty"`
	StoredPaymentMethodID        string            `json:"storedPaymentMethodId,omitempty"`
	Type                         PaymentMethodType `json:"type,omitempty"`
	VirtualPaymentAddress        string            `json:"virtualPaymentAddress,omitempty"`
}

func (*CardDetails) isPaymentMethodDetails()            {}
func (*IdealDetails) isPaymentMethodDetails()           {}
func (*KlarnaDetails) isPaymentMethodDetails()          {}
func (*PayPalDetails) isPaymentMethodDetails()          {}
func (*ApplePayDetails) isPaymentMethodDetails()        {}
func (*GooglePayDetails) isPaymentMethodDetails()       {}
func (*SepaDirectDebitDetails) isPaymentMethodDetails() {}
func (*AchDetails) isPaymentMethodDetails()             {}
func (*BlikDetails) isPaymentMethodDetails()            {}
func (*GiropayDetails) isPaymentMethodDetails()         {}
func (*AmazonPayDetails) isPaymentMethodDetails()       {}
func (*AfterpayDetails) isPaymentMethodDetails()        {}
func (*DotpayDetails) isPaymentMethodDetails()          {}
func (*MbwayDetails) isPaymentMethodDetails()           {}
func (*MobilePayDetails) isPaymentMethodDetails()       {}
func (*SamsungPayDetails) isPaymentMethodDetails()      {}
func (*VippsDetails) isPaymentMethodDetails()           {}
func (*WeChatPayDetails) isPaymentMethodDetails()       {}
func (*ZipDetails) isPaymentMethodDetails()             {}
func (*BacsDirectDebitDetails) isPaymentMethodDetails() {}
func (*UpiCollectDetails) isPaymentMethodDetails()      {}

// GenericDetails holds a payment method whose type this client does not model.
// Its fields are kept verbatim so that it can be sent back unchanged.
type GenericDetails struct {
	codec.RawObject
}

func (*GenericDetails) isPaymentMethodDetails() {}

func paymentMethodTypeNames(types ...PaymentMethodType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

// paymentMethodUnion lists variants in resolution order.
var paymentMethodUnion = codec.NewUnion[PaymentMethodDetails]("paymentMethod",
	codec.Variant[PaymentMethodDetails]{Name: "CardDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeScheme, PaymentMethodTypeNetworkToken), New: func() PaymentMethodDetails { return &CardDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "IdealDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeIdeal), New: func() PaymentMethodDetails { return &IdealDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "KlarnaDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeKlarna, PaymentMethodTypeKlarnaPayments, PaymentMethodTypeKlarnaPaymentsAccount, PaymentMethodTypeKlarnaPaymentsB2B, PaymentMethodTypeKlarnaPayNow, PaymentMethodTypeKlarnaAccount, PaymentMethodTypeKlarnaB2B), New: func() PaymentMethodDetails { return &KlarnaDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "PayPalDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypePayPal), New: func() PaymentMethodDetails { return &PayPalDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "ApplePayDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeApplePay), New: func() PaymentMethodDetails { return &ApplePayDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "GooglePayDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeGooglePay, PaymentMethodTypePayWithGoogle), New: func() PaymentMethodDetails { return &GooglePayDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "SepaDirectDebitDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeSepaDirectDebit, PaymentMethodTypeSepaDirectDebitAmazonPay), New: func() PaymentMethodDetails { return &SepaDirectDebitDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "AchDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeAch, PaymentMethodTypeAchPlaid), New: func() PaymentMethodDetails { return &AchDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "BlikDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeBlik), New: func() PaymentMethodDetails { return &BlikDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "GiropayDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeGiropay), New: func() PaymentMethodDetails { return &GiropayDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "AmazonPayDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeAmazonPay), New: func() PaymentMethodDetails { return &AmazonPayDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "AfterpayDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeAfterpayDefault, PaymentMethodTypeAfterpayTouch, PaymentMethodTypeAfterpayB2B, PaymentMethodTypeClearpay), New: func() PaymentMethodDetails { return &AfterpayDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "DotpayDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeDotpay), New: func() PaymentMethodDetails { return &DotpayDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "MbwayDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeMbway), New: func() PaymentMethodDetails { return &MbwayDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "MobilePayDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeMobilePay), New: func() PaymentMethodDetails { return &MobilePayDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "SamsungPayDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeSamsungPay), New: func() PaymentMethodDetails { return &SamsungPayDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "VippsDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeVipps), New: func() PaymentMethodDetails { return &VippsDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "WeChatPayDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeWeChatPay, PaymentMethodTypeWeChatPayPOS), New: func() PaymentMethodDetails { return &WeChatPayDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "ZipDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeZip, PaymentMethodTypeZipPOS), New: func() PaymentMethodDetails { return &ZipDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "BacsDirectDebitDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeBacsDirectDebit), New: func() PaymentMethodDetails { return &BacsDirectDebitDetails{} }},
	codec.Variant[PaymentMethodDetails]{Name: "UpiCollectDetails", Discriminants: paymentMethodTypeNames(PaymentMethodTypeUpiCollect), New: func() PaymentMethodDetails { return &UpiCollectDetails{} }},
).WithFallback(&GenericDetails{}, func(discriminant string, fields map[string]json.RawMessage) (PaymentMethodDetails, error) {
	return &GenericDetails{RawObject: codec.NewRawObject(discriminant, fields)}, nil
})

// CheckoutPaymentMethod holds exactly one payment method variant. On the wire
// the variant's fields appear directly in the paymentMethod object.
type CheckoutPaymentMethod struct {
	details PaymentMethodDetails
}

// NewCheckoutPaymentMethod wraps details. An unset Type is filled with the
// variant default so that the value compares equal to its decoded encoding.
func NewCheckoutPaymentMethod(details PaymentMethodDetails) *CheckoutPaymentMethod {
	paymentMethodUnion.SetDefaultType(details)
	return &CheckoutPaymentMethod{details: details}
}

// Details returns the variant that is set, or nil.
func (p *CheckoutPaymentMethod) Details() PaymentMethodDetails {
	if p == nil {
		return nil
	}
	return p.details
}

// MarshalJSON implements json.Marshaler.
func (p CheckoutPaymentMethod) MarshalJSON() ([]byte, error) {
	return paymentMethodUnion.Encode(p.details)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *CheckoutPaymentMethod) UnmarshalJSON(data []byte) error {
	details, err := paymentMethodUnion.Decode(data)
	if err != nil {
		return err
	}
	p.details = details
	return nil
}

// CardDetails returns the CardDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) CardDetails() (*CardDetails, bool) {
	d, ok := p.Details().(*CardDetails)
	return d, ok
}

// IdealDetails returns the IdealDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) IdealDetails() (*IdealDetails, bool) {
	d, ok := p.Details().(*IdealDetails)
	return d, ok
}

// KlarnaDetails returns the KlarnaDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) KlarnaDetails() (*KlarnaDetails, bool) {
	d, ok := p.Details().(*KlarnaDetails)
	return d, ok
}

// PayPalDetails returns the PayPalDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) PayPalDetails() (*PayPalDetails, bool) {
	d, ok := p.Details().(*PayPalDetails)
	return d, ok
}

// ApplePayDetails returns the ApplePayDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) ApplePayDetails() (*ApplePayDetails, bool) {
	d, ok := p.Details().(*ApplePayDetails)
	return d, ok
}

// GooglePayDetails returns the GooglePayDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) GooglePayDetails() (*GooglePayDetails, bool) {
	d, ok := p.Details().(*GooglePayDetails)
	return d, ok
}

// SepaDirectDebitDetails returns the SepaDirectDebitDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) SepaDirectDebitDetails() (*SepaDirectDebitDetails, bool) {
	d, ok := p.Details().(*SepaDirectDebitDetails)
	return d, ok
}

// AchDetails returns the AchDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) AchDetails() (*AchDetails, bool) {
	d, ok := p.Details().(*AchDetails)
	return d, ok
}

// BlikDetails returns the BlikDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) BlikDetails() (*BlikDetails, bool) {
	d, ok := p.Details().(*BlikDetails)
	return d, ok
}

// GiropayDetails returns the GiropayDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) GiropayDetails() (*GiropayDetails, bool) {
	d, ok := p.Details().(*GiropayDetails)
	return d, ok
}

// AmazonPayDetails returns the AmazonPayDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) AmazonPayDetails() (*AmazonPayDetails, bool) {
	d, ok := p.Details().(*AmazonPayDetails)
	return d, ok
}

// AfterpayDetails returns the AfterpayDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) AfterpayDetails() (*AfterpayDetails, bool) {
	d, ok := p.Details().(*AfterpayDetails)
	return d, ok
}

// DotpayDetails returns the DotpayDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) DotpayDetails() (*DotpayDetails, bool) {
	d, ok := p.Details().(*DotpayDetails)
	return d, ok
}

// MbwayDetails returns the MbwayDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) MbwayDetails() (*MbwayDetails, bool) {
	d, ok := p.Details().(*MbwayDetails)
	return d, ok
}

// MobilePayDetails returns the MobilePayDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) MobilePayDetails() (*MobilePayDetails, bool) {
	d, ok := p.Details().(*MobilePayDetails)
	return d, ok
}

// SamsungPayDetails returns the SamsungPayDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) SamsungPayDetails() (*SamsungPayDetails, bool) {
	d, ok := p.Details().(*SamsungPayDetails)
	return d, ok
}

// VippsDetails returns the VippsDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) VippsDetails() (*VippsDetails, bool) {
	d, ok := p.Details().(*VippsDetails)
	return d, ok
}

// WeChatPayDetails returns the WeChatPayDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) WeChatPayDetails() (*WeChatPayDetails, bool) {
	d, ok := p.Details().(*WeChatPayDetails)
	return d, ok
}

// ZipDetails returns the ZipDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) ZipDetails() (*ZipDetails, bool) {
	d, ok := p.Details().(*ZipDetails)
	return d, ok
}

// BacsDirectDebitDetails returns the BacsDirectDebitDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) BacsDirectDebitDetails() (*BacsDirectDebitDetails, bool) {
	d, ok := p.Details().(*BacsDirectDebitDetails)
	return d, ok
}

// UpiCollectDetails returns the UpiCollectDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) UpiCollectDetails() (*UpiCollectDetails, bool) {
	d, ok := p.Details().(*UpiCollectDetails)
	return d, ok
}

// GenericDetails returns the GenericDetails variant, if that is the one set.
func (p *CheckoutPaymentMethod) GenericDetails() (*GenericDetails, bool) {
	d, ok := p.Details().(*GenericDetails)
	return d, ok
}
