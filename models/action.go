package models

import (
	"encoding/json"

	"github.com/companieshouse/checkout.client.ch.gov.uk/codec"
)

// ActionType is the discriminator of the action returned with a payment response.
type ActionType int

// Values of ActionType
const (
	ActionTypeAwait ActionType = 1 + iota
	ActionTypeBankTransfer
	ActionTypeDonation
	ActionTypeQrCode
	ActionTypeRedirect
	ActionTypeSDK
	ActionTypeWeChatPaySDK
	ActionTypeThreeDS2
	ActionTypeVoucher
)

var actionTypes = codec.NewEnumTable[ActionType]("action.type",
	"await",
	"bankTransfer",
	"donation",
	"qrCode",
	"redirect",
	"sdk",
	"wechatpaySDK",
	"threeDS2",
	"voucher",
)

// String returns the wire value.
func (a ActionType) String() string {
	return actionTypes.String(a)
}

// MarshalJSON implements json.Marshaler.
func (a ActionType) MarshalJSON() ([]byte, error) {
	return actionTypes.Marshal(a)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *ActionType) UnmarshalJSON(data []byte) error {
	return actionTypes.Unmarshal(data, a)
}

// Action is implemented by every action variant.
type Action interface {
	isAction()
}

// CheckoutAwaitAction asks the shopper to complete the payment in another app.
type CheckoutAwaitAction struct {
	PaymentData       string     `json:"paymentData,omitempty"`
	PaymentMethodType string     `json:"paymentMethodType,omitempty"`
	Type              ActionType `json:"type,omitempty"`
	URL               string     `json:"url,omitempty"`
}

type CheckoutBankTransferAction struct {
	Beneficiary       string     `json:"beneficiary,omitempty"`
	Bic               string     `json:"bic,omitempty"`
	DownloadURL       string     `json:"downloadUrl,omitempty"`
	Iban              string     `json:"iban,omitempty"`
	PaymentMethodType string     `json:"paymentMethodType,omitempty"`
	Reference         string     `json:"reference,omitempty"`
	ShopperEmail      string     `json:"shopperEmail,omitempty"`
	TotalAmount       *Amount    `json:"totalAmount,omitempty"`
	Type              ActionType `json:"type,omitempty"`
	URL               string     `json:"url,omitempty"`
}

type CheckoutDonationAction struct {
	PaymentData       string     `json:"paymentData,omitempty"`
	PaymentMethodType string     `json:"paymentMethodType,omitempty"`
	Type              ActionType `json:"type,omitempty"`
	URL               string     `json:"url,omitempty"`
}

type CheckoutQrCodeAction struct {
	ExpiresAt         string     `json:"expiresAt,omitempty"`
	PaymentData       string     `json:"paymentData,omitempty"`
	PaymentMethodType string     `json:"paymentMethodType,omitempty"`
	QrCodeData        string     `json:"qrCodeData,omitempty"`
	Type              ActionType `json:"type,omitempty"`
	URL               string     `json:"url,omitempty"`
}

// CheckoutRedirectAction sends the shopper to URL. Data is form-posted when
// Method is POST.
type CheckoutRedirectAction struct {
	Data              map[string]string `json:"data,omitempty"`
	Method            string            `json:"method,omitempty"`
	PaymentData       string            `json:"paymentData,omitempty"`
	PaymentMethodType string            `json:"paymentMethodType,omitempty"`
	Type              ActionType        `json:"type,omitempty"`
	URL               string            `json:"url,omitempty"`
}

type CheckoutSDKAction struct {
	PaymentData       string            `json:"paymentData,omitempty"`
	PaymentMethodType string            `json:"paymentMethodType,omitempty"`
	SdkData           map[string]string `json:"sdkData,omitempty"`
	Type              ActionType        `json:"type,omitempty"`
	URL               string            `json:"url,omitempty"`
}

type CheckoutThreeDS2Action struct {
	AuthorisationToken string     `json:"authorisationToken,omitempty"`
	PaymentData        string     `json:"paymentData,omitempty"`
	PaymentMethodType  string     `json:"paymentMethodType,omitempty"`
	Subtype            string     `json:"subtype,omitempty"`
	Token              string     `json:"token,omitempty"`
	Type               ActionType `json:"type,omitempty"`
	URL                string     `json:"url,omitempty"`
}

type CheckoutVoucherAction struct {
	AlternativeReference  string     `json:"alternativeReference,omitempty"`
	DownloadURL           string     `json:"downloadUrl,omitempty"`
	ExpiresAt             string     `json:"expiresAt,omitempty"`
	InitialAmount         *Amount    `json:"initialAmount,omitempty"`
	InstructionsURL       string     `json:"instructionsUrl,omitempty"`
	Issuer                string     `json:"issuer,omitempty"`
	MaskedTelephoneNumber string     `json:"maskedTelephoneNumber,omitempty"`
	MerchantName          string     `json:"merchantName,omitempty"`
	MerchantReference     string     `json:"merchantReference,omitempty"`
	PaymentData           string     `json:"paymentData,omitempty"`
	PaymentMethodType     string     `json:"paymentMethodType,omitempty"`
	Reference             string     `json:"reference,omitempty"`
	ShopperEmail          string     `json:"shopperEmail,omitempty"`
	ShopperName           string     `json:"shopperName,omitempty"`
	Surcharge             *Amount    `json:"surcharge,omitempty"`
	TotalAmount           *Amount    `json:"totalAmount,omitempty"`
	Type                  ActionType `json:"type,omitempty"`
	URL                   string     `json:"url,omitempty"`
}

func (*CheckoutAwaitAction) isAction()        {}
func (*CheckoutBankTransferAction) isAction() {}
func (*CheckoutDonationAction) isAction()     {}
func (*CheckoutQrCodeAction) isAction()       {}
func (*CheckoutRedirectAction) isAction()     {}
func (*CheckoutSDKAction) isAction()          {}
func (*CheckoutThreeDS2Action) isAction()     {}
func (*CheckoutVoucherAction) isAction()      {}

// GenericAction holds an action type this client does not model.
type GenericAction struct {
	codec.RawObject
}

func (*GenericAction) isAction() {}

var actionUnion = codec.NewUnion[Action]("action",
	codec.Variant[Action]{Name: "CheckoutAwaitAction", Discriminants: []string{ActionTypeAwait.String()}, New: func() Action { return &CheckoutAwaitAction{} }},
	codec.Variant[Action]{Name: "CheckoutBankTransferAction", Discriminants: []string{ActionTypeBankTransfer.String()}, New: func() Action { return &CheckoutBankTransferAction{} }},
	codec.Variant[Action]{Name: "CheckoutDonationAction", Discriminants: []string{ActionTypeDonation.String()}, New: func() Action { return &CheckoutDonationAction{} }},
	codec.Variant[Action]{Name: "CheckoutQrCodeAction", Discriminants: []string{ActionTypeQrCode.String()}, New: func() Action { return &CheckoutQrCodeAction{} }},
	codec.Variant[Action]{Name: "CheckoutRedirectAction", Discriminants: []string{ActionTypeRedirect.String()}, New: func() Action { return &CheckoutRedirectAction{} }},
	codec.Variant[Action]{Name: "CheckoutSDKAction", Discriminants: []string{ActionTypeSDK.String(), ActionTypeWeChatPaySDK.String()}, New: func() Action { return &CheckoutSDKAction{} }},
	codec.Variant[Action]{Name: "CheckoutThreeDS2Action", Discriminants: []string{ActionTypeThreeDS2.String()}, New: func() Action { return &CheckoutThreeDS2Action{} }},
	codec.Variant[Action]{Name: "CheckoutVoucherAction", Discriminants: []string{ActionTypeVoucher.String()}, New: func() Action { return &CheckoutVoucherAction{} }},
).WithFallback(&GenericAction{}, func(discriminant string, fields map[string]json.RawMessage) (Action, error) {
	return &GenericAction{RawObject: codec.NewRawObject(discriminant, fields)}, nil
})

// CheckoutAction holds the single follow-up action of a payment.
type CheckoutAction struct {
	action Action
}

// NewCheckoutAction wraps action, filling an unset Type with the variant default.
func NewCheckoutAction(action Action) *CheckoutAction {
	actionUnion.SetDefaultType(action)
	return &CheckoutAction{action: action}
}

// Action returns the variant that is set, or nil.
func (c *CheckoutAction) Action() Action {
	if c == nil {
		return nil
	}
	return c.action
}

// MarshalJSON implements json.Marshaler.
func (c CheckoutAction) MarshalJSON() ([]byte, error) {
	return actionUnion.Encode(c.action)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CheckoutAction) UnmarshalJSON(data []byte) error {
	action, err := actionUnion.Decode(data)
	if err != nil {
		return err
	}
	c.action = action
	return nil
}

// CheckoutAwaitAction returns the CheckoutAwaitAction variant, if that is the one set.
func (c *CheckoutAction) CheckoutAwaitAction() (*CheckoutAwaitAction, bool) {
	a, ok := c.Action().(*CheckoutAwaitAction)
	return a, ok
}

// CheckoutBankTransferAction returns the CheckoutBankTransferAction variant, if that is the one set.
func (c *CheckoutAction) CheckoutBankTransferAction() (*CheckoutBankTransferAction, bool) {
	a, ok := c.Action().(*CheckoutBankTransferAction)
	return a, ok
}

// CheckoutDonationAction returns the CheckoutDonationAction variant, if that is the one set.
func (c *CheckoutAction) CheckoutDonationAction() (*CheckoutDonationAction, bool) {
	a, ok := c.Action().(*CheckoutDonationAction)
	return a, ok
}

// CheckoutQrCodeAction returns the CheckoutQrCodeAction variant, if that is the one set.
func (c *CheckoutAction) CheckoutQrCodeAction() (*CheckoutQrCodeAction, bool) {
	a, ok := c.Action().(*CheckoutQrCodeAction)
	return a, ok
}

// CheckoutRedirectAction returns the CheckoutRedirectAction variant, if that is the one set.
func (c *CheckoutAction) CheckoutRedirectAction() (*CheckoutRedirectAction, bool) {
	a, ok := c.Action().(*CheckoutRedirectAction)
	return a, ok
}

// CheckoutSDKAction returns the CheckoutSDKAction variant, if that is the one set.
func (c *CheckoutAction) CheckoutSDKAction() (*CheckoutSDKAction, bool) {
	a, ok := c.Action().(*CheckoutSDKAction)
	return a, ok
}

// CheckoutThreeDS2Action returns the CheckoutThreeDS2Action variant, if that is the one set.
func (c *CheckoutAction) CheckoutThreeDS2Action() (*CheckoutThreeDS2Action, bool) {
	a, ok := c.Action().(*CheckoutThreeDS2Action)
	return a, ok
}

// CheckoutVoucherAction returns the CheckoutVoucherAction variant, if that is the one set.
func (c *CheckoutAction) CheckoutVoucherAction() (*CheckoutVoucherAction, bool) {
	a, ok := c.Action().(*CheckoutVoucherAction)
	return a, ok
}

// GenericAction returns the GenericAction variant, if that is the one set.
func (c *CheckoutAction) GenericAction() (*GenericAction, bool) {
	a, ok := c.Action().(*GenericAction)
	return a, ok
}
