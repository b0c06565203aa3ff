package models

// PaymentDonationRequest is the body of POST /donations.
type PaymentDonationRequest struct {
	AdditionalData               map[string]string        `json:"additionalData,omitempty"`
	Amount                       *Amount                  `json:"amount" validate:"required"`
	BillingAddress               *Address                 `json:"billingAddress,omitempty"`
	BrowserInfo                  *BrowserInfo             `json:"browserInfo,omitempty"`
	Channel                      Channel                  `json:"channel,omitempty"`
	CountryCode                  string                   `json:"countryCode,omitempty" validate:"omitempty,len=2"`
	DonationAccount              string                   `json:"donationAccount" validate:"required"`
	DonationOriginalPSPReference string                   `json:"donationOriginalPspReference,omitempty"`
	DonationToken                string                   `json:"donationToken,omitempty"`
	MerchantAccount              string                   `json:"merchantAccount" validate:"required"`
	Metadata                     map[string]string        `json:"metadata,omitempty"`
	Origin                       string                   `json:"origin,omitempty"`
	PaymentMethod                *CheckoutPaymentMethod   `json:"paymentMethod" validate:"required"`
	RecurringProcessingModel     RecurringProcessingModel `json:"recurringProcessingModel,omitempty"`
	Reference                    string                   `json:"reference" validate:"required"`
	ReturnURL                    string                   `json:"returnUrl" validate:"required"`
	ShopperEmail                 string                   `json:"shopperEmail,omitempty"`
	ShopperInteraction           ShopperInteraction       `json:"shopperInteraction,omitempty"`
	ShopperLocale                string                   `json:"shopperLocale,omitempty"`
	ShopperName                  *Name                    `json:"shopperName,omitempty"`
	ShopperReference             string                   `json:"shopperReference,omitempty"`
}

type DonationResponse struct {
	Amount          *Amount          `json:"amount,omitempty"`
	DonationAccount string           `json:"donationAccount,omitempty"`
	ID              string           `json:"id,omitempty"`
	MerchantAccount string           `json:"merchantAccount,omitempty"`
	Payment         *PaymentResponse `json:"payment,omitempty"`
	Reference       string           `json:"reference,omitempty"`
	Status          DonationStatus   `json:"status,omitempty"`
}
