package fixtures

import (
	"github.com/companieshouse/checkout.client.ch.gov.uk/codec"
	"github.com/companieshouse/checkout.client.ch.gov.uk/models"
)

const (
	MerchantAccount     = "YOUR_MERCHANT_ACCOUNT"
	PaymentPSPReference = "993617895204576J"
	PaymentLinkID       = "PL61C53A8B97E6915A"
)

// IdealPaymentRequestJSON is the exact encoding of GetIdealPaymentRequest.
const IdealPaymentRequestJSON = `{"amount":{"currency":"EUR","value":1000},"merchantAccount":"myMerchantAccount","paymentMethod":{"issuer":"issuerName","type":"ideal"},"reference":"merchantReference","returnUrl":"http://return.com"}`

func euros(value int64) *models.Amount {
	amount := models.NewAmount("EUR", value)
	return &amount
}

func GetCardDetails() *models.CardDetails {
	return &models.CardDetails{
		Cvc:                  "737",
		EncryptedCardNumber:  "5136333333333335",
		EncryptedExpiryMonth: "08",
		EncryptedExpiryYear:  "2018",
		HolderName:           "John Doe",
		Type:                 models.PaymentMethodTypeScheme,
	}
}

func GetCardPaymentRequest() *models.PaymentRequest {
	return &models.PaymentRequest{
		Amount:          euros(1000),
		MerchantAccount: MerchantAccount,
		PaymentMethod:   models.NewCheckoutPaymentMethod(GetCardDetails()),
		Reference:       "YOUR_ORDER_NUMBER",
		ReturnURL:       "https://your-company.com/checkout?shopperOrder=12xy..",
	}
}

func GetIdealPaymentRequest() *models.PaymentRequest {
	return &models.PaymentRequest{
		Amount:          euros(1000),
		MerchantAccount: "myMerchantAccount",
		PaymentMethod:   models.NewCheckoutPaymentMethod(&models.IdealDetails{Issuer: "issuerName"}),
		Reference:       "merchantReference",
		ReturnURL:       "http://return.com",
	}
}

func GetPaymentMethodsRequest() *models.PaymentMethodsRequest {
	return &models.PaymentMethodsRequest{MerchantAccount: "myMerchantAccount"}
}

func GetBalanceCheckRequest() *models.CheckoutBalanceCheckRequest {
	dateOfBirth := codec.DateTimeFromMillis(1665500907000)
	return &models.CheckoutBalanceCheckRequest{
		Amount:          euros(1000),
		DateOfBirth:     &dateOfBirth,
		MerchantAccount: MerchantAccount,
		PaymentMethod:   map[string]string{},
		Reference:       "YOUR_MERCHANT_REFERENCE",
	}
}

func GetCreatePaymentLinkRequest() *models.CreatePaymentLinkRequest {
	return &models.CreatePaymentLinkRequest{
		Amount:          euros(500),
		MerchantAccount: "myMerchantAccount",
		Reference:       "merchantReference",
	}
}

func GetUpdatePaymentLinkRequest() *models.UpdatePaymentLinkRequest {
	return &models.UpdatePaymentLinkRequest{Status: models.PaymentLinkStatusExpired}
}

func GetPaymentDetailsRequest() *models.PaymentDetailsRequest {
	return &models.PaymentDetailsRequest{PaymentData: "STATE_DATA"}
}

func GetSessionRequest() *models.CreateCheckoutSessionRequest {
	return &models.CreateCheckoutSessionRequest{
		Amount:          euros(100),
		CountryCode:     "NL",
		MerchantAccount: MerchantAccount,
		Reference:       "YOUR_PAYMENT_REFERENCE",
		ReturnURL:       "https://your-company.com/checkout?shopperOrder=12xy..",
	}
}

func GetPaymentVerificationRequest() *models.PaymentVerificationRequest {
	return &models.PaymentVerificationRequest{Payload: "PAYLOAD"}
}

func GetCreateOrderRequest() *models.CheckoutCreateOrderRequest {
	return &models.CheckoutCreateOrderRequest{
		Amount:          euros(2500),
		MerchantAccount: MerchantAccount,
		Reference:       "YOUR_ORDER_REFERENCE",
	}
}

func GetCancelOrderRequest() *models.CheckoutCancelOrderRequest {
	return &models.CheckoutCancelOrderRequest{
		MerchantAccount: MerchantAccount,
		Order: &models.CheckoutOrder{
			OrderData:    "823fh892f8f18f4...148f13f9f3f",
			PSPReference: "8815517812932012",
		},
	}
}

func GetApplePaySessionRequest() *models.CreateApplePaySessionRequest {
	return &models.CreateApplePaySessionRequest{
		DisplayName:        "YOUR_MERCHANT_NAME",
		DomainName:         "YOUR_DOMAIN_NAME",
		MerchantIdentifier: "YOUR_MERCHANT_ID",
	}
}

func GetDonationRequest() *models.PaymentDonationRequest {
	return &models.PaymentDonationRequest{
		Amount:          euros(1000),
		DonationAccount: "YOUR_DONATION_ACCOUNT",
		MerchantAccount: MerchantAccount,
		PaymentMethod:   models.NewCheckoutPaymentMethod(&models.CardDetails{Type: models.PaymentMethodTypeScheme}),
		Reference:       "YOUR_MERCHANT_REFERENCE",
		ReturnURL:       "https://your-company.com/...",
	}
}

func GetCardDetailsRequest() *models.CardDetailsRequest {
	return &models.CardDetailsRequest{
		CardNumber:      "123412341234",
		MerchantAccount: MerchantAccount,
	}
}

func GetCaptureRequest() *models.PaymentCaptureRequest {
	return &models.PaymentCaptureRequest{
		Amount:          euros(1000),
		MerchantAccount: MerchantAccount,
		Reference:       "YOUR_UNIQUE_REFERENCE",
	}
}

func GetRefundRequest() *models.PaymentRefundRequest {
	return &models.PaymentRefundRequest{
		Amount:          euros(500),
		MerchantAccount: MerchantAccount,
		Reference:       "YOUR_UNIQUE_REFERENCE",
	}
}

func GetCancelRequest() *models.PaymentCancelRequest {
	return &models.PaymentCancelRequest{
		MerchantAccount: MerchantAccount,
		Reference:       "YOUR_UNIQUE_REFERENCE",
	}
}

func GetReversalRequest() *models.PaymentReversalRequest {
	return GetCancelRequest()
}

func GetAmountUpdateRequest() *models.PaymentAmountUpdateRequest {
	return &models.PaymentAmountUpdateRequest{
		Amount:          euros(2500),
		MerchantAccount: MerchantAccount,
		Reference:       "YOUR_UNIQUE_REFERENCE",
	}
}

func GetStandaloneCancelRequest() *models.StandalonePaymentCancelRequest {
	return &models.StandalonePaymentCancelRequest{
		MerchantAccount:  MerchantAccount,
		PaymentReference: "YOUR_ORIGINAL_PAYMENT_REFERENCE",
		Reference:        "YOUR_UNIQUE_REFERENCE",
	}
}
