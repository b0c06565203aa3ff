package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/companieshouse/checkout.client.ch.gov.uk/codec"
	"github.com/companieshouse/checkout.client.ch.gov.uk/config"
	"github.com/companieshouse/checkout.client.ch.gov.uk/fixtures"
	"github.com/companieshouse/checkout.client.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.client.ch.gov.uk/httpclient"
	"github.com/companieshouse/checkout.client.ch.gov.uk/models"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

const baseURL = "https://checkout-test.adyen.com/v70"

func createMockCheckoutService(mockCtrl *gomock.Controller) (*CheckoutService, *httpclient.MockHTTPClient) {
	client := httpclient.NewMockHTTPClient(mockCtrl)
	cfg := config.DefaultConfig()
	cfg.APIKey = "api-key"
	return NewCheckoutService(client, cfg), client
}

func expectCall(client *httpclient.MockHTTPClient, method, path, response string) *gomock.Call {
	return client.EXPECT().
		Request(gomock.Any(), baseURL+path, method, gomock.Any(), gomock.Any(), true, "", gomock.Any()).
		Return([]byte(response), nil)
}

func TestUnitPayments(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := context.Background()

	Convey("Payment with redirect action", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/payments", fixtures.PaymentRedirectResponse)

		resp, err := svc.Payments(ctx, fixtures.GetCardPaymentRequest())
		So(err, ShouldBeNil)
		So(resp.PSPReference, ShouldEqual, "993617895204576J")
		So(resp.ResultCode, ShouldEqual, models.ResultCodeRedirectShopper)

		redirect, ok := resp.Action.CheckoutRedirectAction()
		So(ok, ShouldBeTrue)
		So(redirect.Type, ShouldEqual, models.ActionTypeRedirect)
		So(redirect.Method, ShouldEqual, "GET")
		So(redirect.URL, ShouldEqual, "https://checkoutshopper-test.adyen.com/checkoutshopper/threeDS/redirect?MD=M2R...")
	})

	Convey("Request body is the encoded payment", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		client.EXPECT().
			Request(gomock.Any(), baseURL+"/payments", http.MethodPost, []byte(fixtures.IdealPaymentRequestJSON), svc.Config, true, "", gomock.Nil()).
			Return([]byte(`{"resultCode":"Pending"}`), nil)

		resp, err := svc.Payments(ctx, fixtures.GetIdealPaymentRequest())
		So(err, ShouldBeNil)
		So(resp.ResultCode, ShouldEqual, models.ResultCodePending)
	})

	Convey("Idempotency key is forwarded", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		client.EXPECT().
			Request(gomock.Any(), baseURL+"/payments", http.MethodPost, gomock.Any(), gomock.Any(), true, "", map[string]string{helpers.IdempotencyKeyHeader: "key-1"}).
			Return([]byte(fixtures.PaymentRedirectResponse), nil)

		_, err := svc.Payments(ctx, fixtures.GetCardPaymentRequest(), helpers.RequestOptions{IdempotencyKey: "key-1"})
		So(err, ShouldBeNil)
	})

	Convey("Error payload becomes an APIError", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		clientErr := &httpclient.HTTPClientError{Code: http.StatusUnprocessableEntity, Body: []byte(fixtures.ValidationErrorResponse)}
		client.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, clientErr)

		resp, err := svc.Payments(ctx, fixtures.GetCardPaymentRequest())
		So(resp, ShouldBeNil)

		var apiErr *APIError
		So(errors.As(err, &apiErr), ShouldBeTrue)
		So(apiErr.Status, ShouldEqual, 422)
		So(apiErr.ErrorCode, ShouldEqual, "14_0391")
		So(apiErr.Message, ShouldEqual, "Invalid redirectResult provided")
		So(apiErr.ErrorType, ShouldEqual, "validation")
		So(apiErr.PSPReference, ShouldEqual, "J5C22LHW7QHG5S82")
		So(ResponseTypeOf(err), ShouldEqual, InvalidData)

		var unwrapped *httpclient.HTTPClientError
		So(errors.As(err, &unwrapped), ShouldBeTrue)
		So(unwrapped.Code, ShouldEqual, http.StatusUnprocessableEntity)
	})

	Convey("Error status without a payload stays an HTTPClientError", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		clientErr := &httpclient.HTTPClientError{Code: http.StatusBadGateway, Body: []byte("<html>bad gateway</html>")}
		client.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, clientErr)

		_, err := svc.Payments(ctx, fixtures.GetCardPaymentRequest())

		var apiErr *APIError
		So(errors.As(err, &apiErr), ShouldBeFalse)
		var unwrapped *httpclient.HTTPClientError
		So(errors.As(err, &unwrapped), ShouldBeTrue)
		So(ResponseTypeOf(err), ShouldEqual, Error)
	})

	Convey("Error payload without a status takes the HTTP status", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		clientErr := &httpclient.HTTPClientError{Code: http.StatusForbidden, Body: []byte(`{"errorCode":"010","message":"Not allowed","errorType":"security"}`)}
		client.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, clientErr)

		_, err := svc.Payments(ctx, fixtures.GetCardPaymentRequest())

		var apiErr *APIError
		So(errors.As(err, &apiErr), ShouldBeTrue)
		So(apiErr.Status, ShouldEqual, http.StatusForbidden)
		So(apiErr.ErrorCode, ShouldEqual, "010")
		So(apiErr.Message, ShouldEqual, "Not allowed")
		So(ResponseTypeOf(err), ShouldEqual, Forbidden)
	})

	Convey("Empty JSON error body stays an HTTPClientError", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		clientErr := &httpclient.HTTPClientError{Code: http.StatusInternalServerError, Body: []byte(`{}`)}
		client.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, clientErr)

		_, err := svc.Payments(ctx, fixtures.GetCardPaymentRequest())

		var apiErr *APIError
		So(errors.As(err, &apiErr), ShouldBeFalse)
	})

	Convey("Invalid request is not sent", t, func() {
		svc, _ := createMockCheckoutService(mockCtrl)
		req := fixtures.GetCardPaymentRequest()
		req.MerchantAccount = ""

		_, err := svc.Payments(ctx, req)

		var encodeErr *codec.EncodeError
		So(errors.As(err, &encodeErr), ShouldBeTrue)
		So(encodeErr.Field, ShouldEqual, "PaymentRequest.MerchantAccount")
		So(ResponseTypeOf(err), ShouldEqual, InvalidData)
	})

	Convey("Nil request is not sent", t, func() {
		svc, _ := createMockCheckoutService(mockCtrl)

		_, err := svc.Payments(ctx, nil)

		var encodeErr *codec.EncodeError
		So(errors.As(err, &encodeErr), ShouldBeTrue)
	})

	Convey("Payment method without a variant is not sent", t, func() {
		svc, _ := createMockCheckoutService(mockCtrl)
		req := fixtures.GetCardPaymentRequest()
		req.PaymentMethod = &models.CheckoutPaymentMethod{}

		_, err := svc.Payments(ctx, req)

		var encodeErr *codec.EncodeError
		So(errors.As(err, &encodeErr), ShouldBeTrue)
	})

	Convey("Malformed response is a DecodeError", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/payments", `{"resultCode":`)

		_, err := svc.Payments(ctx, fixtures.GetCardPaymentRequest())
		So(codec.IsDecodeError(err, codec.MalformedJSON), ShouldBeTrue)
	})

	Convey("Unknown result code is a DecodeError", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/payments", `{"resultCode":"Teleported"}`)

		_, err := svc.Payments(ctx, fixtures.GetCardPaymentRequest())
		So(codec.IsDecodeError(err, codec.UnknownEnumValue), ShouldBeTrue)
	})
}

func TestUnitPaymentMethods(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := context.Background()

	Convey("Payment methods", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/paymentMethods", fixtures.PaymentMethodsResponse)

		resp, err := svc.PaymentMethods(ctx, fixtures.GetPaymentMethodsRequest())
		So(err, ShouldBeNil)
		So(resp.PaymentMethods, ShouldHaveLength, 1)
		So(resp.PaymentMethods[0].Type, ShouldEqual, "klarna")
	})

	Convey("Balance check", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/paymentMethods/balance", fixtures.BalanceCheckResponse)

		resp, err := svc.PaymentMethodsBalance(ctx, fixtures.GetBalanceCheckRequest())
		So(err, ShouldBeNil)
		So(resp.Balance.Value, ShouldEqual, 5000)
		So(resp.ResultCode, ShouldEqual, models.OrderResultCodeSuccess)
	})

	Convey("Balance check sends the date of birth in UTC", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		var sent []byte
		client.EXPECT().
			Request(gomock.Any(), baseURL+"/paymentMethods/balance", http.MethodPost, gomock.Any(), gomock.Any(), true, "", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body []byte, _ *config.Config, _ bool, _ string, _ map[string]string) ([]byte, error) {
				sent = body
				return []byte(fixtures.BalanceCheckResponse), nil
			})

		_, err := svc.PaymentMethodsBalance(ctx, fixtures.GetBalanceCheckRequest())
		So(err, ShouldBeNil)
		So(string(sent), ShouldContainSubstring, `"dateOfBirth":"2022-10-11T15:08:27.000Z"`)
	})

	Convey("Card details with string booleans", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/cardDetails", fixtures.CardDetailsResponse)

		resp, err := svc.CardDetails(ctx, fixtures.GetCardDetailsRequest())
		So(err, ShouldBeNil)
		So(resp.Brands, ShouldHaveLength, 2)
		So(resp.Brands[0].Type, ShouldEqual, "visa")
		So(bool(resp.Brands[0].Supported), ShouldBeTrue)
	})

	Convey("Apple Pay session", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/applePay/sessions", fixtures.ApplePaySessionResponse)

		resp, err := svc.ApplePaySessions(ctx, fixtures.GetApplePaySessionRequest())
		So(err, ShouldBeNil)
		So(resp.Data, ShouldEqual, "eyJ2Z")
	})
}

func TestUnitPaymentLinks(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := context.Background()

	Convey("Create payment link", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/paymentLinks", fixtures.PaymentLinkCreatedResponse)

		resp, err := svc.PaymentLinks(ctx, fixtures.GetCreatePaymentLinkRequest())
		So(err, ShouldBeNil)
		So(resp.URL, ShouldEqual, "https://test.adyen.link/PL6DB3157D27FFBBCF")
		So(resp.Status, ShouldEqual, models.PaymentLinkStatusActive)
		So(resp.ExpiresAt.String(), ShouldEqual, "2021-04-09T14:17:31.000Z")
	})

	Convey("Get payment link", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodGet, "/paymentLinks/linkId", fixtures.PaymentLinkExpiredResponse)

		resp, err := svc.GetPaymentLinks(ctx, "linkId")
		So(err, ShouldBeNil)
		So(resp.Reference, ShouldEqual, "shopper-reference")
		So(resp.Status, ShouldEqual, models.PaymentLinkStatusExpired)
	})

	Convey("Get payment link sends no body", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		client.EXPECT().
			Request(gomock.Any(), baseURL+"/paymentLinks/linkId", http.MethodGet, gomock.Nil(), gomock.Any(), true, "", gomock.Any()).
			Return([]byte(fixtures.PaymentLinkExpiredResponse), nil)

		_, err := svc.GetPaymentLinks(ctx, "linkId")
		So(err, ShouldBeNil)
	})

	Convey("Payment link id is escaped", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodGet, "/paymentLinks/a%2Fb", fixtures.PaymentLinkExpiredResponse)

		_, err := svc.GetPaymentLinks(ctx, "a/b")
		So(err, ShouldBeNil)
	})

	Convey("Empty payment link id is rejected", t, func() {
		svc, _ := createMockCheckoutService(mockCtrl)

		_, err := svc.GetPaymentLinks(ctx, "")
		var encodeErr *codec.EncodeError
		So(errors.As(err, &encodeErr), ShouldBeTrue)
		So(encodeErr.Field, ShouldEqual, "linkId")
	})

	Convey("Patch payment link", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		client.EXPECT().
			Request(gomock.Any(), baseURL+"/paymentLinks/linkId", http.MethodPatch, []byte(`{"status":"expired"}`), gomock.Any(), true, "", gomock.Any()).
			Return([]byte(fixtures.PaymentLinkExpiredResponse), nil)

		resp, err := svc.PatchPaymentLinks(ctx, "linkId", fixtures.GetUpdatePaymentLinkRequest())
		So(err, ShouldBeNil)
		So(resp.Reference, ShouldEqual, "shopper-reference")
		So(resp.Status, ShouldEqual, models.PaymentLinkStatusExpired)
	})

	Convey("Patch payment link without a status is rejected", t, func() {
		svc, _ := createMockCheckoutService(mockCtrl)

		_, err := svc.PatchPaymentLinks(ctx, "linkId", &models.UpdatePaymentLinkRequest{})
		var encodeErr *codec.EncodeError
		So(errors.As(err, &encodeErr), ShouldBeTrue)
	})
}

func TestUnitPaymentFlow(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := context.Background()

	Convey("Payment details", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/payments/details", fixtures.PaymentDetailsResponse)

		resp, err := svc.PaymentsDetails(ctx, fixtures.GetPaymentDetailsRequest())
		So(err, ShouldBeNil)
		So(resp.ResultCode, ShouldEqual, models.ResultCodeAuthorised)
		So(resp.PSPReference, ShouldEqual, "V4HZ4RBFJGXXGN82")
	})

	Convey("Sessions", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/sessions", fixtures.SessionResponse)

		resp, err := svc.Sessions(ctx, fixtures.GetSessionRequest())
		So(err, ShouldBeNil)
		So(resp.SessionData, ShouldEqual, "Ab02b4c0!BFHSPFBQTEwM0NBNTM3RfCf5")
		So(resp.ID, ShouldEqual, "CS1453E3730C313478")
		So(resp.RecurringProcessingModel, ShouldEqual, models.RecurringProcessingModelCardOnFile)
		So(resp.ExpiresAt.String(), ShouldEqual, "2022-10-11T14:54:37.000Z")
	})

	Convey("Payment result", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/payments/result", fixtures.PaymentResultResponse)

		resp, err := svc.PaymentResult(ctx, fixtures.GetPaymentVerificationRequest())
		So(err, ShouldBeNil)
		So(resp.ResultCode, ShouldEqual, models.ResultCodeAuthorised)
		So(resp.PSPReference, ShouldEqual, "V4HZ4RBFJGXXGN82")
	})

	Convey("Orders", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/orders", fixtures.OrderResponse)

		resp, err := svc.Orders(ctx, fixtures.GetCreateOrderRequest())
		So(err, ShouldBeNil)
		So(resp.PSPReference, ShouldEqual, "8616178914061985")
		So(resp.OrderData, ShouldEqual, "Abzt3JH4wnzErMnOZwSdgA==")
		So(resp.RemainingAmount.Value, ShouldEqual, 2500)
	})

	Convey("Orders cancel", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/orders/cancel", fixtures.OrderCancelResponse)

		resp, err := svc.OrdersCancel(ctx, fixtures.GetCancelOrderRequest())
		So(err, ShouldBeNil)
		So(resp.ResultCode, ShouldEqual, models.CancelOrderResultCodeReceived)
		So(resp.PSPReference, ShouldEqual, "8816178914079738")
	})

	Convey("Donations", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/donations", fixtures.DonationResponse)

		resp, err := svc.Donations(ctx, fixtures.GetDonationRequest())
		So(err, ShouldBeNil)
		So(resp.Payment.ResultCode, ShouldEqual, models.ResultCodeAuthorised)
		So(resp.ID, ShouldEqual, "UNIQUE_RESOURCE_ID")
		So(resp.Status, ShouldEqual, models.DonationStatusCompleted)
	})
}

func TestUnitModifications(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := context.Background()
	psp := fixtures.PaymentPSPReference

	Convey("Captures", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/payments/"+psp+"/captures", fixtures.CaptureResponse)

		resp, err := svc.Captures(ctx, psp, fixtures.GetCaptureRequest())
		So(err, ShouldBeNil)
		So(resp.PaymentPSPReference, ShouldEqual, psp)
		So(resp.Status, ShouldEqual, models.ModificationStatusReceived)
	})

	Convey("Refunds", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/payments/"+psp+"/refunds", fixtures.RefundResponse)

		resp, err := svc.Refunds(ctx, psp, fixtures.GetRefundRequest())
		So(err, ShouldBeNil)
		So(resp.PSPReference, ShouldEqual, "KHQC5N7G84BLNK43")
		So(resp.Amount.Value, ShouldEqual, 500)
	})

	Convey("Cancels", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/payments/"+psp+"/cancels", fixtures.CancelResponse)

		resp, err := svc.Cancels(ctx, psp, fixtures.GetCancelRequest())
		So(err, ShouldBeNil)
		So(resp.Status, ShouldEqual, models.ModificationStatusReceived)
	})

	Convey("Reversals", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/payments/"+psp+"/reversals", fixtures.CancelResponse)

		resp, err := svc.Reversals(ctx, psp, fixtures.GetReversalRequest())
		So(err, ShouldBeNil)
		So(resp.PSPReference, ShouldEqual, "ZV9LK7MN3ZD1ZN42")
	})

	Convey("Amount updates", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/payments/"+psp+"/amountUpdates", fixtures.AmountUpdateResponse)

		resp, err := svc.AmountUpdates(ctx, psp, fixtures.GetAmountUpdateRequest())
		So(err, ShouldBeNil)
		So(resp.Amount.Value, ShouldEqual, 2500)
	})

	Convey("Standalone cancels", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		expectCall(client, http.MethodPost, "/cancels", fixtures.StandaloneCancelResponse)

		resp, err := svc.StandaloneCancels(ctx, fixtures.GetStandaloneCancelRequest())
		So(err, ShouldBeNil)
		So(resp.PaymentReference, ShouldEqual, "YOUR_ORIGINAL_PAYMENT_REFERENCE")
	})
}

func TestUnitTransportFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := context.Background()
	psp := fixtures.PaymentPSPReference

	operations := map[string]func(*CheckoutService) error{
		"Payments": func(s *CheckoutService) error {
			_, err := s.Payments(ctx, fixtures.GetCardPaymentRequest())
			return err
		},
		"PaymentMethods": func(s *CheckoutService) error {
			_, err := s.PaymentMethods(ctx, fixtures.GetPaymentMethodsRequest())
			return err
		},
		"PaymentMethodsBalance": func(s *CheckoutService) error {
			_, err := s.PaymentMethodsBalance(ctx, fixtures.GetBalanceCheckRequest())
			return err
		},
		"PaymentLinks": func(s *CheckoutService) error {
			_, err := s.PaymentLinks(ctx, fixtures.GetCreatePaymentLinkRequest())
			return err
		},
		"GetPaymentLinks": func(s *CheckoutService) error {
			_, err := s.GetPaymentLinks(ctx, fixtures.PaymentLinkID)
			return err
		},
		"PatchPaymentLinks": func(s *CheckoutService) error {
			_, err := s.PatchPaymentLinks(ctx, fixtures.PaymentLinkID, fixtures.GetUpdatePaymentLinkRequest())
			return err
		},
		"PaymentsDetails": func(s *CheckoutService) error {
			_, err := s.PaymentsDetails(ctx, fixtures.GetPaymentDetailsRequest())
			return err
		},
		"Sessions": func(s *CheckoutService) error {
			_, err := s.Sessions(ctx, fixtures.GetSessionRequest())
			return err
		},
		"PaymentResult": func(s *CheckoutService) error {
			_, err := s.PaymentResult(ctx, fixtures.GetPaymentVerificationRequest())
			return err
		},
		"Orders": func(s *CheckoutService) error {
			_, err := s.Orders(ctx, fixtures.GetCreateOrderRequest())
			return err
		},
		"OrdersCancel": func(s *CheckoutService) error {
			_, err := s.OrdersCancel(ctx, fixtures.GetCancelOrderRequest())
			return err
		},
		"ApplePaySessions": func(s *CheckoutService) error {
			_, err := s.ApplePaySessions(ctx, fixtures.GetApplePaySessionRequest())
			return err
		},
		"Donations": func(s *CheckoutService) error {
			_, err := s.Donations(ctx, fixtures.GetDonationRequest())
			return err
		},
		"CardDetails": func(s *CheckoutService) error {
			_, err := s.CardDetails(ctx, fixtures.GetCardDetailsRequest())
			return err
		},
		"Captures": func(s *CheckoutService) error {
			_, err := s.Captures(ctx, psp, fixtures.GetCaptureRequest())
			return err
		},
		"Refunds": func(s *CheckoutService) error {
			_, err := s.Refunds(ctx, psp, fixtures.GetRefundRequest())
			return err
		},
		"Cancels": func(s *CheckoutService) error {
			_, err := s.Cancels(ctx, psp, fixtures.GetCancelRequest())
			return err
		},
		"Reversals": func(s *CheckoutService) error {
			_, err := s.Reversals(ctx, psp, fixtures.GetReversalRequest())
			return err
		},
		"AmountUpdates": func(s *CheckoutService) error {
			_, err := s.AmountUpdates(ctx, psp, fixtures.GetAmountUpdateRequest())
			return err
		},
		"StandaloneCancels": func(s *CheckoutService) error {
			_, err := s.StandaloneCancels(ctx, fixtures.GetStandaloneCancelRequest())
			return err
		},
	}

	for name, operation := range operations {
		Convey(name+" propagates a transport failure", t, func() {
			svc, client := createMockCheckoutService(mockCtrl)
			cause := errors.New("connection reset by peer")
			client.EXPECT().
				Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true, "", gomock.Any()).
				Return(nil, cause)

			err := operation(svc)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(ResponseTypeOf(err), ShouldEqual, Error)
		})
	}

	Convey("Unresolvable environment fails before sending", t, func() {
		svc, _ := createMockCheckoutService(mockCtrl)
		svc.Config.Environment = config.EnvironmentLive

		_, err := svc.PaymentMethods(ctx, fixtures.GetPaymentMethodsRequest())
		So(err.Error(), ShouldEqual, "error resolving checkout endpoint: [live environment requires a live endpoint url prefix]")
	})
}

func TestUnitAuthentication(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := context.Background()

	Convey("API key is used when configured", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		svc.Config.ClientKey = "client-key"
		client.EXPECT().
			Request(gomock.Any(), baseURL+"/sessions", http.MethodPost, gomock.Any(), svc.Config, true, "client-key", gomock.Any()).
			Return([]byte(fixtures.SessionResponse), nil)

		_, err := svc.Sessions(ctx, fixtures.GetSessionRequest())
		So(err, ShouldBeNil)
	})

	Convey("Without an API key the client key is passed", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		svc.Config.APIKey = ""
		svc.Config.ClientKey = "client-key"
		client.EXPECT().
			Request(gomock.Any(), baseURL+"/sessions", http.MethodPost, gomock.Any(), svc.Config, false, "client-key", gomock.Any()).
			Return([]byte(fixtures.SessionResponse), nil)

		_, err := svc.Sessions(ctx, fixtures.GetSessionRequest())
		So(err, ShouldBeNil)
	})

	Convey("Without any key the transport falls back to basic auth", t, func() {
		svc, client := createMockCheckoutService(mockCtrl)
		svc.Config.APIKey = ""
		svc.Config.Username = "ws_user"
		svc.Config.Password = "secret"
		client.EXPECT().
			Request(gomock.Any(), baseURL+"/sessions", http.MethodPost, gomock.Any(), svc.Config, false, "", gomock.Any()).
			Return([]byte(fixtures.SessionResponse), nil)

		_, err := svc.Sessions(ctx, fixtures.GetSessionRequest())
		So(err, ShouldBeNil)
	})
}

func TestUnitResponseTypeOf(t *testing.T) {
	Convey("Status codes map to response types", t, func() {
		So(ResponseTypeOf(nil), ShouldEqual, Success)
		So(ResponseTypeOf(&APIError{Status: http.StatusUnauthorized}), ShouldEqual, Forbidden)
		So(ResponseTypeOf(&APIError{Status: http.StatusForbidden}), ShouldEqual, Forbidden)
		So(ResponseTypeOf(&httpclient.HTTPClientError{Code: http.StatusNotFound}), ShouldEqual, NotFound)
		So(ResponseTypeOf(&httpclient.HTTPClientError{Code: http.StatusInternalServerError}), ShouldEqual, Error)
		So(ResponseTypeOf(errors.New("boom")), ShouldEqual, Error)
		So(Forbidden.String(), ShouldEqual, "forbidden")
		So(ResponseType(99).String(), ShouldEqual, "unknown")
		So(ResponseType(-1).String(), ShouldEqual, "unknown")
	})

	Convey("APIError message", t, func() {
		err := &APIError{Status: 422, ErrorCode: "14_0391", Message: "Invalid redirectResult provided", ErrorType: "validation", PSPReference: "J5C22LHW7QHG5S82"}
		So(err.Error(), ShouldEqual, "checkout api error [422] [14_0391] validation: Invalid redirectResult provided (pspReference J5C22LHW7QHG5S82)")
	})
}
