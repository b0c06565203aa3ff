package checkouttest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/companieshouse/checkout.client.ch.gov.uk/fixtures"
	"github.com/companieshouse/checkout.client.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.client.ch.gov.uk/httpclient"
	"github.com/companieshouse/checkout.client.ch.gov.uk/models"
	"github.com/companieshouse/checkout.client.ch.gov.uk/service"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRegisterRoutes(t *testing.T) {
	Convey("Register routes", t, func() {
		router := mux.NewRouter()
		Register(router, &Server{Version: "v70", responses: defaultResponses()})
		So(router.GetRoute("get-healthcheck"), ShouldNotBeNil)
		for _, r := range routes {
			So(router.GetRoute(r.name), ShouldNotBeNil)
		}
	})
}

func TestUnitEndToEnd(t *testing.T) {
	ctx := context.Background()

	Convey("Payment through the real transport", t, func() {
		server := NewServer("test-api-key")
		defer server.Close()
		svc := service.NewCheckoutService(httpclient.NewClient(), server.Config())

		resp, err := svc.Payments(ctx, fixtures.GetIdealPaymentRequest(), helpers.RequestOptions{IdempotencyKey: "idem-1"})
		So(err, ShouldBeNil)
		So(resp.PSPReference, ShouldEqual, "993617895204576J")

		req, ok := server.LastRequest()
		So(ok, ShouldBeTrue)
		So(req.Route, ShouldEqual, RoutePayments)
		So(req.Path, ShouldEqual, "/v70/payments")
		So(string(req.Body), ShouldEqual, fixtures.IdealPaymentRequestJSON)
		So(req.Header.Get("Idempotency-Key"), ShouldEqual, "idem-1")
		So(req.Header.Get("Content-Type"), ShouldEqual, "application/json")
	})

	Convey("Path identifiers reach the route", t, func() {
		server := NewServer("test-api-key")
		defer server.Close()
		svc := service.NewCheckoutService(httpclient.NewClient(), server.Config())

		_, err := svc.Refunds(ctx, fixtures.PaymentPSPReference, fixtures.GetRefundRequest())
		So(err, ShouldBeNil)

		link, err := svc.GetPaymentLinks(ctx, "PL/61")
		So(err, ShouldBeNil)
		So(link.Status, ShouldEqual, models.PaymentLinkStatusExpired)

		requests := server.Requests()
		So(requests, ShouldHaveLength, 2)
		So(requests[0].Vars["paymentPspReference"], ShouldEqual, fixtures.PaymentPSPReference)
		So(requests[1].Path, ShouldEqual, "/v70/paymentLinks/PL%2F61")
		So(requests[1].Body, ShouldBeEmpty)
	})

	Convey("Wrong API key is an unauthorised APIError", t, func() {
		server := NewServer("test-api-key")
		defer server.Close()
		cfg := server.Config()
		cfg.APIKey = "wrong"
		svc := service.NewCheckoutService(httpclient.NewClient(), cfg)

		_, err := svc.Sessions(ctx, fixtures.GetSessionRequest())

		var apiErr *service.APIError
		So(errors.As(err, &apiErr), ShouldBeTrue)
		So(apiErr.Status, ShouldEqual, http.StatusUnauthorized)
		So(apiErr.ErrorType, ShouldEqual, "security")
		So(service.ResponseTypeOf(err), ShouldEqual, service.Forbidden)
		So(server.Requests(), ShouldBeEmpty)
	})

	Convey("Basic auth is sent when no API key is configured", t, func() {
		server := NewServer("test-api-key")
		defer server.Close()
		server.Username = "ws_user"
		server.Password = "secret"
		cfg := server.Config()
		cfg.APIKey = ""
		cfg.Username = "ws_user"
		cfg.Password = "secret"
		svc := service.NewCheckoutService(httpclient.NewClient(), cfg)

		_, err := svc.Sessions(ctx, fixtures.GetSessionRequest())
		So(err, ShouldBeNil)

		req, ok := server.LastRequest()
		So(ok, ShouldBeTrue)
		So(req.Header.Get("x-API-key"), ShouldBeEmpty)
		So(req.Header.Get("Authorization"), ShouldStartWith, "Basic ")
	})

	Convey("Overridden response is returned as an APIError", t, func() {
		server := NewServer("test-api-key")
		defer server.Close()
		server.Respond(RoutePaymentsDetails, http.StatusUnprocessableEntity, fixtures.ValidationErrorResponse)
		svc := service.NewCheckoutService(httpclient.NewClient(), server.Config())

		_, err := svc.PaymentsDetails(ctx, fixtures.GetPaymentDetailsRequest())

		var apiErr *service.APIError
		So(errors.As(err, &apiErr), ShouldBeTrue)
		So(apiErr.Status, ShouldEqual, 422)
		So(apiErr.ErrorCode, ShouldEqual, "14_0391")
		So(apiErr.PSPReference, ShouldEqual, "J5C22LHW7QHG5S82")
	})

	Convey("Every operation reaches its route", t, func() {
		server := NewServer("test-api-key")
		defer server.Close()
		svc := service.NewCheckoutService(httpclient.NewClient(), server.Config())
		psp := fixtures.PaymentPSPReference

		_, err := svc.PaymentMethods(ctx, fixtures.GetPaymentMethodsRequest())
		So(err, ShouldBeNil)
		_, err = svc.PaymentMethodsBalance(ctx, fixtures.GetBalanceCheckRequest())
		So(err, ShouldBeNil)
		_, err = svc.PaymentLinks(ctx, fixtures.GetCreatePaymentLinkRequest())
		So(err, ShouldBeNil)
		_, err = svc.PatchPaymentLinks(ctx, fixtures.PaymentLinkID, fixtures.GetUpdatePaymentLinkRequest())
		So(err, ShouldBeNil)
		_, err = svc.PaymentResult(ctx, fixtures.GetPaymentVerificationRequest())
		So(err, ShouldBeNil)
		_, err = svc.Orders(ctx, fixtures.GetCreateOrderRequest())
		So(err, ShouldBeNil)
		_, err = svc.OrdersCancel(ctx, fixtures.GetCancelOrderRequest())
		So(err, ShouldBeNil)
		_, err = svc.ApplePaySessions(ctx, fixtures.GetApplePaySessionRequest())
		So(err, ShouldBeNil)
		_, err = svc.Donations(ctx, fixtures.GetDonationRequest())
		So(err, ShouldBeNil)
		_, err = svc.CardDetails(ctx, fixtures.GetCardDetailsRequest())
		So(err, ShouldBeNil)
		_, err = svc.Captures(ctx, psp, fixtures.GetCaptureRequest())
		So(err, ShouldBeNil)
		_, err = svc.Cancels(ctx, psp, fixtures.GetCancelRequest())
		So(err, ShouldBeNil)
		_, err = svc.Reversals(ctx, psp, fixtures.GetReversalRequest())
		So(err, ShouldBeNil)
		_, err = svc.AmountUpdates(ctx, psp, fixtures.GetAmountUpdateRequest())
		So(err, ShouldBeNil)
		_, err = svc.StandaloneCancels(ctx, fixtures.GetStandaloneCancelRequest())
		So(err, ShouldBeNil)

		var names []string
		for _, r := range server.Requests() {
			names = append(names, r.Route)
		}
		So(names, ShouldResemble, []string{
			RoutePaymentMethods, RoutePaymentMethodsBalance, RoutePaymentLinks, RoutePatchPaymentLink,
			RoutePaymentResult, RouteOrders, RouteOrdersCancel, RouteApplePaySessions, RouteDonations,
			RouteCardDetails, RouteCaptures, RouteCancels, RouteReversals, RouteAmountUpdates, RouteStandaloneCancels,
		})
	})

	Convey("Health check needs no key", t, func() {
		server := NewServer("test-api-key")
		defer server.Close()

		resp, err := http.Get(server.URL() + "/healthcheck")
		So(err, ShouldBeNil)
		defer resp.Body.Close()
		So(resp.StatusCode, ShouldEqual, http.StatusOK)
	})
}
