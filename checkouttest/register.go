package checkouttest

import (
	"net/http"

	"github.com/companieshouse/checkout.client.ch.gov.uk/fixtures"
	"github.com/gorilla/mux"
)

// Route names
const (
	RoutePayments              = "payments"
	RoutePaymentMethods        = "payment-methods"
	RoutePaymentMethodsBalance = "payment-methods-balance"
	RoutePaymentLinks          = "create-payment-link"
	RouteGetPaymentLink        = "get-payment-link"
	RoutePatchPaymentLink      = "patch-payment-link"
	RoutePaymentsDetails       = "payments-details"
	RouteSessions              = "sessions"
	RoutePaymentResult         = "payment-result"
	RouteOrders                = "orders"
	RouteOrdersCancel          = "orders-cancel"
	RouteApplePaySessions      = "apple-pay-sessions"
	RouteDonations             = "donations"
	RouteCardDetails           = "card-details"
	RouteCaptures              = "captures"
	RouteRefunds               = "refunds"
	RouteCancels               = "cancels"
	RouteReversals             = "reversals"
	RouteAmountUpdates         = "amount-updates"
	RouteStandaloneCancels     = "standalone-cancels"
)

type route struct {
	name   string
	method string
	path   string
	body   string
}

var routes = []route{
	{RoutePayments, http.MethodPost, "/payments", fixtures.PaymentRedirectResponse},
	{RoutePaymentMethods, http.MethodPost, "/paymentMethods", fixtures.PaymentMethodsResponse},
	{RoutePaymentMethodsBalance, http.MethodPost, "/paymentMethods/balance", fixtures.BalanceCheckResponse},
	{RoutePaymentLinks, http.MethodPost, "/paymentLinks", fixtures.PaymentLinkCreatedResponse},
	{RouteGetPaymentLink, http.MethodGet, "/paymentLinks/{linkId}", fixtures.PaymentLinkExpiredResponse},
	{RoutePatchPaymentLink, http.MethodPatch, "/paymentLinks/{linkId}", fixtures.PaymentLinkExpiredResponse},
	{RoutePaymentsDetails, http.MethodPost, "/payments/details", fixtures.PaymentDetailsResponse},
	{RouteSessions, http.MethodPost, "/sessions", fixtures.SessionResponse},
	{RoutePaymentResult, http.MethodPost, "/payments/result", fixtures.PaymentResultResponse},
	{RouteOrders, http.MethodPost, "/orders", fixtures.OrderResponse},
	{RouteOrdersCancel, http.MethodPost, "/orders/cancel", fixtures.OrderCancelResponse},
	{RouteApplePaySessions, http.MethodPost, "/applePay/sessions", fixtures.ApplePaySessionResponse},
	{RouteDonations, http.MethodPost, "/donations", fixtures.DonationResponse},
	{RouteCardDetails, http.MethodPost, "/cardDetails", fixtures.CardDetailsResponse},
	{RouteCaptures, http.MethodPost, "/payments/{paymentPspReference}/captures", fixtures.CaptureResponse},
	{RouteRefunds, http.MethodPost, "/payments/{paymentPspReference}/refunds", fixtures.RefundResponse},
	{RouteCancels, http.MethodPost, "/payments/{paymentPspReference}/cancels", fixtures.CancelResponse},
	{RouteReversals, http.MethodPost, "/payments/{paymentPspReference}/reversals", fixtures.CancelResponse},
	{RouteAmountUpdates, http.MethodPost, "/payments/{paymentPspReference}/amountUpdates", fixtures.AmountUpdateResponse},
	{RouteStandaloneCancels, http.MethodPost, "/cancels", fixtures.StandaloneCancelResponse},
}

func defaultResponses() map[string]cannedResponse {
	responses := make(map[string]cannedResponse, len(routes))
	for _, r := range routes {
		responses[r.name] = cannedResponse{status: http.StatusOK, body: []byte(r.body)}
	}
	return responses
}

// Register defines the route mappings of the fake. Every API route lives
// under the version prefix and requires the API key.
func Register(mainRouter *mux.Router, s *Server) {
	mainRouter.UseEncodedPath()

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods(http.MethodGet).Name("get-healthcheck")

	apiRouter := mainRouter.PathPrefix("/" + s.Version).Subrouter()
	apiRouter.Use(s.authIntercept)

	for _, r := range routes {
		apiRouter.HandleFunc(r.path, s.handle(r.name)).Methods(r.method).Name(r.name)
	}
}
