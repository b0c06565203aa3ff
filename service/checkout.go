// Package service exposes the Checkout API as one method per endpoint.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/companieshouse/checkout.client.ch.gov.uk/codec"
	"github.com/companieshouse/checkout.client.ch.gov.uk/config"
	"github.com/companieshouse/checkout.client.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.client.ch.gov.uk/httpclient"
	"github.com/companieshouse/checkout.client.ch.gov.uk/models"
	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CheckoutService issues Checkout API calls. It holds no per-call state and
// may be shared between goroutines.
type CheckoutService struct {
	Client httpclient.HTTPClient
	Config *config.Config
}

// NewCheckoutService returns a CheckoutService sending requests through client.
func NewCheckoutService(client httpclient.HTTPClient, cfg *config.Config) *CheckoutService {
	return &CheckoutService{Client: client, Config: cfg}
}

// Payments starts a transaction.
func (s *CheckoutService) Payments(ctx context.Context, req *models.PaymentRequest, options ...helpers.RequestOptions) (*models.PaymentResponse, error) {
	resp := &models.PaymentResponse{}
	if err := s.call(ctx, http.MethodPost, "/payments", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// PaymentMethods lists the payment methods available for a transaction.
func (s *CheckoutService) PaymentMethods(ctx context.Context, req *models.PaymentMethodsRequest, options ...helpers.RequestOptions) (*models.PaymentMethodsResponse, error) {
	resp := &models.PaymentMethodsResponse{}
	if err := s.call(ctx, http.MethodPost, "/paymentMethods", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// PaymentMethodsBalance checks the balance of a gift card or other stored
// value payment method.
func (s *CheckoutService) PaymentMethodsBalance(ctx context.Context, req *models.CheckoutBalanceCheckRequest, options ...helpers.RequestOptions) (*models.CheckoutBalanceCheckResponse, error) {
	resp := &models.CheckoutBalanceCheckResponse{}
	if err := s.call(ctx, http.MethodPost, "/paymentMethods/balance", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// PaymentLinks creates a payment link.
func (s *CheckoutService) PaymentLinks(ctx context.Context, req *models.CreatePaymentLinkRequest, options ...helpers.RequestOptions) (*models.PaymentLinkResponse, error) {
	resp := &models.PaymentLinkResponse{}
	if err := s.call(ctx, http.MethodPost, "/paymentLinks", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetPaymentLinks retrieves the payment link with the given id.
func (s *CheckoutService) GetPaymentLinks(ctx context.Context, linkID string, options ...helpers.RequestOptions) (*models.PaymentLinkResponse, error) {
	path, err := resourcePath("/paymentLinks/%s", "linkId", linkID)
	if err != nil {
		return nil, err
	}

	resp := &models.PaymentLinkResponse{}
	if err := s.call(ctx, http.MethodGet, path, nil, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// PatchPaymentLinks updates the status of the payment link with the given id.
func (s *CheckoutService) PatchPaymentLinks(ctx context.Context, linkID string, req *models.UpdatePaymentLinkRequest, options ...helpers.RequestOptions) (*models.PaymentLinkResponse, error) {
	path, err := resourcePath("/paymentLinks/%s", "linkId", linkID)
	if err != nil {
		return nil, err
	}

	resp := &models.PaymentLinkResponse{}
	if err := s.call(ctx, http.MethodPatch, path, req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// PaymentsDetails submits the result of an action, such as a redirect or a
// 3D Secure challenge.
func (s *CheckoutService) PaymentsDetails(ctx context.Context, req *models.PaymentDetailsRequest, options ...helpers.RequestOptions) (*models.PaymentDetailsResponse, error) {
	resp := &models.PaymentDetailsResponse{}
	if err := s.call(ctx, http.MethodPost, "/payments/details", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// Sessions creates a payment session for the drop-in and components.
func (s *CheckoutService) Sessions(ctx context.Context, req *models.CreateCheckoutSessionRequest, options ...helpers.RequestOptions) (*models.CreateCheckoutSessionResponse, error) {
	resp := &models.CreateCheckoutSessionResponse{}
	if err := s.call(ctx, http.MethodPost, "/sessions", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// PaymentResult verifies a payment result returned by the SDK.
func (s *CheckoutService) PaymentResult(ctx context.Context, req *models.PaymentVerificationRequest, options ...helpers.RequestOptions) (*models.PaymentVerificationResponse, error) {
	resp := &models.PaymentVerificationResponse{}
	if err := s.call(ctx, http.MethodPost, "/payments/result", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// Orders creates an order for partial payments.
func (s *CheckoutService) Orders(ctx context.Context, req *models.CheckoutCreateOrderRequest, options ...helpers.RequestOptions) (*models.CheckoutCreateOrderResponse, error) {
	resp := &models.CheckoutCreateOrderResponse{}
	if err := s.call(ctx, http.MethodPost, "/orders", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// OrdersCancel cancels an order and refunds its partial payments.
func (s *CheckoutService) OrdersCancel(ctx context.Context, req *models.CheckoutCancelOrderRequest, options ...helpers.RequestOptions) (*models.CheckoutCancelOrderResponse, error) {
	resp := &models.CheckoutCancelOrderResponse{}
	if err := s.call(ctx, http.MethodPost, "/orders/cancel", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// ApplePaySessions obtains an Apple Pay payment session.
func (s *CheckoutService) ApplePaySessions(ctx context.Context, req *models.CreateApplePaySessionRequest, options ...helpers.RequestOptions) (*models.ApplePaySessionResponse, error) {
	resp := &models.ApplePaySessionResponse{}
	if err := s.call(ctx, http.MethodPost, "/applePay/sessions", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// Donations makes a donation on top of a completed payment.
func (s *CheckoutService) Donations(ctx context.Context, req *models.PaymentDonationRequest, options ...helpers.RequestOptions) (*models.DonationResponse, error) {
	resp := &models.DonationResponse{}
	if err := s.call(ctx, http.MethodPost, "/donations", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// CardDetails looks up the brands a card number belongs to.
func (s *CheckoutService) CardDetails(ctx context.Context, req *models.CardDetailsRequest, options ...helpers.RequestOptions) (*models.CardDetailsResponse, error) {
	resp := &models.CardDetailsResponse{}
	if err := s.call(ctx, http.MethodPost, "/cardDetails", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// Captures captures an authorised payment.
func (s *CheckoutService) Captures(ctx context.Context, pspReference string, req *models.PaymentCaptureRequest, options ...helpers.RequestOptions) (*models.PaymentCaptureResponse, error) {
	path, err := resourcePath("/payments/%s/captures", "paymentPspReference", pspReference)
	if err != nil {
		return nil, err
	}

	resp := &models.PaymentCaptureResponse{}
	if err := s.call(ctx, http.MethodPost, path, req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// Refunds refunds all or part of a captured payment.
func (s *CheckoutService) Refunds(ctx context.Context, pspReference string, req *models.PaymentRefundRequest, options ...helpers.RequestOptions) (*models.PaymentRefundResponse, error) {
	path, err := resourcePath("/payments/%s/refunds", "paymentPspReference", pspReference)
	if err != nil {
		return nil, err
	}

	resp := &models.PaymentRefundResponse{}
	if err := s.call(ctx, http.MethodPost, path, req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// Cancels cancels an authorised payment that has not been captured.
func (s *CheckoutService) Cancels(ctx context.Context, pspReference string, req *models.PaymentCancelRequest, options ...helpers.RequestOptions) (*models.PaymentCancelResponse, error) {
	path, err := resourcePath("/payments/%s/cancels", "paymentPspReference", pspReference)
	if err != nil {
		return nil, err
	}

	resp := &models.PaymentCancelResponse{}
	if err := s.call(ctx, http.MethodPost, path, req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// Reversals cancels a payment if it is not captured yet, and refunds it
// otherwise.
func (s *CheckoutService) Reversals(ctx context.Context, pspReference string, req *models.PaymentReversalRequest, options ...helpers.RequestOptions) (*models.PaymentReversalResponse, error) {
	path, err := resourcePath("/payments/%s/reversals", "paymentPspReference", pspReference)
	if err != nil {
		return nil, err
	}

	resp := &models.PaymentReversalResponse{}
	if err := s.call(ctx, http.MethodPost, path, req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// AmountUpdates changes the authorised amount of a payment.
func (s *CheckoutService) AmountUpdates(ctx context.Context, pspReference string, req *models.PaymentAmountUpdateRequest, options ...helpers.RequestOptions) (*models.PaymentAmountUpdateResponse, error) {
	path, err := resourcePath("/payments/%s/amountUpdates", "paymentPspReference", pspReference)
	if err != nil {
		return nil, err
	}

	resp := &models.PaymentAmountUpdateResponse{}
	if err := s.call(ctx, http.MethodPost, path, req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// StandaloneCancels cancels a payment by its merchant reference.
func (s *CheckoutService) StandaloneCancels(ctx context.Context, req *models.StandalonePaymentCancelRequest, options ...helpers.RequestOptions) (*models.StandalonePaymentCancelResponse, error) {
	resp := &models.StandalonePaymentCancelResponse{}
	if err := s.call(ctx, http.MethodPost, "/cancels", req, resp, options); err != nil {
		return nil, err
	}
	return resp, nil
}

// resourcePath substitutes an escaped identifier into pattern.
func resourcePath(pattern, name, id string) (string, error) {
	if id == "" {
		return "", &codec.EncodeError{Field: name, Reason: "must not be empty"}
	}
	return fmt.Sprintf(pattern, url.PathEscape(id)), nil
}

// call validates and encodes req, sends it to path and decodes the answer into
// resp. A nil req sends no body.
func (s *CheckoutService) call(ctx context.Context, method, path string, req, resp interface{}, options []helpers.RequestOptions) error {
	var body []byte
	if req != nil {
		if err := validateRequest(req); err != nil {
			log.Error(fmt.Errorf("invalid request for %s: [%w]", path, err))
			return err
		}

		encoded, err := codec.Marshal(req)
		if err != nil {
			log.Error(fmt.Errorf("error encoding request for %s: [%w]", path, err))
			return err
		}
		body = encoded
	}

	baseURL, err := s.Config.BaseURL()
	if err != nil {
		return fmt.Errorf("error resolving checkout endpoint: [%w]", err)
	}
	endpoint := baseURL + path

	log.Trace("calling checkout api", log.Data{"endpoint": endpoint, "method": method})

	// API key when configured, else client key, else basic auth.
	isAPIKeyAuth := s.Config.APIKey != ""
	respBody, err := s.Client.Request(ctx, endpoint, method, body, s.Config, isAPIKeyAuth, s.Config.ClientKey, helpers.MergeHeaders(options...))
	if err != nil {
		err = asAPIError(err)
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			log.Error(apiErr, log.Data{"endpoint": endpoint, "status": apiErr.Status, "error_code": apiErr.ErrorCode})
			return apiErr
		}
		log.Error(err, log.Data{"endpoint": endpoint})
		return fmt.Errorf("error calling checkout api %s: [%w]", path, err)
	}

	if err := codec.Unmarshal(respBody, resp); err != nil {
		log.Error(err, log.Data{"endpoint": endpoint})
		return fmt.Errorf("error reading response from %s: [%w]", path, err)
	}

	return nil
}

// validateRequest applies the request's validate tags. Failures are reported
// as EncodeErrors naming the first offending field.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return &codec.EncodeError{Field: "request", Reason: "must be a non-nil struct", Err: err}
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &codec.EncodeError{Field: fe.Namespace(), Reason: fmt.Sprintf("failed %s validation", fe.Tag()), Err: err}
	}

	return &codec.EncodeError{Field: "request", Reason: "validation failed", Err: err}
}
