package service

import (
	"errors"
	"fmt"

	"github.com/companieshouse/checkout.client.ch.gov.uk/codec"
	"github.com/companieshouse/checkout.client.ch.gov.uk/httpclient"
	"github.com/companieshouse/checkout.client.ch.gov.uk/models"
)

// APIError is a structured error returned by the Checkout API. The transport
// error it was decoded from stays reachable through errors.As.
type APIError struct {
	Status       int
	ErrorCode    string
	Message      string
	ErrorType    string
	PSPReference string

	cause error
}

func (e *APIError) Error() string {
	if e.PSPReference != "" {
		return fmt.Sprintf("checkout api error [%d] [%s] %s: %s (pspReference %s)", e.Status, e.ErrorCode, e.ErrorType, e.Message, e.PSPReference)
	}
	return fmt.Sprintf("checkout api error [%d] [%s] %s: %s", e.Status, e.ErrorCode, e.ErrorType, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// asAPIError turns a transport error whose body is a vendor error payload into
// an APIError. Anything else is returned unchanged.
func asAPIError(err error) error {
	var clientErr *httpclient.HTTPClientError
	if !errors.As(err, &clientErr) {
		return err
	}

	var payload models.ServiceError
	if codec.Unmarshal(clientErr.Body, &payload) != nil {
		return err
	}
	if payload.Status == 0 {
		if payload.ErrorCode == "" && payload.Message == "" {
			return err
		}
		payload.Status = clientErr.Code
	}

	return &APIError{
		Status:       payload.Status,
		ErrorCode:    payload.ErrorCode,
		Message:      payload.Message,
		ErrorType:    payload.ErrorType,
		PSPReference: payload.PSPReference,
		cause:        err,
	}
}
