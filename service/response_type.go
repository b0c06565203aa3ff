package service

import (
	"errors"
	"net/http"

	"github.com/companieshouse/checkout.client.ch.gov.uk/codec"
	"github.com/companieshouse/checkout.client.ch.gov.uk/httpclient"
)

// ResponseType classifies the outcome of a Checkout call
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	if a < 0 || int(a) >= len(vals) {
		return "unknown"
	}
	return vals[a]
}

// ResponseTypeOf maps an error returned by CheckoutService to a ResponseType.
// A nil error is a Success.
func ResponseTypeOf(err error) ResponseType {
	if err == nil {
		return Success
	}

	var encodeErr *codec.EncodeError
	if errors.As(err, &encodeErr) {
		return InvalidData
	}

	status := 0
	var apiErr *APIError
	var clientErr *httpclient.HTTPClientError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Status
	case errors.As(err, &clientErr):
		status = clientErr.Code
	}

	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return InvalidData
	case http.StatusUnauthorized, http.StatusForbidden:
		return Forbidden
	case http.StatusNotFound:
		return NotFound
	default:
		return Error
	}
}
