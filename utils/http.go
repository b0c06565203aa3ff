package utils

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/checkout.client.ch.gov.uk/codec"
	"github.com/companieshouse/checkout.client.ch.gov.uk/models"
	"github.com/companieshouse/chs.go/log"
)

// NewServiceError - convenience function for creating a Checkout error payload
func NewServiceError(status int, errorCode, message, errorType string) *models.ServiceError {
	return &models.ServiceError{
		ErrorCode: errorCode,
		ErrorType: errorType,
		Message:   message,
		Status:    status,
	}
}

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body, err := codec.Marshal(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
		return
	}
	writeBody(w, r, body)
}

// WriteRawJSONWithStatus writes an already encoded json body with the supplied status.
func WriteRawJSONWithStatus(w http.ResponseWriter, r *http.Request, body []byte, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	writeBody(w, r, body)
}

func writeBody(w http.ResponseWriter, r *http.Request, body []byte) {
	if _, err := w.Write(body); err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}
