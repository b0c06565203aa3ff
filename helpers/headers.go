package helpers

import (
	"github.com/google/uuid"
)

// Header names understood by the Checkout API
const (
	APIKeyHeader          = "x-API-key"
	ClientKeyHeader       = "x-client-key"
	IdempotencyKeyHeader  = "Idempotency-Key"
	RequestedVerification = "x-requested-verification-code"
)

// RequestOptions carries per-call settings that travel as HTTP headers.
type RequestOptions struct {
	IdempotencyKey            string
	RequestedVerificationCode string
	Headers                   map[string]string
}

// NewIdempotencyKey returns a random key suitable for the Idempotency-Key
// header. A retried call must reuse the key of the first attempt.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// WithIdempotencyKey returns options carrying a freshly generated key.
func WithIdempotencyKey() RequestOptions {
	return RequestOptions{IdempotencyKey: NewIdempotencyKey()}
}

// MergeHeaders flattens options into the header map passed to the transport.
// Later options win. It returns nil when no header is set.
func MergeHeaders(options ...RequestOptions) map[string]string {
	var headers map[string]string
	set := func(name, value string) {
		if value == "" {
			return
		}
		if headers == nil {
			headers = make(map[string]string)
		}
		headers[name] = value
	}

	for _, o := range options {
		for name, value := range o.Headers {
			set(name, value)
		}
		set(IdempotencyKeyHeader, o.IdempotencyKey)
		set(RequestedVerification, o.RequestedVerificationCode)
	}

	return headers
}
