package httpclient

import (
	"fmt"
	"net/http"
)

// HTTPClientError is returned when the Checkout API answers with a status
// outside the 2xx range. Body holds the raw response so that callers can decode
// the vendor error payload.
type HTTPClientError struct {
	Code    int
	Body    []byte
	Headers http.Header
}

func (e *HTTPClientError) Error() string {
	return fmt.Sprintf("checkout api returned status [%d]: [%s]", e.Code, string(e.Body))
}
