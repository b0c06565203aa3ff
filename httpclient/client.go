// Package httpclient sends single request/response exchanges to the Checkout
// API.
package httpclient

//go:generate mockgen -destination=mock_client.go -package=httpclient github.com/companieshouse/checkout.client.ch.gov.uk/httpclient HTTPClient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/companieshouse/checkout.client.ch.gov.uk/config"
	"github.com/companieshouse/checkout.client.ch.gov.uk/helpers"
	"github.com/companieshouse/chs.go/log"
)

// Library identification sent in the User-Agent header.
const (
	LibraryName    = "checkout.client.ch.gov.uk"
	LibraryVersion = "1.0.0"
)

// HTTPClient performs one call against the Checkout API and returns the raw
// response body.
type HTTPClient interface {
	Request(ctx context.Context, endpoint, method string, body []byte, cfg *config.Config, isAPIKeyAuth bool, clientKey string, headers map[string]string) ([]byte, error)
}

// Client is the net/http implementation of HTTPClient. A nil Transport uses
// http.DefaultTransport.
type Client struct {
	Transport http.RoundTripper
}

// NewClient returns a Client using the default transport.
func NewClient() *Client {
	return &Client{}
}

// Request implements HTTPClient.
func (c *Client) Request(ctx context.Context, endpoint, method string, body []byte, cfg *config.Config, isAPIKeyAuth bool, clientKey string, headers map[string]string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("error generating request for checkout api: [%w]", err)
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", UserAgent(cfg.ApplicationName))

	switch {
	case isAPIKeyAuth:
		request.Header.Set(helpers.APIKeyHeader, cfg.APIKey)
	case clientKey != "":
		request.Header.Set(helpers.ClientKeyHeader, clientKey)
	default:
		request.SetBasicAuth(cfg.Username, cfg.Password)
	}

	for name, value := range headers {
		request.Header.Set(name, value)
	}

	httpClient := &http.Client{Transport: c.Transport, Timeout: cfg.Timeout()}

	log.Trace("sending request to checkout api", log.Data{"endpoint": endpoint, "method": method})

	resp, err := httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to checkout api: [%w]", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from checkout api: [%w]", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Trace("checkout api returned an error status", log.Data{"endpoint": endpoint, "status": resp.StatusCode})
		return nil, &HTTPClientError{Code: resp.StatusCode, Body: respBody, Headers: resp.Header}
	}

	return respBody, nil
}

// UserAgent builds the User-Agent header value, prefixed with the
// application name when one is configured.
func UserAgent(applicationName string) string {
	agent := LibraryName + "/" + LibraryVersion
	if strings.TrimSpace(applicationName) == "" {
		return agent
	}
	return applicationName + " " + agent
}
