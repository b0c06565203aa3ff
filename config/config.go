// Package config defines the environment variable and command-line flags
// supported by the checkout client and includes default values for particular
// fields.
package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Environments supported by the Checkout API
const (
	EnvironmentTest = "test"
	EnvironmentLive = "live"
)

// Config defines the configuration options for the checkout client.
type Config struct {
	Environment           string `env:"CHECKOUT_ENVIRONMENT"        flag:"environment"            flagDesc:"Checkout environment, test or live"`
	LiveEndpointURLPrefix string `env:"CHECKOUT_LIVE_URL_PREFIX"    flag:"live-url-prefix"        flagDesc:"Merchant-specific prefix of the live endpoint URL"`
	CheckoutEndpoint      string `env:"CHECKOUT_ENDPOINT"           flag:"checkout-endpoint"      flagDesc:"Overrides the base URL of the Checkout API, without the version"`
	APIVersion            string `env:"CHECKOUT_API_VERSION"        flag:"api-version"            flagDesc:"Checkout API version, e.g. v70"`
	APIKey                string `env:"CHECKOUT_API_KEY"            flag:"api-key"                flagDesc:"API key sent as x-API-key"`
	ClientKey             string `env:"CHECKOUT_CLIENT_KEY"         flag:"client-key"             flagDesc:"Client key for client-side authenticated calls"`
	Username              string `env:"CHECKOUT_USERNAME"           flag:"username"               flagDesc:"Web service user, used when no API key is set"`
	Password              string `env:"CHECKOUT_PASSWORD"           flag:"password"               flagDesc:"Web service user password"`
	MerchantAccount       string `env:"CHECKOUT_MERCHANT_ACCOUNT"   flag:"merchant-account"       flagDesc:"Default merchant account for CLI requests"`
	ApplicationName       string `env:"CHECKOUT_APPLICATION_NAME"   flag:"application-name"       flagDesc:"Name prepended to the User-Agent header"`
	TimeoutSeconds        int    `env:"CHECKOUT_TIMEOUT_SECONDS"    flag:"timeout-seconds"        flagDesc:"HTTP timeout for a single call"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Environment:    EnvironmentTest,
		APIVersion:     "v70",
		TimeoutSeconds: 60,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Timeout returns the per-call HTTP timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BaseURL returns the versioned Checkout API root for the configured
// environment, without a trailing slash.
func (c *Config) BaseURL() (string, error) {
	if c.CheckoutEndpoint != "" {
		return strings.TrimRight(c.CheckoutEndpoint, "/") + "/" + c.APIVersion, nil
	}

	switch c.Environment {
	case EnvironmentTest:
		return "https://checkout-test.adyen.com/" + c.APIVersion, nil
	case EnvironmentLive:
		if c.LiveEndpointURLPrefix == "" {
			return "", fmt.Errorf("live environment requires a live endpoint url prefix")
		}
		return fmt.Sprintf("https://%s-checkout-live.adyenpayments.com/checkout/%s", c.LiveEndpointURLPrefix, c.APIVersion), nil
	default:
		return "", fmt.Errorf("invalid checkout environment in config: %s", c.Environment)
	}
}
