package anythingllm

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"
)

// Config contains configuration for the AnythingLLM client.
type Config struct {
	// BaseURL is the root of the AnythingLLM instance, without the /api/v1
	// suffix. Example: "http://localhost:3001"
	BaseURL string `json:"baseUrl"`

	// APIKey is sent as a bearer token on every request.
	APIKey string `json:"apiKey"`

	// HTTPClient overrides the transport entirely. Timeout, TLSVerify and
	// Trace are ignored when it is set.
	HTTPClient *http.Client `json:"-"`

	// Timeout for the default HTTP client. Zero means no timeout.
	Timeout time.Duration `json:"timeout"`

	// TLSVerify controls TLS certificate verification. Nil means true.
	TLSVerify *bool `json:"tlsVerify"`

	// Trace wraps the default HTTP client with Datadog APM tracing.
	Trace bool `json:"trace"`

	// Logger (optional).
	Logger hclog.Logger `json:"-"`

	// Metrics registers request metrics when set.
	Metrics prometheus.Registerer `json:"-"`
}

// Validate checks if the configuration is valid. All field failures are
// reported together.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.Timeout, validation.By(nonNegativeDuration)),
	)
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

func nonNegativeDuration(value interface{}) error {
	if d, ok := value.(time.Duration); ok && d < 0 {
		return fmt.Errorf("must not be negative, got: %v", d)
	}
	return nil
}

// baseURL returns the configured base URL with a single trailing slash
// removed.
func (c *Config) baseURL() string {
	return strings.TrimSuffix(c.BaseURL, "/")
}

// newHTTPClient creates the HTTP client used when none is supplied.
func (c *Config) newHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	client := &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
	if c.Trace {
		client = httptrace.WrapClient(client, httptrace.RTWithServiceName("anythingllm-client"))
	}
	return client
}
