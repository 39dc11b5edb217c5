package anythingllm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-hclog"
)

const apiPrefix = "/api/v1"

// Object is an opaque JSON object returned verbatim from the server.
type Object = map[string]any

// Client talks to the AnythingLLM REST API. Every method maps to one
// endpoint, or to a short fixed sequence of endpoints for the ingestion
// workflows.
type Client struct {
	baseURL    string
	apiKey     string
	headers    http.Header
	httpClient *http.Client
	logger     hclog.Logger
	metrics    *clientMetrics

	// now is used for generated document titles.
	now func() time.Time
}

// NewClient creates a new AnythingLLM client.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AnythingLLM client config: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	metrics, err := newClientMetrics(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to register client metrics: %w", err)
	}

	headers := make(http.Header)
	headers.Set("Authorization", "Bearer "+cfg.APIKey)
	headers.Set("Content-Type", "application/json")

	return &Client{
		baseURL:    cfg.baseURL(),
		apiKey:     cfg.APIKey,
		headers:    headers,
		httpClient: cfg.newHTTPClient(),
		logger:     logger.Named("anythingllm-client"),
		metrics:    metrics,
		now:        time.Now,
	}, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// headersWith returns the default header set with overrides applied on top.
func (c *Client) headersWith(overrides http.Header) http.Header {
	h := c.headers.Clone()
	for k, v := range overrides {
		h[k] = v
	}
	return h
}

// send issues a request and returns the response for any 2xx status. Any
// other status is turned into an *APIError carrying the body text, and the
// body is closed.
func (c *Client) send(
	ctx context.Context,
	op, method, path string,
	body io.Reader,
	headers http.Header,
) (*http.Response, error) {
	endpoint := c.baseURL + apiPrefix + path

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header = headers

	c.logger.Debug("sending request",
		"op", op,
		"method", method,
		"path", path,
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(op, 0, time.Since(start))
		return nil, fmt.Errorf("%s: request failed: %w", op, err)
	}
	c.metrics.observe(op, resp.StatusCode, time.Since(start))

	c.logger.Debug("received response",
		"op", op,
		"status", resp.StatusCode,
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		text, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read error response (status %d): %w",
				op, resp.StatusCode, err)
		}
		c.logger.Warn("request returned error status",
			"op", op,
			"status", resp.StatusCode,
		)
		return nil, &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       string(text),
		}
	}

	return resp, nil
}

// doJSON sends body (if any) as JSON and decodes the JSON response into
// result (if non-nil).
func (c *Client) doJSON(ctx context.Context, op, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request body: %w", op, err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	resp, err := c.send(ctx, op, method, path, bodyReader, c.headersWith(nil))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}

// getObject is shorthand for a GET returning an opaque object.
func (c *Client) getObject(ctx context.Context, op, path string) (Object, error) {
	var out Object
	if err := c.doJSON(ctx, op, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// postObject is shorthand for a POST returning an opaque object.
func (c *Client) postObject(ctx context.Context, op, path string, body interface{}) (Object, error) {
	var out Object
	if err := c.doJSON(ctx, op, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// workspacePath builds /workspace/{slug}{suffix} with the slug escaped.
func workspacePath(slug, suffix string) string {
	return "/workspace/" + url.PathEscape(slug) + suffix
}
