package anythingllm

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// recordedRequest is a request seen by the fake server.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// decode unmarshals the recorded JSON body.
func (r recordedRequest) decode(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &out))
	return out
}

// fakeServer routes "METHOD /path" to handlers and records every request.
type fakeServer struct {
	t      *testing.T
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	reqs   []recordedRequest
	server *httptest.Server
}

func newFakeServer(t *testing.T, routes map[string]http.HandlerFunc) *fakeServer {
	t.Helper()
	fs := &fakeServer{t: t, routes: routes}
	fs.server = httptest.NewServer(http.HandlerFunc(fs.serve))
	t.Cleanup(fs.server.Close)
	return fs
}

func (fs *fakeServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	fs.mu.Lock()
	fs.reqs = append(fs.reqs, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})
	fs.mu.Unlock()

	h, ok := fs.routes[r.Method+" "+r.URL.Path]
	if !ok {
		fs.t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		http.Error(w, "no route", http.StatusNotFound)
		return
	}
	h(w, r)
}

// requests returns a copy of the recorded requests.
func (fs *fakeServer) requests() []recordedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recordedRequest(nil), fs.reqs...)
}

// paths returns "METHOD /path" for each recorded request.
func (fs *fakeServer) paths() []string {
	var out []string
	for _, r := range fs.requests() {
		out = append(out, r.Method+" "+r.Path)
	}
	return out
}

// client returns a client pointed at the fake server.
func (fs *fakeServer) client(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(Config{
		BaseURL: fs.server.URL + "/",
		APIKey:  testAPIKey,
		Logger:  hclog.NewNullLogger(),
	})
	require.NoError(t, err)
	return c
}

func jsonResponse(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func textResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// failOnRequest returns a client whose transport fails the test on use.
func failOnRequest(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(Config{
		BaseURL: "http://anythingllm.invalid",
		APIKey:  testAPIKey,
		HTTPClient: &http.Client{
			Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
				return nil, nil
			}),
		},
	})
	require.NoError(t, err)
	return c
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
