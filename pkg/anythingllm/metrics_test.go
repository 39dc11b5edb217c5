package anythingllm

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientMetrics(t *testing.T) {
	fs := newFakeServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/workspaces":        jsonResponse(http.StatusOK, map[string]any{}),
		"GET /api/v1/workspace/missing": jsonResponse(http.StatusNotFound, map[string]any{}),
	})

	reg := prometheus.NewRegistry()
	newClient := func() *Client {
		c, err := NewClient(Config{
			BaseURL: fs.server.URL,
			APIKey:  "test-key",
			Metrics: reg,
		})
		require.NoError(t, err)
		return c
	}

	// A second client on the same registry shares the collectors.
	first, second := newClient(), newClient()
	ctx := context.Background()

	_, err := first.ListWorkspaces(ctx)
	require.NoError(t, err)
	_, err = second.ListWorkspaces(ctx)
	require.NoError(t, err)
	_, err = first.GetWorkspace(ctx, "missing")
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	var observations uint64
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case "anythingllm_client_requests_total":
				counts[labels(m)] = m.GetCounter().GetValue()
			case "anythingllm_client_request_duration_seconds":
				observations += m.GetHistogram().GetSampleCount()
			}
		}
	}

	assert.Equal(t, map[string]float64{
		"ListWorkspaces/200": 2,
		"GetWorkspace/404":   1,
	}, counts)
	assert.Equal(t, uint64(3), observations)
}

func TestClientMetrics_Disabled(t *testing.T) {
	m, err := newClientMetrics(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	// Observing on a nil recorder is a no-op.
	m.observe("ListWorkspaces", http.StatusOK, 0)
}

func labels(m *dto.Metric) string {
	var op, status string
	for _, l := range m.GetLabel() {
		switch l.GetName() {
		case "op":
			op = l.GetValue()
		case "status":
			status = l.GetValue()
		}
	}
	return op + "/" + status
}
