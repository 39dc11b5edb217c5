package anythingllm

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// clientMetrics records request counts and latency per operation. A nil
// *clientMetrics records nothing.
type clientMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func newClientMetrics(reg prometheus.Registerer) (*clientMetrics, error) {
	if reg == nil {
		return nil, nil
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "anythingllm_client_requests_total",
		Help: "Requests sent to AnythingLLM, labelled by operation and status.",
	}, []string{"op", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "anythingllm_client_request_duration_seconds",
		Help:    "Time until AnythingLLM response headers were received.",
		Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
	}, []string{"op"})

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}

	return &clientMetrics{requests: requests, latency: latency}, nil
}

// register adds c to reg, reusing the existing collector when another
// client already registered it.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// observe records one request. A status of 0 means the request failed
// before a response arrived.
func (m *clientMetrics) observe(op string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	label := "error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(op, label).Inc()
	m.latency.WithLabelValues(op).Observe(elapsed.Seconds())
}
