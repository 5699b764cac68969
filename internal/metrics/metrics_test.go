package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequestGroupsStatus(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/inventory", 200, time.Millisecond)
	m.ObserveRequest("GET", "/inventory", 204, time.Millisecond)
	m.ObserveRequest("POST", "/inventory", 422, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "/inventory", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("POST", "/inventory", "4xx")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAPICall("GET", "/tasks", 0, time.Second)
		m.CacheEvent("hit")
		m.LoggedIn()
	})
}

func TestCacheEvents(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.CacheEvent("hit")
	m.CacheEvent("hit")
	m.CacheEvent("miss")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheEvents.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheEvents.WithLabelValues("miss")))
}
