package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// DependencyHealth is the result of one readiness probe.
type DependencyHealth struct {
	Name      string        `json:"name"`
	Status    string        `json:"status"`
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Readiness aggregates every dependency probe.
type Readiness struct {
	Service      string                      `json:"service"`
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyHealth `json:"dependencies"`
	Uptime       float64                     `json:"uptime_seconds"`
}

// Probe checks one dependency. A nil error means reachable.
type Probe func(ctx context.Context) error

// HealthChecker probes the upstream API, Redis and the database.
type HealthChecker struct {
	service   string
	probes    map[string]Probe
	timeout   time.Duration
	startTime time.Time
}

func NewHealthChecker(service string, probes map[string]Probe) *HealthChecker {
	return &HealthChecker{
		service:   service,
		probes:    probes,
		timeout:   5 * time.Second,
		startTime: time.Now(),
	}
}

func (h *HealthChecker) check(ctx context.Context, name string, probe Probe) DependencyHealth {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	result := DependencyHealth{Name: name, Status: StatusHealthy, Timestamp: start}
	if err := probe(ctx); err != nil {
		result.Status = StatusUnhealthy
		result.Error = err.Error()
	}
	result.Latency = time.Since(start)
	return result
}

// Ready runs every probe concurrently.
func (h *HealthChecker) Ready(ctx context.Context) Readiness {
	deps := make(map[string]DependencyHealth, len(h.probes))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, probe := range h.probes {
		wg.Add(1)
		go func(n string, p Probe) {
			defer wg.Done()
			res := h.check(ctx, n, p)

			mu.Lock()
			deps[n] = res
			mu.Unlock()

			if res.Status != StatusHealthy {
				logger.Warn(ctx).
					Str("dependency", n).
					Str("error", res.Error).
					Msg("Dependency health check failed")
			}
		}(name, probe)
	}
	wg.Wait()

	return Readiness{
		Service:      h.service,
		Status:       overallStatus(deps),
		Dependencies: deps,
		Uptime:       time.Since(h.startTime).Seconds(),
	}
}

func overallStatus(deps map[string]DependencyHealth) string {
	healthy := 0
	for _, d := range deps {
		if d.Status == StatusHealthy {
			healthy++
		}
	}
	switch {
	case healthy == len(deps):
		return StatusHealthy
	case healthy > 0:
		return StatusDegraded
	default:
		return StatusUnhealthy
	}
}

// Quick reports the process itself without touching dependencies.
func (h *HealthChecker) Quick() map[string]any {
	return map[string]any{
		"status":    StatusHealthy,
		"service":   h.service,
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}

// HTTPProbe treats any answer below 500 from url as reachable; the upstream
// API has no dedicated health route under its base path.
func HTTPProbe(client *http.Client, url string) Probe {
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to reach %s: %w", url, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return nil
	}
}
