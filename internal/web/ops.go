package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

// NewOpsHandler serves /metrics and the health endpoints for scrapers and
// orchestrators, apart from the user-facing app.
func NewOpsHandler(health *HealthChecker, gatherer prometheus.Gatherer, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, health.Quick())
	}).Methods(http.MethodGet)
	router.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
	}).Methods(http.MethodGet)
	router.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ready := health.Ready(r.Context())
		writeJSON(w, readinessStatus(ready), ready)
	}).Methods(http.MethodGet)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(router)
}

// readinessStatus answers 503 only when nothing is reachable; a degraded
// dashboard still serves pages.
func readinessStatus(r Readiness) int {
	if r.Status == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to write ops response")
	}
}
