package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/redtail-aero/airscore/internal/scoring"
)

// MissionScorer is the scoring engine surface the API needs.
type MissionScorer interface {
	Score(scoring.MissionInput) (scoring.MissionResult, error)
	Rules() scoring.RuleSet
}

func NewRouter(scorer MissionScorer, requestsPerMinute int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(requestsPerMinute))

	missions := NewMissionsHandler(scorer, logger)
	rules := NewRulesHandler(scorer.Rules())
	propellers := NewPropellersHandler(logger)

	r.Get("/", serveIndex)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/missions/score", missions.Score)
		r.Get("/rules", rules.Rules)
		r.Get("/segments", rules.Segments)
		r.Post("/propellers/analyze", propellers.Analyze)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
