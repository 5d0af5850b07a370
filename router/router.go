// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-survey/cliparse"
	"github.com/danielhkuo/quickly-survey/handlers"
	"github.com/danielhkuo/quickly-survey/metrics"
	"github.com/danielhkuo/quickly-survey/middleware"
	"github.com/danielhkuo/quickly-survey/store"
	"github.com/danielhkuo/quickly-survey/survey"
)

// NewRouter wires the survey endpoints. db may be nil when st is not SQL-backed.
func NewRouter(db *sql.DB, st store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(survey.NewService(st))
	healthHandler := handlers.NewHealthHandler(db)

	// Health check and metrics
	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.Handle("GET /metrics", metrics.Handler())

	// Survey
	mux.HandleFunc("POST /api/respostas", middleware.WithLogging(surveyHandler.Submit))
	mux.HandleFunc("GET /api/medias", middleware.WithLogging(surveyHandler.GetSummary))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-survey API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigins, mux)
}
