package web

import (
	"net/http"

	"github.com/andrescamacho/give-me-the-odds/internal/application/odds"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
	"github.com/andrescamacho/give-me-the-odds/internal/infrastructure/config"
)

// NewRouter wires the HTTP handlers with their dependencies and returns an
// http.Handler. The falcon mission is fixed server-side; clients upload an
// empire document per request.
func NewRouter(calculator *odds.Calculator, spec mission.Spec, rateLimit *config.RateLimitConfig) http.Handler {
	mux := http.NewServeMux()

	oddsHandler := &OddsHandler{
		Calculator: calculator,
		Mission:    spec,
	}

	mux.HandleFunc("GET /health", Health)
	mux.Handle("POST /api/odds", rateLimitMiddleware(rateLimit, http.HandlerFunc(oddsHandler.Compute)))

	return loggingMiddleware(requestIDMiddleware(mux))
}
