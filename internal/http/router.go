// Package http exposes the service's API surface: the interview
// question/answer endpoints and the resume upload endpoint.
package http

import (
	"net/http"
	"strconv"
	"time"

	"ai-interview-prep-service/internal/app"
	"ai-interview-prep-service/internal/observability/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter constructs the HTTP router for the service.
func NewRouter(application *app.Application) http.Handler {
	h := NewHandlers(
		application.Questions,
		application.Analyzer,
		application.Optimizer,
		application.Synthesizer,
		application.Store,
	)
	return newRouter(h)
}

func newRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestMetrics)

	// The browser client is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Health endpoints
	r.Get("/v1/liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/readiness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	// Interview flow
	r.Get("/get_question/{index}", h.GetQuestion)
	r.Post("/analyze_response", h.AnalyzeResponse)
	r.Get("/audio/{key}", h.ServeAudio)

	// Resume flow
	r.Post("/upload", h.Upload)

	return r
}

// requestMetrics records per-route request counts and latency.
func requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		metrics.DefaultMetrics.RecordRequest(route, strconv.Itoa(ww.Status()), time.Since(start).Seconds())
	})
}
