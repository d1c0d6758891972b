package server

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-bank/internal/config"
	"github.com/gokatarajesh/quiz-bank/internal/question"
)

// NewHTTPServer wires the quiz routes plus health and metrics.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, quiz *question.HTTPHandler, svc *question.Service, gatherer prometheus.Gatherer) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewHandler(cfg, logger, quiz, svc, gatherer),
	}
}

// NewHandler builds the routed handler with its middleware chain.
func NewHandler(cfg *config.App, logger zerolog.Logger, quiz *question.HTTPHandler, svc *question.Service, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "ok",
			"questions": svc.BankSize(),
		})
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// quiz routes check the method themselves so a 405 carries the error envelope
	mux.HandleFunc("/quiz", quiz.HandleQuiz)
	mux.HandleFunc("/quiz/practice", quiz.HandlePractice)

	var handler http.Handler = mux
	handler = withLogging(logger, handler)
	handler = requestID(handler)
	handler = withCORS(cfg.CORS, handler)
	return handler
}
