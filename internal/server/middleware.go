package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/gokatarajesh/quiz-bank/internal/config"
)

const headerRequestID = "X-Request-ID"

// requestID fills in X-Request-ID when the caller did not send one and echoes it back.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(headerRequestID, id)
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r)
	})
}

// withLogging puts a request scoped logger in the context and logs one line per request.
func withLogging(logger zerolog.Logger, next http.Handler) http.Handler {
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		evt := hlog.FromRequest(r).Info()
		if status >= http.StatusInternalServerError {
			evt = hlog.FromRequest(r).Error()
		}
		evt.Int("status", status).
			Int("bytes", size).
			Dur("duration", duration).
			Msg("request handled")
	})

	h := access(next)
	h = hlog.URLHandler("path")(h)
	h = hlog.MethodHandler("method")(h)
	h = hlog.CustomHeaderHandler("request_id", headerRequestID)(h)
	return hlog.NewHandler(logger)(h)
}

// withCORS allows the configured browser origins to call the API.
func withCORS(cfg config.CORS, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: cfg.AllowedMethods,
		AllowedHeaders: cfg.AllowedHeaders,
		ExposedHeaders: cfg.ExposedHeaders,
		MaxAge:         cfg.MaxAge,
	}).Handler(next)
}
