package question

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-bank/internal/logging"
	httperrors "github.com/gokatarajesh/quiz-bank/pkg/http/errors"
)

// HTTPHandler exposes the quiz endpoints.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs the quiz HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "quiz_http").Logger(),
	}
}

// HandleQuiz responds with SampleSize distinct random questions.
// Route: GET /quiz
func (h *HTTPHandler) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w, http.MethodGet)
		return
	}

	qs, err := h.svc.Draw(r.Context())
	if err != nil {
		if errors.Is(err, ErrInsufficientQuestions) {
			httperrors.RespondErrorWithDetails(w, http.StatusInternalServerError,
				httperrors.ErrCodeInsufficientQuestions,
				"question bank is too small for a full quiz",
				map[string]interface{}{
					"required":  h.svc.SampleSize(),
					"available": h.svc.BankSize(),
				})
			return
		}
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeDrawFailed, "failed to draw quiz")
		return
	}

	h.writeJSON(w, r, qs)
}

// HandlePractice responds with the whole bank in random order.
// Route: GET /quiz/practice
func (h *HTTPHandler) HandlePractice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w, http.MethodGet)
		return
	}
	h.writeJSON(w, r, h.svc.Practice(r.Context()))
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, r *http.Request, payload []Question) {
	data, err := marshalQuestions(payload)
	if err != nil {
		logger := logging.FromContext(r.Context())
		logger.Error().Err(err).Msg("encode quiz response")
		httperrors.RespondInternalError(w, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn().Err(err).Msg("write quiz response")
	}
}

func marshalQuestions(qs []Question) ([]byte, error) {
	if qs == nil {
		qs = []Question{}
	}
	return json.Marshal(qs)
}
