package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorWithDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondErrorWithDetails(rr, http.StatusInternalServerError, ErrCodeInsufficientQuestions, "too small",
		map[string]interface{}{"required": 80})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"insufficient_questions","message":"too small","details":{"required":80}}`, rr.Body.String())
}

func TestRespondMethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondMethodNotAllowed(rr, http.MethodGet)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET", rr.Header().Get("Allow"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeMethodNotAllowed, body.Error)
	assert.Nil(t, body.Details)
}
