package errors

// Error codes returned in the "error" field of failed responses.
const (
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Quiz errors
	ErrCodeInsufficientQuestions = "insufficient_questions"
	ErrCodeDrawFailed            = "draw_failed"

	ErrCodeInternalError = "internal_error"
)
