package ingest

import (
	"errors"

	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
)

// ErrLessonNotFound is returned by Delete when nothing matches.
var ErrLessonNotFound = errors.New("lesson not found")

// RequestError reports an edit or delete request that is missing required
// fields or tries to change a lesson's identity.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// ErrorResponse is the error payload returned to callers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorPayload builds the caller-facing payload for err raised while
// performing action ("add lesson", "delete lesson", ...).
func ErrorPayload(action string, err error) ErrorResponse {
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		return ErrorResponse{Error: reqErr.Message}
	case errors.Is(err, ErrLessonNotFound):
		return ErrorResponse{Error: "Lesson not found"}
	default:
		return ErrorResponse{Error: "Failed to " + action, Details: err.Error()}
	}
}

// IsClientError reports whether err was caused by the request itself rather
// than by storage or rendering.
func IsClientError(err error) bool {
	var (
		reqErr    *RequestError
		invalid   *lessons.InvalidFormatError
		ambiguous *lessons.AmbiguousAnswerError
	)
	return errors.As(err, &reqErr) || errors.As(err, &invalid) || errors.As(err, &ambiguous)
}
