// internal/common/errors/handler.go
package errors

import "time"

// Handler normalizes boundary failures, logs them, and decides the process
// exit status handed back to the invoking host.
type Handler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle logs err and returns the exit status the process should terminate
// with. Boundary failures are never retried.
func (h *Handler) Handle(err error) int {
	stdErr := h.normalizeError(err)

	h.logger.Error(stdErr.Message, map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"category":  GetErrorCategory(stdErr.Code),
		"details":   stdErr.Details,
		"timestamp": stdErr.Timestamp.Format(time.RFC3339),
	})

	return ExitCode(stdErr.Code)
}

// normalizeError ensures we always have a StandardError
func (h *Handler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}
