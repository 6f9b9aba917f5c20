package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, ExitCode(ErrCodeMissingRequiredInput))
	assert.Equal(t, 0, ExitCode(WarnCodeUnknownOperation))
	assert.Equal(t, 1, ExitCode(ErrCodeOutputWriteFailed))
	assert.Equal(t, 1, ExitCode(ErrCodeConfigInvalid))
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(WarnCodeUnknownOperation))
	assert.True(t, IsFatal(ErrCodeMissingRequiredInput))
	assert.True(t, IsFatal(ErrCodeRegistryLoadFailed))
}

func TestNewMissingRequiredInputError(t *testing.T) {
	err := NewMissingRequiredInputError("text")

	assert.Equal(t, ErrCodeMissingRequiredInput, err.Code)
	assert.Contains(t, err.Details, "text")
	assert.Contains(t, err.Error(), "MISSING_REQUIRED_INPUT")
	assert.False(t, err.Timestamp.IsZero())
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "INPUT", GetErrorCategory(ErrCodeMissingRequiredInput))
	assert.Equal(t, "OUTPUT", GetErrorCategory(ErrCodeOutputWriteFailed))
	assert.Equal(t, "SETUP", GetErrorCategory(ErrCodeRegistryLoadFailed))
	assert.Equal(t, "SETUP", GetErrorCategory(ErrCodeConfigInvalid))
	assert.Equal(t, "DISPATCH", GetErrorCategory(WarnCodeUnknownOperation))
	assert.Equal(t, "OTHER", GetErrorCategory("SOMETHING_ELSE"))
}

// recordingLogger captures the last error log call for assertions.
type recordingLogger struct {
	msg    string
	fields map[string]interface{}
}

func (r *recordingLogger) Error(msg string, fields map[string]interface{}) {
	r.msg = msg
	r.fields = fields
}

func TestHandler_Handle_StandardError(t *testing.T) {
	log := &recordingLogger{}
	h := NewHandler(log)

	code := h.Handle(NewMissingRequiredInputError("text"))

	assert.Equal(t, 2, code)
	assert.Equal(t, "Required input is missing or empty", log.msg)
	assert.Equal(t, "MISSING_REQUIRED_INPUT", log.fields["errorCode"])
	assert.Equal(t, "INPUT", log.fields["category"])
}

func TestHandler_Handle_PlainError(t *testing.T) {
	log := &recordingLogger{}
	h := NewHandler(log)

	code := h.Handle(fmt.Errorf("boom"))

	require.Equal(t, 1, code)
	assert.Equal(t, "Unexpected error", log.msg)
	assert.Equal(t, "boom", log.fields["details"])
}
