package action

import "github.com/rob-foulkrod/verification/internal/textops"

// Input is the single internal representation every host binding translates
// into, whether the caller used INPUT_* environment variables, positional
// arguments, or an explicit configuration object.
type Input struct {
	// Text is the message to process. Required: an empty value is a fatal
	// boundary error, never a dispatcher concern.
	Text string
	// Operation names the text operation to run. Optional.
	Operation string
	// ColorOutput controls console log coloring for this invocation.
	ColorOutput bool
}

// NewInput returns an Input carrying the declared defaults.
func NewInput() Input {
	return Input{
		Operation:   textops.DefaultOperation,
		ColorOutput: true,
	}
}
