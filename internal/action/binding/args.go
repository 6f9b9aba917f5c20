package binding

import "github.com/rob-foulkrod/verification/internal/action"

// FromArgs resolves inputs from positional process arguments, the
// isolated-host convention: text first, operation second. A missing or
// empty first argument leaves Text empty; the boundary rejects it with
// the distinguished missing-input status before dispatch.
func FromArgs(args []string) action.Input {
	in := action.NewInput()

	if len(args) > 0 {
		in.Text = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		in.Operation = args[1]
	}

	return in
}
