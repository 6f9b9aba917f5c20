// Package binding translates the calling conventions of the different
// action hosts into the runner's Input struct. The adapters read only
// explicit snapshots (an environ slice, an args slice), never ambient
// process state, so the boundary stays testable and the dispatcher pure.
package binding

import (
	"strconv"
	"strings"

	"github.com/rob-foulkrod/verification/internal/action"
)

const envInputPrefix = "INPUT_"

// EnvName maps a declared input name to its environment variable under the
// scripted-host convention: uppercased, non-alphanumerics replaced by '_'.
func EnvName(input string) string {
	var b strings.Builder
	b.WriteString(envInputPrefix)
	for _, r := range strings.ToUpper(input) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// FromEnviron resolves the runner inputs from an environment snapshot in
// the form returned by os.Environ.
func FromEnviron(environ []string) action.Input {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			vars[kv[:i]] = kv[i+1:]
		}
	}

	in := action.NewInput()
	in.Text = vars[EnvName("text")]

	if op, ok := vars[EnvName("operation")]; ok && op != "" {
		in.Operation = op
	}

	if raw, ok := vars[EnvName("color-output")]; ok && raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			in.ColorOutput = v
		}
	}

	return in
}
