package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rob-foulkrod/verification/internal/textops"
)

func TestEnvName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "text", expected: "INPUT_TEXT"},
		{input: "operation", expected: "INPUT_OPERATION"},
		{input: "color-output", expected: "INPUT_COLOR_OUTPUT"},
		{input: "some.odd name", expected: "INPUT_SOME_ODD_NAME"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EnvName(tt.input))
	}
}

func TestFromEnviron(t *testing.T) {
	environ := []string{
		"PATH=/usr/bin",
		"INPUT_TEXT=Hello world",
		"INPUT_OPERATION=Analyze",
		"INPUT_COLOR_OUTPUT=false",
	}

	in := FromEnviron(environ)
	assert.Equal(t, "Hello world", in.Text)
	assert.Equal(t, "Analyze", in.Operation)
	assert.False(t, in.ColorOutput)
}

func TestFromEnviron_Defaults(t *testing.T) {
	in := FromEnviron([]string{"PATH=/usr/bin"})

	assert.Empty(t, in.Text)
	assert.Equal(t, textops.DefaultOperation, in.Operation)
	assert.True(t, in.ColorOutput)
}

func TestFromEnviron_IgnoresBadBool(t *testing.T) {
	in := FromEnviron([]string{"INPUT_COLOR_OUTPUT=maybe"})
	assert.True(t, in.ColorOutput)
}

func TestFromArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedText string
		expectedOp   string
	}{
		{name: "text and operation", args: []string{"hello", "reverse"}, expectedText: "hello", expectedOp: "reverse"},
		{name: "text only", args: []string{"hello"}, expectedText: "hello", expectedOp: textops.DefaultOperation},
		{name: "no args", args: nil, expectedText: "", expectedOp: textops.DefaultOperation},
		{name: "empty operation keeps default", args: []string{"hello", ""}, expectedText: "hello", expectedOp: textops.DefaultOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := FromArgs(tt.args)
			assert.Equal(t, tt.expectedText, in.Text)
			assert.Equal(t, tt.expectedOp, in.Operation)
			assert.True(t, in.ColorOutput)
		})
	}
}
