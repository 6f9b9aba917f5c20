package action

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputRecord_PreservesInsertionOrder(t *testing.T) {
	record := &OutputRecord{}
	record.Set("result", "value")
	record.Set("operation", "echo")
	record.Set("timestamp", "2026-01-01T00:00:00Z")

	assert.Equal(t, []string{"result", "operation", "timestamp"}, record.Keys())

	// Re-setting an existing key keeps its position.
	record.Set("operation", "reverse")
	assert.Equal(t, []string{"result", "operation", "timestamp"}, record.Keys())

	v, ok := record.Get("operation")
	require.True(t, ok)
	assert.Equal(t, "reverse", v)

	_, ok = record.Get("missing")
	assert.False(t, ok)
}

func TestOutputRecord_WriteTo(t *testing.T) {
	record := &OutputRecord{}
	record.Set("result", "Hello world")
	record.Set("timestamp", "2026-01-01T00:00:00Z")

	var buf bytes.Buffer
	_, err := record.WriteTo(&buf)
	require.NoError(t, err)

	assert.Equal(t, "result=Hello world\ntimestamp=2026-01-01T00:00:00Z\n", buf.String())
}

func TestOutputRecord_WriteTo_MultilineUsesHeredoc(t *testing.T) {
	record := &OutputRecord{}
	record.Set("result", "line one\nline two")

	var buf bytes.Buffer
	_, err := record.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "result<<ghadelimiter_"))
	delim := strings.TrimPrefix(lines[0], "result<<")
	assert.Equal(t, "line one", lines[1])
	assert.Equal(t, "line two", lines[2])
	assert.Equal(t, delim, lines[3])
}

func TestOutputRecord_AppendFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")

	first := &OutputRecord{}
	first.Set("result", "one")
	require.NoError(t, first.AppendFile(path))

	second := &OutputRecord{}
	second.Set("result", "two")
	require.NoError(t, second.AppendFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "result=one\nresult=two\n", string(data))
}
