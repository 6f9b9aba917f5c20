package textops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Analyze Tests
// ==========================

func TestDispatch_Analyze(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected AnalyzeResult
	}{
		{
			name: "case-insensitive unique words",
			text: "The quick quick fox",
			expected: AnalyzeResult{
				Chars: 19, Words: 4, Lines: 1, UniqueWords: 3, AvgWordLength: 4,
			},
		},
		{
			name: "empty text is one segment",
			text: "",
			expected: AnalyzeResult{
				Chars: 0, Words: 0, Lines: 1, UniqueWords: 0, AvgWordLength: 0,
			},
		},
		{
			name: "trailing newline yields an extra segment",
			text: "one\ntwo\n",
			expected: AnalyzeResult{
				Chars: 8, Words: 2, Lines: 3, UniqueWords: 2, AvgWordLength: 3,
			},
		},
		{
			name: "average rounded to two decimals",
			text: "ab cde",
			expected: AnalyzeResult{
				Chars: 6, Words: 2, Lines: 1, UniqueWords: 2, AvgWordLength: 2.5,
			},
		},
		{
			name: "mixed case deduplication",
			text: "Go go GO gopher",
			expected: AnalyzeResult{
				Chars: 15, Words: 4, Lines: 1, UniqueWords: 2, AvgWordLength: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Dispatch(tt.text, OpAnalyze)

			analyzed, ok := result.(AnalyzeResult)
			require.True(t, ok)
			assert.Equal(t, tt.expected, analyzed)
		})
	}
}

func TestDispatch_Analyze_RoundsAverage(t *testing.T) {
	// "a bb cccc" -> (1+2+4)/3 = 2.333... -> 2.33
	result := Dispatch("a bb cccc", OpAnalyze).(AnalyzeResult)
	assert.Equal(t, 2.33, result.AvgWordLength)
}

// ==========================
// Transform Tests
// ==========================

func TestDispatch_Transform(t *testing.T) {
	result := Dispatch("go Actions go", OpTransform)

	tr, ok := result.(TransformResult)
	require.True(t, ok)
	assert.Equal(t, "GO ACTIONS GO", tr.Uppercase)
	assert.Equal(t, "go actions go", tr.Lowercase)
	assert.Equal(t, "og snoitcA og", tr.Reversed)
	assert.Equal(t, "Go Actions Go", tr.Capitalized)
	assert.Equal(t, "Go Actions Go", result.Summary())
}

func TestDispatch_Transform_PreservesWhitespace(t *testing.T) {
	tr := Dispatch("hello\tWORLD  again", OpTransform).(TransformResult)
	assert.Equal(t, "Hello\tWorld  Again", tr.Capitalized)
}

// ==========================
// Validate Tests
// ==========================

func TestDispatch_Validate(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		expectedValid  bool
		expectedIssues []string
	}{
		{
			name:           "valid text",
			text:           "Hello world",
			expectedValid:  true,
			expectedIssues: []string{},
		},
		{
			name:           "empty text",
			text:           "",
			expectedValid:  false,
			expectedIssues: []string{IssueEmpty},
		},
		{
			name:           "too long",
			text:           strings.Repeat("a", 1001),
			expectedValid:  false,
			expectedIssues: []string{IssueTooLong},
		},
		{
			name:           "exactly at limit",
			text:           strings.Repeat("a", 1000),
			expectedValid:  true,
			expectedIssues: []string{},
		},
		{
			name:           "no alphabetic characters",
			text:           "12345",
			expectedValid:  false,
			expectedIssues: []string{IssueNoAlpha},
		},
		{
			name:           "too long and no alpha",
			text:           strings.Repeat("1", 1001),
			expectedValid:  false,
			expectedIssues: []string{IssueTooLong, IssueNoAlpha},
		},
		{
			name:           "unicode letters count as alphabetic",
			text:           "日本語",
			expectedValid:  true,
			expectedIssues: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Dispatch(tt.text, OpValidate)

			v, ok := result.(ValidateResult)
			require.True(t, ok)
			assert.Equal(t, tt.expectedValid, v.IsValid)
			assert.Equal(t, tt.expectedIssues, v.Issues)
		})
	}
}

func TestDispatch_Validate_LimitIsCodePoints(t *testing.T) {
	// 1000 multibyte runes is within the limit even though the byte length
	// is far above it.
	text := strings.Repeat("日", 1000)
	v := Dispatch(text, OpValidate).(ValidateResult)
	assert.True(t, v.IsValid)
}
