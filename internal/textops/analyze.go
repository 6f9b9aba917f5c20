package textops

import (
	"math"
	"strings"
)

// maxValidLength is the validate operation's upper bound, in code points.
const maxValidLength = 1000

func analyze(text string) AnalyzeResult {
	words := strings.Fields(text)

	unique := make(map[string]struct{}, len(words))
	totalLen := 0
	for _, w := range words {
		unique[strings.ToLower(w)] = struct{}{}
		totalLen += runeCount(w)
	}

	avg := 0.0
	if len(words) > 0 {
		avg = math.Round(float64(totalLen)/float64(len(words))*100) / 100
	}

	return AnalyzeResult{
		Chars: runeCount(text),
		Words: len(words),
		// Naive split semantics: a trailing newline yields one extra
		// empty segment, and empty text is a single segment.
		Lines:         len(strings.Split(text, "\n")),
		UniqueWords:   len(unique),
		AvgWordLength: avg,
	}
}

func transform(text string) TransformResult {
	return TransformResult{
		Uppercase:   strings.ToUpper(text),
		Lowercase:   strings.ToLower(text),
		Reversed:    reverseRunes(text),
		Capitalized: capitalizeWords(text),
	}
}

// Issue codes reported by the validate operation.
const (
	IssueEmpty   = "empty"
	IssueTooLong = "too-long"
	IssueNoAlpha = "no-alpha"
)

func validate(text string) ValidateResult {
	issues := []string{}

	length := runeCount(text)
	switch {
	case length == 0:
		issues = append(issues, IssueEmpty)
	case length > maxValidLength:
		issues = append(issues, IssueTooLong)
	}

	if length > 0 && !hasAlpha(text) {
		issues = append(issues, IssueNoAlpha)
	}

	return ValidateResult{IsValid: len(issues) == 0, Issues: issues}
}
