package textops

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// All counting and reversal is code-point granular, never byte granular.

func runeCount(text string) int {
	return utf8.RuneCountInString(text)
}

// wordCount counts maximal whitespace-delimited non-empty substrings.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

func reverseRunes(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// capitalizeWords upper-cases the first rune of every whitespace-delimited
// token and lower-cases the rest, preserving the original whitespace.
func capitalizeWords(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	wordStart := true
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			wordStart = true
			b.WriteRune(r)
		case wordStart:
			wordStart = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func hasAlpha(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
