package textops

import (
	"fmt"
	"strings"
)

// Result is the tagged union returned by Dispatch. Each variant carries only
// the fields relevant to its operation. Summary is the primary user-facing
// value; Metadata holds the auxiliary numeric/list fields, nil when the
// operation produces none.
type Result interface {
	Operation() string
	Summary() string
	Metadata() map[string]interface{}
}

type EchoResult struct {
	Value string `json:"value"`
}

func (r EchoResult) Operation() string { return OpEcho }
func (r EchoResult) Summary() string { return r.Value }
func (r EchoResult) Metadata() map[string]interface{} { return nil }

type ReverseResult struct {
	Value string `json:"value"`
}

func (r ReverseResult) Operation() string { return OpReverse }
func (r ReverseResult) Summary() string { return r.Value }
func (r ReverseResult) Metadata() map[string]interface{} { return nil }

type CountResult struct {
	Chars int `json:"chars"`
	Words int `json:"words"`
}

func (r CountResult) Operation() string { return OpCount }

func (r CountResult) Summary() string {
	return fmt.Sprintf("characters: %d, words: %d", r.Chars, r.Words)
}

func (r CountResult) Metadata() map[string]interface{} {
	return map[string]interface{}{"chars": r.Chars, "words": r.Words}
}

// CaseResult covers both uppercase and lowercase; Op records which one ran.
type CaseResult struct {
	Op    string `json:"-"`
	Value string `json:"value"`
}

func (r CaseResult) Operation() string { return r.Op }
func (r CaseResult) Summary() string { return r.Value }
func (r CaseResult) Metadata() map[string]interface{} { return nil }

type AnalyzeResult struct {
	Chars         int     `json:"chars"`
	Words         int     `json:"words"`
	Lines         int     `json:"lines"`
	UniqueWords   int     `json:"uniqueWords"`
	AvgWordLength float64 `json:"avgWordLength"`
}

func (r AnalyzeResult) Operation() string { return OpAnalyze }

func (r AnalyzeResult) Summary() string {
	return fmt.Sprintf("characters: %d, words: %d, lines: %d", r.Chars, r.Words, r.Lines)
}

func (r AnalyzeResult) Metadata() map[string]interface{} {
	return map[string]interface{}{
		"chars":         r.Chars,
		"words":         r.Words,
		"lines":         r.Lines,
		"uniqueWords":   r.UniqueWords,
		"avgWordLength": r.AvgWordLength,
	}
}

type TransformResult struct {
	Uppercase   string `json:"uppercase"`
	Lowercase   string `json:"lowercase"`
	Reversed    string `json:"reversed"`
	Capitalized string `json:"capitalized"`
}

func (r TransformResult) Operation() string { return OpTransform }

// The title-cased variant is the headline value; the rest ride in metadata.
func (r TransformResult) Summary() string { return r.Capitalized }

func (r TransformResult) Metadata() map[string]interface{} {
	return map[string]interface{}{
		"uppercase":   r.Uppercase,
		"lowercase":   r.Lowercase,
		"reversed":    r.Reversed,
		"capitalized": r.Capitalized,
	}
}

type ValidateResult struct {
	IsValid bool     `json:"isValid"`
	Issues  []string `json:"issues"`
}

func (r ValidateResult) Operation() string { return OpValidate }

func (r ValidateResult) Summary() string {
	if r.IsValid {
		return "valid"
	}
	return "invalid: " + strings.Join(r.Issues, ", ")
}

func (r ValidateResult) Metadata() map[string]interface{} {
	return map[string]interface{}{"isValid": r.IsValid, "issues": r.Issues}
}
