// Package textops implements the text operation dispatcher. Dispatch is a
// pure function over (text, operation name): it performs no I/O, holds no
// state and never fails for any pair of strings, so it is safe to call
// concurrently from any number of hosts.
package textops

import "strings"

// Known operation names. Matching is case-insensitive.
const (
	OpEcho      = "echo"
	OpReverse   = "reverse"
	OpCount     = "count"
	OpUppercase = "uppercase"
	OpLowercase = "lowercase"
	OpAnalyze   = "analyze"
	OpTransform = "transform"
	OpValidate  = "validate"
)

// DefaultOperation is used when the caller supplies no operation name.
const DefaultOperation = OpEcho

// FallbackOperation is executed in place of an unrecognized operation name.
// An unknown name is not an error: the boundary layer is expected to surface
// the substitution as a warning and proceed.
const FallbackOperation = OpEcho

var knownOperations = map[string]bool{
	OpEcho:      true,
	OpReverse:   true,
	OpCount:     true,
	OpUppercase: true,
	OpLowercase: true,
	OpAnalyze:   true,
	OpTransform: true,
	OpValidate:  true,
}

// Normalize lowercases an operation name and reports whether it is known.
// An empty name normalizes to DefaultOperation and counts as known.
func Normalize(operation string) (string, bool) {
	op := strings.ToLower(strings.TrimSpace(operation))
	if op == "" {
		return DefaultOperation, true
	}
	return op, knownOperations[op]
}

// Dispatch executes exactly one operation against text and returns its
// structured result. Unknown operation names degrade to FallbackOperation.
func Dispatch(text, operation string) Result {
	op, known := Normalize(operation)
	if !known {
		op = FallbackOperation
	}

	switch op {
	case OpEcho:
		return EchoResult{Value: text}
	case OpReverse:
		return ReverseResult{Value: reverseRunes(text)}
	case OpCount:
		return CountResult{Chars: runeCount(text), Words: wordCount(text)}
	case OpUppercase:
		return CaseResult{Op: OpUppercase, Value: strings.ToUpper(text)}
	case OpLowercase:
		return CaseResult{Op: OpLowercase, Value: strings.ToLower(text)}
	case OpAnalyze:
		return analyze(text)
	case OpTransform:
		return transform(text)
	case OpValidate:
		return validate(text)
	default:
		// Unreachable while knownOperations and this switch agree.
		return EchoResult{Value: text}
	}
}
