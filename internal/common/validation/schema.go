package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationResult reports the outcome of validating resolved inputs
// against an operation's JSON schema.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateInput validates input against a JSON-schema map with detailed
// errors. A nil or empty schema accepts everything.
func ValidateInput(input map[string]interface{}, schema map[string]interface{}) (*ValidationResult, error) {
	if len(schema) == 0 {
		return &ValidationResult{Valid: true}, nil
	}

	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(input)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	if result.Valid() {
		return &ValidationResult{Valid: true}, nil
	}

	errs := make([]ValidationError, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    desc.Type(),
		}
	}

	return &ValidationResult{Valid: false, Errors: errs}, nil
}

// CheckSchema compiles a schema map, reporting whether it is itself valid
// JSON schema. Used by the registry tooling.
func CheckSchema(schema map[string]interface{}) error {
	if len(schema) == 0 {
		return nil
	}

	sl := gojsonschema.NewSchemaLoader()
	if _, err := sl.Compile(gojsonschema.NewGoLoader(schema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	return nil
}

// Describe flattens a ValidationResult into a single human-readable string
// for error details.
func Describe(result *ValidationResult) string {
	if result == nil || result.Valid {
		return ""
	}
	out := ""
	for i, e := range result.Errors {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return out
}
