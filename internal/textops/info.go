package textops

// OperationInfo describes one operation for the registry and for boundary
// input validation. Schemas use plain JSON-schema maps so they can be fed
// straight to a schema validator or serialized into the registry file.
type OperationInfo struct {
	ID           string
	DisplayName  string
	Description  string
	Category     string
	OutputKeys   []string
	InputSchema  map[string]interface{}
	OutputSchema map[string]interface{}
}

// inputSchema is shared by every operation: a required text string plus an
// optional operation name. Emptiness of text is a boundary check, not a
// schema one.
func inputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"text"},
		"properties": map[string]interface{}{
			"text":      map[string]interface{}{"type": "string"},
			"operation": map[string]interface{}{"type": "string"},
		},
	}
}

func stringOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"result":    map[string]interface{}{"type": "string"},
			"timestamp": map[string]interface{}{"type": "string"},
		},
	}
}

// Operations lists every known operation in a stable order.
func Operations() []OperationInfo {
	return []OperationInfo{
		{
			ID:           OpEcho,
			DisplayName:  "Echo",
			Description:  "Returns the input text unchanged",
			Category:     "basic",
			OutputKeys:   []string{"result", "timestamp"},
			InputSchema:  inputSchema(),
			OutputSchema: stringOutputSchema(),
		},
		{
			ID:           OpReverse,
			DisplayName:  "Reverse",
			Description:  "Reverses the character order of the input text",
			Category:     "basic",
			OutputKeys:   []string{"result", "timestamp"},
			InputSchema:  inputSchema(),
			OutputSchema: stringOutputSchema(),
		},
		{
			ID:           OpCount,
			DisplayName:  "Count",
			Description:  "Counts characters and whitespace-delimited words",
			Category:     "basic",
			OutputKeys:   []string{"result", "timestamp", "metadata"},
			InputSchema:  inputSchema(),
			OutputSchema: stringOutputSchema(),
		},
		{
			ID:           OpUppercase,
			DisplayName:  "Uppercase",
			Description:  "Upper-cases every alphabetic character",
			Category:     "basic",
			OutputKeys:   []string{"result", "timestamp"},
			InputSchema:  inputSchema(),
			OutputSchema: stringOutputSchema(),
		},
		{
			ID:           OpLowercase,
			DisplayName:  "Lowercase",
			Description:  "Lower-cases every alphabetic character",
			Category:     "basic",
			OutputKeys:   []string{"result", "timestamp"},
			InputSchema:  inputSchema(),
			OutputSchema: stringOutputSchema(),
		},
		{
			ID:           OpAnalyze,
			DisplayName:  "Analyze",
			Description:  "Reports character, word, line and unique-word counts plus average word length",
			Category:     "analysis",
			OutputKeys:   []string{"result", "timestamp", "metadata"},
			InputSchema:  inputSchema(),
			OutputSchema: stringOutputSchema(),
		},
		{
			ID:           OpTransform,
			DisplayName:  "Transform",
			Description:  "Produces uppercase, lowercase, reversed and title-cased variants at once",
			Category:     "transform",
			OutputKeys:   []string{"result", "timestamp", "metadata"},
			InputSchema:  inputSchema(),
			OutputSchema: stringOutputSchema(),
		},
		{
			ID:           OpValidate,
			DisplayName:  "Validate",
			Description:  "Checks the text against the empty, too-long and no-alpha rules",
			Category:     "analysis",
			OutputKeys:   []string{"result", "timestamp", "metadata"},
			InputSchema:  inputSchema(),
			OutputSchema: stringOutputSchema(),
		},
	}
}

// Info returns the metadata for a single operation.
func Info(id string) (OperationInfo, bool) {
	for _, op := range Operations() {
		if op.ID == id {
			return op, true
		}
	}
	return OperationInfo{}, false
}
