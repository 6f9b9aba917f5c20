// pkg/registry/schema.go
package registry

// OperationRegistry is the on-disk catalog of text operations: what each
// one does, the shape of its inputs and outputs, and the output keys it
// contributes to the record.
type OperationRegistry struct {
	Version     string      `json:"version"`
	LastUpdated string      `json:"lastUpdated"`
	Operations  []Operation `json:"operations"`
}

type Operation struct {
	ID           string                 `json:"id"`
	DisplayName  string                 `json:"displayName"`
	Description  string                 `json:"description"`
	Category     string                 `json:"category"`
	Version      string                 `json:"version"`
	OutputKeys   []string               `json:"outputKeys"`
	InputSchema  map[string]interface{} `json:"inputSchema"`
	OutputSchema map[string]interface{} `json:"outputSchema"`
	Tags         []string               `json:"tags,omitempty"`
}
