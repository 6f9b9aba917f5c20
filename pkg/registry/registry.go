// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadRegistry(path string) (*OperationRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg OperationRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

func SaveRegistry(path string, reg *OperationRegistry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Find returns the operation with the given id.
func (r *OperationRegistry) Find(id string) (*Operation, bool) {
	for i := range r.Operations {
		if r.Operations[i].ID == id {
			return &r.Operations[i], true
		}
	}
	return nil, false
}

// Validate checks structural invariants: unique non-empty IDs and the
// mandatory output keys on every entry.
func (r *OperationRegistry) Validate() error {
	seen := map[string]bool{}
	for _, op := range r.Operations {
		if op.ID == "" {
			return fmt.Errorf("operation with empty id")
		}
		if seen[op.ID] {
			return fmt.Errorf("duplicate operation id %q", op.ID)
		}
		seen[op.ID] = true

		if !contains(op.OutputKeys, "result") || !contains(op.OutputKeys, "timestamp") {
			return fmt.Errorf("operation %q must declare result and timestamp output keys", op.ID)
		}
	}
	return nil
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
