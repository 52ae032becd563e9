package openapi

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Decode parses raw OpenAPI/Swagger document bytes into a generic mapping.
// YAML and JSON are both accepted; YAML input is converted through JSON so
// the decoded values carry the same types either way (map[string]any,
// []any, string, float64, bool, nil).
func Decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalidDocument)
	}
	return doc, nil
}
