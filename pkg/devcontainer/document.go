// Package devcontainer handles loading, merging, and persisting
// devcontainer.json configuration documents.
package devcontainer

// Document is a parsed devcontainer configuration fragment or whole:
// a JSON-like mapping of string keys to scalars, arrays, or nested
// mappings.
type Document = map[string]interface{}

// KeyPostCreateCommand is the one field merged by concatenation rather
// than replacement.
const KeyPostCreateCommand = "postCreateCommand"

// toStringMap attempts to convert a value to map[string]interface{}.
// JSON unmarshal produces map[string]interface{}, but fragments built
// by hand or decoded from YAML may carry map[interface{}]interface{}.
func toStringMap(v interface{}) (map[string]interface{}, bool) {
	if v == nil {
		return nil, false
	}

	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				continue
			}
			result[key] = val
		}
		return result, true
	default:
		return nil, false
	}
}
