package devcontainer

import "strings"

// Merge deep-merges incoming onto base and returns a new Document.
// Neither input is mutated.
//
// Merge rules:
//   - Keys present in either input are present in the result (deep union)
//   - Map values present in both: recursively merged
//   - Scalars, arrays, and type mismatches: incoming replaces base
//   - postCreateCommand present in BOTH inputs: concatenated with " && "
//     instead of replaced, so setup commands accumulate across fragments
func Merge(base, incoming Document) Document {
	result := deepMerge(base, incoming)

	// The concatenation rule is checked against the original inputs, not
	// the merged result: a command present in only one input keeps the
	// generic merge outcome.
	baseCmd, baseHas := commandString(base)
	incomingCmd, incomingHas := commandString(incoming)
	if baseHas && incomingHas {
		result[KeyPostCreateCommand] = joinCommands(baseCmd, incomingCmd)
	}

	return result
}

func deepMerge(base, incoming map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(base))

	for k, v := range base {
		result[k] = v
	}

	for k, incomingVal := range incoming {
		baseVal, baseExists := result[k]

		incomingMap, incomingIsMap := toStringMap(incomingVal)
		baseMap, baseIsMap := toStringMap(baseVal)

		if baseExists && baseIsMap && incomingIsMap {
			result[k] = deepMerge(baseMap, incomingMap)
		} else {
			result[k] = incomingVal
		}
	}

	return result
}

// commandString reports the postCreateCommand value of a document when the
// key is present and holds a string.
func commandString(doc Document) (string, bool) {
	v, ok := doc[KeyPostCreateCommand]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// joinCommands combines two shell command sequences. Both non-empty after
// trimming: joined with " && ". One empty: the other stands alone.
func joinCommands(left, right string) string {
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	switch {
	case left != "" && right != "":
		return left + " && " + right
	case left != "":
		return left
	default:
		return right
	}
}
