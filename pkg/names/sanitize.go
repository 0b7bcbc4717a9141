package names

import (
	"strings"
	"unicode"
)

const (
	// DefaultDisplayName is used when a display name sanitizes to nothing.
	DefaultDisplayName = "God Container"

	// DefaultRuntimeName is used when a Docker container name sanitizes
	// to nothing.
	DefaultRuntimeName = "my-container"
)

// SanitizeDisplayName cleans a human-readable container name for use as
// the devcontainer "name" field: characters outside
// {alphanumeric, whitespace, hyphen, underscore, period} are dropped and
// runs of whitespace collapse to a single space.
func SanitizeDisplayName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		}
	}

	sanitized := strings.Join(strings.Fields(b.String()), " ")
	if sanitized == "" {
		return DefaultDisplayName
	}
	return sanitized
}

// SanitizeRuntimeName cleans a name for use with `docker run --name`,
// which only accepts [a-zA-Z0-9-] in the forms devctl emits. Invalid
// runes become hyphens, hyphen runs collapse to one, and leading or
// trailing hyphens are trimmed.
func SanitizeRuntimeName(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	sanitized := strings.Trim(b.String(), "-")
	if sanitized == "" {
		return DefaultRuntimeName
	}
	return sanitized
}

// NormalizePattern converts a display name into the lowercase,
// hyphen-separated form used to match against Docker image names,
// e.g. "God Container" -> "god-container".
func NormalizePattern(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
