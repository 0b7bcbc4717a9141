package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Deterministic(t *testing.T) {
	// Same inputs should always produce the same name
	name1 := Generate("my-project", "devcontainer")
	name2 := Generate("my-project", "devcontainer")
	assert.Equal(t, name1, name2, "same inputs should produce the same name")
}

func TestGenerate_Format(t *testing.T) {
	name := Generate("my-project", "devcontainer")

	// Should be in "adjective-noun" format
	assert.Regexp(t, `^[a-z]+-[a-z]+$`, name, "name should match adjective-noun format")
}

func TestGenerate_SinglePart(t *testing.T) {
	name := Generate("onlyone")
	assert.Regexp(t, `^[a-z]+-[a-z]+$`, name, "single part should also produce adjective-noun format")
}

func TestGenerate_EmptyParts(t *testing.T) {
	name := Generate()
	assert.Regexp(t, `^[a-z]+-[a-z]+$`, name, "empty parts should still produce a valid name")
}

func TestGenerate_SpreadsOverWordLists(t *testing.T) {
	// Distinct inputs should land on a reasonable variety of names.
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[Generate("proj", string(rune('a'+i%26)), string(rune('0'+i/26)))] = true
	}
	assert.Greater(t, len(seen), 20, "expected generated names to vary across inputs")
}
