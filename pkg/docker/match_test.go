package docker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, name, image string) ContainerRecord {
	return ContainerRecord{ID: id, Name: name, Image: image, Status: "Up 5 minutes", Created: "2026-08-01 10:00:00"}
}

func TestClassify_EmptyInput(t *testing.T) {
	result := Classify(SearchIdentity{DisplayName: "God Container"}, nil)
	assert.Empty(t, result)
}

func TestClassify_DeduplicatesByID(t *testing.T) {
	records := []ContainerRecord{
		record("abc123", "first", "vsc-god-container-deadbeef-uid"),
		record("abc123", "second", "unrelated:latest"),
		record("def456", "other", "postgres:16"),
	}

	result := Classify(SearchIdentity{DisplayName: "God Container"}, records)

	require.Len(t, result, 2)
	assert.Equal(t, "first", result[0].Name) // first occurrence wins
	assert.Equal(t, "def456", result[1].ID)
}

func TestClassify_SkipsMalformedRecords(t *testing.T) {
	records := []ContainerRecord{
		{ID: "", Name: "no-id", Image: "something:latest"},
		{ID: "abc123", Name: "no-image", Image: ""},
		record("def456", "fine", "postgres:16"),
	}

	result := Classify(SearchIdentity{DisplayName: "God Container"}, records)

	require.Len(t, result, 1)
	assert.Equal(t, "def456", result[0].ID)
}

func TestClassify_DefaultsUnknownFields(t *testing.T) {
	records := []ContainerRecord{
		{ID: "abc123", Name: "bare", Image: "postgres:16"},
	}

	result := Classify(SearchIdentity{DisplayName: "God Container"}, records)

	require.Len(t, result, 1)
	assert.Equal(t, "Unknown", result[0].Status)
	assert.Equal(t, "Unknown", result[0].Created)
}

func TestClassify_CustomNameWinsWithoutImagePattern(t *testing.T) {
	records := []ContainerRecord{
		record("abc123", "my-custom-name", "totally-unrelated:latest"),
	}
	identity := SearchIdentity{
		DisplayName: "God Container",
		CustomName:  "my-custom-name",
	}

	result := Classify(identity, records)

	require.Len(t, result, 1)
	assert.True(t, result[0].IsMatch)
}

func TestClassify_CustomNameIsExact(t *testing.T) {
	records := []ContainerRecord{
		record("abc123", "my-custom-name-2", "unrelated:latest"),
	}
	identity := SearchIdentity{
		DisplayName: "God Container",
		CustomName:  "my-custom-name",
	}

	result := Classify(identity, records)

	require.Len(t, result, 1)
	assert.False(t, result[0].IsMatch)
}

func TestClassify_DirPatternMatchesImage(t *testing.T) {
	records := []ContainerRecord{
		record("abc123", "random-name", "vsc-my-proj-0123abcd-uid"),
		record("def456", "random-name-2", "vsc-other-proj-9876fedc-uid"),
	}
	identity := SearchIdentity{
		DisplayName: "Something Else Entirely",
		DirPattern:  "my-proj",
	}

	result := Classify(identity, records)

	require.Len(t, result, 2)
	assert.True(t, result[0].IsMatch)
	assert.False(t, result[1].IsMatch)
}

func TestClassify_DisplayNameFallbackRequiresVscImage(t *testing.T) {
	records := []ContainerRecord{
		record("abc123", "a", "vsc-god-container-deadbeef-uid"),
		// pattern occurs but image is not a vsc- image
		record("def456", "b", "god-container-clone:latest"),
		// vsc- image without the pattern
		record("ghi789", "c", "vsc-unrelated-deadbeef-uid"),
	}

	result := Classify(SearchIdentity{DisplayName: "God Container"}, records)

	require.Len(t, result, 3)
	assert.True(t, result[0].IsMatch)
	assert.False(t, result[1].IsMatch)
	assert.False(t, result[2].IsMatch)
}

func TestClassify_DisplayNameIsNormalized(t *testing.T) {
	records := []ContainerRecord{
		record("abc123", "a", "vsc-my-proj-abcdef-uid"),
	}

	result := Classify(SearchIdentity{DisplayName: "My Proj"}, records)

	require.Len(t, result, 1)
	assert.True(t, result[0].IsMatch)
}

// Substring matching has no word boundaries: "my-proj" is a substring of
// "vsc-my-projx-..." so sibling projects with prefix-overlapping names
// both classify as matches. Intentional; see the Classify doc comment.
func TestClassify_SubstringFalsePositiveIsLiteralBehavior(t *testing.T) {
	records := []ContainerRecord{
		record("abc123", "a", "vsc-my-projx-abcdef-uid"),
	}

	result := Classify(SearchIdentity{DisplayName: "My Proj"}, records)

	require.Len(t, result, 1)
	assert.True(t, result[0].IsMatch)
}

func TestClassify_PriorityOrder(t *testing.T) {
	// A record that would fail the dir-pattern rule still matches when the
	// custom-name rule fires first.
	records := []ContainerRecord{
		record("abc123", "pinned", "no-pattern-here:latest"),
	}
	identity := SearchIdentity{
		DisplayName: "My Proj",
		CustomName:  "pinned",
		DirPattern:  "my-proj",
	}

	result := Classify(identity, records)

	require.Len(t, result, 1)
	assert.True(t, result[0].IsMatch)
}

func TestClassify_PreservesInputOrder(t *testing.T) {
	records := []ContainerRecord{
		record("id1", "a", "postgres:16"),
		record("id2", "b", "vsc-my-proj-abcdef-uid"),
		record("id3", "c", "redis:7"),
	}

	result := Classify(SearchIdentity{DisplayName: "My Proj"}, records)

	require.Len(t, result, 3)
	assert.Equal(t, "id1", result[0].ID)
	assert.Equal(t, "id2", result[1].ID)
	assert.Equal(t, "id3", result[2].ID)
}

func TestPartition(t *testing.T) {
	records := []ContainerRecord{
		record("id1", "a", "postgres:16"),
		record("id2", "b", "vsc-my-proj-abcdef-uid"),
		record("id3", "c", "redis:7"),
		record("id4", "d", "vsc-my-proj-012345-uid"),
	}

	classified := Classify(SearchIdentity{DisplayName: "My Proj"}, records)
	matches, others := Partition(classified)

	require.Len(t, matches, 2)
	require.Len(t, others, 2)
	assert.Equal(t, "id2", matches[0].ID)
	assert.Equal(t, "id4", matches[1].ID)
	assert.Equal(t, "id1", others[0].ID)
	assert.Equal(t, "id3", others[1].ID)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0123456789ab", ShortID("0123456789abcdef0123"))
	assert.Equal(t, "short", ShortID("short"))
}
