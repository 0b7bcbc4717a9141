package docker

import (
	"strings"

	"github.com/devcontainer-god/devctl/pkg/names"
)

// unknownPlaceholder stands in for status and creation fields the runtime
// did not report.
const unknownPlaceholder = "Unknown"

// ContainerRecord describes one running container as reported by the
// runtime query.
type ContainerRecord struct {
	ID      string
	Name    string
	Image   string
	Status  string
	Created string
}

// SearchIdentity carries the criteria used to find the container belonging
// to the current project.
type SearchIdentity struct {
	// DisplayName is the configured devcontainer display name,
	// e.g. "God Container". Always present.
	DisplayName string

	// CustomName is the exact Docker runtime name assigned via
	// `--name=...`, when the user configured one.
	CustomName string

	// DirPattern is the project directory name. VS Code builds
	// devcontainer images named vsc-<dir>-<hash>-..., so this gives the
	// most precise image match after the custom name.
	DirPattern string
}

// ClassifiedContainer is a ContainerRecord tagged with the match outcome.
type ClassifiedContainer struct {
	ContainerRecord
	IsMatch bool
}

// Classify tags each container record as a match for the identity or not.
//
// Records are de-duplicated by ID (first occurrence wins) and records
// missing an ID or image are dropped. Input order is preserved. Rules fire
// in priority order per record:
//
//  1. exact runtime name match against CustomName
//  2. "vsc-<dir-pattern>-" substring of the lowercased image
//  3. normalized display name substring of the image, provided the image
//     also contains "vsc-"
//
// Rules 2 and 3 use plain substring matching, so a project whose
// normalized name is a prefix of another's ("my-proj" vs "my-proj2") can
// produce false positives. That mirrors how VS Code image names have
// always been matched here; the selection menu lets the user correct it.
func Classify(identity SearchIdentity, records []ContainerRecord) []ClassifiedContainer {
	namePattern := names.NormalizePattern(identity.DisplayName)

	dirPattern := ""
	if identity.DirPattern != "" {
		dirPattern = "vsc-" + names.NormalizePattern(identity.DirPattern) + "-"
	}

	classified := make([]ClassifiedContainer, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		if rec.ID == "" || rec.Image == "" {
			continue
		}
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true

		if rec.Status == "" {
			rec.Status = unknownPlaceholder
		}
		if rec.Created == "" {
			rec.Created = unknownPlaceholder
		}

		image := strings.ToLower(rec.Image)

		var isMatch bool
		switch {
		case identity.CustomName != "" && rec.Name == identity.CustomName:
			isMatch = true
		case dirPattern != "" && strings.Contains(image, dirPattern):
			isMatch = true
		case strings.Contains(image, namePattern) && strings.Contains(image, "vsc-"):
			isMatch = true
		}

		classified = append(classified, ClassifiedContainer{
			ContainerRecord: rec,
			IsMatch:         isMatch,
		})
	}

	return classified
}

// Partition splits classified containers into matches and others,
// preserving relative order within each group.
func Partition(classified []ClassifiedContainer) (matches, others []ClassifiedContainer) {
	for _, c := range classified {
		if c.IsMatch {
			matches = append(matches, c)
		} else {
			others = append(others, c)
		}
	}
	return matches, others
}
