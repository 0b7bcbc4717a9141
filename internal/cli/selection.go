package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/devcontainer-god/devctl/pkg/docker"
)

// selectContainer presents classified containers for selection, likely
// matches first. A single container is auto-selected without a menu.
func selectContainer(classified []docker.ClassifiedContainer) (*docker.ClassifiedContainer, error) {
	if len(classified) == 1 {
		printInfo("Found container: %s", classified[0].Name)
		return &classified[0], nil
	}

	matches, others := docker.Partition(classified)

	options := make([]huh.Option[string], 0, len(classified))
	byID := make(map[string]docker.ClassifiedContainer, len(classified))
	for _, c := range matches {
		options = append(options, huh.NewOption(containerLabel(c), c.ID))
		byID[c.ID] = c
	}
	for _, c := range others {
		options = append(options, huh.NewOption(containerLabel(c), c.ID))
		byID[c.ID] = c
	}

	printInfo("Found %d matching and %d other containers.", len(matches), len(others))

	selectedID := ""
	err := runForm(
		huh.NewSelect[string]().
			Title("Select container to connect to").
			Options(options...).
			Value(&selectedID),
	)
	if err != nil {
		return nil, err
	}

	selected, ok := byID[selectedID]
	if !ok {
		return nil, nil
	}
	return &selected, nil
}

// containerLabel renders one selection row: match marker, name, truncated
// image, status, and creation time.
func containerLabel(c docker.ClassifiedContainer) string {
	marker := "  "
	if c.IsMatch {
		marker = matchStyle.Render("* ")
	}

	image := c.Image
	if runes := []rune(image); len(runes) > 50 {
		image = string(runes[:50]) + "..."
	}

	return fmt.Sprintf("%s%s | %s | %s | %s", marker, c.Name, image, c.Status, c.Created)
}
