package cli

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
	"github.com/devcontainer-god/devctl/pkg/names"
)

// promptContainerName configures the optional Docker runtime name (added
// to runArgs as --name=...) and the required display name. Returns the
// updated document and the runtime name, empty when none was set.
func promptContainerName(doc devcontainer.Document) (devcontainer.Document, string, error) {
	printHeader("Configure container name")

	useCustom := false
	err := runForm(
		huh.NewConfirm().
			Title("Set a custom Docker container name?").
			Description("Adds --name=<name> to runArgs for easier container identification.").
			Value(&useCustom),
	)
	if err != nil {
		return nil, "", err
	}

	customName := ""
	if useCustom {
		// Deterministic suggestion so re-running configure offers the
		// same name for the same project.
		suggestion := names.Generate(currentDisplayName(doc))
		input := suggestion
		err = runForm(
			huh.NewInput().
				Title("Docker container name").
				Description("Only [a-zA-Z0-9-] allowed; other characters are replaced.").
				Prompt("> ").
				Validate(nonEmpty("container name")).
				Value(&input),
		)
		if err != nil {
			return nil, "", err
		}

		raw := strings.TrimSpace(input)
		customName = names.SanitizeRuntimeName(raw)
		if customName != raw {
			printWarn("Docker name sanitized: %q -> %q", raw, customName)
		}
		doc = withRuntimeName(doc, customName)
		printInfo("Custom Docker container name set to %q", customName)
	}

	display := currentDisplayName(doc)
	err = runForm(
		huh.NewInput().
			Title("Container display name").
			Description("Shown by VS Code and devcontainer tools.").
			Prompt("> ").
			Validate(nonEmpty("display name")).
			Value(&display),
	)
	if err != nil {
		return nil, "", err
	}

	sanitized := names.SanitizeDisplayName(display)
	if sanitized != display {
		printWarn("Name sanitized: %q -> %q", display, sanitized)
	}

	doc = devcontainer.Merge(doc, devcontainer.Document{"name": sanitized})
	printInfo("Container display name set to %q", sanitized)
	return doc, customName, nil
}

func currentDisplayName(doc devcontainer.Document) string {
	if s, ok := doc["name"].(string); ok && s != "" {
		return s
	}
	return names.DefaultDisplayName
}
