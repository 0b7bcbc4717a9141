package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
)

// promptWaypipe asks whether to enable Wayland GUI forwarding and merges
// the waypipe template fragment when the answer is yes.
func promptWaypipe(paths Paths, doc devcontainer.Document) (devcontainer.Document, error) {
	enable := false
	err := runForm(
		huh.NewConfirm().
			Title("Enable Waypipe GUI forwarding?").
			Description("Forwards Wayland applications to the host compositor. Linux hosts only.").
			Value(&enable),
	)
	if err != nil {
		return nil, err
	}

	if !enable {
		printInfo("Skipping Waypipe configuration.")
		return doc, nil
	}

	fragment, err := loadTemplate(paths, templateWaypipe)
	if err != nil {
		return nil, err
	}
	printInfo("Waypipe support added.")
	return devcontainer.Merge(doc, fragment), nil
}
