package cli

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
)

// promptPorts optionally adds forwarded ports to the descriptor. Specs are
// validated with the Docker port parser before they land in the document.
func promptPorts(doc devcontainer.Document) (devcontainer.Document, error) {
	forward := false
	err := runForm(
		huh.NewConfirm().
			Title("Forward ports from the container?").
			Value(&forward),
	)
	if err != nil {
		return nil, err
	}
	if !forward {
		return doc, nil
	}

	input := ""
	err = runForm(
		huh.NewInput().
			Title("Ports to forward").
			Description("Comma separated, e.g. 3000, 8080:80").
			Prompt("> ").
			Validate(func(value string) error {
				_, err := portsFragment(strings.Split(value, ","))
				return err
			}).
			Value(&input),
	)
	if err != nil {
		return nil, err
	}

	fragment, err := portsFragment(strings.Split(input, ","))
	if err != nil {
		return nil, err
	}
	if ports, ok := fragment["forwardPorts"].([]interface{}); !ok || len(ports) == 0 {
		return doc, nil
	}
	return devcontainer.Merge(doc, fragment), nil
}
