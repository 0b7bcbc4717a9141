package cli

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
)

//go:embed templates/*.jsonc
var embeddedTemplates embed.FS

const (
	templateMain    = "main.jsonc"
	templateWaypipe = "waypipe.jsonc"
	templateUser    = "user.jsonc"
)

// loadTemplate reads a named JSONC template from the project's templates
// directory, falling back to the embedded default when the project does
// not carry its own copy.
func loadTemplate(paths Paths, name string) (devcontainer.Document, error) {
	onDisk := filepath.Join(paths.TemplatesDir, name)
	if _, err := os.Stat(onDisk); err == nil {
		return devcontainer.LoadFile(onDisk)
	}

	data, err := embeddedTemplates.ReadFile("templates/" + name)
	if err != nil {
		return nil, err
	}
	return devcontainer.Parse(data)
}
