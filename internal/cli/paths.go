package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const defaultDevcontainerDir = ".devcontainer"

// Paths carries every filesystem location a workflow touches, resolved
// once per invocation and passed explicitly instead of living in package
// globals.
type Paths struct {
	// DevcontainerDir is the absolute path to the .devcontainer directory.
	DevcontainerDir string

	// TemplatesDir holds the JSONC fragment templates, when present on
	// disk. Embedded defaults are used otherwise.
	TemplatesDir string

	// DescriptorPath is where devcontainer.json is written.
	DescriptorPath string

	// ConfPath is the flat KEY=VALUE file consumed by connect.
	ConfPath string

	// ProjectName is the project directory's base name; devcontainers
	// mount the workspace at /workspaces/<ProjectName> and bake the same
	// name into generated image tags.
	ProjectName string
}

// resolvePaths builds the path set from the configured devcontainer
// directory (flag, DEVCTL_DIR, or the ./.devcontainer default).
func resolvePaths() (Paths, error) {
	dir := viper.GetString("dir")
	if dir == "" {
		dir = defaultDevcontainerDir
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return Paths{}, err
	}

	return Paths{
		DevcontainerDir: abs,
		TemplatesDir:    filepath.Join(abs, "templates"),
		DescriptorPath:  filepath.Join(abs, "devcontainer.json"),
		ConfPath:        filepath.Join(abs, ".conf"),
		ProjectName:     filepath.Base(filepath.Dir(abs)),
	}, nil
}

// WorkspacePath is the directory the project is mounted at inside the
// container.
func (p Paths) WorkspacePath() string {
	return "/workspaces/" + p.ProjectName
}

// ensureDevcontainerDir creates the devcontainer directory if missing, so
// a first `devctl configure` works in a fresh project.
func ensureDevcontainerDir(p Paths) error {
	return os.MkdirAll(p.DevcontainerDir, 0o755)
}
