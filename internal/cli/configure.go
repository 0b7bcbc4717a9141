package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devcontainer-god/devctl/pkg/conffile"
	"github.com/devcontainer-god/devctl/pkg/devcontainer"
)

func newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "configure",
		Aliases: []string{"conf"},
		Short:   "Interactively build devcontainer.json",
		Long: `Build a devcontainer.json descriptor through a sequence of prompts.

The flow starts from a base template and merges one fragment per answered
prompt: Waypipe GUI forwarding, user and UID/GID mapping, container names,
devcontainer features, Debian packages, and forwarded ports. The result is
written to <dir>/devcontainer.json along with a flat <dir>/.conf file that
'devctl connect' reads later.

Examples:
  devctl configure            # configure ./.devcontainer
  devctl configure -d infra/.devcontainer`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(); err != nil {
				return err
			}
			paths, err := resolvePaths()
			if err != nil {
				return err
			}
			return runConfigure(cmd.Context(), paths)
		},
	}

	return cmd
}

func runConfigure(ctx context.Context, paths Paths) error {
	printHeader("=== Configuring Devcontainer ===")
	printInfo("Devcontainer root: %s", paths.DevcontainerDir)

	if err := ensureDevcontainerDir(paths); err != nil {
		return err
	}

	doc, err := loadTemplate(paths, templateMain)
	if err != nil {
		return err
	}

	doc, err = promptWaypipe(paths, doc)
	if err != nil {
		return err
	}

	doc, err = promptUser(paths, doc)
	if err != nil {
		return err
	}

	doc, customName, err := promptContainerName(doc)
	if err != nil {
		return err
	}

	doc, err = promptFeatures(ctx, doc)
	if err != nil {
		return err
	}

	doc, err = promptPrograms(ctx, doc)
	if err != nil {
		return err
	}

	doc, err = promptPorts(doc)
	if err != nil {
		return err
	}

	if err := devcontainer.SaveFile(paths.DescriptorPath, doc); err != nil {
		return err
	}
	printInfo("Descriptor saved to %s", paths.DescriptorPath)

	if err := conffile.Save(paths.ConfPath, confFromDocument(doc, customName)); err != nil {
		return err
	}
	printInfo("Configuration saved to %s", paths.ConfPath)

	fmt.Println("Done. Open the project in VS Code to build the container, then run `devctl connect`.")
	return nil
}
