package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devcontainer-god/devctl/pkg/conffile"
	"github.com/devcontainer-god/devctl/pkg/docker"
	"github.com/devcontainer-god/devctl/pkg/errors"
)

func newConnectCmd() *cobra.Command {
	var shell string

	cmd := &cobra.Command{
		Use:     "connect",
		Aliases: []string{"conn"},
		Short:   "Attach a shell to the running devcontainer",
		Long: `Attach an interactive shell to the project's running devcontainer.

Reads the .conf file written by 'devctl configure', lists running Docker
containers, and classifies them against the stored identity: an exact
custom container name wins, then the VS Code image pattern for the project
directory, then the normalized display name. When several containers are
running you pick one from a menu with likely matches listed first.

Examples:
  devctl connect
  devctl connect --shell zsh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(); err != nil {
				return err
			}
			paths, err := resolvePaths()
			if err != nil {
				return err
			}
			return runConnect(cmd.Context(), paths, shell)
		},
	}

	cmd.Flags().StringVar(&shell, "shell", "bash", "Shell to start inside the container")

	return cmd
}

func runConnect(ctx context.Context, paths Paths, shell string) error {
	printHeader("=== Connecting to Devcontainer ===")

	cfg, err := conffile.Load(paths.ConfPath)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			printWarn("Configuration file not found: %s", paths.ConfPath)
			fmt.Println("Run `devctl configure` first to configure the devcontainer.")
			return nil
		}
		return err
	}

	printInfo("Container name from config: %s", cfg.ContainerName)
	printInfo("Remote user: %s", cfg.RemoteUser)

	cli, err := docker.NewClient()
	if err != nil {
		return err
	}
	defer cli.Close()

	records, err := cli.ListRunning(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		printWarn("No running containers found.")
		fmt.Println("Make sure your devcontainer is running in VS Code.")
		return nil
	}

	identity := docker.SearchIdentity{
		DisplayName: cfg.ContainerName,
		CustomName:  cfg.CustomName,
		DirPattern:  paths.ProjectName,
	}

	classified := docker.Classify(identity, records)
	if len(classified) == 0 {
		printWarn("No usable containers reported by the runtime.")
		return nil
	}

	selected, err := selectContainer(classified)
	if err != nil {
		return err
	}
	if selected == nil {
		printWarn("No container selected.")
		return nil
	}

	workspace := paths.WorkspacePath()
	printInfo("Connecting to container %s as user %s", selected.Name, cfg.RemoteUser)
	printInfo("Working directory: %s", workspace)

	return docker.AttachShell(ctx, docker.AttachOptions{
		ContainerID: selected.ID,
		User:        cfg.RemoteUser,
		WorkDir:     workspace,
		Shell:       shell,
	})
}
