// Package cli implements the devctl CLI commands.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "devctl",
	Short: "Build and connect to devcontainers",
	Long: `devctl is a helper for VS Code style devcontainers.

It builds a devcontainer.json descriptor through a sequence of interactive
prompts (base template, GUI forwarding, user mapping, features, packages),
then lets you attach a shell to the resulting container once it is running.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("dir", "d", defaultDevcontainerDir,
		"Path to the .devcontainer directory")

	// Bind to viper
	_ = viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.SetEnvPrefix("DEVCTL")
	viper.AutomaticEnv()

	// Add subcommands
	rootCmd.AddCommand(newConfigureCmd())
	rootCmd.AddCommand(newConnectCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newVersionCmd())
}
