package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
)

func newInspectCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the generated devcontainer descriptor",
		Long: `Print the persisted devcontainer.json (comments stripped).

Examples:
  devctl inspect
  devctl inspect -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := resolvePaths()
			if err != nil {
				return err
			}

			doc, err := devcontainer.LoadFile(paths.DescriptorPath)
			if err != nil {
				return err
			}

			out, err := renderDocument(doc, outputFormat)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "json", "Output format (json, yaml)")

	return cmd
}

func renderDocument(doc devcontainer.Document, format string) (string, error) {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return string(data), nil
	case "json":
		data, err := json.MarshalIndent(doc, "", "    ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected json or yaml)", format)
	}
}
