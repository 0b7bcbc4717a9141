package cli

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
	"github.com/devcontainer-god/devctl/pkg/features"
)

// promptFeatures offers the containers.dev feature catalog for
// multi-selection and merges the chosen references into the document.
func promptFeatures(ctx context.Context, doc devcontainer.Document) (devcontainer.Document, error) {
	add := true
	err := runForm(
		huh.NewConfirm().
			Title("Add devcontainer features?").
			Description("Features provide additional tools and runtimes for the container.").
			Value(&add),
	)
	if err != nil {
		return nil, err
	}
	if !add {
		printInfo("Skipping feature installation.")
		return doc, nil
	}

	printInfo("Fetching devcontainer features...")
	catalog, err := features.NewCatalog().Fetch(ctx)
	if err != nil {
		printWarn("Could not reach containers.dev (%v); using the fallback list.", err)
		catalog = features.Fallback()
	}
	printInfo("%d features available.", len(catalog))

	options := make([]huh.Option[int], 0, len(catalog))
	for i, f := range catalog {
		options = append(options, huh.NewOption(f.Label(), i))
	}

	var picked []int
	err = runForm(
		huh.NewMultiSelect[int]().
			Title("Select devcontainer features").
			Description("Type to filter, space to select, enter to confirm.").
			Options(options...).
			Filterable(true).
			Value(&picked),
	)
	if err != nil {
		return nil, err
	}

	if len(picked) == 0 {
		printInfo("No features selected.")
		return doc, nil
	}

	selected := make([]features.Feature, 0, len(picked))
	for _, i := range picked {
		selected = append(selected, catalog[i])
	}
	printInfo("Selected %d features.", len(selected))

	return devcontainer.Merge(doc, features.Fragment(selected)), nil
}
