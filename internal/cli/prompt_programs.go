package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
	"github.com/devcontainer-god/devctl/pkg/packages"
)

const (
	actionSearch = "search"
	actionView   = "view"
	actionFinish = "finish"
	actionSkip   = "skip"
)

// promptPrograms runs the iterative Debian package search loop: the user
// searches the index as often as they like, then selects from everything
// found. Selected packages become an apt-get install postCreateCommand.
func promptPrograms(ctx context.Context, doc devcontainer.Document) (devcontainer.Document, error) {
	printHeader("Select programs to install in the devcontainer")

	searcher := packages.NewSearcher()
	var found []packages.Package
	seen := make(map[string]bool)

loop:
	for {
		options := []huh.Option[string]{
			huh.NewOption("Search for packages", actionSearch),
		}
		if len(found) > 0 {
			options = append(options,
				huh.NewOption("View found packages", actionView),
				huh.NewOption("Finish and select programs", actionFinish),
			)
		}
		options = append(options, huh.NewOption("Skip program installation", actionSkip))

		action := actionSearch
		err := runForm(
			huh.NewSelect[string]().
				Title("Choose an action").
				Options(options...).
				Value(&action),
		)
		if err != nil {
			return nil, err
		}

		switch action {
		case actionSearch:
			if err := searchOnce(ctx, searcher, &found, seen); err != nil {
				return nil, err
			}
		case actionView:
			for _, p := range found {
				printInfo("  %s", p.Label())
			}
		case actionFinish:
			break loop
		case actionSkip:
			printInfo("Skipping program installation.")
			return doc, nil
		}
	}

	options := make([]huh.Option[int], 0, len(found))
	for i, p := range found {
		options = append(options, huh.NewOption(p.Label(), i))
	}

	var picked []int
	err := runForm(
		huh.NewMultiSelect[int]().
			Title("Select programs to install").
			Options(options...).
			Filterable(true).
			Value(&picked),
	)
	if err != nil {
		return nil, err
	}

	if len(picked) == 0 {
		printInfo("No programs selected.")
		return doc, nil
	}

	selected := make([]packages.Package, 0, len(picked))
	for _, i := range picked {
		selected = append(selected, found[i])
	}

	fragment := packages.Fragment(selected)
	printInfo("Will add command: %s", fragment[devcontainer.KeyPostCreateCommand])
	return devcontainer.Merge(doc, fragment), nil
}

func searchOnce(ctx context.Context, searcher *packages.Searcher, found *[]packages.Package, seen map[string]bool) error {
	query := ""
	err := runForm(
		huh.NewInput().
			Title("Search term").
			Description("e.g. 'firefox', 'editor', 'media'; at least 2 characters.").
			Prompt("> ").
			Value(&query),
	)
	if err != nil {
		return err
	}

	query = strings.TrimSpace(query)
	printInfo("Searching for %q...", query)

	results, err := searcher.Search(ctx, query)
	if err != nil {
		printWarn("Search failed: %v", err)
		return nil
	}

	added := 0
	for _, p := range results {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		*found = append(*found, p)
		added++
	}
	printInfo("Found %d new packages. Total available: %d", added, len(*found))
	return nil
}
