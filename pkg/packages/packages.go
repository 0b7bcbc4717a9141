// Package packages searches the Debian package index so the configure flow
// can offer apt packages for installation into the container.
package packages

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
	"github.com/devcontainer-god/devctl/pkg/errors"
)

// Package is a single search result from packages.debian.org.
type Package struct {
	Name        string
	Description string
}

const (
	defaultSearchURL = "https://packages.debian.org/search"
	defaultSuite     = "bookworm"

	// maxResults caps how many hits a single search contributes to the
	// selection list.
	maxResults = 30

	// descriptionLimit keeps menu entries on one line.
	descriptionLimit = 100
)

// Searcher queries the Debian package search frontend.
type Searcher struct {
	URL    string
	Suite  string
	Client *http.Client
}

// NewSearcher returns a searcher against the bookworm suite with a ten
// second timeout.
func NewSearcher() *Searcher {
	return &Searcher{
		URL:    defaultSearchURL,
		Suite:  defaultSuite,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search runs a name search and parses the result page. Queries shorter
// than two characters are rejected before any network traffic.
func (s *Searcher) Search(ctx context.Context, query string) ([]Package, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, errors.ValidationError(
			"search term must be at least 2 characters",
			map[string]interface{}{"query": query},
		)
	}

	params := url.Values{}
	params.Set("keywords", query)
	params.Set("searchon", "names")
	params.Set("suite", s.Suite)
	params.Set("section", "all")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalog, "package search failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeCatalog,
			fmt.Sprintf("package search returned %s", resp.Status))
	}

	return ParseResults(resp.Body)
}

// ParseResults extracts package names and descriptions from a
// packages.debian.org search result page. Each hit is an <h3> reading
// "Package <name>" followed by a <ul> whose first <li> ends with the
// short description after the suite prefix.
func ParseResults(r io.Reader) ([]Package, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var pkgs []Package
	doc.Find("h3").EachWithBreak(func(_ int, header *goquery.Selection) bool {
		text := strings.TrimSpace(header.Text())
		if !strings.HasPrefix(text, "Package ") {
			return true
		}
		name := strings.TrimSpace(strings.TrimPrefix(text, "Package "))
		if name == "" {
			return true
		}

		description := ""
		if li := header.NextFiltered("ul").Find("li").First(); li.Length() > 0 {
			parts := strings.Split(li.Text(), ": ")
			description = strings.TrimSpace(parts[len(parts)-1])
			if len(description) > descriptionLimit {
				description = description[:descriptionLimit] + "..."
			}
		}
		if description == "" {
			return true
		}

		pkgs = append(pkgs, Package{Name: name, Description: description})
		return len(pkgs) < maxResults
	})

	return pkgs, nil
}

// Label renders a package the way the selection prompt displays it.
func (p Package) Label() string {
	return fmt.Sprintf("%s - %s", p.Name, p.Description)
}

// Fragment builds the configuration fragment installing the selected
// packages after container creation.
func Fragment(selected []Package) devcontainer.Document {
	pkgNames := make([]string, 0, len(selected))
	for _, p := range selected {
		pkgNames = append(pkgNames, p.Name)
	}
	return devcontainer.Document{
		devcontainer.KeyPostCreateCommand: "sudo apt-get install -y " + strings.Join(pkgNames, " "),
	}
}
