// Package features fetches the devcontainer feature catalog published at
// containers.dev and converts selections into configuration fragments.
package features

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
	"github.com/devcontainer-god/devctl/pkg/errors"
)

// Feature is one entry of the published feature collection.
type Feature struct {
	Name       string
	Link       string
	Maintainer string
	Reference  string
	Version    string
}

const defaultCatalogURL = "https://containers.dev/features"

// Catalog fetches the feature collection over HTTP.
type Catalog struct {
	URL        string
	Client     *http.Client
	Retries    int
	RetryDelay time.Duration
}

// NewCatalog returns a catalog client with the defaults the configure flow
// uses: two attempts, ten second timeout.
func NewCatalog() *Catalog {
	return &Catalog{
		URL:        defaultCatalogURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
		Retries:    2,
		RetryDelay: 2 * time.Second,
	}
}

// Fetch downloads and parses the catalog, retrying transient failures.
// Callers are expected to fall back to Fallback() when it errors, so the
// configure flow keeps working offline.
func (c *Catalog) Fetch(ctx context.Context) ([]Feature, error) {
	var lastErr error
	for attempt := 0; attempt < c.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		feats, err := c.fetchOnce(ctx)
		if err == nil {
			return feats, nil
		}
		lastErr = err
	}
	return nil, errors.Wrap(errors.ErrCodeCatalog, "failed to fetch feature catalog", lastErr)
}

func (c *Catalog) fetchOnce(ctx context.Context) ([]Feature, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	feats, err := ParseCatalog(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(feats) == 0 {
		return nil, fmt.Errorf("no features found in catalog page")
	}
	return feats, nil
}

// ParseCatalog extracts features from the containers.dev collection table
// (#collectionTable: name with link, maintainer, reference, version).
// Malformed rows are skipped.
func ParseCatalog(r io.Reader) ([]Feature, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table#collectionTable")
	if table.Length() == 0 {
		return nil, fmt.Errorf("feature table not found")
	}

	var feats []Feature
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cols := row.Find("td")
		if cols.Length() < 4 {
			return
		}

		nameCell := cols.Eq(0)
		feat := Feature{
			Name:       strings.TrimSpace(nameCell.Text()),
			Maintainer: strings.TrimSpace(cols.Eq(1).Text()),
			Reference:  cellCode(cols.Eq(2)),
			Version:    cellCode(cols.Eq(3)),
		}
		if link := nameCell.Find("a"); link.Length() > 0 {
			feat.Name = strings.TrimSpace(link.Text())
			feat.Link, _ = link.Attr("href")
		}
		if feat.Name == "" || feat.Reference == "" {
			return
		}
		feats = append(feats, feat)
	})

	return feats, nil
}

// cellCode prefers the <code> child of a cell, falling back to its text.
func cellCode(cell *goquery.Selection) string {
	if code := cell.Find("code"); code.Length() > 0 {
		return strings.TrimSpace(code.Text())
	}
	return strings.TrimSpace(cell.Text())
}

// Label renders a feature the way the selection prompt displays it.
func (f Feature) Label() string {
	return fmt.Sprintf("%s (%s)", f.Name, f.Version)
}

// Fallback is the curated list used when the catalog cannot be reached.
func Fallback() []Feature {
	return []Feature{
		{Name: "Node.js (via nvm)", Maintainer: "devcontainers", Reference: "ghcr.io/devcontainers/features/node:1", Version: "1"},
		{Name: "Python", Maintainer: "devcontainers", Reference: "ghcr.io/devcontainers/features/python:1", Version: "1"},
		{Name: "Docker (Docker-in-Docker)", Maintainer: "devcontainers", Reference: "ghcr.io/devcontainers/features/docker-in-docker:2", Version: "2"},
		{Name: "Git (from source)", Maintainer: "devcontainers", Reference: "ghcr.io/devcontainers/features/git:1", Version: "1"},
		{Name: "GitHub CLI", Maintainer: "devcontainers", Reference: "ghcr.io/devcontainers/features/github-cli:1", Version: "1"},
		{Name: "Go", Maintainer: "devcontainers", Reference: "ghcr.io/devcontainers/features/go:1", Version: "1"},
		{Name: "Rust", Maintainer: "devcontainers", Reference: "ghcr.io/devcontainers/features/rust:1", Version: "1"},
		{Name: "Java (via SDKMAN!)", Maintainer: "devcontainers", Reference: "ghcr.io/devcontainers/features/java:1", Version: "1"},
	}
}

// Fragment builds the configuration fragment for the selected features:
// {"features": {"<reference>": {}}}.
func Fragment(selected []Feature) devcontainer.Document {
	refs := make(map[string]interface{}, len(selected))
	for _, f := range selected {
		refs[f.Reference] = map[string]interface{}{}
	}
	return devcontainer.Document{"features": refs}
}
