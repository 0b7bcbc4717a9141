package cli

import (
	"strings"
	"testing"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
)

func TestRenderDocument_JSON(t *testing.T) {
	doc := devcontainer.Document{"name": "God Container", "remoteUser": "vscode"}

	out, err := renderDocument(doc, "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"name": "God Container"`) {
		t.Errorf("unexpected JSON output: %s", out)
	}
	if !strings.Contains(out, "    ") {
		t.Error("expected four-space indentation")
	}
}

func TestRenderDocument_YAML(t *testing.T) {
	doc := devcontainer.Document{"name": "God Container"}

	out, err := renderDocument(doc, "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "name: God Container") {
		t.Errorf("unexpected YAML output: %s", out)
	}
}

func TestRenderDocument_UnknownFormat(t *testing.T) {
	if _, err := renderDocument(devcontainer.Document{}, "toml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
