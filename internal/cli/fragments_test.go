package cli

import (
	"reflect"
	"testing"

	"github.com/devcontainer-god/devctl/pkg/devcontainer"
)

func userTemplate() devcontainer.Document {
	return devcontainer.Document{
		"remoteUser": "vscode",
		"runArgs":    []interface{}{"--user=1000:1000"},
	}
}

func TestUserFragment_AllDefaults(t *testing.T) {
	fragment := userFragment(userTemplate(), "", "", "")

	if fragment["remoteUser"] != "vscode" {
		t.Errorf("expected template remoteUser, got %v", fragment["remoteUser"])
	}
	want := []interface{}{"--user=1000:1000"}
	if !reflect.DeepEqual(fragment["runArgs"], want) {
		t.Errorf("expected template runArgs, got %v", fragment["runArgs"])
	}
}

func TestUserFragment_CustomRemoteUser(t *testing.T) {
	fragment := userFragment(userTemplate(), "dev", "", "")

	if fragment["remoteUser"] != "dev" {
		t.Errorf("expected remoteUser 'dev', got %v", fragment["remoteUser"])
	}
}

func TestUserFragment_CustomUIDDefaultGID(t *testing.T) {
	fragment := userFragment(userTemplate(), "", "1234", "")

	want := []interface{}{"--user=1234:1000"}
	if !reflect.DeepEqual(fragment["runArgs"], want) {
		t.Errorf("expected %v, got %v", want, fragment["runArgs"])
	}
}

func TestUserFragment_CustomBoth(t *testing.T) {
	fragment := userFragment(userTemplate(), "", "1234", "5678")

	want := []interface{}{"--user=1234:5678"}
	if !reflect.DeepEqual(fragment["runArgs"], want) {
		t.Errorf("expected %v, got %v", want, fragment["runArgs"])
	}
}

func TestUserFragment_DoesNotMutateTemplate(t *testing.T) {
	template := userTemplate()
	userFragment(template, "dev", "1234", "5678")

	if template["remoteUser"] != "vscode" {
		t.Error("template remoteUser was mutated")
	}
}

func TestWithRuntimeName_AppendsName(t *testing.T) {
	doc := devcontainer.Document{
		"runArgs": []interface{}{"--user=1000:1000"},
	}

	result := withRuntimeName(doc, "my-container")

	want := []interface{}{"--user=1000:1000", "--name=my-container"}
	if !reflect.DeepEqual(result["runArgs"], want) {
		t.Errorf("expected %v, got %v", want, result["runArgs"])
	}
}

func TestWithRuntimeName_ReplacesExistingName(t *testing.T) {
	doc := devcontainer.Document{
		"runArgs": []interface{}{"--name=old-name", "--user=1000:1000"},
	}

	result := withRuntimeName(doc, "new-name")

	want := []interface{}{"--user=1000:1000", "--name=new-name"}
	if !reflect.DeepEqual(result["runArgs"], want) {
		t.Errorf("expected %v, got %v", want, result["runArgs"])
	}
}

func TestWithRuntimeName_NoRunArgs(t *testing.T) {
	result := withRuntimeName(devcontainer.Document{}, "my-container")

	want := []interface{}{"--name=my-container"}
	if !reflect.DeepEqual(result["runArgs"], want) {
		t.Errorf("expected %v, got %v", want, result["runArgs"])
	}
}

func TestPortsFragment(t *testing.T) {
	fragment, err := portsFragment([]string{"3000", " 8080:80 ", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []interface{}{3000, "8080:80"}
	if !reflect.DeepEqual(fragment["forwardPorts"], want) {
		t.Errorf("expected %v, got %v", want, fragment["forwardPorts"])
	}
}

func TestPortsFragment_Invalid(t *testing.T) {
	if _, err := portsFragment([]string{"not-a-port"}); err == nil {
		t.Error("expected error for invalid port spec")
	}
}

func TestConfFromDocument(t *testing.T) {
	doc := devcontainer.Document{
		"name":       "God Container",
		"image":      "mcr.microsoft.com/devcontainers/base:bookworm",
		"remoteUser": "dev",
		"runArgs":    []interface{}{"--name=god-container", "--user=1234:5678"},
	}

	cfg := confFromDocument(doc, "god-container")

	if cfg.ContainerName != "God Container" {
		t.Errorf("expected container name, got %q", cfg.ContainerName)
	}
	if cfg.RemoteUser != "dev" {
		t.Errorf("expected remote user 'dev', got %q", cfg.RemoteUser)
	}
	if cfg.UserID != "1234" || cfg.GroupID != "5678" {
		t.Errorf("expected 1234/5678, got %q/%q", cfg.UserID, cfg.GroupID)
	}
	if cfg.CustomName != "god-container" {
		t.Errorf("expected custom name, got %q", cfg.CustomName)
	}
}

func TestConfFromDocument_Defaults(t *testing.T) {
	cfg := confFromDocument(devcontainer.Document{}, "")

	if cfg.RemoteUser != "vscode" {
		t.Errorf("expected default remote user, got %q", cfg.RemoteUser)
	}
	if cfg.ContainerName != "devcontainer" {
		t.Errorf("expected default container name, got %q", cfg.ContainerName)
	}
}

func TestConfFromDocument_UserWithoutGroup(t *testing.T) {
	doc := devcontainer.Document{
		"runArgs": []interface{}{"--user=1234"},
	}

	cfg := confFromDocument(doc, "")

	if cfg.UserID != "1234" {
		t.Errorf("expected UID 1234, got %q", cfg.UserID)
	}
	if cfg.GroupID != "" {
		t.Errorf("expected empty GID, got %q", cfg.GroupID)
	}
}
