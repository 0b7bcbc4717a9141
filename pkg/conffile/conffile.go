// Package conffile persists the subset of devcontainer configuration the
// connect workflow needs as a flat KEY=VALUE file (.conf) next to the
// generated descriptor.
package conffile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devcontainer-god/devctl/pkg/errors"
)

// Config holds the connection-relevant attributes extracted from a
// completed devcontainer document.
type Config struct {
	RemoteUser    string
	UserID        string
	GroupID       string
	ContainerName string
	Image         string
	CustomName    string
}

const (
	keyRemoteUser    = "REMOTE_USER"
	keyUserID        = "USER_ID"
	keyGroupID       = "GROUP_ID"
	keyContainerName = "CONTAINER_NAME"
	keyImage         = "IMAGE"
	keyCustomName    = "CUSTOM_DOCKER_CONTAINER_NAME"
)

// Parse reads KEY=VALUE lines. Blank lines and lines starting with # are
// ignored; values keep any later '=' characters; keys and values are
// trimmed.
func Parse(data []byte) (map[string]string, error) {
	vars := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		vars[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return vars, nil
}

// Load reads and validates the .conf file at path. A missing file is
// reported as a NOT_FOUND error so callers can point the user at the
// configure command instead of failing hard.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("configuration file", path)
		}
		return nil, errors.ParseError(path, err)
	}

	vars, err := Parse(data)
	if err != nil {
		return nil, errors.ParseError(path, err)
	}

	cfg := &Config{
		RemoteUser:    vars[keyRemoteUser],
		UserID:        vars[keyUserID],
		GroupID:       vars[keyGroupID],
		ContainerName: vars[keyContainerName],
		Image:         vars[keyImage],
		CustomName:    vars[keyCustomName],
	}
	if cfg.RemoteUser == "" {
		cfg.RemoteUser = "vscode"
	}
	if cfg.ContainerName == "" {
		return nil, errors.ValidationError(
			fmt.Sprintf("%s missing from %s", keyContainerName, path),
			map[string]interface{}{"file": path},
		)
	}

	return cfg, nil
}

// Save writes the .conf file atomically with explanatory comments, in a
// stable order so regenerated files diff cleanly.
func Save(path string, cfg Config) error {
	var b strings.Builder
	b.WriteString("# Devcontainer Configuration\n")
	b.WriteString("# Generated automatically - do not edit manually\n")
	b.WriteString("\n")
	b.WriteString("# User Configuration\n")
	fmt.Fprintf(&b, "%s=%s\n", keyRemoteUser, cfg.RemoteUser)
	fmt.Fprintf(&b, "%s=%s\n", keyUserID, cfg.UserID)
	fmt.Fprintf(&b, "%s=%s\n", keyGroupID, cfg.GroupID)
	b.WriteString("\n")
	b.WriteString("# Container Configuration\n")
	fmt.Fprintf(&b, "%s=%s\n", keyContainerName, cfg.ContainerName)
	fmt.Fprintf(&b, "%s=%s\n", keyImage, cfg.Image)
	fmt.Fprintf(&b, "%s=%s\n", keyCustomName, cfg.CustomName)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
