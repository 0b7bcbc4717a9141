package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/docker/go-connections/nat"

	"github.com/devcontainer-god/devctl/pkg/conffile"
	"github.com/devcontainer-god/devctl/pkg/devcontainer"
)

const (
	defaultRemoteUser = "vscode"
	defaultUID        = "1000"
	defaultGID        = "1000"
)

// userFragment builds the user-mapping fragment from the template plus the
// answers given. A custom remote user overrides remoteUser; a custom UID
// or GID replaces runArgs with a matching --user mapping (the unanswered
// half keeps its default).
func userFragment(template devcontainer.Document, remoteUser, uid, gid string) devcontainer.Document {
	fragment := devcontainer.Merge(devcontainer.Document{}, template)

	if remoteUser != "" {
		fragment["remoteUser"] = remoteUser
	}

	if uid != "" || gid != "" {
		if uid == "" {
			uid = defaultUID
		}
		if gid == "" {
			gid = defaultGID
		}
		fragment["runArgs"] = []interface{}{fmt.Sprintf("--user=%s:%s", uid, gid)}
	}

	return fragment
}

// withRuntimeName returns a copy of doc whose runArgs carry
// --name=<name>, replacing any previous --name argument.
func withRuntimeName(doc devcontainer.Document, name string) devcontainer.Document {
	result := devcontainer.Merge(devcontainer.Document{}, doc)

	var runArgs []interface{}
	if existing, ok := result["runArgs"].([]interface{}); ok {
		for _, arg := range existing {
			if s, ok := arg.(string); ok && strings.HasPrefix(s, "--name=") {
				continue
			}
			runArgs = append(runArgs, arg)
		}
	}
	runArgs = append(runArgs, "--name="+name)

	result["runArgs"] = runArgs
	return result
}

// portsFragment validates the given port specs with the Docker nat parser
// and builds a forwardPorts fragment. Plain container ports become
// numbers, host:container mappings stay strings, matching what the
// devcontainer schema accepts.
func portsFragment(specs []string) (devcontainer.Document, error) {
	ports := make([]interface{}, 0, len(specs))
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		if _, err := nat.ParsePortSpec(spec); err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", spec, err)
		}
		if n, err := strconv.Atoi(spec); err == nil {
			ports = append(ports, n)
		} else {
			ports = append(ports, spec)
		}
	}
	return devcontainer.Document{"forwardPorts": ports}, nil
}

// confFromDocument derives the flat .conf attributes from a completed
// descriptor, pulling UID/GID out of the --user run argument when present.
func confFromDocument(doc devcontainer.Document, customName string) conffile.Config {
	c := conffile.Config{
		RemoteUser:    defaultRemoteUser,
		ContainerName: "devcontainer",
		CustomName:    customName,
	}

	if s, ok := doc["remoteUser"].(string); ok && s != "" {
		c.RemoteUser = s
	}
	if s, ok := doc["name"].(string); ok && s != "" {
		c.ContainerName = s
	}
	if s, ok := doc["image"].(string); ok {
		c.Image = s
	}

	if runArgs, ok := doc["runArgs"].([]interface{}); ok {
		for _, arg := range runArgs {
			s, ok := arg.(string)
			if !ok || !strings.HasPrefix(s, "--user=") {
				continue
			}
			mapping := strings.TrimPrefix(s, "--user=")
			if uid, gid, found := strings.Cut(mapping, ":"); found {
				c.UserID, c.GroupID = uid, gid
			} else {
				c.UserID = mapping
			}
		}
	}

	return c
}
