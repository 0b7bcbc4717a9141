package docker

import (
	"context"
	"os"
	"os/exec"

	"github.com/devcontainer-god/devctl/pkg/errors"
)

// AttachOptions describes an interactive shell attachment.
type AttachOptions struct {
	ContainerID string
	User        string
	WorkDir     string
	Shell       string
}

// AttachShell execs an interactive shell inside a running container,
// inheriting the caller's terminal. It shells out to the docker CLI: the
// CLI already handles TTY allocation, resize, and signal forwarding for
// `exec -it`, which the SDK would make us reimplement.
func AttachShell(ctx context.Context, opts AttachOptions) error {
	shell := opts.Shell
	if shell == "" {
		shell = "bash"
	}

	args := []string{"exec", "-it"}
	if opts.User != "" {
		args = append(args, "--user", opts.User)
	}
	if opts.WorkDir != "" {
		args = append(args, "-w", opts.WorkDir)
	}
	args = append(args, opts.ContainerID, shell)

	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		// A non-zero shell exit (user typed `exit 1`) is not a failure
		// of the attachment itself.
		if _, ok := err.(*exec.ExitError); ok {
			return nil
		}
		return errors.DockerError("exec", err)
	}
	return nil
}
