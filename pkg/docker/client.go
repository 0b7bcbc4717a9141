// Package docker discovers running containers and classifies them against
// the configured devcontainer identity.
package docker

import (
	"context"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"github.com/devcontainer-god/devctl/pkg/errors"
)

// Client wraps the Docker SDK client.
type Client struct {
	client *client.Client
}

// NewClient creates a Docker client from the environment
// (DOCKER_HOST etc.), negotiating the API version with the daemon.
func NewClient() (*Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, errors.DockerError("client init", err)
	}

	return &Client{client: cli}, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// ListRunning returns all running containers as plain records, in the
// order the daemon reports them.
func (c *Client) ListRunning(ctx context.Context) ([]ContainerRecord, error) {
	containers, err := c.client.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, errors.DockerError("container list", err)
	}

	records := make([]ContainerRecord, 0, len(containers))
	for _, summary := range containers {
		records = append(records, summaryToRecord(summary))
	}
	return records, nil
}

func summaryToRecord(summary container.Summary) ContainerRecord {
	rec := ContainerRecord{
		ID:     summary.ID,
		Image:  summary.Image,
		Status: summary.Status,
	}

	// The API reports names with a leading slash.
	if len(summary.Names) > 0 {
		rec.Name = strings.TrimPrefix(summary.Names[0], "/")
	}

	if summary.Created > 0 {
		rec.Created = time.Unix(summary.Created, 0).Format("2006-01-02 15:04:05")
	}

	return rec
}

// ShortID truncates a container ID to the familiar 12-character form.
func ShortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
