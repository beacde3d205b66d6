// Package docker adapts the Docker Engine API to the inventory and
// lifecycle transport boundaries.
package docker

import (
	"context"
	"fmt"

	"boxctl/internal/inventory"
	"boxctl/internal/lifecycle"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	dockerfilters "github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
)

var (
	_ inventory.Runtime = (*Runtime)(nil)
	_ lifecycle.Runtime = (*Runtime)(nil)
)

// Runtime speaks to the local Docker daemon over its default control
// socket.
type Runtime struct {
	cli *client.Client
}

// NewRuntime creates a Runtime with a new Docker client from the
// environment. host, when non-empty, overrides the daemon endpoint.
func NewRuntime(host string) (*Runtime, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}
	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	return &Runtime{cli: cli}, nil
}

// NewRuntimeFromClient wraps an existing Docker client.
func NewRuntimeFromClient(cli *client.Client) *Runtime {
	return &Runtime{cli: cli}
}

// Close releases the underlying client connection.
func (r *Runtime) Close() error {
	return r.cli.Close()
}

func (r *Runtime) Images(ctx context.Context, q inventory.ImageQuery) ([]inventory.ImageRecord, error) {
	summaries, err := r.cli.ImageList(ctx, image.ListOptions{All: q.All})
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	out := make([]inventory.ImageRecord, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, inventory.ImageRecord{
			ID:       s.ID,
			Size:     s.Size,
			RepoTags: append([]string(nil), s.RepoTags...),
		})
	}
	return out, nil
}

func (r *Runtime) Containers(ctx context.Context, q inventory.ContainerQuery) ([]inventory.ContainerRecord, error) {
	filters := dockerfilters.NewArgs()
	for key, values := range q.Filters {
		for _, value := range values {
			filters.Add(key, value)
		}
	}

	containers, err := r.cli.ContainerList(ctx, container.ListOptions{All: q.All, Filters: filters})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	out := make([]inventory.ContainerRecord, 0, len(containers))
	for _, c := range containers {
		out = append(out, inventory.ContainerRecord{
			ID:    c.ID,
			Names: append([]string(nil), c.Names...),
			Image: c.Image,
			State: c.State,
		})
	}
	return out, nil
}

func (r *Runtime) Inspect(ctx context.Context, nameOrID string) (inventory.ContainerDetail, error) {
	info, err := r.cli.ContainerInspect(ctx, nameOrID)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return inventory.ContainerDetail{}, fmt.Errorf("container %q: %w", nameOrID, inventory.ErrNotFound)
		}
		return inventory.ContainerDetail{}, fmt.Errorf("inspect container %q: %w", nameOrID, err)
	}

	detail := inventory.ContainerDetail{
		ID:         info.ID,
		Name:       info.Name,
		Image:      info.Image,
		SizeRootFs: info.SizeRootFs,
	}
	if info.State != nil {
		detail.Status = string(info.State.Status)
	}
	return detail, nil
}

func (r *Runtime) Kill(ctx context.Context, name, signal string) error {
	if err := r.cli.ContainerKill(ctx, name, signal); err != nil {
		if errdefs.IsNotFound(err) {
			return fmt.Errorf("container %q: %w", name, lifecycle.ErrNoSuchContainer)
		}
		return fmt.Errorf("kill container %q: %w", name, err)
	}
	return nil
}
