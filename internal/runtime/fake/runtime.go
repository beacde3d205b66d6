// Package fake provides an in-memory runtime for tests.
package fake

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"boxctl/internal/inventory"
	"boxctl/internal/lifecycle"
)

var (
	_ inventory.Runtime = (*Runtime)(nil)
	_ lifecycle.Runtime = (*Runtime)(nil)
)

// Runtime is an in-memory implementation of the inventory and
// lifecycle transport boundaries. It enforces container status filters
// the way the real daemon does.
type Runtime struct {
	CallRecorder
	mu         sync.Mutex
	images     []inventory.ImageRecord
	containers []inventory.ContainerRecord
	details    map[string]inventory.ContainerDetail

	ImagesErr     error
	ContainersErr error
	InspectErr    error
	KillErr       error
}

// NewRuntime creates an empty Runtime.
func NewRuntime() *Runtime {
	return &Runtime{details: make(map[string]inventory.ContainerDetail)}
}

// AddImage stores an image record.
func (r *Runtime) AddImage(rec inventory.ImageRecord) {
	r.mu.Lock()
	r.images = append(r.images, rec)
	r.mu.Unlock()
}

// AddContainer stores a container record.
func (r *Runtime) AddContainer(rec inventory.ContainerRecord) {
	r.mu.Lock()
	r.containers = append(r.containers, rec)
	r.mu.Unlock()
}

// SetDetail stores the inspect view for a name or identifier.
func (r *Runtime) SetDetail(nameOrID string, d inventory.ContainerDetail) {
	r.mu.Lock()
	r.details[nameOrID] = d
	r.mu.Unlock()
}

func (r *Runtime) Images(ctx context.Context, q inventory.ImageQuery) ([]inventory.ImageRecord, error) {
	r.record("Images", q)
	if r.ImagesErr != nil {
		return nil, r.ImagesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.images), nil
}

func (r *Runtime) Containers(ctx context.Context, q inventory.ContainerQuery) ([]inventory.ContainerRecord, error) {
	r.record("Containers", q)
	if r.ContainersErr != nil {
		return nil, r.ContainersErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]inventory.ContainerRecord, 0, len(r.containers))
	for _, c := range r.containers {
		if matchesStatus(q.Filters["status"], c.State) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *Runtime) Inspect(ctx context.Context, nameOrID string) (inventory.ContainerDetail, error) {
	r.record("Inspect", nameOrID)
	if r.InspectErr != nil {
		return inventory.ContainerDetail{}, r.InspectErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.details[nameOrID]
	if !ok {
		return inventory.ContainerDetail{}, fmt.Errorf("container %q: %w", nameOrID, inventory.ErrNotFound)
	}
	return d, nil
}

func (r *Runtime) Kill(ctx context.Context, name, signal string) error {
	r.record("Kill", name, signal)
	if r.KillErr != nil {
		return r.KillErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.containers {
		if containerNamed(c, name) {
			r.containers[i].State = "exited"
			return nil
		}
	}
	return fmt.Errorf("container %q: %w", name, lifecycle.ErrNoSuchContainer)
}

func matchesStatus(accepted []string, state string) bool {
	if len(accepted) == 0 {
		return true
	}
	return slices.Contains(accepted, state)
}

func containerNamed(c inventory.ContainerRecord, name string) bool {
	for _, n := range c.Names {
		if strings.TrimPrefix(n, "/") == name {
			return true
		}
	}
	return c.ID == name
}
