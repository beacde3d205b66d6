package fake

import (
	"context"
	"errors"
	"testing"

	"boxctl/internal/inventory"
	"boxctl/internal/lifecycle"
)

func TestRuntimeEnforcesStatusFilter(t *testing.T) {
	rt := NewRuntime()
	rt.AddContainer(inventory.ContainerRecord{Names: []string{"/up"}, State: "running"})
	rt.AddContainer(inventory.ContainerRecord{Names: []string{"/down"}, State: "exited"})

	records, err := rt.Containers(context.Background(), inventory.RunningContainers())
	if err != nil {
		t.Fatalf("Containers() error = %v", err)
	}
	if len(records) != 1 || records[0].Names[0] != "/up" {
		t.Errorf("records = %+v, want only /up", records)
	}

	// No filter returns everything.
	all, err := rt.Containers(context.Background(), inventory.ContainerQuery{All: true})
	if err != nil {
		t.Fatalf("Containers() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered records = %d, want 2", len(all))
	}
}

func TestRuntimeKillMarksExited(t *testing.T) {
	rt := NewRuntime()
	rt.AddContainer(inventory.ContainerRecord{Names: []string{"/web-1"}, State: "running"})

	if err := rt.Kill(context.Background(), "web-1", "SIGTERM"); err != nil {
		t.Fatalf("Kill() error = %v", err)
	}

	records, err := rt.Containers(context.Background(), inventory.RunningContainers())
	if err != nil {
		t.Fatalf("Containers() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("running records after kill = %d, want 0", len(records))
	}
}

func TestRuntimeKillUnknownTarget(t *testing.T) {
	rt := NewRuntime()

	err := rt.Kill(context.Background(), "ghost", "SIGTERM")
	if !errors.Is(err, lifecycle.ErrNoSuchContainer) {
		t.Fatalf("Kill() error = %v, want ErrNoSuchContainer", err)
	}
}

func TestCallRecorder(t *testing.T) {
	rt := NewRuntime()
	_, _ = rt.Images(context.Background(), inventory.AllImages())
	_, _ = rt.Containers(context.Background(), inventory.RunningContainers())

	if got := len(rt.Calls("")); got != 2 {
		t.Fatalf("recorded %d calls, want 2", got)
	}
	if got := len(rt.Calls("Images")); got != 1 {
		t.Errorf("Images calls = %d, want 1", got)
	}

	rt.Reset()
	if got := len(rt.Calls("")); got != 0 {
		t.Errorf("calls after Reset = %d, want 0", got)
	}
}
