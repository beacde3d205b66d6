package lifecycle_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"boxctl/internal/inventory"
	"boxctl/internal/lifecycle"
	"boxctl/internal/runtime/fake"
)

func TestKillSendsOneSigterm(t *testing.T) {
	rt := fake.NewRuntime()
	rt.AddContainer(inventory.ContainerRecord{
		ID:    "0123456789abcdef",
		Names: []string{"/web-1"},
		State: "running",
	})

	if err := lifecycle.NewIssuer(rt).Kill(context.Background(), "web-1"); err != nil {
		t.Fatalf("Kill() error = %v", err)
	}

	calls := rt.Calls("Kill")
	if len(calls) != 1 {
		t.Fatalf("Kill sent %d requests, want exactly 1", len(calls))
	}
	if name := calls[0].Args[0]; name != "web-1" {
		t.Errorf("kill target = %v, want %q", name, "web-1")
	}
	if signal := calls[0].Args[1]; signal != lifecycle.SignalTerm {
		t.Errorf("kill signal = %v, want %q", signal, lifecycle.SignalTerm)
	}
}

func TestKillEmptyName(t *testing.T) {
	rt := fake.NewRuntime()

	if err := lifecycle.NewIssuer(rt).Kill(context.Background(), "   "); err == nil {
		t.Fatal("Kill() error = nil, want name validation error")
	}
	if calls := rt.Calls("Kill"); len(calls) != 0 {
		t.Errorf("Kill sent %d requests for empty name, want 0", len(calls))
	}
}

func TestKillNoSuchContainer(t *testing.T) {
	rt := fake.NewRuntime()

	err := lifecycle.NewIssuer(rt).Kill(context.Background(), "ghost")
	if !errors.Is(err, lifecycle.ErrNoSuchContainer) {
		t.Fatalf("Kill() error = %v, want ErrNoSuchContainer", err)
	}
}

func TestKillTransportErrorSurfacesUnchanged(t *testing.T) {
	rt := fake.NewRuntime()
	transportErr := fmt.Errorf("daemon unreachable")
	rt.KillErr = transportErr

	err := lifecycle.NewIssuer(rt).Kill(context.Background(), "web-1")
	if !errors.Is(err, transportErr) {
		t.Fatalf("Kill() error = %v, want wrapped transport error", err)
	}
}

func TestIssuerSignalOverride(t *testing.T) {
	rt := fake.NewRuntime()
	rt.AddContainer(inventory.ContainerRecord{Names: []string{"/web-1"}, State: "running"})

	issuer := lifecycle.NewIssuerWithSignal(rt, "SIGINT")
	if issuer.Signal() != "SIGINT" {
		t.Fatalf("Signal() = %q, want SIGINT", issuer.Signal())
	}
	if err := issuer.Kill(context.Background(), "web-1"); err != nil {
		t.Fatalf("Kill() error = %v", err)
	}
	if signal := rt.Calls("Kill")[0].Args[1]; signal != "SIGINT" {
		t.Errorf("kill signal = %v, want SIGINT", signal)
	}
}

func TestIssuerSignalDefaultsWhenBlank(t *testing.T) {
	issuer := lifecycle.NewIssuerWithSignal(fake.NewRuntime(), "  ")
	if issuer.Signal() != lifecycle.SignalTerm {
		t.Errorf("Signal() = %q, want %q", issuer.Signal(), lifecycle.SignalTerm)
	}
}
