// Package lifecycle issues termination commands against the container
// runtime.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// SignalTerm is the graceful termination signal sent by default. It
// asks the container's init process to shut down; it is not the
// unconditional kill.
const SignalTerm = "SIGTERM"

// ErrNoSuchContainer reports that the kill target does not exist (or
// is already gone). Adapters map the transport's not-found condition
// onto this sentinel so callers can report it distinctly from success.
var ErrNoSuchContainer = errors.New("no such container")

// Runtime is the transport boundary kill requests go through.
type Runtime interface {
	// Kill sends one termination signal to the named container.
	Kill(ctx context.Context, name, signal string) error
}

// Issuer sends exactly one kill request per invocation. It neither
// retries nor verifies that the container actually stopped — a
// successful send is an acknowledged request, not a confirmed
// termination.
type Issuer struct {
	runtime Runtime
	signal  string
}

// NewIssuer creates an Issuer that sends SignalTerm.
func NewIssuer(rt Runtime) *Issuer {
	return &Issuer{runtime: rt, signal: SignalTerm}
}

// NewIssuerWithSignal creates an Issuer that sends the given signal
// instead of SignalTerm.
func NewIssuerWithSignal(rt Runtime, signal string) *Issuer {
	signal = strings.TrimSpace(signal)
	if signal == "" {
		signal = SignalTerm
	}
	return &Issuer{runtime: rt, signal: signal}
}

// Signal returns the signal this Issuer sends.
func (i *Issuer) Signal() string {
	return i.signal
}

// Kill sends the termination signal to the named container. Transport
// results are surfaced unchanged; existence of the target is not
// validated beyond the runtime's own answer.
func (i *Issuer) Kill(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("container name is required")
	}
	if err := i.runtime.Kill(ctx, name, i.signal); err != nil {
		return err
	}
	slog.Debug("sent kill", "container", name, "signal", i.signal)
	return nil
}
