package inventory

import (
	"context"
	"errors"
)

// ErrNotFound reports that the runtime has no container matching the
// given name or identifier. Adapters map their transport-level
// not-found condition onto this sentinel.
var ErrNotFound = errors.New("no such container")

// Runtime is the transport boundary the inventory queries through. One
// client is constructed per invocation and passed in explicitly; the
// package holds no ambient connection state.
type Runtime interface {
	// Images performs one list-images round trip.
	Images(ctx context.Context, q ImageQuery) ([]ImageRecord, error)
	// Containers performs one list-containers round trip.
	Containers(ctx context.Context, q ContainerQuery) ([]ContainerRecord, error)
	// Inspect fetches the detail view of a single container.
	Inspect(ctx context.Context, nameOrID string) (ContainerDetail, error)
}
