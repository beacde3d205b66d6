package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Service answers the listing operations: one runtime round trip, then
// pure in-memory normalization of every returned record.
type Service struct {
	runtime Runtime
}

// NewService creates a Service on the given runtime.
func NewService(rt Runtime) *Service {
	return &Service{runtime: rt}
}

// ImageRows lists all stored images as display rows.
//
// A single malformed record fails the whole listing: either the full
// table is produced or none of it is, so a broken store never renders
// a partial inventory.
func (s *Service) ImageRows(ctx context.Context) ([]ImageRow, error) {
	records, err := s.runtime.Images(ctx, AllImages())
	if err != nil {
		return nil, err
	}

	rows := make([]ImageRow, 0, len(records))
	for _, rec := range records {
		row, err := NormalizeImage(rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	slog.Debug("listed images", "count", len(rows))
	return rows, nil
}

// ContainerRows lists running containers as display rows. Sparse
// records normalize to placeholders and never fail the listing.
func (s *Service) ContainerRows(ctx context.Context) ([]ContainerRow, error) {
	records, err := s.runtime.Containers(ctx, RunningContainers())
	if err != nil {
		return nil, err
	}

	rows := make([]ContainerRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, NormalizeContainer(rec))
	}
	slog.Debug("listed containers", "count", len(rows))
	return rows, nil
}

// Detail inspects a single container by name or identifier.
func (s *Service) Detail(ctx context.Context, nameOrID string) (ContainerDetail, error) {
	nameOrID = strings.TrimSpace(nameOrID)
	if nameOrID == "" {
		return ContainerDetail{}, fmt.Errorf("container name is required")
	}
	detail, err := s.runtime.Inspect(ctx, nameOrID)
	if err != nil {
		return ContainerDetail{}, err
	}
	return detail, nil
}
