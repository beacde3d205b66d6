package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedRecord reports an inventory record that violates an
// invariant of the local store, such as an image identifier without a
// digest prefix or an image with no tags.
var ErrMalformedRecord = errors.New("malformed inventory record")

const (
	digestPrefix = "sha256:"
	shortIDLen   = 12

	// noName substitutes for containers the runtime reports without
	// any name.
	noName = "n/a"
)

// ImageRow is the fixed three-column display form of an image.
type ImageRow struct {
	ID     string // short ID, digest prefix stripped
	Tag    string // primary (first) repository tag
	SizeKB string // size in kilobytes, integer division
}

// ContainerRow is the fixed four-column display form of a container.
type ContainerRow struct {
	ID    string
	Name  string
	Image string
	State string
}

// NormalizeImage shapes a raw image record into a display row.
//
// Image metadata comes from a trusted local store, so a missing digest
// prefix, a too-short identifier, or an empty tag list fails with
// ErrMalformedRecord rather than producing a partial row.
func NormalizeImage(rec ImageRecord) (ImageRow, error) {
	id, ok := strings.CutPrefix(rec.ID, digestPrefix)
	if !ok {
		return ImageRow{}, fmt.Errorf("%w: image id %q lacks %q prefix", ErrMalformedRecord, rec.ID, digestPrefix)
	}
	if len(id) < shortIDLen {
		return ImageRow{}, fmt.Errorf("%w: image id %q too short", ErrMalformedRecord, rec.ID)
	}
	if len(rec.RepoTags) == 0 {
		return ImageRow{}, fmt.Errorf("%w: image %q has no tags", ErrMalformedRecord, id[:shortIDLen])
	}

	return ImageRow{
		ID:     id[:shortIDLen],
		Tag:    rec.RepoTags[0],
		SizeKB: strconv.FormatInt(rec.Size/1024, 10),
	}, nil
}

// NormalizeContainer shapes a raw container record into a display row.
// It never fails: container metadata is routinely sparse and every
// missing field has a placeholder.
func NormalizeContainer(rec ContainerRecord) ContainerRow {
	id := rec.ID
	if len(id) > shortIDLen {
		id = id[:shortIDLen]
	}

	// Join first, then strip a single leading slash from the joined
	// string: ["/a", "/b"] renders as "a, /b".
	name := noName
	if len(rec.Names) > 0 {
		name = strings.TrimPrefix(strings.Join(rec.Names, ", "), "/")
	}

	return ContainerRow{
		ID:    id,
		Name:  name,
		Image: rec.Image,
		State: rec.State,
	}
}
