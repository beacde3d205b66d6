// Package inventory queries the container runtime for images and
// containers and shapes the raw records into fixed display rows.
//
// Raw records mirror what the runtime reports: image metadata is an
// invariant of the local store and is validated strictly, while
// container metadata is routinely sparse (anonymous or half-initialized
// containers) and degrades to placeholders instead of failing.
package inventory

// ImageRecord is a raw image summary as reported by the runtime.
type ImageRecord struct {
	// ID is the content-addressable identifier, prefixed with the
	// digest algorithm (e.g. "sha256:...").
	ID string
	// Size is the image size in bytes.
	Size int64
	// RepoTags holds the repository tags. May be empty for dangling
	// images.
	RepoTags []string
}

// ContainerRecord is a raw container summary as reported by the
// runtime. Every field is optional.
type ContainerRecord struct {
	ID string
	// Names as reported by the runtime, each usually "/"-prefixed.
	Names []string
	Image string
	State string
}

// ContainerDetail is the inspect view of a single container.
type ContainerDetail struct {
	ID    string
	Name  string
	Image string
	// SizeRootFs is the root filesystem size in bytes; nil when the
	// runtime did not compute it.
	SizeRootFs *int64
	Status     string
}
