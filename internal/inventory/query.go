package inventory

// ImageQuery selects which images a listing returns.
type ImageQuery struct {
	// All includes dangling and untagged images already on disk, not
	// only those referenced by containers.
	All bool
}

// ContainerQuery selects which containers a listing returns.
//
// All combined with a narrowing filter is the runtime's own idiom for
// "every container matching the filter": without All the runtime
// pre-restricts to running containers before the filter applies.
type ContainerQuery struct {
	All bool
	// Filters maps a filter key to its accepted values.
	Filters map[string][]string
}

// AllImages returns the query for the full local image store.
func AllImages() ImageQuery {
	return ImageQuery{All: true}
}

// RunningContainers returns the query for containers in the running
// state.
func RunningContainers() ContainerQuery {
	return ContainerQuery{
		All:     true,
		Filters: map[string][]string{"status": {"running"}},
	}
}
