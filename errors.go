package structview

import "errors"

var (
	// ErrDepthExceeded is returned when traversal exceeds the configured
	// maximum depth.
	ErrDepthExceeded = errors.New("structview: depth exceeded")

	// ErrCyclic is returned when a container is reached again within its
	// own traversal.
	ErrCyclic = errors.New("structview: cyclic value")
)
