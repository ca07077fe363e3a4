package container

import "errors"

// Sentinel errors for container resolution.
var (
	// ErrNotBound is returned when no binding exists for a key in the
	// container or any of its ancestors.
	ErrNotBound = errors.New("container: binding not found")

	// ErrWrongType is returned by the typed Resolve helpers when the bound
	// value does not have the requested type.
	ErrWrongType = errors.New("container: bound value has unexpected type")
)
