package quad

import "errors"

// Sentinel errors for the quad package.
var (
	// ErrCapacityExceeded is returned when a quad, vertex or index does not
	// fit in a fixed-capacity Batch. The rejected data is not stored.
	ErrCapacityExceeded = errors.New("quad: batch capacity exceeded")

	// ErrIndexOutOfRange is returned by AddIndices when an index would
	// reference a vertex that has not been added.
	ErrIndexOutOfRange = errors.New("quad: index out of range")

	// ErrResourceLoad matches every *ResourceError through errors.Is.
	ErrResourceLoad = errors.New("quad: resource load failed")
)

// ResourceError is returned when a font or image file cannot be read or
// parsed. The caller can skip the resource or pick another one.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return "load " + e.Path + ": " + e.Err.Error()
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Is reports ErrResourceLoad as a match.
func (e *ResourceError) Is(target error) bool {
	return target == ErrResourceLoad
}
