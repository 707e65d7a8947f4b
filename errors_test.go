package quad_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/go-theft-auto/quad"
)

func TestResourceError(t *testing.T) {
	var err error = &quad.ResourceError{Path: "assets/tiles.png", Err: fs.ErrNotExist}

	if !errors.Is(err, quad.ErrResourceLoad) {
		t.Error("ResourceError should match ErrResourceLoad")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("ResourceError should unwrap to its cause")
	}
	if errors.Is(err, quad.ErrCapacityExceeded) {
		t.Error("ResourceError should not match other sentinels")
	}
	if got, want := err.Error(), "load assets/tiles.png: file does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
