package font

import "errors"

// Sentinel errors for the font package. Unreadable font files are reported
// as *quad.ResourceError.
var (
	// ErrAtlasOverflow is returned when the requested character range and
	// size do not fit in the given atlas dimensions.
	ErrAtlasOverflow = errors.New("font: atlas overflow")

	// ErrBadCache is returned when a baked atlas cannot be decoded.
	ErrBadCache = errors.New("font: invalid baked atlas")
)
