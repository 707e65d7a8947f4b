package font

import "unicode"

// Config holds atlas construction parameters.
type Config struct {
	// Size is the font size in points. Default: 32
	Size float32

	// DPIScale is the device pixel ratio. Glyphs are rasterized at
	// 72*DPIScale DPI and metrics are reported divided by it.
	// Default: 2
	DPIScale float32

	// Width and Height are the atlas dimensions in pixels.
	// Default: 512x512
	Width, Height int

	// First and Last bound the packed character range (inclusive).
	// Default: ' ' to '~'
	First, Last rune

	// Padding between glyphs and around the atlas border, in pixels.
	// Default: 2
	Padding int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Size:     32,
		DPIScale: 2,
		Width:    512,
		Height:   512,
		First:    ' ',
		Last:     '~',
		Padding:  2,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return &ConfigError{Field: "Size", Reason: "must be positive"}
	}
	if c.DPIScale <= 0 {
		return &ConfigError{Field: "DPIScale", Reason: "must be positive"}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return &ConfigError{Field: "Width/Height", Reason: "must be positive"}
	}
	if c.Width > 16384 || c.Height > 16384 {
		return &ConfigError{Field: "Width/Height", Reason: "must be at most 16384"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.First < 0 || c.Last < c.First {
		return &ConfigError{Field: "First/Last", Reason: "must be a non-empty range"}
	}
	if c.Last > unicode.MaxRune {
		return &ConfigError{Field: "First/Last", Reason: "must not exceed unicode.MaxRune"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "font: invalid atlas config." + e.Field + ": " + e.Reason
}
