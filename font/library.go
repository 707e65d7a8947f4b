package font

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type libraryKey struct {
	path     string
	cfg      Config
	inMemory bool
}

// Library caches built atlases by font path and configuration, evicting
// the least recently used one when full. Switching between a few sizes or
// DPI scales (a window moving between monitors) then only rasterizes each
// combination once.
//
// Library is safe for concurrent use; the atlases it returns are
// immutable.
type Library struct {
	atlases *lru.Cache[libraryKey, *Atlas]
	load    func(path string, cfg Config) (*Atlas, error)
}

// NewLibrary creates a library holding up to size atlases.
func NewLibrary(size int) (*Library, error) {
	c, err := lru.New[libraryKey, *Atlas](size)
	if err != nil {
		return nil, fmt.Errorf("font: library: %w", err)
	}
	return &Library{atlases: c, load: LoadAtlas}, nil
}

// Get returns the atlas for path and cfg, building it on first use.
// Errors are not cached.
func (l *Library) Get(path string, cfg Config) (*Atlas, error) {
	key := libraryKey{path: path, cfg: cfg}
	if a, ok := l.atlases.Get(key); ok {
		return a, nil
	}

	a, err := l.load(path, cfg)
	if err != nil {
		return nil, err
	}
	l.atlases.Add(key, a)
	return a, nil
}

// GetData is like Get for a font already in memory, such as an embedded
// fallback. name identifies data in the cache.
func (l *Library) GetData(name string, data []byte, cfg Config) (*Atlas, error) {
	key := libraryKey{path: name, cfg: cfg, inMemory: true}
	if a, ok := l.atlases.Get(key); ok {
		return a, nil
	}

	a, err := NewAtlas(data, cfg)
	if err != nil {
		return nil, err
	}
	l.atlases.Add(key, a)
	return a, nil
}

// Len returns the number of cached atlases.
func (l *Library) Len() int {
	return l.atlases.Len()
}

// Purge drops every cached atlas.
func (l *Library) Purge() {
	l.atlases.Purge()
}
