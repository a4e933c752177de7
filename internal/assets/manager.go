// Package assets handles game asset loading and caching.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"
)

// ErrNotFound is returned when no source contains the requested file.
var ErrNotFound = errors.New("asset not found")

// Manager reads files from a stack of filesystems.
// Sources are searched in reverse order (last added = highest priority).
type Manager struct {
	sources []fs.FS
	cache   *byteCache
	mu      sync.RWMutex
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: newByteCache(),
	}
}

// AddDir adds a directory on disk as an asset source.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding asset dir %s: not a directory", dir)
	}
	m.AddFS(os.DirFS(dir))
	return nil
}

// AddFS adds an arbitrary filesystem as an asset source.
func (m *Manager) AddFS(fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, fsys)
	m.mu.Unlock()
}

// Load loads a file from the sources. Paths use forward slashes.
func (m *Manager) Load(name string) ([]byte, error) {
	name = path.Clean(name)
	if data, ok := m.cache.get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.sources[i], name)
		if err == nil {
			m.cache.set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Close forgets all sources and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sources = nil
	m.cache.clear()
}

// byteCache holds file contents by cleaned path.
type byteCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newByteCache() *byteCache {
	return &byteCache{data: make(map[string][]byte)}
}

func (c *byteCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.data[key]
	return data, ok
}

func (c *byteCache) set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

func (c *byteCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.data)
}
