package utils

import (
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultFileCacheSize bounds the number of files a FileCache remembers
const DefaultFileCacheSize = 256

// fileStamp identifies one version of a file on disk
type fileStamp struct {
	modTime time.Time
	size    int64
}

type fileEntry[V any] struct {
	value V
	stamp fileStamp
}

// FileCache memoizes values computed from files and drops an entry as soon
// as the file's modification time or size changes. The least recently used
// file is evicted once the cache is full.
type FileCache[V any] struct {
	items *lru.Cache[string, fileEntry[V]]
}

// NewFileCache creates an empty file cache of DefaultFileCacheSize entries
func NewFileCache[V any]() *FileCache[V] {
	return NewFileCacheSize[V](DefaultFileCacheSize)
}

// NewFileCacheSize creates an empty file cache holding at most size files
func NewFileCacheSize[V any](size int) *FileCache[V] {
	if size <= 0 {
		size = DefaultFileCacheSize
	}
	items, _ := lru.New[string, fileEntry[V]](size)
	return &FileCache[V]{items: items}
}

// Load returns the cached value for path, computing and storing it with
// compute when the file is new or changed. Compute errors are not cached.
func (c *FileCache[V]) Load(path string, compute func(path string) (V, error)) (V, error) {
	var zero V

	stat, err := os.Stat(path)
	if err != nil {
		c.Delete(path)
		return zero, err
	}
	stamp := fileStamp{modTime: stat.ModTime(), size: stat.Size()}

	if entry, exists := c.items.Get(path); exists && entry.stamp == stamp {
		return entry.value, nil
	}

	value, err := compute(path)
	if err != nil {
		c.Delete(path)
		return zero, err
	}

	c.items.Add(path, fileEntry[V]{value: value, stamp: stamp})
	return value, nil
}

// Delete removes the entry for path
func (c *FileCache[V]) Delete(path string) {
	c.items.Remove(path)
}

// Size returns the number of cached files
func (c *FileCache[V]) Size() int {
	return c.items.Len()
}
