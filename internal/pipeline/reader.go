package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/quandora/grunt-umd-wrapper/internal/annotation"
	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
)

var utf8BOM = []byte("\uFEFF")

// DefaultCacheSize is the number of files a CachedReader keeps.
const DefaultCacheSize = 256

// CachedReader reads files once and serves repeated reads from memory.
// Includes shared by many sources and file templates are read once per batch.
// It is safe for concurrent use.
type CachedReader struct {
	cache *lru.Cache[string, []byte]
}

// NewCachedReader creates a reader holding up to size files.
func NewCachedReader(size int) (*CachedReader, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("creating file cache: %w", err)
	}
	return &CachedReader{cache: cache}, nil
}

// ReadFile returns the contents of path without a leading byte order mark.
func (r *CachedReader) ReadFile(path string) ([]byte, error) {
	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}

	if data, ok := r.cache.Get(key); ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oerrors.NewReadError(path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	r.cache.Add(key, data)
	return data, nil
}

// Include implements annotation.ReadFunc.
func (r *CachedReader) Include(dir, rel string) (string, error) {
	data, err := r.ReadFile(annotation.ResolvePath(dir, rel))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Len returns the number of cached files.
func (r *CachedReader) Len() int {
	return r.cache.Len()
}
