package source

import (
	"fmt"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Reader reads source files as text and keeps recently read contents in memory.
type Reader struct {
	cache *lru.Cache[string, string]
}

func NewReader(size int) (*Reader, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create source cache: %w", err)
	}

	return &Reader{
		cache: cache,
	}, nil
}

func (r *Reader) Read(path string) (string, error) {
	if content, ok := r.cache.Get(path); ok {
		return content, nil
	}

	// * read and normalize line endings
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	content := strings.ReplaceAll(string(bytes), "\r\n", "\n")

	r.cache.Add(path, content)
	return content, nil
}

// Forget drops a cached file so the next read observes its new contents.
func (r *Reader) Forget(path string) {
	r.cache.Remove(path)
}

func (r *Reader) Purge() {
	r.cache.Purge()
}

func (r *Reader) Len() int {
	return r.cache.Len()
}
