package review

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/heartmarshall/tenxcards-backend/internal/client"
)

// ErrNotCached is returned by Load when no candidates are stored for the
// generation.
var ErrNotCached = errors.New("no cached candidates for generation")

// Cache keeps the candidates of pending reviews on disk between CLI
// invocations. Entries are keyed by generation id.
type Cache struct {
	dir string
}

// NewCache stores entries under dir. An empty dir selects
// <user cache dir>/tenxcards/reviews.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		dir = filepath.Join(base, "tenxcards", "reviews")
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) path(generationID string) (string, error) {
	id, err := uuid.Parse(generationID)
	if err != nil {
		return "", fmt.Errorf("invalid generation id %q: %w", generationID, err)
	}
	return filepath.Join(c.dir, id.String()+".json"), nil
}

// Put stores the result of a generation, replacing any previous entry.
func (c *Cache) Put(result client.GenerationResult) error {
	p, err := c.path(result.GenerationID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o700); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("commit cache entry: %w", err)
	}
	return nil
}

// Load returns the stored result for a generation.
func (c *Cache) Load(generationID string) (client.GenerationResult, error) {
	p, err := c.path(generationID)
	if err != nil {
		return client.GenerationResult{}, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return client.GenerationResult{}, ErrNotCached
	}
	if err != nil {
		return client.GenerationResult{}, fmt.Errorf("read cache entry: %w", err)
	}

	var result client.GenerationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return client.GenerationResult{}, fmt.Errorf("decode cache entry: %w", err)
	}
	return result, nil
}

// Clear removes the entry for a generation. Missing entries are ignored.
func (c *Cache) Clear(generationID string) error {
	p, err := c.path(generationID)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cache entry: %w", err)
	}
	return nil
}
