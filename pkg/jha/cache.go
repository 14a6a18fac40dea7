package jha

import (
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/jha-go/pkg/jha/models"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes Load per file path for the lifetime of the process.
// Concurrent first loads of one path share a single read.
type Cache struct {
	opts  Options
	group singleflight.Group

	mu    sync.RWMutex
	books map[string]*models.Workbook
}

// NewCache creates a cache that loads workbooks with opts.
func NewCache(opts Options) *Cache {
	return &Cache{
		opts:  opts,
		books: make(map[string]*models.Workbook),
	}
}

// Load returns the workbook at path, reading it on first use.
// Failed loads are not cached.
func (c *Cache) Load(path string) (*models.Workbook, error) {
	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}

	c.mu.RLock()
	wb, ok := c.books[key]
	c.mu.RUnlock()
	if ok {
		return wb, nil
	}

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		wb, err := Load(path, c.opts)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.books[key] = wb
		c.mu.Unlock()
		log.Info().
			Str("path", key).
			Int("sheets", len(wb.SheetNames)).
			Msg("Workbook loaded")
		return wb, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debug().Str("path", key).Msg("Shared in-flight workbook load")
	}
	return v.(*models.Workbook), nil
}

// Len returns the number of cached workbooks.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}
