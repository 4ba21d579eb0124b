package remote

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/LeJamon/goswtc/internal/tx"
	lru "github.com/hashicorp/golang-lru/v2"
)

// PathCache keeps recent path finding results by key.
type PathCache struct {
	cache *lru.Cache[string, tx.PathChoice]
}

// NewPathCache returns a cache holding up to size results.
func NewPathCache(size int) (*PathCache, error) {
	c, err := lru.New[string, tx.PathChoice](size)
	if err != nil {
		return nil, fmt.Errorf("path cache: %w", err)
	}
	return &PathCache{cache: c}, nil
}

// PathKey returns the key of a computed path: the hex sha1 of its JSON.
func PathKey(raw []byte) string {
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}

// Put stores choice under the key of the raw computed path and returns the key.
func (c *PathCache) Put(raw []byte, choice tx.PathChoice) string {
	key := PathKey(raw)
	c.cache.Add(key, choice)
	return key
}

// Path returns the result stored under key.
func (c *PathCache) Path(key string) (tx.PathChoice, bool) {
	return c.cache.Get(key)
}

func (c *PathCache) Len() int {
	return c.cache.Len()
}
