package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/coocood/freecache"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

const megabyte = 1024 * 1024

// freecache rejects entries larger than 1/1024 of the cache, so the size
// bounds the largest cacheable value: 64 MB stores up to 64 KB, enough for
// several years of daily overview series.
const (
	DefaultSizeMB = 128
	MinSizeMB     = 64
)

// MaxEntryBytes is the largest value a cache of sizeMB accepts.
func MaxEntryBytes(sizeMB int) int {
	return cacheSize(sizeMB) / 1024
}

var _ domain.ResultCache = (*MemoryCache)(nil)

// MemoryCache is the in-process result cache backed by freecache.
// Values are stored as JSON so hits never alias live data.
type MemoryCache struct {
	cache *freecache.Cache
}

func NewMemoryCache(sizeMB int) *MemoryCache {
	return &MemoryCache{cache: freecache.NewCache(cacheSize(sizeMB))}
}

// NewMemoryCacheWithTimer lets tests drive expiry.
func NewMemoryCacheWithTimer(sizeMB int, timer freecache.Timer) *MemoryCache {
	return &MemoryCache{cache: freecache.NewCacheCustomTimer(cacheSize(sizeMB), timer)}
}

func cacheSize(sizeMB int) int {
	if sizeMB <= 0 {
		sizeMB = DefaultSizeMB
	}
	return sizeMB * megabyte
}

func (c *MemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, err := c.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("memory cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.cache.Del([]byte(key))
		return false, fmt.Errorf("memory cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory cache encode %s: %w", key, err)
	}
	if err := c.cache.Set([]byte(key), raw, expireSeconds(ttl)); err != nil {
		return fmt.Errorf("memory cache set %s: %w", key, err)
	}
	return nil
}

func (c *MemoryCache) InvalidatePrefix(_ context.Context, prefix string) error {
	var matched [][]byte
	it := c.cache.NewIterator()
	for entry := it.Next(); entry != nil; entry = it.Next() {
		if strings.HasPrefix(string(entry.Key), prefix) {
			matched = append(matched, entry.Key)
		}
	}

	for _, key := range matched {
		c.cache.Del(key)
	}
	return nil
}

// expireSeconds rounds up to whole seconds; freecache treats 0 as no expiry.
func expireSeconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	return max(1, int(math.Ceil(ttl.Seconds())))
}
