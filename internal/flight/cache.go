package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"skyfare/pkg/cache"
)

const (
	// searchCacheKey is the single blob holding every cached search.
	searchCacheKey = "flight_search_cache"

	DefaultCacheTTLMinutes = 15
	maxCacheEntries        = 10
)

type cacheEntry struct {
	SearchParams SearchParams `json:"searchParams"`
	Flights      []Flight     `json:"flights"`
	Timestamp    int64        `json:"timestamp"` // unix milliseconds
	UsedFallback bool         `json:"usedFallback"`
}

// CachedSearch is what a cache hit yields.
type CachedSearch struct {
	Flights      []Flight
	UsedFallback bool
}

// SearchCache stores recent search results keyed by their parameters.
// Entries expire after the TTL and the entry count is capped, evicting
// oldest first. All entries live in one blob behind a cache.Cache store
// so a test can substitute the in-memory implementation.
type SearchCache struct {
	store      cache.Cache
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewSearchCache(store cache.Cache, ttlMinutes int) *SearchCache {
	if ttlMinutes <= 0 {
		ttlMinutes = DefaultCacheTTLMinutes
	}
	return &SearchCache{
		store:      store,
		ttl:        time.Duration(ttlMinutes) * time.Minute,
		maxEntries: maxCacheEntries,
		now:        time.Now,
	}
}

// cacheKeyFor derives the deterministic entry key from search parameters.
func cacheKeyFor(params SearchParams) string {
	returnPart := params.ReturnDate
	if returnPart == "" {
		returnPart = "oneway"
	}
	return fmt.Sprintf("%s-%s-%s-%s-%d",
		params.Origin, params.Destination, params.DepartDate, returnPart, params.Adults)
}

// Get returns the cached result for params, or nil on a miss or an
// expired entry.
func (c *SearchCache) Get(ctx context.Context, params SearchParams) (*CachedSearch, error) {
	entries, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	entry, ok := entries[cacheKeyFor(params)]
	if !ok || !c.valid(entry) {
		return nil, nil
	}

	return &CachedSearch{Flights: entry.Flights, UsedFallback: entry.UsedFallback}, nil
}

// Put upserts the entry for params, then drops expired entries and caps
// the total count at maxEntries, oldest first.
func (c *SearchCache) Put(ctx context.Context, params SearchParams, flights []Flight, usedFallback bool) error {
	entries, err := c.load(ctx)
	if err != nil {
		return err
	}

	entries[cacheKeyFor(params)] = cacheEntry{
		SearchParams: params,
		Flights:      flights,
		Timestamp:    c.now().UnixMilli(),
		UsedFallback: usedFallback,
	}

	for key, entry := range entries {
		if !c.valid(entry) {
			delete(entries, key)
		}
	}
	c.evictOldest(entries)

	blob, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, searchCacheKey, string(blob), c.ttl)
}

// Clear drops every cached search.
func (c *SearchCache) Clear(ctx context.Context) error {
	return c.store.Del(ctx, searchCacheKey)
}

func (c *SearchCache) load(ctx context.Context) (map[string]cacheEntry, error) {
	blob, err := c.store.Get(ctx, searchCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return map[string]cacheEntry{}, nil
		}
		return nil, err
	}

	entries := map[string]cacheEntry{}
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		// A corrupt blob is treated as empty rather than poisoning
		// every future search.
		return map[string]cacheEntry{}, nil
	}
	return entries, nil
}

func (c *SearchCache) valid(entry cacheEntry) bool {
	age := c.now().UnixMilli() - entry.Timestamp
	return age < c.ttl.Milliseconds()
}

func (c *SearchCache) evictOldest(entries map[string]cacheEntry) {
	if len(entries) <= c.maxEntries {
		return
	}

	type keyed struct {
		key string
		ts  int64
	}
	byAge := make([]keyed, 0, len(entries))
	for key, entry := range entries {
		byAge = append(byAge, keyed{key: key, ts: entry.Timestamp})
	}
	sort.Slice(byAge, func(i, j int) bool {
		return byAge[i].ts < byAge[j].ts
	})

	for _, victim := range byAge[:len(entries)-c.maxEntries] {
		delete(entries, victim.key)
	}
}
