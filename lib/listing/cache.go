package listing

import (
	"hash/fnv"

	cache "github.com/SporkHubr/echo-http-cache"
)

// Cache invalidates cached listing responses. It shares the adapter used by
// the echo-http-cache middleware that serves GET /dashboard/invoices, so
// releasing the entry here makes the next read hit the store again.
type Cache struct {
	adapter cache.Adapter
}

func NewCache(adapter cache.Adapter) *Cache {
	return &Cache{adapter: adapter}
}

// Invalidate drops the cached response for path. Fire-and-forget: a miss is
// a no-op and there is nothing to report back.
func (c *Cache) Invalidate(path string) {
	c.adapter.Release(keyFor(path))
}

// keyFor mirrors the middleware's cache key derivation: fnv64a over the
// request URL string.
func keyFor(url string) uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(url))
	return hash.Sum64()
}
