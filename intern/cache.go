// Package intern provides a session-scoped string interning cache.
//
// Identifier prefixes and local parts repeat heavily in large OBO
// documents ("GO", "PMID", "part_of", ...). Interning them through a
// shared Cache means every occurrence of the same text aliases one
// backing allocation, so comparing two interned strings usually reduces
// to a pointer compare inside the runtime.
//
// A Cache is created per parse session and threaded explicitly through
// every build operation; there is no package-level cache, so concurrent
// parse sessions never alias each other's memory.
package intern

import "sync"

// Cache deduplicates string values within one parse session.
// It is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewCache creates an empty interning cache.
func NewCache() *Cache {
	return &Cache{m: make(map[string]string)}
}

// Intern returns a canonical copy of s. Two calls with equal text
// return the identical backing string within one cache.
func (c *Cache) Intern(s string) string {
	if s == "" {
		return ""
	}
	c.mu.RLock()
	v, ok := c.m[s]
	c.mu.RUnlock()
	if ok {
		return v
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[s]; ok {
		return v
	}
	// Clone so the cache never pins a large parse buffer.
	v = string(append([]byte(nil), s...))
	c.m[v] = v
	return v
}

// InternBytes interns the string value of b without the caller having
// to convert first.
func (c *Cache) InternBytes(b []byte) string {
	c.mu.RLock()
	v, ok := c.m[string(b)]
	c.mu.RUnlock()
	if ok {
		return v
	}
	return c.Intern(string(b))
}

// Len reports the number of distinct strings held by the cache.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
