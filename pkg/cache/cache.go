package cache

import (
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Catalog cache namespaces.
const (
	NamespaceProductsList  = "products_list"
	NamespaceProductDetail = "product_detail"
	NamespaceCategories    = "categories"
)

// Manager holds one TTL cache per namespace. It is an injected capability
// owned by process startup, not a package-level singleton. Each namespace
// serializes its own map internally; the manager never holds any lock while
// a caller computes a miss.
type Manager struct {
	caches map[string]*gocache.Cache
}

// NewManager creates a manager with the catalog namespaces and their TTLs.
func NewManager() *Manager {
	configs := map[string]time.Duration{
		NamespaceProductsList:  5 * time.Minute,
		NamespaceProductDetail: 5 * time.Minute,
		NamespaceCategories:    30 * time.Minute,
	}

	caches := make(map[string]*gocache.Cache, len(configs))
	for name, ttl := range configs {
		caches[name] = gocache.New(ttl, 2*ttl)
	}
	return &Manager{caches: caches}
}

// Get returns the cached value for key. Expired entries behave as misses.
// An unknown namespace always misses.
func (m *Manager) Get(namespace, key string) (interface{}, bool) {
	c, ok := m.caches[namespace]
	if !ok {
		return nil, false
	}
	return c.Get(key)
}

// Set stores value under key with the namespace's TTL. Unknown namespaces
// are ignored.
func (m *Manager) Set(namespace, key string, value interface{}) {
	c, ok := m.caches[namespace]
	if !ok {
		return
	}
	c.SetDefault(key, value)
}

// Invalidate clears every entry in a namespace.
func (m *Manager) Invalidate(namespace string) {
	c, ok := m.caches[namespace]
	if !ok {
		return
	}
	c.Flush()
	log.Printf("cache invalidated: %s", namespace)
}

// InvalidateKey removes a single key from a namespace.
func (m *Manager) InvalidateKey(namespace, key string) {
	c, ok := m.caches[namespace]
	if !ok {
		return
	}
	c.Delete(key)
}

// InvalidateAll clears every namespace.
func (m *Manager) InvalidateAll() {
	for name, c := range m.caches {
		c.Flush()
		log.Printf("cache invalidated: %s", name)
	}
}

// Stats returns the current entry count per namespace, for monitoring.
func (m *Manager) Stats() map[string]int {
	stats := make(map[string]int, len(m.caches))
	for name, c := range m.caches {
		stats[name] = c.ItemCount()
	}
	return stats
}
