package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerGetSet(t *testing.T) {
	m := NewManager()

	_, ok := m.Get(NamespaceProductDetail, "p1")
	assert.False(t, ok)

	m.Set(NamespaceProductDetail, "p1", "value")
	got, ok := m.Get(NamespaceProductDetail, "p1")
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestManagerNamespacesAreIsolated(t *testing.T) {
	m := NewManager()

	m.Set(NamespaceProductDetail, "k", "detail")
	m.Set(NamespaceProductsList, "k", "list")

	detail, _ := m.Get(NamespaceProductDetail, "k")
	list, _ := m.Get(NamespaceProductsList, "k")
	assert.Equal(t, "detail", detail)
	assert.Equal(t, "list", list)

	m.Invalidate(NamespaceProductsList)
	_, ok := m.Get(NamespaceProductsList, "k")
	assert.False(t, ok)
	_, ok = m.Get(NamespaceProductDetail, "k")
	assert.True(t, ok)
}

func TestManagerInvalidateKey(t *testing.T) {
	m := NewManager()

	m.Set(NamespaceProductDetail, "p1", 1)
	m.Set(NamespaceProductDetail, "p2", 2)

	m.InvalidateKey(NamespaceProductDetail, "p1")
	_, ok := m.Get(NamespaceProductDetail, "p1")
	assert.False(t, ok)
	_, ok = m.Get(NamespaceProductDetail, "p2")
	assert.True(t, ok)
}

func TestManagerInvalidateAll(t *testing.T) {
	m := NewManager()

	m.Set(NamespaceProductsList, "a", 1)
	m.Set(NamespaceProductDetail, "b", 2)
	m.Set(NamespaceCategories, "c", 3)

	m.InvalidateAll()
	_, ok := m.Get(NamespaceProductsList, "a")
	assert.False(t, ok)
	_, ok = m.Get(NamespaceProductDetail, "b")
	assert.False(t, ok)
	_, ok = m.Get(NamespaceCategories, "c")
	assert.False(t, ok)
}

func TestManagerUnknownNamespace(t *testing.T) {
	m := NewManager()

	// Writes to unknown namespaces are dropped, reads always miss.
	m.Set("bogus", "k", 1)
	_, ok := m.Get("bogus", "k")
	assert.False(t, ok)
	m.Invalidate("bogus")
	m.InvalidateKey("bogus", "k")
}

func TestManagerStats(t *testing.T) {
	m := NewManager()

	m.Set(NamespaceProductsList, "a", 1)
	m.Set(NamespaceProductsList, "b", 2)
	m.Set(NamespaceCategories, "all", 3)

	stats := m.Stats()
	assert.Equal(t, 2, stats[NamespaceProductsList])
	assert.Equal(t, 1, stats[NamespaceCategories])
	assert.Equal(t, 0, stats[NamespaceProductDetail])
}
