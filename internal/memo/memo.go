// Package memo caches pure, deterministic functions keyed by their exact
// argument tuples.
package memo

import "sync"

// Memo is an unbounded insert-if-absent cache for referentially transparent
// functions with a small key domain. Concurrent recomputation of the same key
// is harmless: both goroutines produce equal values and LoadOrStore keeps one.
type Memo[K comparable, V any] struct {
	m sync.Map
}

func (c *Memo[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := c.m.Load(key); ok {
		return v.(V)
	}
	v, _ := c.m.LoadOrStore(key, compute())
	return v.(V)
}

// Clear drops every entry so the next call recomputes.
func (c *Memo[K, V]) Clear() {
	c.m.Range(func(k, _ any) bool {
		c.m.Delete(k)
		return true
	})
}

func (c *Memo[K, V]) Len() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
