// Package mempool provides the pooled node allocator the trees are
// designed to work with. The trees themselves never allocate; callers
// create elements through a Pool, hand them to a tree, and return them
// here after erasing them.
package mempool

import "sync"

// Pool recycles elements of one type through a free list. The zero
// Pool is not usable; construct with New. A Pool is safe for use by
// multiple goroutines.
type Pool[T any] struct {
	mu    sync.Mutex
	free  []*T
	reset func(*T)
	total int
}

// New creates a pool. reset, if non-nil, is applied to every element
// as it is released, before the element becomes available to Create
// again; use it to drop references the element holds.
func New[T any](reset func(*T)) *Pool[T] {
	return &Pool[T]{reset: reset}
}

// Create returns an element, reusing a released one when available.
// Reused elements are returned as reset left them.
func (p *Pool[T]) Create() *T {
	p.mu.Lock()
	if n := len(p.free); n > 0 {
		e := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		p.mu.Unlock()
		return e
	}
	p.total++
	p.mu.Unlock()
	return new(T)
}

// Release returns an element to the pool. The element must be detached
// from any container; releasing it twice or using it afterwards is a
// caller error.
func (p *Pool[T]) Release(e *T) {
	if e == nil {
		return
	}
	if p.reset != nil {
		p.reset(e)
	}
	p.mu.Lock()
	p.free = append(p.free, e)
	p.mu.Unlock()
}

// Total returns the number of elements ever created by the pool.
func (p *Pool[T]) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// Idle returns the number of released elements waiting for reuse.
func (p *Pool[T]) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
