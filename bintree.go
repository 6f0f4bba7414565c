package bintree

import "github.com/intrusivekit/bintree/abstract"

// Hook is the linkage block an element embeds to participate in a
// plain tree. The zero Hook is detached.
type Hook[T any] struct {
	abstract.Hook[T, struct{}]
}

// Ptr constrains element pointers: a pointer to a struct embedding
// Hook[T] that orders itself against its own type.
type Ptr[T any] interface {
	abstract.Ptr[T, struct{}]
}

// Tree is an unbalanced binary search tree over caller-owned nodes.
type Tree[T any, P Ptr[T]] struct {
	t abstract.Tree[T, struct{}, P]
}

// unbalanced is the no-op balancing policy.
type unbalanced[T any, P Ptr[T]] struct{}

func (unbalanced[T, P]) OnAttach(*abstract.Tree[T, struct{}, P], P)       {}
func (unbalanced[T, P]) OnInsert(*abstract.Tree[T, struct{}, P], P)       {}
func (unbalanced[T, P]) OnFind(*abstract.Tree[T, struct{}, P], P, bool)   {}
func (unbalanced[T, P]) Erase(t *abstract.Tree[T, struct{}, P], n P) {
	t.EraseBST(n)
}

// New creates an empty tree.
func New[T any, P Ptr[T]]() *Tree[T, P] {
	return &Tree[T, P]{t: abstract.Make[T, struct{}, P](unbalanced[T, P]{})}
}

// NewFrom creates a tree and inserts the given nodes in order.
func NewFrom[T any, P Ptr[T]](items ...P) *Tree[T, P] {
	t := New[T, P]()
	for _, n := range items {
		t.Insert(n)
	}
	return t
}

// Insert attaches the detached node n. On a duplicate key the existing
// node is returned with false and n stays detached.
func (t *Tree[T, P]) Insert(n P) (P, bool) { return t.t.Insert(n) }

// Find returns the node matching the probe's key, or nil.
func (t *Tree[T, P]) Find(probe P) P { return t.t.Find(probe) }

// Erase detaches the attached node n and returns it.
func (t *Tree[T, P]) Erase(n P) P { return t.t.Erase(n) }

// EraseKey erases the node matching the probe's key, returning it
// detached, or nil when absent.
func (t *Tree[T, P]) EraseKey(probe P) P { return t.t.EraseKey(probe) }

// Lowest returns the node with the smallest key, nil when empty.
func (t *Tree[T, P]) Lowest() P { return t.t.Lowest() }

// Highest returns the node with the largest key, nil when empty.
func (t *Tree[T, P]) Highest() P { return t.t.Highest() }

// Len returns the number of attached nodes.
func (t *Tree[T, P]) Len() int { return t.t.Len() }

// Empty reports whether the tree holds no nodes.
func (t *Tree[T, P]) Empty() bool { return t.t.Empty() }

// Root returns the root node, nil when empty.
func (t *Tree[T, P]) Root() P { return t.t.Root() }

// Height returns the number of edges on the longest root-to-leaf path,
// -1 when empty.
func (t *Tree[T, P]) Height() int { return t.t.Height() }

// InOrder returns an iterator visiting keys in ascending order.
func (t *Tree[T, P]) InOrder() abstract.Iterator[T, struct{}, P] {
	return t.t.Iter(abstract.InOrder)
}

// ReverseOrder returns an iterator visiting keys in descending order.
func (t *Tree[T, P]) ReverseOrder() abstract.Iterator[T, struct{}, P] {
	return t.t.Iter(abstract.ReverseOrder)
}

// PreOrder returns an iterator visiting parents before children.
func (t *Tree[T, P]) PreOrder() abstract.Iterator[T, struct{}, P] {
	return t.t.Iter(abstract.PreOrder)
}

// PostOrder returns an iterator visiting children before parents.
func (t *Tree[T, P]) PostOrder() abstract.Iterator[T, struct{}, P] {
	return t.t.Iter(abstract.PostOrder)
}
