// Package splaytree implements an intrusive splay tree. There is no
// per-node metadata at all: every find and insert finishes by rotating
// the touched node to the root, which keeps the tree balanced in the
// amortized sense and biases it toward recently accessed keys.
// Individual operations can degenerate to linear time.
package splaytree

import "github.com/intrusivekit/bintree/abstract"

// Hook is the linkage block an element embeds. The zero Hook is
// detached.
type Hook[T any] struct {
	abstract.Hook[T, struct{}]
}

// Ptr constrains element pointers, see the bintree package.
type Ptr[T any] interface {
	abstract.Ptr[T, struct{}]
}

// Tree is a splay tree over caller-owned nodes.
type Tree[T any, P Ptr[T]] struct {
	t abstract.Tree[T, struct{}, P]
}

// New creates an empty tree.
func New[T any, P Ptr[T]]() *Tree[T, P] {
	return &Tree[T, P]{t: abstract.Make[T, struct{}, P](balancer[T, P]{})}
}

// NewFrom creates a tree and inserts the given nodes in order.
func NewFrom[T any, P Ptr[T]](items ...P) *Tree[T, P] {
	t := New[T, P]()
	for _, n := range items {
		t.Insert(n)
	}
	return t
}

func (t *Tree[T, P]) Insert(n P) (P, bool) { return t.t.Insert(n) }
func (t *Tree[T, P]) Find(probe P) P       { return t.t.Find(probe) }
func (t *Tree[T, P]) Erase(n P) P          { return t.t.Erase(n) }
func (t *Tree[T, P]) EraseKey(probe P) P   { return t.t.EraseKey(probe) }
func (t *Tree[T, P]) Lowest() P            { return t.t.Lowest() }
func (t *Tree[T, P]) Highest() P           { return t.t.Highest() }
func (t *Tree[T, P]) Len() int             { return t.t.Len() }
func (t *Tree[T, P]) Empty() bool          { return t.t.Empty() }
func (t *Tree[T, P]) Root() P              { return t.t.Root() }
func (t *Tree[T, P]) Height() int          { return t.t.Height() }

func (t *Tree[T, P]) InOrder() abstract.Iterator[T, struct{}, P] {
	return t.t.Iter(abstract.InOrder)
}

func (t *Tree[T, P]) ReverseOrder() abstract.Iterator[T, struct{}, P] {
	return t.t.Iter(abstract.ReverseOrder)
}

func (t *Tree[T, P]) PreOrder() abstract.Iterator[T, struct{}, P] {
	return t.t.Iter(abstract.PreOrder)
}

func (t *Tree[T, P]) PostOrder() abstract.Iterator[T, struct{}, P] {
	return t.t.Iter(abstract.PostOrder)
}

type balancer[T any, P Ptr[T]] struct{}

func (balancer[T, P]) OnAttach(*abstract.Tree[T, struct{}, P], P) {}

func (b balancer[T, P]) OnInsert(t *abstract.Tree[T, struct{}, P], n P) {
	b.splay(t, n)
}

// OnFind splays the found node, or on a miss the last node of the
// search path, so repeated probes for nearby keys stay cheap.
func (b balancer[T, P]) OnFind(t *abstract.Tree[T, struct{}, P], n P, _ bool) {
	if n != nil {
		b.splay(t, n)
	}
}

// Erase splays n to the root, detaches both subtrees and joins them:
// the predecessor of the erased key is splayed to the top of the left
// subtree, which then has no right child to hold the right subtree.
func (b balancer[T, P]) Erase(t *abstract.Tree[T, struct{}, P], n P) {
	b.splay(t, n)
	h := n.Links()
	left, right := h.Left, h.Right
	h.Left, h.Right = nil, nil
	if left != nil {
		P(left).Links().Up = nil
	}
	if right != nil {
		P(right).Links().Up = nil
	}
	if left == nil {
		t.SetRoot(P(right))
		return
	}
	t.SetRoot(P(left))
	m := t.SubtreeHighest(P(left))
	b.splay(t, m)
	m.Links().Right = right
	if right != nil {
		P(right).Links().Up = (*T)(m)
	}
}

// splay rotates n to the root of the tree it is attached to.
func (b balancer[T, P]) splay(t *abstract.Tree[T, struct{}, P], n P) {
	for {
		h := n.Links()
		p := h.Up
		if p == nil {
			return
		}
		ph := P(p).Links()
		g := ph.Up
		if g == nil {
			// zig
			b.rotateUp(t, P(p), (*T)(n))
			return
		}
		if (P(g).Links().Left == p) == (ph.Left == (*T)(n)) {
			// zig-zig: straight line, rotate grandparent first
			b.rotateUp(t, P(g), p)
			b.rotateUp(t, P(p), (*T)(n))
		} else {
			// zig-zag: bent line, rotate n up twice
			b.rotateUp(t, P(p), (*T)(n))
			b.rotateUp(t, P(g), (*T)(n))
		}
	}
}

// rotateUp rotates child over parent.
func (balancer[T, P]) rotateUp(t *abstract.Tree[T, struct{}, P], parent P, child *T) {
	if parent.Links().Left == child {
		t.RotateRight(parent)
	} else {
		t.RotateLeft(parent)
	}
}
