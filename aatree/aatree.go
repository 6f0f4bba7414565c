// Package aatree implements an intrusive AA tree: an Andersson
// balanced binary search tree that enforces balance through an integer
// level per node and the two local repairs skew and split. It
// guarantees logarithmic depth with a simpler fix-up than a red-black
// tree at the cost of one integer of metadata per node.
package aatree

import "github.com/intrusivekit/bintree/abstract"

// Hook is the linkage block an element embeds; its metadata is the AA
// level. The zero Hook is detached.
type Hook[T any] struct {
	abstract.Hook[T, int]
}

// Ptr constrains element pointers, see the bintree package.
type Ptr[T any] interface {
	abstract.Ptr[T, int]
}

// Tree is an AA-balanced binary search tree over caller-owned nodes.
type Tree[T any, P Ptr[T]] struct {
	t abstract.Tree[T, int, P]
}

// New creates an empty tree.
func New[T any, P Ptr[T]]() *Tree[T, P] {
	return &Tree[T, P]{t: abstract.Make[T, int, P](balancer[T, P]{})}
}

// NewFrom creates a tree and inserts the given nodes in order.
func NewFrom[T any, P Ptr[T]](items ...P) *Tree[T, P] {
	t := New[T, P]()
	for _, n := range items {
		t.Insert(n)
	}
	return t
}

// Level returns the AA level of an attached node. Detached nodes and
// nil report 0.
func Level[T any, P Ptr[T]](n P) int {
	if n == nil {
		return 0
	}
	return n.Links().Meta
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

func (t *Tree[T, P]) InOrder() abstract.Iterator[T, int, P] {
	return t.t.Iter(abstract.InOrder)
}

func (t *Tree[T, P]) ReverseOrder() abstract.Iterator[T, int, P] {
	return t.t.Iter(abstract.ReverseOrder)
}

func (t *Tree[T, P]) PreOrder() abstract.Iterator[T, int, P] {
	return t.t.Iter(abstract.PreOrder)
}

func (t *Tree[T, P]) PostOrder() abstract.Iterator[T, int, P] {
	return t.t.Iter(abstract.PostOrder)
}

type balancer[T any, P Ptr[T]] struct{}

// OnAttach puts a fresh leaf at level 1.
func (balancer[T, P]) OnAttach(_ *abstract.Tree[T, int, P], n P) {
	n.Links().Meta = 1
}

// OnInsert retraces from the new leaf's parent to the root, repairing
// each horizontal-link violation with skew then split.
func (b balancer[T, P]) OnInsert(t *abstract.Tree[T, int, P], n P) {
	for p := n.Links().Up; p != nil; {
		sub := b.split(t, b.skew(t, P(p)))
		p = sub.Links().Up
	}
}

func (balancer[T, P]) OnFind(*abstract.Tree[T, int, P], P, bool) {}

// Erase removes n structurally, then retraces to the root decreasing
// levels that became too high and re-applying the skew/split cascade.
func (b balancer[T, P]) Erase(t *abstract.Tree[T, int, P], n P) {
	rem := t.EraseBST(n)
	for p := (*T)(rem.Parent); p != nil; {
		h := P(p).Links()
		want := b.level(h.Left)
		if r := b.level(h.Right); r < want {
			want = r
		}
		want++
		if want < h.Meta {
			h.Meta = want
			if r := h.Right; r != nil && P(r).Links().Meta > want {
				P(r).Links().Meta = want
			}
		}

		// Andersson's three skews and two splits along the right spine.
		sub := b.skew(t, P(p))
		if r := sub.Links().Right; r != nil {
			rs := b.skew(t, P(r))
			if rr := rs.Links().Right; rr != nil {
				b.skew(t, P(rr))
			}
		}
		sub = b.split(t, sub)
		if r := sub.Links().Right; r != nil {
			b.split(t, P(r))
		}
		p = sub.Links().Up
	}
}

func (balancer[T, P]) level(n *T) int {
	if n == nil {
		return 0
	}
	return P(n).Links().Meta
}

// skew removes a left horizontal link by rotating right; returns the
// subtree root afterwards.
func (b balancer[T, P]) skew(t *abstract.Tree[T, int, P], n P) P {
	h := n.Links()
	if l := h.Left; l != nil && P(l).Links().Meta == h.Meta {
		t.RotateRight(n)
		return P(h.Up)
	}
	return n
}

// split removes two horizontal right links in a row by rotating left
// and promoting the middle node; returns the subtree root afterwards.
func (b balancer[T, P]) split(t *abstract.Tree[T, int, P], n P) P {
	h := n.Links()
	r := h.Right
	if r == nil {
		return n
	}
	if rr := P(r).Links().Right; rr != nil && P(rr).Links().Meta == h.Meta {
		t.RotateLeft(n)
		P(r).Links().Meta++
		return P(r)
	}
	return n
}
