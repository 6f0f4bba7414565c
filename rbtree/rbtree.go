// Package rbtree implements an intrusive red-black tree. One color bit
// of metadata per node buys logarithmic depth through the black-height
// invariant: a red node never has a red child and every root-to-nil
// path crosses the same number of black nodes.
package rbtree

import "github.com/intrusivekit/bintree/abstract"

// Color of a node. Nil children read as Black.
type Color uint8

const (
	Red Color = iota
	Black
)

// Hook is the linkage block an element embeds; its metadata is the
// node color. The zero Hook is detached.
type Hook[T any] struct {
	abstract.Hook[T, Color]
}

// Ptr constrains element pointers, see the bintree package.
type Ptr[T any] interface {
	abstract.Ptr[T, Color]
}

// Tree is a red-black balanced binary search tree over caller-owned
// nodes.
type Tree[T any, P Ptr[T]] struct {
	t abstract.Tree[T, Color, P]
}

// New creates an empty tree.
func New[T any, P Ptr[T]]() *Tree[T, P] {
	return &Tree[T, P]{t: abstract.Make[T, Color, P](balancer[T, P]{})}
}

// NewFrom creates a tree and inserts the given nodes in order.
func NewFrom[T any, P Ptr[T]](items ...P) *Tree[T, P] {
	t := New[T, P]()
	for _, n := range items {
		t.Insert(n)
	}
	return t
}

// ColorOf returns the color of a node; nil is Black.
func ColorOf[T any, P Ptr[T]](n P) Color {
	if n == nil {
		return Black
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

func (t *Tree[T, P]) InOrder() abstract.Iterator[T, Color, P] {
	return t.t.Iter(abstract.InOrder)
}

func (t *Tree[T, P]) ReverseOrder() abstract.Iterator[T, Color, P] {
	return t.t.Iter(abstract.ReverseOrder)
}

func (t *Tree[T, P]) PreOrder() abstract.Iterator[T, Color, P] {
	return t.t.Iter(abstract.PreOrder)
}

func (t *Tree[T, P]) PostOrder() abstract.Iterator[T, Color, P] {
	return t.t.Iter(abstract.PostOrder)
}

type balancer[T any, P Ptr[T]] struct{}

// OnAttach colors a fresh leaf red; that can only break the red-red
// rule, never black heights, which OnInsert then repairs.
func (balancer[T, P]) OnAttach(_ *abstract.Tree[T, Color, P], n P) {
	n.Links().Meta = Red
}

func (balancer[T, P]) OnFind(*abstract.Tree[T, Color, P], P, bool) {}

func (balancer[T, P]) color(n *T) Color {
	if n == nil {
		return Black
	}
	return P(n).Links().Meta
}

// OnInsert repairs the red-red violation introduced by attaching n.
// A red uncle means recolor and continue from the grandparent; a black
// uncle means straighten a zig-zag and rotate at the grandparent.
func (b balancer[T, P]) OnInsert(t *abstract.Tree[T, Color, P], n P) {
	for {
		p := n.Links().Up
		if p == nil || b.color(p) == Black {
			break
		}
		// p is red, so it cannot be the root and g exists.
		g := P(p).Links().Up
		gh := P(g).Links()
		if gh.Left == p {
			if u := gh.Right; b.color(u) == Red {
				P(p).Links().Meta = Black
				P(u).Links().Meta = Black
				gh.Meta = Red
				n = P(g)
				continue
			}
			if P(p).Links().Right == (*T)(n) {
				// zig-zag, straighten first
				n = P(p)
				t.RotateLeft(n)
				p = n.Links().Up
			}
			P(p).Links().Meta = Black
			gh.Meta = Red
			t.RotateRight(P(g))
		} else {
			if u := gh.Left; b.color(u) == Red {
				P(p).Links().Meta = Black
				P(u).Links().Meta = Black
				gh.Meta = Red
				n = P(g)
				continue
			}
			if P(p).Links().Left == (*T)(n) {
				n = P(p)
				t.RotateRight(n)
				p = n.Links().Up
			}
			P(p).Links().Meta = Black
			gh.Meta = Red
			t.RotateLeft(P(g))
		}
	}
	t.Root().Links().Meta = Black
}

// Erase removes n structurally; when the vacated slot was black the
// spliced-in child carries a black deficit which is pushed up or
// absorbed through the sibling cases.
func (b balancer[T, P]) Erase(t *abstract.Tree[T, Color, P], n P) {
	rem := t.EraseBST(n)
	if n.Links().Meta == Red {
		return
	}
	x, xp := (*T)(rem.Child), (*T)(rem.Parent)
	for xp != nil && b.color(x) == Black {
		xph := P(xp).Links()
		if xph.Left == x {
			w := xph.Right
			if b.color(w) == Red {
				// red sibling: rotate it over, exposing black one
				P(w).Links().Meta = Black
				xph.Meta = Red
				t.RotateLeft(P(xp))
				w = xph.Right
			}
			wh := P(w).Links()
			if b.color(wh.Left) == Black && b.color(wh.Right) == Black {
				// both nephews black: push the deficit up
				wh.Meta = Red
				x, xp = xp, xph.Up
				continue
			}
			if b.color(wh.Right) == Black {
				// near nephew red: straighten
				P(wh.Left).Links().Meta = Black
				wh.Meta = Red
				t.RotateRight(P(w))
				w = xph.Right
				wh = P(w).Links()
			}
			// far nephew red: absorb the deficit
			wh.Meta = xph.Meta
			xph.Meta = Black
			P(wh.Right).Links().Meta = Black
			t.RotateLeft(P(xp))
			x, xp = (*T)(t.Root()), nil
		} else {
			w := xph.Left
			if b.color(w) == Red {
				P(w).Links().Meta = Black
				xph.Meta = Red
				t.RotateRight(P(xp))
				w = xph.Left
			}
			wh := P(w).Links()
			if b.color(wh.Left) == Black && b.color(wh.Right) == Black {
				wh.Meta = Red
				x, xp = xp, xph.Up
				continue
			}
			if b.color(wh.Left) == Black {
				P(wh.Right).Links().Meta = Black
				wh.Meta = Red
				t.RotateLeft(P(w))
				w = xph.Left
				wh = P(w).Links()
			}
			wh.Meta = xph.Meta
			xph.Meta = Black
			P(wh.Left).Links().Meta = Black
			t.RotateRight(P(xp))
			x, xp = (*T)(t.Root()), nil
		}
	}
	if x != nil {
		P(x).Links().Meta = Black
	}
}
