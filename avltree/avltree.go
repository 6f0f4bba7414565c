// Package avltree implements an intrusive AVL tree. Each node caches a
// balance factor in {-1, 0, +1} (right height minus left height) that
// is maintained incrementally; insert and erase retrace toward the
// root and rotate where the factor would leave the range.
//
// The rebalancing follows the classic Wirth formulation: an insert
// retrace terminates at the first rotation, an erase retrace can run
// all the way to the root.
package avltree

import "github.com/intrusivekit/bintree/abstract"

// Hook is the linkage block an element embeds; its metadata is the
// cached balance factor. The zero Hook is detached.
type Hook[T any] struct {
	abstract.Hook[T, int8]
}

// Ptr constrains element pointers, see the bintree package.
type Ptr[T any] interface {
	abstract.Ptr[T, int8]
}

// Tree is an AVL-balanced binary search tree over caller-owned nodes.
type Tree[T any, P Ptr[T]] struct {
	t abstract.Tree[T, int8, P]
}

// New creates an empty tree.
func New[T any, P Ptr[T]]() *Tree[T, P] {
	return &Tree[T, P]{t: abstract.Make[T, int8, P](balancer[T, P]{})}
}

// NewFrom creates a tree and inserts the given nodes in order.
func NewFrom[T any, P Ptr[T]](items ...P) *Tree[T, P] {
	t := New[T, P]()
	for _, n := range items {
		t.Insert(n)
	}
	return t
}

// Balance returns the cached balance factor of an attached node.
func Balance[T any, P Ptr[T]](n P) int {
	if n == nil {
		return 0
	}
	return int(n.Links().Meta)
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

func (t *Tree[T, P]) InOrder() abstract.Iterator[T, int8, P] {
	return t.t.Iter(abstract.InOrder)
}

func (t *Tree[T, P]) ReverseOrder() abstract.Iterator[T, int8, P] {
	return t.t.Iter(abstract.ReverseOrder)
}

func (t *Tree[T, P]) PreOrder() abstract.Iterator[T, int8, P] {
	return t.t.Iter(abstract.PreOrder)
}

func (t *Tree[T, P]) PostOrder() abstract.Iterator[T, int8, P] {
	return t.t.Iter(abstract.PostOrder)
}

type balancer[T any, P Ptr[T]] struct{}

func (balancer[T, P]) OnAttach(_ *abstract.Tree[T, int8, P], n P) {
	n.Links().Meta = 0
}

func (balancer[T, P]) OnFind(*abstract.Tree[T, int8, P], P, bool) {}

// OnInsert retraces from the new leaf upward. A subtree whose balance
// factor moves to 0 absorbed the growth; one moving off 0 propagates
// it; one leaving the range is rotated, after which the height is what
// it was before the insert and the retrace stops.
func (b balancer[T, P]) OnInsert(t *abstract.Tree[T, int8, P], n P) {
	child := (*T)(n)
	for p := n.Links().Up; p != nil; {
		h := P(p).Links()
		if h.Left == child {
			// left branch has grown
			switch h.Meta {
			case 1:
				h.Meta = 0
				return
			case 0:
				h.Meta = -1
			default:
				b.growLeft(t, P(p))
				return
			}
		} else {
			// right branch has grown
			switch h.Meta {
			case -1:
				h.Meta = 0
				return
			case 0:
				h.Meta = 1
			default:
				b.growRight(t, P(p))
				return
			}
		}
		child, p = p, h.Up
	}
}

// growLeft rebalances p after its left subtree grew while already left
// heavy.
func (balancer[T, P]) growLeft(t *abstract.Tree[T, int8, P], p P) {
	h := p.Links()
	p1 := P(h.Left)
	p1h := p1.Links()
	if p1h.Meta == -1 {
		// single LL rotation
		t.RotateRight(p)
		h.Meta = 0
		p1h.Meta = 0
		return
	}
	// double LR rotation
	p2 := P(p1h.Right)
	p2h := p2.Links()
	t.RotateLeft(p1)
	t.RotateRight(p)
	if p2h.Meta == -1 {
		h.Meta = 1
	} else {
		h.Meta = 0
	}
	if p2h.Meta == 1 {
		p1h.Meta = -1
	} else {
		p1h.Meta = 0
	}
	p2h.Meta = 0
}

// growRight is the mirror image of growLeft.
func (balancer[T, P]) growRight(t *abstract.Tree[T, int8, P], p P) {
	h := p.Links()
	p1 := P(h.Right)
	p1h := p1.Links()
	if p1h.Meta == 1 {
		// single RR rotation
		t.RotateLeft(p)
		h.Meta = 0
		p1h.Meta = 0
		return
	}
	// double RL rotation
	p2 := P(p1h.Left)
	p2h := p2.Links()
	t.RotateRight(p1)
	t.RotateLeft(p)
	if p2h.Meta == 1 {
		h.Meta = -1
	} else {
		h.Meta = 0
	}
	if p2h.Meta == -1 {
		p1h.Meta = 1
	} else {
		p1h.Meta = 0
	}
	p2h.Meta = 0
}

// Erase removes n structurally and retraces from the vacated position.
// Unlike the insert retrace this one may rotate at several levels, all
// the way up to the root.
func (b balancer[T, P]) Erase(t *abstract.Tree[T, int8, P], n P) {
	rem := t.EraseBST(n)
	p := rem.Parent
	leftShrunk := rem.WasLeft
	for p != nil {
		var sub P
		var done bool
		if leftShrunk {
			sub, done = b.shrinkLeft(t, p)
		} else {
			sub, done = b.shrinkRight(t, p)
		}
		if done {
			return
		}
		up := sub.Links().Up
		if up == nil {
			return
		}
		leftShrunk = P(up).Links().Left == (*T)(sub)
		p = P(up)
	}
}

// shrinkLeft rebalances p after its left subtree lost height. It
// returns the root of the rebalanced subtree and whether that
// subtree's height is unchanged, which ends the retrace.
func (balancer[T, P]) shrinkLeft(t *abstract.Tree[T, int8, P], p P) (P, bool) {
	h := p.Links()
	switch h.Meta {
	case -1:
		h.Meta = 0
		return p, false
	case 0:
		h.Meta = 1
		return p, true
	}
	// was right heavy, rebalance
	p1 := P(h.Right)
	p1h := p1.Links()
	if p1h.Meta >= 0 {
		// single RR rotation
		t.RotateLeft(p)
		if p1h.Meta == 0 {
			h.Meta = 1
			p1h.Meta = -1
			return p1, true
		}
		h.Meta = 0
		p1h.Meta = 0
		return p1, false
	}
	// double RL rotation
	p2 := P(p1h.Left)
	p2h := p2.Links()
	t.RotateRight(p1)
	t.RotateLeft(p)
	if p2h.Meta == 1 {
		h.Meta = -1
	} else {
		h.Meta = 0
	}
	if p2h.Meta == -1 {
		p1h.Meta = 1
	} else {
		p1h.Meta = 0
	}
	p2h.Meta = 0
	return p2, false
}

// shrinkRight is the mirror image of shrinkLeft.
func (balancer[T, P]) shrinkRight(t *abstract.Tree[T, int8, P], p P) (P, bool) {
	h := p.Links()
	switch h.Meta {
	case 1:
		h.Meta = 0
		return p, false
	case 0:
		h.Meta = -1
		return p, true
	}
	// was left heavy, rebalance
	p1 := P(h.Left)
	p1h := p1.Links()
	if p1h.Meta <= 0 {
		// single LL rotation
		t.RotateRight(p)
		if p1h.Meta == 0 {
			h.Meta = -1
			p1h.Meta = 1
			return p1, true
		}
		h.Meta = 0
		p1h.Meta = 0
		return p1, false
	}
	// double LR rotation
	p2 := P(p1h.Right)
	p2h := p2.Links()
	t.RotateLeft(p1)
	t.RotateRight(p)
	if p2h.Meta == -1 {
		h.Meta = 1
	} else {
		h.Meta = 0
	}
	if p2h.Meta == 1 {
		p1h.Meta = -1
	} else {
		p1h.Meta = 0
	}
	p2h.Meta = 0
	return p2, false
}
