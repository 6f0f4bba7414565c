package abstract

// Order selects the traversal sequence an Iterator produces.
type Order uint8

const (
	// InOrder visits keys in ascending order.
	InOrder Order = iota

	// PreOrder visits a node before either of its subtrees.
	PreOrder

	// PostOrder visits a node after both of its subtrees.
	PostOrder

	// ReverseOrder visits keys in descending order.
	ReverseOrder
)

// Iterator walks the nodes of a tree in one of the four orders. The
// zero position is invalid; call First to (re)start:
//
//	for it.First(); it.Valid(); it.Next() {
//		n := it.Cur()
//	}
//
// Iteration climbs parent links, so it allocates nothing and needs no
// stack. Mutating the tree invalidates a live iterator, with one
// exception: after advancing past a node it is safe to erase that
// node.
type Iterator[T, M any, P Ptr[T, M]] struct {
	t     *Tree[T, M, P]
	order Order
	cur   *T
}

// Iter returns an unpositioned iterator over the tree in the given
// order.
func (t *Tree[T, M, P]) Iter(o Order) Iterator[T, M, P] {
	return Iterator[T, M, P]{t: t, order: o}
}

// First positions the iterator on the first node of its order. It also
// restarts an exhausted iterator.
func (it *Iterator[T, M, P]) First() {
	root := (*T)(it.t.root)
	switch it.order {
	case PreOrder:
		it.cur = root
	case PostOrder:
		it.cur = deepestLeaf[T, M, P](root)
	case ReverseOrder:
		it.cur = (*T)(it.t.SubtreeHighest(P(root)))
	default:
		it.cur = (*T)(it.t.SubtreeLowest(P(root)))
	}
}

// Valid reports whether the iterator is positioned on a node.
func (it *Iterator[T, M, P]) Valid() bool { return it.cur != nil }

// Cur returns the node the iterator is positioned on.
func (it *Iterator[T, M, P]) Cur() P { return P(it.cur) }

// Next advances to the following node of the iterator's order, or past
// the end.
func (it *Iterator[T, M, P]) Next() {
	if it.cur == nil {
		return
	}
	switch it.order {
	case PreOrder:
		it.cur = nextPreOrder[T, M, P](it.cur)
	case PostOrder:
		it.cur = nextPostOrder[T, M, P](it.cur)
	case ReverseOrder:
		it.cur = prevInOrder[T, M, P](it.cur)
	default:
		it.cur = nextInOrder[T, M, P](it.cur)
	}
}

func nextInOrder[T, M any, P Ptr[T, M]](n *T) *T {
	h := P(n).Links()
	if h.Right != nil {
		cur := h.Right
		for P(cur).Links().Left != nil {
			cur = P(cur).Links().Left
		}
		return cur
	}
	child, p := n, h.Up
	for p != nil {
		ph := P(p).Links()
		if ph.Left == child {
			return p
		}
		child, p = p, ph.Up
	}
	return nil
}

func prevInOrder[T, M any, P Ptr[T, M]](n *T) *T {
	h := P(n).Links()
	if h.Left != nil {
		cur := h.Left
		for P(cur).Links().Right != nil {
			cur = P(cur).Links().Right
		}
		return cur
	}
	child, p := n, h.Up
	for p != nil {
		ph := P(p).Links()
		if ph.Right == child {
			return p
		}
		child, p = p, ph.Up
	}
	return nil
}

func nextPreOrder[T, M any, P Ptr[T, M]](n *T) *T {
	h := P(n).Links()
	if h.Left != nil {
		return h.Left
	}
	if h.Right != nil {
		return h.Right
	}
	child, p := n, h.Up
	for p != nil {
		ph := P(p).Links()
		if ph.Left == child && ph.Right != nil {
			return ph.Right
		}
		child, p = p, ph.Up
	}
	return nil
}

func nextPostOrder[T, M any, P Ptr[T, M]](n *T) *T {
	p := P(n).Links().Up
	if p == nil {
		return nil
	}
	ph := P(p).Links()
	if ph.Right == n || ph.Right == nil {
		return p
	}
	return deepestLeaf[T, M, P](ph.Right)
}

// deepestLeaf descends to the first node visited in post-order:
// leftward where possible, rightward otherwise.
func deepestLeaf[T, M any, P Ptr[T, M]](n *T) *T {
	for n != nil {
		h := P(n).Links()
		switch {
		case h.Left != nil:
			n = h.Left
		case h.Right != nil:
			n = h.Right
		default:
			return n
		}
	}
	return nil
}
