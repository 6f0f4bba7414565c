package abstract

// Removal reports the structural effect of EraseBST so that a policy
// can run its fix-up from the vacated position.
type Removal[T, M any, P Ptr[T, M]] struct {

	// Parent is the parent of the vacated position, nil when the
	// removed node was the root.
	Parent P

	// Child is the subtree that was spliced into the vacated position,
	// possibly nil.
	Child P

	// WasLeft reports whether the vacated position was Parent's left
	// slot. Meaningful only when Parent is non-nil; it disambiguates
	// the side when Child is nil.
	WasLeft bool
}

// Erase detaches the attached node n from the tree and returns it with
// all linkage fields and metadata reset. Erasing a node that is not
// attached to this tree is a caller error.
func (t *Tree[T, M, P]) Erase(n P) P {
	if n == nil {
		return n
	}
	t.b.Erase(t, n)
	t.count--
	h := n.Links()
	var zero M
	h.Up, h.Left, h.Right, h.Meta = nil, nil, nil, zero
	return n
}

// EraseKey looks up the probe's key and erases the matching node,
// returning it detached, or nil when the key is absent. The lookup does
// not count as an access for policies that react to finds.
func (t *Tree[T, M, P]) EraseKey(probe P) P {
	n := t.search(probe)
	if n == nil {
		return n
	}
	return t.Erase(n)
}

// EraseBST performs the plain structural removal of n: a leaf is
// detached directly, a node with one child has that child spliced into
// its slot, and a node with two children first swaps positions with its
// in-order successor. The swap is structural, node identities are
// preserved and the positional metadata travels with the position, so a
// policy reading n's metadata afterwards sees the metadata of the slot
// that was actually vacated.
func (t *Tree[T, M, P]) EraseBST(n P) Removal[T, M, P] {
	h := n.Links()
	if h.Left != nil && h.Right != nil {
		t.swapWithSuccessor(n, t.SubtreeLowest(P(h.Right)))
	}
	child := h.Left
	if child == nil {
		child = h.Right
	}
	parent := h.Up
	wasLeft := parent != nil && P(parent).Links().Left == (*T)(n)
	t.replaceChild(parent, (*T)(n), child)
	h.Up, h.Left, h.Right = nil, nil, nil
	return Removal[T, M, P]{Parent: P(parent), Child: P(child), WasLeft: wasLeft}
}

// replaceChild points the slot that held old (a child slot of parent,
// or the root) at child instead.
func (t *Tree[T, M, P]) replaceChild(parent, old, child *T) {
	if parent == nil {
		t.root = P(child)
	} else if h := P(parent).Links(); h.Left == old {
		h.Left = child
	} else {
		h.Right = child
	}
	if child != nil {
		P(child).Links().Up = parent
	}
}

// swapWithSuccessor exchanges the structural positions of n and its
// in-order successor s, where s is the leftmost node of n's right
// subtree. Metadata is exchanged along with the position.
func (t *Tree[T, M, P]) swapWithSuccessor(n, s P) {
	nh, sh := n.Links(), s.Links()
	nh.Meta, sh.Meta = sh.Meta, nh.Meta

	sp := sh.Up
	t.replaceChild(nh.Up, (*T)(n), (*T)(s))

	// s takes over n's left subtree; s had none of its own.
	sLeft := nh.Left
	nh.Left = nil

	if nh.Right == (*T)(s) {
		// s was n's right child: n becomes s's right child.
		nh.Right = sh.Right
		sh.Right = (*T)(n)
		nh.Up = (*T)(s)
	} else {
		// s sat deeper: n drops into s's old slot under s's parent.
		nh.Right, sh.Right = sh.Right, nh.Right
		P(sp).Links().Left = (*T)(n)
		nh.Up = sp
		P(sh.Right).Links().Up = (*T)(s)
	}
	sh.Left = sLeft
	P(sLeft).Links().Up = (*T)(s)
	if nh.Right != nil {
		P(nh.Right).Links().Up = (*T)(n)
	}
}
