package abstract

// Tree holds the root of one tree instance together with its balancing
// policy and a logical size counter. Variant packages embed or wrap a
// Tree and expose their own constructors; use Make to build one.
type Tree[T, M any, P Ptr[T, M]] struct {
	root  P
	count int
	b     Balancer[T, M, P]
}

// Make creates an empty tree driven by the given balancing policy.
func Make[T, M any, P Ptr[T, M]](b Balancer[T, M, P]) Tree[T, M, P] {
	return Tree[T, M, P]{b: b}
}

// Empty reports whether the tree holds no nodes.
func (t *Tree[T, M, P]) Empty() bool { return t.root == nil }

// Len returns the number of nodes currently attached.
func (t *Tree[T, M, P]) Len() int { return t.count }

// Root returns the current root node, nil for an empty tree.
func (t *Tree[T, M, P]) Root() P { return t.root }

// SetRoot re-roots the tree at n, which must already be detached from
// any parent. It is plumbing for balancing policies that restructure
// the tree wholesale (splay join); callers have no use for it.
func (t *Tree[T, M, P]) SetRoot(n P) {
	t.root = n
	if n != nil {
		n.Links().Up = nil
	}
}

// Insert attaches the detached node n. On success it returns (n, true).
// If a node with an equal key is already attached the tree is left
// unchanged and that node is returned with false: duplicates are
// rejected, for every variant. Passing a node that is attached to any
// tree is a caller error.
func (t *Tree[T, M, P]) Insert(n P) (P, bool) {
	if t.root == nil {
		t.root = n
		t.count++
		t.b.OnAttach(t, n)
		t.b.OnInsert(t, n)
		return n, true
	}
	cur := (*T)(t.root)
	for {
		h := P(cur).Links()
		switch c := P(cur).Compare((*T)(n)); {
		case c > 0: // cur > n, descend left
			if h.Left == nil {
				t.attach(cur, true, n)
				return n, true
			}
			cur = h.Left
		case c < 0: // cur < n, descend right
			if h.Right == nil {
				t.attach(cur, false, n)
				return n, true
			}
			cur = h.Right
		default:
			t.b.OnFind(t, P(cur), true)
			return P(cur), false
		}
	}
}

// attach links n as a leaf under parent and runs the policy hooks.
func (t *Tree[T, M, P]) attach(parent *T, left bool, n P) {
	h := P(parent).Links()
	if left {
		h.Left = (*T)(n)
	} else {
		h.Right = (*T)(n)
	}
	n.Links().Up = parent
	t.count++
	t.b.OnAttach(t, n)
	t.b.OnInsert(t, n)
}

// Find locates the attached node whose key equals the probe's key. The
// probe is only compared against, never linked; a detached element with
// just its key fields set is the usual argument. Returns nil when the
// key is absent.
func (t *Tree[T, M, P]) Find(probe P) P {
	var last, cur *T
	cur = (*T)(t.root)
	for cur != nil {
		last = cur
		switch c := P(cur).Compare((*T)(probe)); {
		case c > 0:
			cur = P(cur).Links().Left
		case c < 0:
			cur = P(cur).Links().Right
		default:
			t.b.OnFind(t, P(cur), true)
			return P(cur)
		}
	}
	t.b.OnFind(t, P(last), false)
	var zero P
	return zero
}

// search is Find without policy callbacks, used by EraseKey so that an
// erase does not count as an access.
func (t *Tree[T, M, P]) search(probe P) P {
	cur := (*T)(t.root)
	for cur != nil {
		switch c := P(cur).Compare((*T)(probe)); {
		case c > 0:
			cur = P(cur).Links().Left
		case c < 0:
			cur = P(cur).Links().Right
		default:
			return P(cur)
		}
	}
	var zero P
	return zero
}

// Lowest returns the node with the smallest key, nil for an empty tree.
func (t *Tree[T, M, P]) Lowest() P { return t.SubtreeLowest(t.root) }

// Highest returns the node with the largest key, nil for an empty tree.
func (t *Tree[T, M, P]) Highest() P { return t.SubtreeHighest(t.root) }

// SubtreeLowest returns the leftmost node under n, or nil.
func (t *Tree[T, M, P]) SubtreeLowest(n P) P {
	if n == nil {
		return n
	}
	cur := (*T)(n)
	for P(cur).Links().Left != nil {
		cur = P(cur).Links().Left
	}
	return P(cur)
}

// SubtreeHighest returns the rightmost node under n, or nil.
func (t *Tree[T, M, P]) SubtreeHighest(n P) P {
	if n == nil {
		return n
	}
	cur := (*T)(n)
	for P(cur).Links().Right != nil {
		cur = P(cur).Links().Right
	}
	return P(cur)
}

// Height returns the number of edges on the longest root-to-leaf path,
// -1 for an empty tree.
func (t *Tree[T, M, P]) Height() int {
	return t.subtreeHeight((*T)(t.root))
}

func (t *Tree[T, M, P]) subtreeHeight(n *T) int {
	if n == nil {
		return -1
	}
	h := P(n).Links()
	l := t.subtreeHeight(h.Left)
	if r := t.subtreeHeight(h.Right); r > l {
		l = r
	}
	return l + 1
}
