package abstract

// CheckLinks verifies the consistency of the pointer graph: every
// child's Up pointer references its parent, the root has no parent and
// the in-order sequence is strictly increasing. Intended for tests and
// debugging.
func (t *Tree[T, M, P]) CheckLinks() bool {
	if t.root != nil && t.root.Links().Up != nil {
		return false
	}
	if !t.checkUp((*T)(t.root), nil) {
		return false
	}
	var prev *T
	it := t.Iter(InOrder)
	for it.First(); it.Valid(); it.Next() {
		cur := (*T)(it.Cur())
		if prev != nil && P(prev).Compare(cur) >= 0 {
			return false
		}
		prev = cur
	}
	return true
}

func (t *Tree[T, M, P]) checkUp(n, up *T) bool {
	if n == nil {
		return true
	}
	h := P(n).Links()
	if h.Up != up {
		return false
	}
	return t.checkUp(h.Left, n) && t.checkUp(h.Right, n)
}
