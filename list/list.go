// Package list implements an intrusive doubly-linked list, the
// simplest relative of the trees in this module: the same caller-owned
// node pattern with plain prev/next linkage and no ordering.
package list

// Hook is the linkage block an element embeds to participate in a
// list. The zero Hook is detached.
type Hook[T any] struct {
	Prev, Next *T
}

// ListLinks returns the hook itself; embedding a Hook promotes it onto
// the element. The name leaves Links free for a tree hook embedded in
// the same element.
func (h *Hook[T]) ListLinks() *Hook[T] { return h }

// Ptr constrains element pointers: a pointer to a struct embedding
// Hook[T].
type Ptr[T any] interface {
	*T
	ListLinks() *Hook[T]
}

// List is an intrusive doubly-linked list. The zero List is empty and
// ready to use. It owns no element memory.
type List[T any, P Ptr[T]] struct {
	front, back *T
	count       int
}

// Empty reports whether the list holds no elements.
func (l *List[T, P]) Empty() bool { return l.front == nil }

// Len returns the number of attached elements.
func (l *List[T, P]) Len() int { return l.count }

// Front returns the first element, nil when empty.
func (l *List[T, P]) Front() P { return P(l.front) }

// Back returns the last element, nil when empty.
func (l *List[T, P]) Back() P { return P(l.back) }

// PushFront attaches the detached element n at the front.
func (l *List[T, P]) PushFront(n P) {
	h := n.ListLinks()
	h.Prev = nil
	h.Next = l.front
	if l.front != nil {
		P(l.front).ListLinks().Prev = (*T)(n)
	}
	l.front = (*T)(n)
	if l.back == nil {
		l.back = l.front
	}
	l.count++
}

// PushBack attaches the detached element n at the back.
func (l *List[T, P]) PushBack(n P) {
	h := n.ListLinks()
	h.Next = nil
	h.Prev = l.back
	if l.back != nil {
		P(l.back).ListLinks().Next = (*T)(n)
	}
	l.back = (*T)(n)
	if l.front == nil {
		l.front = l.back
	}
	l.count++
}

// PushAfter attaches the detached element n right after base, which
// must be attached.
func (l *List[T, P]) PushAfter(base, n P) {
	bh := base.ListLinks()
	h := n.ListLinks()
	h.Next = bh.Next
	h.Prev = (*T)(base)
	if l.back == (*T)(base) {
		l.back = (*T)(n)
	}
	if bh.Next != nil {
		P(bh.Next).ListLinks().Prev = (*T)(n)
	}
	bh.Next = (*T)(n)
	l.count++
}

// PushBefore attaches the detached element n right before base, which
// must be attached.
func (l *List[T, P]) PushBefore(base, n P) {
	bh := base.ListLinks()
	h := n.ListLinks()
	h.Prev = bh.Prev
	h.Next = (*T)(base)
	if l.front == (*T)(base) {
		l.front = (*T)(n)
	}
	if bh.Prev != nil {
		P(bh.Prev).ListLinks().Next = (*T)(n)
	}
	bh.Prev = (*T)(n)
	l.count++
}

// PopFront detaches and returns the first element, nil when empty.
func (l *List[T, P]) PopFront() P {
	if l.front == nil {
		return P(l.front)
	}
	n := l.front
	l.Remove(P(n))
	return P(n)
}

// PopBack detaches and returns the last element, nil when empty.
func (l *List[T, P]) PopBack() P {
	if l.back == nil {
		return P(l.back)
	}
	n := l.back
	l.Remove(P(n))
	return P(n)
}

// Remove detaches the attached element n and returns it.
func (l *List[T, P]) Remove(n P) P {
	h := n.ListLinks()
	if h.Prev != nil {
		P(h.Prev).ListLinks().Next = h.Next
	} else {
		l.front = h.Next
	}
	if h.Next != nil {
		P(h.Next).ListLinks().Prev = h.Prev
	} else {
		l.back = h.Prev
	}
	h.Prev, h.Next = nil, nil
	l.count--
	return n
}

// Reverse flips the order of the list in place.
func (l *List[T, P]) Reverse() {
	cur := l.front
	for cur != nil {
		h := P(cur).ListLinks()
		h.Prev, h.Next = h.Next, h.Prev
		cur = h.Prev
	}
	l.front, l.back = l.back, l.front
}

// Iterator walks a list front to back or back to front. Call First or
// Last to position it.
type Iterator[T any, P Ptr[T]] struct {
	l   *List[T, P]
	cur *T
}

// Iter returns an unpositioned iterator over the list.
func (l *List[T, P]) Iter() Iterator[T, P] { return Iterator[T, P]{l: l} }

// First positions the iterator on the front element.
func (it *Iterator[T, P]) First() { it.cur = it.l.front }

// Last positions the iterator on the back element.
func (it *Iterator[T, P]) Last() { it.cur = it.l.back }

// Valid reports whether the iterator is positioned on an element.
func (it *Iterator[T, P]) Valid() bool { return it.cur != nil }

// Cur returns the element the iterator is positioned on.
func (it *Iterator[T, P]) Cur() P { return P(it.cur) }

// Next advances toward the back.
func (it *Iterator[T, P]) Next() {
	if it.cur != nil {
		it.cur = P(it.cur).ListLinks().Next
	}
}

// Prev advances toward the front.
func (it *Iterator[T, P]) Prev() {
	if it.cur != nil {
		it.cur = P(it.cur).ListLinks().Prev
	}
}
