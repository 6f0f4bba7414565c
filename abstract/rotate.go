package abstract

// RotateLeft rotates x down to the left: x's right child y takes x's
// position, x becomes y's left child and y's former left subtree
// becomes x's right subtree. x must have a right child. Pure pointer
// surgery, the in-order sequence is unchanged.
func (t *Tree[T, M, P]) RotateLeft(x P) {
	xh := x.Links()
	y := xh.Right
	yh := P(y).Links()
	xh.Right = yh.Left
	if yh.Left != nil {
		P(yh.Left).Links().Up = (*T)(x)
	}
	yh.Up = xh.Up
	if xh.Up == nil {
		t.root = P(y)
	} else if ph := P(xh.Up).Links(); ph.Left == (*T)(x) {
		ph.Left = y
	} else {
		ph.Right = y
	}
	yh.Left = (*T)(x)
	xh.Up = y
}

// RotateRight is the mirror image of RotateLeft; x must have a left
// child.
func (t *Tree[T, M, P]) RotateRight(x P) {
	xh := x.Links()
	y := xh.Left
	yh := P(y).Links()
	xh.Left = yh.Right
	if yh.Right != nil {
		P(yh.Right).Links().Up = (*T)(x)
	}
	yh.Up = xh.Up
	if xh.Up == nil {
		t.root = P(y)
	} else if ph := P(xh.Up).Links(); ph.Left == (*T)(x) {
		ph.Left = y
	} else {
		ph.Right = y
	}
	yh.Right = (*T)(x)
	xh.Up = y
}
