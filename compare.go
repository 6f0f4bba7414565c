package bintree

import "golang.org/x/exp/constraints"

// Compare is a three-way comparison for ordered key types, handy when
// implementing an element's Compare method:
//
//	func (a *entry) Compare(b *entry) int { return bintree.Compare(a.key, b.key) }
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}
