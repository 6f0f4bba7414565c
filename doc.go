// Package bintree provides a family of intrusive binary search trees:
// this plain unbalanced tree plus the aatree, avltree, rbtree and
// splaytree variants built on the same structural core.
//
// Intrusive means the linkage lives inside the caller's element type:
// embed a variant's Hook, implement Compare against your own type, and
// hand element pointers to the tree. The trees never allocate, copy or
// free elements; Erase hands the detached element back to the caller,
// typically to be recycled through a mempool.Pool.
//
// The plain tree in this package performs no rebalancing and exists as
// the baseline for the balanced variants; its depth is unbounded under
// adversarial insert orders.
//
// No tree is thread safe. Access one from a single goroutine or
// serialize externally.
package bintree
