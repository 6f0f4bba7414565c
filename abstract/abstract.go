// Package abstract implements the structural core shared by every tree
// variant in this module: the intrusive linkage hook, the plain binary
// search tree operations, rotations and the traversal iterators.
//
// A tree never owns node memory. Callers embed a variant's hook type in
// their own element struct and hand element pointers to the tree, which
// manipulates only the linkage fields of those elements. Erasing an
// element detaches it and hands it back to the caller, who is free to
// recycle it (see the mempool package).
//
// Note: an individual tree is not thread safe, so either access it from
// a single goroutine or serialize access with a mutex.
package abstract

// Hook is the linkage block an element embeds in order to participate
// in a tree. Up, Left and Right are maintained by the tree and must not
// be written by callers while the element is attached. Meta holds the
// balancing policy's per-node metadata. The zero Hook is a detached
// node.
type Hook[T, M any] struct {
	Up, Left, Right *T
	Meta            M
}

// Links returns the hook itself. Embedding a Hook promotes this method
// onto the element type, which is how an element pointer satisfies Ptr.
func (h *Hook[T, M]) Links() *Hook[T, M] { return h }

// Ptr constrains the element pointer type a tree operates on: a pointer
// to the element struct, carrying an embedded Hook and a strict total
// order over elements of its own type.
type Ptr[T, M any] interface {
	*T
	Links() *Hook[T, M]
	Compare(*T) int
}

// Balancer is the policy a variant package supplies to turn the plain
// structural tree into a balanced one. The structural code calls back
// into the policy around every mutation and search.
type Balancer[T, M any, P Ptr[T, M]] interface {

	// OnAttach initializes the metadata of a node that was just
	// attached as a leaf, before any rebalancing runs.
	OnAttach(t *Tree[T, M, P], n P)

	// OnInsert restores the variant's invariants after n was attached
	// as a leaf.
	OnInsert(t *Tree[T, M, P], n P)

	// OnFind is invoked after every search. When the key was found, n
	// is the matching node; otherwise n is the last node on the search
	// path, or nil for an empty tree. Only the splay policy does
	// anything here.
	OnFind(t *Tree[T, M, P], n P, found bool)

	// Erase unlinks the attached node n from the tree, restoring the
	// variant's invariants. The generic EraseBST covers policies whose
	// erase is "structural removal plus fix-up".
	Erase(t *Tree[T, M, P], n P)
}
