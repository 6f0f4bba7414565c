package bintree_test

import (
	"fmt"

	"github.com/intrusivekit/bintree"
)

type account struct {
	bintree.Hook[account]
	id   int
	name string
}

func (a *account) Compare(b *account) int { return bintree.Compare(a.id, b.id) }

func ExampleTree() {
	tree := bintree.New[account]()
	tree.Insert(&account{id: 7, name: "grace"})
	tree.Insert(&account{id: 3, name: "alan"})
	tree.Insert(&account{id: 5, name: "ada"})

	if found := tree.Find(&account{id: 5}); found != nil {
		fmt.Println("found:", found.name)
	}
	it := tree.InOrder()
	for it.First(); it.Valid(); it.Next() {
		fmt.Println(it.Cur().id, it.Cur().name)
	}

	// Output:
	// found: ada
	// 3 alan
	// 5 ada
	// 7 grace
}
