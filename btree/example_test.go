package btree_test

import (
	"fmt"

	"github.com/vchandela/ddia-btree/btree"
)

func Example() {
	tree, err := btree.New[int](3)
	if err != nil {
		panic(err)
	}

	for _, key := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tree.Insert(key)
	}
	fmt.Print(tree)

	fmt.Println(tree.Has(17), tree.Has(100))
	fmt.Println(tree.Delete(6), tree.Delete(100))
	fmt.Println(tree.Keys())

	// Output:
	// B-Tree Structure:
	// Root: [10]
	//     Child 0: [5 6 7]
	//     Child 1: [12 17 20 30]
	// true false
	// true false
	// [5 7 10 12 17 20 30]
}

func ExampleBTree_Search() {
	tree := btree.MustNew[string](2)
	for _, key := range []string{"apple", "banana", "cherry", "date"} {
		tree.Insert(key)
	}

	node, idx, found := tree.Search("cherry")
	fmt.Println(found, node.Key(idx), node.Keys())

	_, _, found = tree.Search("fig")
	fmt.Println(found)

	// Output:
	// true cherry [cherry date]
	// false
}
