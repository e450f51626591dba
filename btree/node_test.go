package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(keys ...int) *Node[int] {
	return &Node[int]{keys: keys}
}

func internal(keys []int, children ...*Node[int]) *Node[int] {
	return &Node[int]{keys: keys, children: children}
}

// treeOf wraps a hand-built node structure so that Check can validate it.
// Keys are counted structurally, so malformed nodes are accepted as given.
func treeOf(degree int, root *Node[int]) *BTree[int] {
	return &BTree[int]{root: root, degree: degree, length: countKeys(root), logger: DiscardLogger{}}
}

func countKeys(n *Node[int]) int {
	if n == nil {
		return 0
	}
	total := len(n.keys)
	for _, child := range n.children {
		total += countKeys(child)
	}
	return total
}

func TestNodeSearch(t *testing.T) {
	t.Parallel()

	n := leaf(10, 20, 30)
	tests := []struct {
		key   int
		pos   int
		found bool
	}{
		{5, 0, false},
		{10, 0, true},
		{15, 1, false},
		{20, 1, true},
		{30, 2, true},
		{35, 3, false},
	}
	for _, tt := range tests {
		pos, found := n.search(tt.key)
		assert.Equal(t, tt.pos, pos, "key %d", tt.key)
		assert.Equal(t, tt.found, found, "key %d", tt.key)
	}

	pos, found := leaf().search(1)
	assert.Equal(t, 0, pos)
	assert.False(t, found)
}

func TestNodeInsertRemoveAt(t *testing.T) {
	t.Parallel()

	n := leaf(2, 4)
	n.insertKeyAt(0, 1)
	n.insertKeyAt(2, 3)
	n.insertKeyAt(4, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, n.keys)

	assert.Equal(t, 3, n.removeKeyAt(2))
	assert.Equal(t, 5, n.removeKeyAt(3))
	assert.Equal(t, 1, n.removeKeyAt(0))
	assert.Equal(t, []int{2, 4}, n.keys)

	// Vacated slots are zeroed.
	assert.Equal(t, []int{2, 4, 0, 0, 0}, n.keys[:5])
}

func TestSplitLeaf(t *testing.T) {
	t.Parallel()

	n := leaf(1, 2, 3, 4, 5)
	mid, right := n.split(3)

	assert.Equal(t, 3, mid)
	assert.Equal(t, []int{1, 2}, n.keys)
	assert.Equal(t, []int{4, 5}, right.keys)
	assert.True(t, right.isLeaf())
}

func TestSplitInternal(t *testing.T) {
	t.Parallel()

	c2, c3, c5 := leaf(25), leaf(35), leaf(55)
	n := internal([]int{10, 20, 30, 40, 50}, leaf(0), leaf(15), c2, c3, leaf(45), c5)
	mid, right := n.split(3)

	assert.Equal(t, 30, mid)
	assert.Equal(t, []int{10, 20}, n.keys)
	assert.Equal(t, []int{40, 50}, right.keys)
	require.Len(t, n.children, 3)
	require.Len(t, right.children, 3)
	assert.Same(t, c2, n.children[2])
	assert.Same(t, c3, right.children[0])
	assert.Same(t, c5, right.children[2])
}

func TestSplitChild(t *testing.T) {
	t.Parallel()

	root := internal([]int{100}, leaf(1, 2, 3), leaf(101, 102))
	root.splitChild(0, 2)

	assert.Equal(t, []int{2, 100}, root.keys)
	require.Len(t, root.children, 3)
	assert.Equal(t, []int{1}, root.children[0].keys)
	assert.Equal(t, []int{3}, root.children[1].keys)
	assert.Equal(t, []int{101, 102}, root.children[2].keys)
	assert.NoError(t, treeOf(2, root).Check())
}

// Rebalancing Tests

func TestFixChildBorrowFromLeft(t *testing.T) {
	t.Parallel()

	root := internal([]int{10}, leaf(1, 2, 3), leaf(11, 12))
	pos := root.fixChild(1, 3)

	assert.Equal(t, 1, pos)
	assert.Equal(t, []int{3}, root.keys)
	assert.Equal(t, []int{1, 2}, root.children[0].keys)
	assert.Equal(t, []int{10, 11, 12}, root.children[1].keys)
	assert.NoError(t, treeOf(3, root).Check())
}

func TestFixChildBorrowFromRight(t *testing.T) {
	t.Parallel()

	root := internal([]int{10}, leaf(1, 2), leaf(11, 12, 13))
	pos := root.fixChild(0, 3)

	assert.Equal(t, 0, pos)
	assert.Equal(t, []int{11}, root.keys)
	assert.Equal(t, []int{1, 2, 10}, root.children[0].keys)
	assert.Equal(t, []int{12, 13}, root.children[1].keys)
	assert.NoError(t, treeOf(3, root).Check())
}

func TestFixChildMergeWithLeft(t *testing.T) {
	t.Parallel()

	root := internal([]int{10, 20}, leaf(1, 2), leaf(11, 12), leaf(21, 22))
	pos := root.fixChild(1, 3)

	assert.Equal(t, 0, pos)
	assert.Equal(t, []int{20}, root.keys)
	require.Len(t, root.children, 2)
	assert.Equal(t, []int{1, 2, 10, 11, 12}, root.children[0].keys)
	assert.NoError(t, treeOf(3, root).Check())
}

func TestFixChildMergeWithRight(t *testing.T) {
	t.Parallel()

	root := internal([]int{10, 20}, leaf(1, 2), leaf(11, 12), leaf(21, 22))
	pos := root.fixChild(0, 3)

	assert.Equal(t, 0, pos)
	assert.Equal(t, []int{20}, root.keys)
	assert.Equal(t, []int{1, 2, 10, 11, 12}, root.children[0].keys)
	assert.Equal(t, []int{21, 22}, root.children[1].keys)
	assert.NoError(t, treeOf(3, root).Check())
}

func TestFixChildBorrowMovesSubtree(t *testing.T) {
	t.Parallel()

	left := internal([]int{5, 10, 15}, leaf(1, 2), leaf(6, 7), leaf(11, 12), leaf(16, 17))
	right := internal([]int{25, 30}, leaf(21, 22), leaf(26, 27), leaf(31, 32))
	root := internal([]int{20}, left, right)
	require.NoError(t, treeOf(3, root).Check())

	moved := left.children[3]
	root.fixChild(1, 3)

	assert.Equal(t, []int{15}, root.keys)
	assert.Equal(t, []int{5, 10}, left.keys)
	assert.Len(t, left.children, 3)
	assert.Equal(t, []int{20, 25, 30}, right.keys)
	assert.Same(t, moved, right.children[0])
	assert.NoError(t, treeOf(3, root).Check())
}

func TestDeleteSeparatorUsesPredecessor(t *testing.T) {
	t.Parallel()

	root := internal([]int{10}, leaf(1, 2, 3), leaf(11, 12))
	tree := treeOf(3, root)

	require.True(t, tree.Delete(10))
	assert.Equal(t, []int{3}, tree.root.keys)
	assert.Equal(t, []int{1, 2}, tree.root.children[0].keys)
	assert.NoError(t, tree.Check())
}

func TestDeleteSeparatorUsesSuccessor(t *testing.T) {
	t.Parallel()

	root := internal([]int{10}, leaf(1, 2), leaf(11, 12, 13))
	tree := treeOf(3, root)

	require.True(t, tree.Delete(10))
	assert.Equal(t, []int{11}, tree.root.keys)
	assert.Equal(t, []int{12, 13}, tree.root.children[1].keys)
	assert.NoError(t, tree.Check())
}

func TestDeleteSeparatorMergesAndCollapsesRoot(t *testing.T) {
	t.Parallel()

	root := internal([]int{10}, leaf(1, 2), leaf(11, 12))
	tree := treeOf(3, root)

	require.True(t, tree.Delete(10))
	assert.True(t, tree.root.isLeaf())
	assert.Equal(t, []int{1, 2, 11, 12}, tree.root.keys)
	assert.Equal(t, 4, tree.Len())
	assert.NoError(t, tree.Check())
}
