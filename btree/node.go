package btree

import "cmp"

// Node is a single node of a BTree.
// Nodes returned by Search belong to the tree and are only valid until the next Insert or Delete.
type Node[K cmp.Ordered] struct {
	// keys are strictly increasing. An internal node has exactly len(keys)+1 children,
	// a leaf has none.
	keys     []K
	children []*Node[K]
}

func maxKeys(degree int) int {
	return 2*degree - 1
}

func (n *Node[K]) isLeaf() bool {
	return len(n.children) == 0
}

// IsLeaf reports whether n has no children.
func (n *Node[K]) IsLeaf() bool {
	return n.isLeaf()
}

// Len returns the number of keys held by n.
func (n *Node[K]) Len() int {
	return len(n.keys)
}

// Key returns the key at index i of n.
func (n *Node[K]) Key(i int) K {
	return n.keys[i]
}

// Keys returns a copy of the keys held by n.
func (n *Node[K]) Keys() []K {
	return append([]K(nil), n.keys...)
}

/*
If key is found in node n, return its index i.
Else, return the index j where the key would have resided if it was present in the node.
Basically, lower bound of the key in the node -- this coincides with position of the child pointer !!
So, we can continue the traversal down the tree if the returned boolean value is false.
*/
func (n *Node[K]) search(key K) (int, bool) {
	low, high := 0, len(n.keys)
	for low < high {
		mid := int(uint(low+high) >> 1)
		switch c := cmp.Compare(key, n.keys[mid]); {
		case c > 0:
			low = mid + 1
		case c < 0:
			high = mid
		default:
			return mid, true
		}
	}
	return low, false
}

// helper method to insert a key at an arbitrary position of a B-tree node
func (n *Node[K]) insertKeyAt(pos int, key K) {
	var zero K
	n.keys = append(n.keys, zero)
	copy(n.keys[pos+1:], n.keys[pos:])
	n.keys[pos] = key
}

// helper method to insert child pointer at an arbitrary position of a B-tree node
func (n *Node[K]) insertChildAt(pos int, child *Node[K]) {
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = child
}

// removeKeyAt removes and returns the key at pos. The vacated slot is zeroed.
func (n *Node[K]) removeKeyAt(pos int) K {
	key := n.keys[pos]
	copy(n.keys[pos:], n.keys[pos+1:])
	var zero K
	n.keys[len(n.keys)-1] = zero
	n.keys = n.keys[:len(n.keys)-1]
	return key
}

// removeChildAt removes and returns the child at pos. The vacated slot is zeroed.
func (n *Node[K]) removeChildAt(pos int) *Node[K] {
	child := n.children[pos]
	copy(n.children[pos:], n.children[pos+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	return child
}

/*
we split as soon as we reach the parent of a child that is already full.
split() returns the middle key and newly created node, so we can link them to the parent.
n keeps the lower degree-1 keys (and degree children), the new node gets the upper degree-1 keys.
Note: This doesn't include splitting the root node. For that check splitRoot() in btree.go
*/
func (n *Node[K]) split(degree int) (K, *Node[K]) {
	mid := degree - 1
	midKey := n.keys[mid]

	// Create a new node and move the upper half of the keys into it.
	newNode := &Node[K]{keys: make([]K, 0, maxKeys(degree))}
	newNode.keys = append(newNode.keys, n.keys[mid+1:]...)

	// Except for leaf nodes, move the upper half of the child pointers too.
	if !n.isLeaf() {
		newNode.children = make([]*Node[K], 0, maxKeys(degree)+1)
		newNode.children = append(newNode.children, n.children[mid+1:]...)
		clear(n.children[mid+1:])
		n.children = n.children[:mid+1]
	}

	clear(n.keys[mid:])
	n.keys = n.keys[:mid]

	return midKey, newNode
}

// splitChild splits the full child at pos and links the promoted key and the new sibling into n.
func (n *Node[K]) splitChild(pos, degree int) {
	midKey, newNode := n.children[pos].split(degree)
	n.insertKeyAt(pos, midKey)
	n.insertChildAt(pos+1, newNode)
}

/*
Returned value is true if we performed insertion. If key already exists, nothing is stored and we return false.
The algo will start traversing the tree from its root, recursively calling the insert() method until it reaches a
leaf node suitable for insertion. n is never full when insert() is called on it.
*/
func (n *Node[K]) insert(key K, degree int) bool {
	pos, found := n.search(key)

	// The key already exists.
	if found {
		return false
	}

	// If we reach a leaf node -> it has sufficient space for the new key so, insert it
	if n.isLeaf() {
		n.insertKeyAt(pos, key)
		return true
	}

	// If the next node on the traversal path is already full, split it
	if len(n.children[pos].keys) >= maxKeys(degree) {
		n.splitChild(pos, degree)

		// We may need to change our direction after promoting the middle key to the parent.
		switch c := cmp.Compare(key, n.keys[pos]); {
		case c < 0:
			// The key is still smaller than the promoted key, keep the same direction.
		case c > 0:
			// The promoted key is smaller than the one we are inserting, so change direction.
			pos++
		default:
			// The promoted key is the key we are inserting.
			return false
		}
	}

	// Continue with the insertion process
	return n.children[pos].insert(key, degree)
}

/*
delete removes key from the subtree rooted at n. The caller guarantees that key is present
and that n holds at least degree keys unless n is the root, so every borrow or merge below
has room to complete.
*/
func (n *Node[K]) delete(key K, degree int) bool {
	pos, found := n.search(key)

	if found {
		if n.isLeaf() {
			n.removeKeyAt(pos)
			return true
		}
		return n.deleteSeparator(pos, degree)
	}

	if n.isLeaf() {
		return false
	}

	// Top up the child before descending so it can afford to lose a key.
	if len(n.children[pos].keys) < degree {
		pos = n.fixChild(pos, degree)
	}
	return n.children[pos].delete(key, degree)
}

// deleteSeparator removes n.keys[pos] from an internal node.
func (n *Node[K]) deleteSeparator(pos, degree int) bool {
	left, right := n.children[pos], n.children[pos+1]
	switch {
	case len(left.keys) >= degree:
		pred := n.predecessor(pos)
		n.keys[pos] = pred
		return left.delete(pred, degree)
	case len(right.keys) >= degree:
		succ := n.successor(pos)
		n.keys[pos] = succ
		return right.delete(succ, degree)
	default:
		// Both neighbours are minimal: fold the separator down and delete it from the merged node.
		key := n.keys[pos]
		n.mergeChildren(pos)
		return left.delete(key, degree)
	}
}

// predecessor returns the largest key in the subtree left of n.keys[pos].
func (n *Node[K]) predecessor(pos int) K {
	leaf := n.children[pos].rightmost()
	return leaf.keys[len(leaf.keys)-1]
}

// successor returns the smallest key in the subtree right of n.keys[pos].
func (n *Node[K]) successor(pos int) K {
	return n.children[pos+1].leftmost().keys[0]
}

func (n *Node[K]) leftmost() *Node[K] {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n
}

func (n *Node[K]) rightmost() *Node[K] {
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n
}

/*
fixChild makes sure children[pos] holds at least degree keys, first by borrowing from a sibling
that can spare one, otherwise by merging with a sibling. It returns the index of the child
that now covers the original key range: merging with the left sibling shifts it by one.
*/
func (n *Node[K]) fixChild(pos, degree int) int {
	if pos > 0 && len(n.children[pos-1].keys) >= degree {
		n.borrowFromLeft(pos)
		return pos
	}
	if pos < len(n.children)-1 && len(n.children[pos+1].keys) >= degree {
		n.borrowFromRight(pos)
		return pos
	}
	if pos > 0 {
		n.mergeChildren(pos - 1)
		return pos - 1
	}
	n.mergeChildren(pos)
	return pos
}

// borrowFromLeft rotates a key from children[pos-1] through the separator into children[pos].
func (n *Node[K]) borrowFromLeft(pos int) {
	child, left := n.children[pos], n.children[pos-1]

	// Separator moves down as the child's first key, the sibling's last key replaces it.
	child.insertKeyAt(0, n.keys[pos-1])
	n.keys[pos-1] = left.removeKeyAt(len(left.keys) - 1)

	// The sibling's last subtree follows its key.
	if !left.isLeaf() {
		child.insertChildAt(0, left.removeChildAt(len(left.children)-1))
	}
}

// borrowFromRight rotates a key from children[pos+1] through the separator into children[pos].
func (n *Node[K]) borrowFromRight(pos int) {
	child, right := n.children[pos], n.children[pos+1]

	child.keys = append(child.keys, n.keys[pos])
	n.keys[pos] = right.removeKeyAt(0)

	if !right.isLeaf() {
		child.children = append(child.children, right.removeChildAt(0))
	}
}

// mergeChildren folds n.keys[pos] and children[pos+1] into children[pos].
// n loses one key and one child; the right node becomes unreachable.
func (n *Node[K]) mergeChildren(pos int) {
	left := n.children[pos]
	sep := n.removeKeyAt(pos)
	right := n.removeChildAt(pos + 1)

	left.keys = append(left.keys, sep)
	left.keys = append(left.keys, right.keys...)
	left.children = append(left.children, right.children...)
}

// ascend visits the keys of the subtree in order. It returns false once fn asked to stop.
func (n *Node[K]) ascend(fn func(key K) bool) bool {
	for i, key := range n.keys {
		if !n.isLeaf() && !n.children[i].ascend(fn) {
			return false
		}
		if !fn(key) {
			return false
		}
	}
	if n.isLeaf() {
		return true
	}
	return n.children[len(n.keys)].ascend(fn)
}
