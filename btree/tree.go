package btree

// Search walks down from the root looking for key.
// It returns the node holding key and the key's index in that node, or found == false.
func (t *BTree[K]) Search(key K) (node *Node[K], index int, found bool) {
	for next := t.root; next != nil; {
		pos, ok := next.search(key)
		if ok {
			return next, pos, true
		}
		if next.isLeaf() {
			break
		}
		next = next.children[pos]
	}
	return nil, 0, false
}

// Has reports whether key is in the tree.
func (t *BTree[K]) Has(key K) bool {
	_, _, found := t.Search(key)
	return found
}

/*
Create a new root node.
The existing root then becomes the new root's left child.
The new node created after splitting the existing root becomes new root's right child.
This is the only place where the tree grows taller.
*/
func (t *BTree[K]) splitRoot() {
	newRoot := &Node[K]{}
	midKey, newNode := t.root.split(t.degree)
	newRoot.insertKeyAt(0, midKey)
	newRoot.insertChildAt(0, t.root)
	newRoot.insertChildAt(1, newNode)
	t.root = newRoot

	t.logger.Info("root split", "height", t.Height(), "degree", t.degree)
}

// Insert adds key to the tree. It returns false if key was already present.
func (t *BTree[K]) Insert(key K) bool {
	// The tree root is full, so perform a split on the root.
	if len(t.root.keys) >= maxKeys(t.degree) {
		t.splitRoot()
	}

	// Begin insertion.
	if !t.root.insert(key, t.degree) {
		return false
	}
	t.length++
	return true
}

// Delete removes key from the tree. It returns false, leaving the tree untouched, if key is absent.
func (t *BTree[K]) Delete(key K) bool {
	// The descent rebalances as it goes, so only start it when there is something to remove.
	if !t.Has(key) {
		t.logger.Info("key not found", "key", key)
		return false
	}

	t.root.delete(key, t.degree)
	t.length--

	// A merge below the root may have pulled its last key down.
	if len(t.root.keys) == 0 && !t.root.isLeaf() {
		t.root = t.root.children[0]
		t.logger.Info("root collapse", "height", t.Height(), "degree", t.degree)
	}
	return true
}

// Ascend calls fn for every key in ascending order until fn returns false.
func (t *BTree[K]) Ascend(fn func(key K) bool) {
	t.root.ascend(fn)
}

// Keys returns all keys in ascending order.
func (t *BTree[K]) Keys() []K {
	keys := make([]K, 0, t.length)
	t.Ascend(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Min returns the smallest key in the tree.
func (t *BTree[K]) Min() (key K, ok bool) {
	if t.length == 0 {
		return key, false
	}
	return t.root.leftmost().keys[0], true
}

// Max returns the largest key in the tree.
func (t *BTree[K]) Max() (key K, ok bool) {
	if t.length == 0 {
		return key, false
	}
	leaf := t.root.rightmost()
	return leaf.keys[len(leaf.keys)-1], true
}
