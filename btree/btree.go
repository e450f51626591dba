// Package btree implements an in-memory B-tree of arbitrary minimum degree over ordered keys.
//
// A tree of minimum degree t keeps between t-1 and 2t-1 keys in every node except the root,
// and all leaves at the same depth. Insertion splits full nodes on the way down, deletion
// borrows from or merges with siblings on the way down, so every operation is a single
// root-to-leaf pass.
//
// Keys are unique: inserting a key that is already present stores nothing.
// A BTree is not safe for concurrent use.
package btree

import (
	"cmp"
	"fmt"
)

// minDegree is the smallest degree for which the occupancy bounds are satisfiable.
const minDegree = 2

// BTree only keeps a pointer to the root node of the tree.
// A tree is made up of nodes. Each node contains keys.
type BTree[K cmp.Ordered] struct {
	// root is never nil. An empty tree has a leaf root with zero keys.
	root   *Node[K]
	degree int
	length int
	logger Logger
}

// New returns an empty tree of the given minimum degree.
// It fails with ErrInvalidDegree when degree is less than 2.
func New[K cmp.Ordered](degree int, opts ...Option) (*BTree[K], error) {
	if degree < minDegree {
		return nil, fmt.Errorf("%w: %d (must be at least %d)", ErrInvalidDegree, degree, minDegree)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &BTree[K]{
		root:   &Node[K]{},
		degree: degree,
		logger: o.logger,
	}, nil
}

// MustNew is like New but panics if the degree is invalid.
func MustNew[K cmp.Ordered](degree int, opts ...Option) *BTree[K] {
	t, err := New[K](degree, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Degree returns the minimum degree the tree was created with.
func (t *BTree[K]) Degree() int {
	return t.degree
}

// Len returns the number of keys in the tree.
func (t *BTree[K]) Len() int {
	return t.length
}

// Height returns the number of levels in the tree. An empty tree has height 1.
func (t *BTree[K]) Height() int {
	h := 1
	for n := t.root; !n.isLeaf(); n = n.children[0] {
		h++
	}
	return h
}

// Reset removes every key, leaving an empty leaf root.
func (t *BTree[K]) Reset() {
	t.root = &Node[K]{}
	t.length = 0
}

func (t *BTree[K]) String() string {
	v := &Visualizer[K]{Tree: t, Plain: true}
	return v.Visualize()
}
