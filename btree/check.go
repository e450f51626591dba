package btree

import (
	"cmp"
	"fmt"
)

// Check walks the whole tree and returns an error wrapping ErrInvariant describing the first
// structural violation found: node occupancy, child counts, key order, subtree bounds,
// leaf depth or key count. It returns nil for a well-formed tree.
func (t *BTree[K]) Check() error {
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvariant)
	}
	if !t.root.isLeaf() && len(t.root.children) < 2 {
		return fmt.Errorf("%w: internal root has %d children", ErrInvariant, len(t.root.children))
	}

	c := &checker[K]{degree: t.degree, leafDepth: -1}
	if err := c.walk(t.root, 0, nil, nil); err != nil {
		return err
	}
	if c.count != t.length {
		return fmt.Errorf("%w: tree holds %d keys, Len reports %d", ErrInvariant, c.count, t.length)
	}
	return nil
}

type checker[K cmp.Ordered] struct {
	degree    int
	leafDepth int
	count     int
}

// walk checks n and its subtree. lo and hi are the exclusive bounds inherited from the
// ancestors' separators; nil means unbounded.
func (c *checker[K]) walk(n *Node[K], depth int, lo, hi *K) error {
	nkeys := len(n.keys)
	if nkeys > maxKeys(c.degree) {
		return fmt.Errorf("%w: node at depth %d holds %d keys, max %d", ErrInvariant, depth, nkeys, maxKeys(c.degree))
	}
	if depth > 0 && nkeys < c.degree-1 {
		return fmt.Errorf("%w: node at depth %d holds %d keys, min %d", ErrInvariant, depth, nkeys, c.degree-1)
	}

	for i, key := range n.keys {
		if i > 0 && cmp.Compare(n.keys[i-1], key) >= 0 {
			return fmt.Errorf("%w: keys %v and %v out of order at depth %d", ErrInvariant, n.keys[i-1], key, depth)
		}
		if lo != nil && cmp.Compare(key, *lo) <= 0 {
			return fmt.Errorf("%w: key %v not above separator %v", ErrInvariant, key, *lo)
		}
		if hi != nil && cmp.Compare(key, *hi) >= 0 {
			return fmt.Errorf("%w: key %v not below separator %v", ErrInvariant, key, *hi)
		}
	}
	c.count += nkeys

	if n.isLeaf() {
		if c.leafDepth == -1 {
			c.leafDepth = depth
		}
		if depth != c.leafDepth {
			return fmt.Errorf("%w: leaf at depth %d, expected %d", ErrInvariant, depth, c.leafDepth)
		}
		return nil
	}

	if len(n.children) != nkeys+1 {
		return fmt.Errorf("%w: node at depth %d has %d keys and %d children", ErrInvariant, depth, nkeys, len(n.children))
	}
	for i, child := range n.children {
		if child == nil {
			return fmt.Errorf("%w: nil child %d at depth %d", ErrInvariant, i, depth)
		}
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < nkeys {
			childHi = &n.keys[i]
		}
		if err := c.walk(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
