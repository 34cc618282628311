package imt

import (
	"fmt"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// Insert appends leaf at index Size() and rehashes its path to the root.
func (t *IMT[N]) Insert(leaf N) error {
	if len(t.nodes[0]) >= t.capacity {
		return fmt.Errorf("%w: the tree is full", accumulator.ErrCapacity)
	}
	t.setPath(len(t.nodes[0]), leaf)
	return nil
}

// Update replaces the leaf at index and rehashes its path to the root.
func (t *IMT[N]) Update(index int, newLeaf N) error {
	if index < 0 || index >= len(t.nodes[0]) {
		return fmt.Errorf("%w: leaf %d, size %d", accumulator.ErrNotFound, index, len(t.nodes[0]))
	}
	t.setPath(index, newLeaf)
	return nil
}

// Delete sets the leaf at index to the zero value. The size is unchanged.
func (t *IMT[N]) Delete(index int) error {
	return t.Update(index, t.zeroes[0])
}

// setPath writes node at index on level 0 and then the hash of each enclosing
// block on the level above, up to the root. An index equal to the level length
// extends the level by one.
func (t *IMT[N]) setPath(index int, node N) {
	for level := 0; level < t.depth; level++ {
		if index == len(t.nodes[level]) {
			t.nodes[level] = append(t.nodes[level], node)
		} else {
			t.nodes[level][index] = node
		}
		node = t.hash(t.children(level, index-index%t.arity))
		index /= t.arity
	}
	t.nodes[t.depth] = []N{node}
}
