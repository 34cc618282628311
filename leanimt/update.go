package leanimt

import (
	"fmt"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// Update replaces the leaf at index and recomputes its path to the root.
func (t *LeanIMT[N]) Update(index int, newLeaf N) error {
	if index < 0 || index >= t.Size() {
		return fmt.Errorf("%w: leaf %d, size %d", accumulator.ErrNotFound, index, t.Size())
	}

	node := newLeaf
	depth := t.Depth()
	for level := 0; level < depth; level++ {
		t.nodes[level][index] = node
		if index&1 == 1 {
			node = t.hash(t.nodes[level][index-1], node)
		} else if index+1 < len(t.nodes[level]) {
			node = t.hash(node, t.nodes[level][index+1])
		}
		index >>= 1
	}
	t.nodes[depth] = []N{node}
	return nil
}

// Remove sets the leaf at index to the zero value of N. The size and depth of
// the tree do not change.
func (t *LeanIMT[N]) Remove(index int) error {
	var zero N
	return t.Update(index, zero)
}
