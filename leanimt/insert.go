package leanimt

import (
	"fmt"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// Insert appends leaf and updates the path from it to the root, adding a
// level first when the tree is full at its current depth.
func (t *LeanIMT[N]) Insert(leaf N) {
	if t.Depth() < accumulator.CeilLog2(uint64(t.Size()+1)) {
		t.nodes = append(t.nodes, nil)
	}

	node := leaf
	index := t.Size()
	depth := t.Depth()
	for level := 0; level < depth; level++ {
		t.set(level, index, node)
		if index&1 == 1 {
			node = t.hash(t.nodes[level][index-1], node)
		}
		index >>= 1
	}
	t.nodes[depth] = []N{node}
}

// InsertMany appends leaves and recomputes only the nodes they affect. It
// produces the same tree as inserting the leaves one at a time.
func (t *LeanIMT[N]) InsertMany(leaves []N) error {
	if len(leaves) == 0 {
		return fmt.Errorf("%w: there are no leaves to add", accumulator.ErrValidation)
	}

	first := t.Size() >> 1
	t.nodes[0] = append(t.nodes[0], leaves...)

	for t.Depth() < accumulator.CeilLog2(uint64(t.Size())) {
		t.nodes = append(t.nodes, nil)
	}

	for level := 0; level < t.Depth(); level++ {
		children := t.nodes[level]
		parents := (len(children) + 1) / 2
		for index := first; index < parents; index++ {
			node := children[index*2]
			if index*2+1 < len(children) {
				node = t.hash(node, children[index*2+1])
			}
			t.set(level+1, index, node)
		}
		first >>= 1
	}
	return nil
}
