package imt

import (
	"fmt"
	"slices"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// MerkleProof is a membership proof for a single leaf.
//
// Siblings[l] holds the arity-1 siblings of the path node on level l in
// order, and PathIndices[l] is the position of the path node among them.
type MerkleProof[N comparable] struct {
	Root        N     `json:"root" cbor:"1,keyasint"`
	Leaf        N     `json:"leaf" cbor:"2,keyasint"`
	LeafIndex   int   `json:"leafIndex" cbor:"3,keyasint"`
	Siblings    [][]N `json:"siblings" cbor:"4,keyasint"`
	PathIndices []int `json:"pathIndices" cbor:"5,keyasint"`
}

// CreateProof returns a proof for the leaf at index against the current root.
func (t *IMT[N]) CreateProof(index int) (*MerkleProof[N], error) {
	if index < 0 || index >= len(t.nodes[0]) {
		return nil, fmt.Errorf("%w: leaf %d, size %d", accumulator.ErrNotFound, index, len(t.nodes[0]))
	}

	proof := &MerkleProof[N]{
		Root:        t.Root(),
		Leaf:        t.nodes[0][index],
		LeafIndex:   index,
		Siblings:    make([][]N, t.depth),
		PathIndices: make([]int, t.depth),
	}

	for level := 0; level < t.depth; level++ {
		position := index % t.arity
		block := t.children(level, index-position)
		proof.PathIndices[level] = position
		proof.Siblings[level] = slices.Delete(block, position, position+1)
		index /= t.arity
	}
	return proof, nil
}
