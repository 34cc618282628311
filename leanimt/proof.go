package leanimt

import (
	"fmt"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// MerkleProof is a membership proof for one leaf. Siblings lists the existing
// siblings from the leaf up and bit i of Index is set when Siblings[i] is on
// the left.
type MerkleProof[N comparable] struct {
	Root     N   `json:"root" cbor:"1,keyasint"`
	Leaf     N   `json:"leaf" cbor:"2,keyasint"`
	Index    int `json:"index" cbor:"3,keyasint"`
	Siblings []N `json:"siblings" cbor:"4,keyasint"`
}

// GenerateProof returns a proof for the leaf at index. Levels where the path
// node has no sibling are skipped, so Index can differ from index.
func (t *LeanIMT[N]) GenerateProof(index int) (*MerkleProof[N], error) {
	if index < 0 || index >= t.Size() {
		return nil, fmt.Errorf("%w: leaf %d, size %d", accumulator.ErrNotFound, index, t.Size())
	}

	proof := &MerkleProof[N]{
		Root:     t.Root(),
		Leaf:     t.nodes[0][index],
		Siblings: []N{},
	}
	for level := 0; level < t.Depth(); level++ {
		right := index&1 == 1
		sibling := index + 1
		if right {
			sibling = index - 1
		}
		if sibling < len(t.nodes[level]) {
			if right {
				proof.Index |= 1 << len(proof.Siblings)
			}
			proof.Siblings = append(proof.Siblings, t.nodes[level][sibling])
		}
		index >>= 1
	}
	return proof, nil
}

// VerifyProof checks proof using the hash of this tree. It does not check
// that the proof root is the current root of t.
func (t *LeanIMT[N]) VerifyProof(proof *MerkleProof[N]) bool {
	return VerifyProof(proof, t.hash)
}

// VerifyProof recomputes the root from the leaf and siblings of proof and
// reports whether it equals proof.Root. An index with bits set above the
// number of siblings does not verify.
func VerifyProof[N comparable](proof *MerkleProof[N], hash accumulator.Hash2Function[N]) bool {
	if proof == nil || hash == nil || proof.Index < 0 {
		return false
	}
	if len(proof.Siblings) < accumulator.BitLength(uint64(proof.Index)) {
		return false
	}

	node := proof.Leaf
	for i, sibling := range proof.Siblings {
		if (proof.Index>>i)&1 == 1 {
			node = hash(sibling, node)
		} else {
			node = hash(node, sibling)
		}
	}
	return node == proof.Root
}
