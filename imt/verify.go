package imt

import (
	"slices"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// VerifyProof checks proof using the hash of this tree. It does not check
// that the proof root is the current root of t.
func (t *IMT[N]) VerifyProof(proof *MerkleProof[N]) bool {
	return VerifyProof(proof, t.hash)
}

// VerifyProof recomputes the root from the leaf and the siblings of proof and
// reports whether it equals proof.Root. Malformed proofs do not verify.
func VerifyProof[N comparable](proof *MerkleProof[N], hash accumulator.HashFunction[N]) bool {
	if proof == nil || hash == nil || len(proof.Siblings) != len(proof.PathIndices) {
		return false
	}

	node := proof.Leaf
	for level, siblings := range proof.Siblings {
		position := proof.PathIndices[level]
		if position < 0 || position > len(siblings) {
			return false
		}
		node = hash(slices.Insert(slices.Clone(siblings), position, node))
	}
	return node == proof.Root
}
