package lazytower

import (
	"slices"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// VerifyProof checks proof using the shape and hash of this tower. It does
// not check that the proof commitment is the current one.
func (t *Tower[N]) VerifyProof(proof *Proof[N]) bool {
	return VerifyProof(proof, t.height, t.width, t.hash)
}

// VerifyProof reports whether proof is a valid membership proof for a tower
// of the given height and width. It checks that
//
//   - the level lengths describe between 1 and height contiguous levels, none
//     wider than width
//   - the item climbs through Childrens[0..RootLv-1], each block containing the
//     previous value and digesting to the next
//   - the climbed value is in the live prefix of RootLevel and that prefix
//     digests to the matching entry of TopDownDigests
//   - DigestOfDigests is the fold of the used TopDownDigests
//   - every padding entry (RootLevel past the live length, Childrens rows from
//     RootLv up, TopDownDigests past the data height) is the zero value
func VerifyProof[N comparable](proof *Proof[N], height, width int, hash accumulator.Hash2Function[N]) bool {
	if proof == nil || hash == nil || height < 1 || width < 2 || width > accumulator.MaxLevelLength {
		return false
	}
	if proof.LevelLengths == nil || proof.LevelLengths.Sign() < 0 {
		return false
	}
	if proof.LevelLengths.BitLen() > height*accumulator.LevelLengthBits {
		return false
	}
	if len(proof.TopDownDigests) != height || len(proof.RootLevel) != width || len(proof.Childrens) != height-1 {
		return false
	}
	for _, row := range proof.Childrens {
		if len(row) != width {
			return false
		}
	}

	lengths := accumulator.UnpackLevelLengths(proof.LevelLengths, height)
	dataHeight := 0
	for dataHeight < height && lengths[dataHeight] != 0 {
		if lengths[dataHeight] > width {
			return false
		}
		dataHeight++
	}
	if dataHeight == 0 {
		return false
	}
	for _, n := range lengths[dataHeight:] {
		if n != 0 {
			return false
		}
	}
	if proof.RootLv < 0 || proof.RootLv >= dataHeight {
		return false
	}
	if !allZero(proof.RootLevel[lengths[proof.RootLv]:]) || !allZero(proof.TopDownDigests[dataHeight:]) {
		return false
	}
	for _, row := range proof.Childrens[proof.RootLv:] {
		if !allZero(row) {
			return false
		}
	}

	node := proof.Item
	for lv := 0; lv < proof.RootLv; lv++ {
		if !slices.Contains(proof.Childrens[lv], node) {
			return false
		}
		node = accumulator.Fold(hash, proof.Childrens[lv])
	}

	live := proof.RootLevel[:lengths[proof.RootLv]]
	if !slices.Contains(live, node) {
		return false
	}
	if accumulator.Fold(hash, live) != proof.TopDownDigests[dataHeight-1-proof.RootLv] {
		return false
	}
	return accumulator.Fold(hash, proof.TopDownDigests[:dataHeight]) == proof.DigestOfDigests
}

func allZero[N comparable](s []N) bool {
	var zero N
	for _, v := range s {
		if v != zero {
			return false
		}
	}
	return true
}
