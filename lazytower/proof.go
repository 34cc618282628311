package lazytower

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// Proof shows that Item was added to a tower whose commitment is
// DigestOfDigests.
//
// TopDownDigests holds the live level digests from the top level down,
// zero padded to H. Childrens[lv] is the full W wide block of level lv that
// contains the path value, for lv < RootLv, and the remaining rows of the H-1
// are zero. RootLevel is the live buffer of level RootLv, where the path
// reaches the live tower, zero padded to W.
type Proof[N comparable] struct {
	Item            N        `json:"item" cbor:"1,keyasint"`
	LevelLengths    *big.Int `json:"levelLengths" cbor:"2,keyasint"`
	DigestOfDigests N        `json:"digestOfDigests" cbor:"3,keyasint"`
	TopDownDigests  []N      `json:"topDownDigests" cbor:"4,keyasint"`
	RootLv          int      `json:"rootLv" cbor:"5,keyasint"`
	RootLevel       []N      `json:"rootLevel" cbor:"6,keyasint"`
	Childrens       [][]N    `json:"childrens" cbor:"7,keyasint"`
}

// Build returns a proof for the item at index, in insertion order.
func (t *Tower[N]) Build(index int) (*Proof[N], error) {
	if t.history != HistoryFull {
		return nil, ErrHistoryDisabled
	}
	if len(t.levels) == 0 {
		return nil, ErrTowerEmpty
	}
	if index < 0 || index >= len(t.fullLevels[0]) {
		return nil, fmt.Errorf("%w: item %d, length %d", accumulator.ErrNotFound, index, len(t.fullLevels[0]))
	}

	digests := t.Digests()
	slices.Reverse(digests)
	proof := &Proof[N]{
		Item:            t.fullLevels[0][index],
		LevelLengths:    t.LevelLengths(),
		DigestOfDigests: accumulator.Fold(t.hash, digests),
		TopDownDigests:  pad(digests, t.height),
	}

	childrens := make([][]N, 0, t.height-1)
	for lv := 0; ; lv++ {
		full := t.fullLevels[lv]
		live := len(t.levels[lv])
		start := index - index%t.width
		// Blocks below the live buffer are complete, the live buffer starts
		// on a multiple of W.
		if start == len(full)-live {
			proof.RootLv = lv
			proof.RootLevel = pad(full[start:start+live], t.width)
			break
		}
		childrens = append(childrens, slices.Clone(full[start:start+t.width]))
		index /= t.width
	}
	for len(childrens) < t.height-1 {
		childrens = append(childrens, make([]N, t.width))
	}
	proof.Childrens = childrens
	return proof, nil
}

// pad returns a copy of s extended with zero values to length n.
func pad[N any](s []N, n int) []N {
	padded := make([]N, n)
	copy(padded, s)
	return padded
}
