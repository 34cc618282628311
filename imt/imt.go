package imt

import (
	"fmt"
	"math"
	"slices"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// MaxDepth bounds the depth accepted by New.
const MaxDepth = 32

// IMT is an incremental Merkle tree of fixed depth and arity.
type IMT[N comparable] struct {
	// nodes[0] holds the leaves and nodes[depth] holds the root. A level only
	// stores the nodes that have at least one non padding descendant.
	nodes  [][]N
	zeroes []N
	hash   accumulator.HashFunction[N]
	depth  int
	arity  int
	// capacity is arity^depth, or math.MaxInt if that does not fit an int
	capacity int
}

// New creates a tree and, if leaves is not empty, fills it with a copy of
// leaves in a single bottom up pass.
func New[N comparable](
	hash accumulator.HashFunction[N], depth int, zeroValue N, arity int, leaves []N,
) (*IMT[N], error) {
	if hash == nil {
		return nil, fmt.Errorf("%w: a hash function is required", accumulator.ErrValidation)
	}
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: depth %d must be in [1, %d]", accumulator.ErrValidation, depth, MaxDepth)
	}
	if arity < 2 {
		return nil, fmt.Errorf("%w: arity %d must be at least 2", accumulator.ErrValidation, arity)
	}
	capacity, ok := accumulator.PowInt(arity, depth)
	if !ok {
		// No slice can hold more leaves than this.
		capacity = math.MaxInt
	}
	if len(leaves) > capacity {
		return nil, fmt.Errorf(
			"%w: %d leaves exceed the capacity %d", accumulator.ErrValidation, len(leaves), capacity)
	}

	t := &IMT[N]{
		nodes:    make([][]N, depth+1),
		zeroes:   make([]N, depth),
		hash:     hash,
		depth:    depth,
		arity:    arity,
		capacity: capacity,
	}

	zero := zeroValue
	for level := 0; level < depth; level++ {
		t.zeroes[level] = zero
		zero = hash(repeat(zero, arity))
	}

	t.nodes[0] = slices.Clone(leaves)
	if len(leaves) == 0 {
		// The empty root commits to arity^depth zero leaves.
		t.nodes[depth] = []N{zero}
		return t, nil
	}

	for level := 0; level < depth; level++ {
		parents := (len(t.nodes[level]) + arity - 1) / arity
		t.nodes[level+1] = make([]N, parents)
		for i := 0; i < parents; i++ {
			t.nodes[level+1][i] = hash(t.children(level, i*arity))
		}
	}
	return t, nil
}

func repeat[N any](v N, n int) []N {
	s := make([]N, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// children returns the arity nodes of the block starting at first, padded with
// the zero value of the level where the level is short.
func (t *IMT[N]) children(level int, first int) []N {
	block := make([]N, t.arity)
	stored := t.nodes[level]
	for i := range block {
		if first+i < len(stored) {
			block[i] = stored[first+i]
		} else {
			block[i] = t.zeroes[level]
		}
	}
	return block
}

// Root returns the current root.
func (t *IMT[N]) Root() N { return t.nodes[t.depth][0] }

func (t *IMT[N]) Depth() int { return t.depth }

func (t *IMT[N]) Arity() int { return t.arity }

// Size returns the number of leaves inserted so far, deleted leaves included.
func (t *IMT[N]) Size() int { return len(t.nodes[0]) }

// Capacity returns arity^depth.
func (t *IMT[N]) Capacity() int { return t.capacity }

// Leaves returns a copy of the leaves.
func (t *IMT[N]) Leaves() []N { return slices.Clone(t.nodes[0]) }

// Zeroes returns a copy of the per level zero values, zeroes[0] being the
// value supplied to New.
func (t *IMT[N]) Zeroes() []N { return slices.Clone(t.zeroes) }

// IndexOf returns the index of the first leaf equal to leaf, or -1.
func (t *IMT[N]) IndexOf(leaf N) int {
	return slices.Index(t.nodes[0], leaf)
}
