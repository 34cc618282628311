package leanimt

import (
	"fmt"
	"slices"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// LeanIMT is a lean incremental Merkle tree. The zero value is not usable,
// create one with New.
type LeanIMT[N comparable] struct {
	// nodes[0] holds the leaves and nodes[len(nodes)-1] the root, once there
	// is at least one leaf.
	nodes [][]N
	hash  accumulator.Hash2Function[N]
}

// New creates a tree, inserting leaves with InsertMany if any are given.
func New[N comparable](hash accumulator.Hash2Function[N], leaves ...N) (*LeanIMT[N], error) {
	if hash == nil {
		return nil, fmt.Errorf("%w: a hash function is required", accumulator.ErrValidation)
	}
	t := &LeanIMT[N]{
		nodes: [][]N{{}},
		hash:  hash,
	}
	if len(leaves) > 0 {
		if err := t.InsertMany(leaves); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Root returns the root, or the zero value of N for an empty tree.
func (t *LeanIMT[N]) Root() N {
	root, _ := t.RootOK()
	return root
}

// RootOK returns the root and false if the tree is empty.
func (t *LeanIMT[N]) RootOK() (N, bool) {
	top := t.nodes[t.Depth()]
	if len(top) == 0 {
		var zero N
		return zero, false
	}
	return top[0], true
}

func (t *LeanIMT[N]) Depth() int { return len(t.nodes) - 1 }

func (t *LeanIMT[N]) Size() int { return len(t.nodes[0]) }

// Leaves returns a copy of the leaves.
func (t *LeanIMT[N]) Leaves() []N { return slices.Clone(t.nodes[0]) }

// IndexOf returns the index of the first leaf equal to leaf, or -1.
func (t *LeanIMT[N]) IndexOf(leaf N) int { return slices.Index(t.nodes[0], leaf) }

func (t *LeanIMT[N]) Has(leaf N) bool { return slices.Contains(t.nodes[0], leaf) }

// set stores node at index, extending the level when index is its length.
func (t *LeanIMT[N]) set(level, index int, node N) {
	if index == len(t.nodes[level]) {
		t.nodes[level] = append(t.nodes[level], node)
		return
	}
	t.nodes[level][index] = node
}
