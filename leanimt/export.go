package leanimt

import (
	"encoding/json"
	"fmt"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// Export returns the JSON encoding of every level of the tree, leaves first.
// Import on an empty tree restores it without hashing.
func (t *LeanIMT[N]) Export() ([]byte, error) {
	return json.Marshal(t.nodes)
}

// Import replaces the state of an empty tree with data produced by Export.
// The level shapes are checked but the hashes are not recomputed, so data must
// come from a trusted source.
func (t *LeanIMT[N]) Import(data []byte) error {
	if t.Size() != 0 {
		return fmt.Errorf("%w: import failed, the tree is not empty", accumulator.ErrValidation)
	}

	var nodes [][]N
	if err := json.Unmarshal(data, &nodes); err != nil {
		return fmt.Errorf("%w: import failed: %v", accumulator.ErrValidation, err)
	}
	if err := checkShape(nodes); err != nil {
		return err
	}
	if len(nodes[0]) == 0 {
		return nil
	}
	t.nodes = nodes
	return nil
}

// checkShape requires the levels of a lean tree of len(nodes[0]) leaves.
func checkShape[N any](nodes [][]N) error {
	if len(nodes) == 0 {
		return fmt.Errorf("%w: import failed, no levels", accumulator.ErrValidation)
	}
	size := len(nodes[0])
	if size == 0 {
		if len(nodes) != 1 {
			return fmt.Errorf("%w: import failed, empty tree with %d levels", accumulator.ErrValidation, len(nodes))
		}
		return nil
	}
	if depth := accumulator.CeilLog2(uint64(size)); len(nodes)-1 != depth {
		return fmt.Errorf(
			"%w: import failed, %d leaves need depth %d not %d", accumulator.ErrValidation, size, depth, len(nodes)-1)
	}
	for level := 1; level < len(nodes); level++ {
		if want := (len(nodes[level-1]) + 1) / 2; len(nodes[level]) != want {
			return fmt.Errorf(
				"%w: import failed, level %d has %d nodes not %d",
				accumulator.ErrValidation, level, len(nodes[level]), want)
		}
	}
	return nil
}
