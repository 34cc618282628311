package accumulator

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilLog2(t *testing.T) {
	tests := []struct {
		num  uint64
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{1 << 40, 40},
		{1<<40 + 1, 41},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CeilLog2(tt.num), "CeilLog2(%d)", tt.num)
	}
}

func TestPowInt(t *testing.T) {
	tests := []struct {
		name      string
		base, exp int
		want      int
		wantOK    bool
	}{
		{"binary depth 2", 2, 2, 4, true},
		{"quinary depth 3", 5, 3, 125, true},
		{"zero exponent", 7, 0, 1, true},
		{"binary depth 32", 2, 32, 1 << 32, true},
		{"overflow", 16, 32, 0, false},
		{"max int boundary", 2, 62, 1 << 62, true},
		{"just over", 2, 63, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PowInt(tt.base, tt.exp)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.LessOrEqual(t, got, math.MaxInt)
			}
		})
	}
}

func TestPackLevelLengths(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		want    int64
	}{
		{"three levels of one", []int{1, 1, 1}, 0x111},
		{"two levels", []int{2, 3}, 0x32},
		{"empty", nil, 0},
		{"max field", []int{15, 1}, 0x1f},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed := PackLevelLengths(tt.lengths)
			assert.Equal(t, 0, packed.Cmp(big.NewInt(tt.want)))
			assert.Equal(t, append(tt.lengths, 0), UnpackLevelLengths(packed, len(tt.lengths)+1))
		})
	}
}

func TestFold(t *testing.T) {
	add := func(a, b uint64) uint64 { return (a + b) % 1000 }
	sub := func(a, b int) int { return a - b }

	assert.Equal(t, uint64(0), Fold(add, nil))
	assert.Equal(t, uint64(7), Fold(add, []uint64{7}))
	assert.Equal(t, uint64(6), Fold(add, []uint64{1, 2, 3}))
	// left fold: ((10 - 3) - 2)
	assert.Equal(t, 5, Fold(sub, []int{10, 3, 2}))
	assert.Equal(t, 5, Binary[int](sub)([]int{10, 3, 2}))
}
