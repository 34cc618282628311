package accumulator

import (
	"math"
	"math/big"
	"math/bits"
)

// LevelLengthBits is the number of bits each level occupies in a packed level
// lengths value.
const LevelLengthBits = 4

// MaxLevelLength is the largest length that fits in a packed level field.
const MaxLevelLength = 1<<LevelLengthBits - 1

func BitLength(num uint64) int {
	return bits.Len64(num)
}

// CeilLog2 returns the smallest d such that 1<<d >= num. CeilLog2(0) and
// CeilLog2(1) are both 0.
func CeilLog2(num uint64) int {
	if num <= 1 {
		return 0
	}
	return bits.Len64(num - 1)
}

// PowInt returns base^exp and false if the result does not fit in an int.
func PowInt(base, exp int) (int, bool) {
	result := 1
	for i := 0; i < exp; i++ {
		hi, lo := bits.Mul64(uint64(result), uint64(base))
		if hi != 0 || lo > math.MaxInt {
			return 0, false
		}
		result = int(lo)
	}
	return result, true
}

// PackLevelLengths packs lengths into one integer, LevelLengthBits per level,
// with level 0 in the least significant bits.
func PackLevelLengths(lengths []int) *big.Int {
	packed := new(big.Int)
	field := new(big.Int)
	for lv, n := range lengths {
		field.SetUint64(uint64(n))
		field.Lsh(field, uint(lv*LevelLengthBits))
		packed.Or(packed, field)
	}
	return packed
}

// UnpackLevelLengths is the inverse of PackLevelLengths for count levels.
// Fields above count are ignored.
func UnpackLevelLengths(packed *big.Int, count int) []int {
	lengths := make([]int, count)
	if packed == nil {
		return lengths
	}
	v := new(big.Int).Set(packed)
	mask := big.NewInt(MaxLevelLength)
	field := new(big.Int)
	for lv := 0; lv < count; lv++ {
		field.And(v, mask)
		lengths[lv] = int(field.Int64())
		v.Rsh(v, LevelLengthBits)
	}
	return lengths
}
