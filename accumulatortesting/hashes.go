package accumulatortesting

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
)

// AddMod returns H(a, b) = (a + b) mod m, the toy oracle the worked examples
// use. It is commutative, so it can not detect swapped siblings.
func AddMod(m uint64) accumulator.Hash2Function[uint64] {
	return func(a, b uint64) uint64 {
		return (a + b) % m
	}
}

// SumMod is the list form of AddMod.
func SumMod(m uint64) accumulator.HashFunction[uint64] {
	return func(children []uint64) uint64 {
		var sum uint64
		for _, c := range children {
			sum = (sum + c) % m
		}
		return sum
	}
}

// SHA256N hashes the big endian encoding of the children with sha256 and
// keeps the first 8 bytes. Unlike SumMod it is sensitive to order.
func SHA256N(children []uint64) uint64 {
	h := sha256.New()
	var b [8]byte
	for _, c := range children {
		binary.BigEndian.PutUint64(b[:], c)
		h.Write(b[:])
	}
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}

// SHA256Pair is the binary form of SHA256N.
func SHA256Pair(a, b uint64) uint64 {
	return SHA256N([]uint64{a, b})
}
