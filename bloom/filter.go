package bloom

import (
	"crypto/sha256"
	"encoding/binary"
)

const bloomDomain = 0xB0

// Filter is a Bloom filter over byte strings. The zero value is not usable,
// create one with New.
type Filter struct {
	bitset    []byte
	mBits     uint64
	k         uint8
	nInserted uint64
}

// New returns an empty filter sized for expected elements.
func New(expected uint64, bitsPerElement uint64, k uint8) (*Filter, error) {
	if k == 0 {
		return nil, ErrBadK
	}
	if err := CheckBPE(bitsPerElement); err != nil {
		return nil, err
	}
	if expected == 0 {
		return nil, ErrBadMBits
	}
	mBits := MBits(expected, bitsPerElement)
	if mBits == 0 {
		return nil, ErrMBitsOverflow
	}
	return &Filter{
		bitset: make([]byte, BitsetBytes(mBits)),
		mBits:  uint64(mBits),
		k:      k,
	}, nil
}

// Insert adds elem to the filter.
func (f *Filter) Insert(elem []byte) {
	h1, h2 := hashPair(elem)
	for i := uint64(0); i < uint64(f.k); i++ {
		j := (h1 + i*h2) % f.mBits
		f.bitset[j>>3] |= 1 << (j & 7)
	}
	f.nInserted++
}

// MaybeContains returns false if elem was definitely never inserted.
func (f *Filter) MaybeContains(elem []byte) bool {
	h1, h2 := hashPair(elem)
	for i := uint64(0); i < uint64(f.k); i++ {
		j := (h1 + i*h2) % f.mBits
		if f.bitset[j>>3]&(1<<(j&7)) == 0 {
			return false
		}
	}
	return true
}

// Reset clears the filter, keeping its sizing.
func (f *Filter) Reset() {
	clear(f.bitset)
	f.nInserted = 0
}

// Inserted is the number of Insert calls since the filter was created or
// reset.
func (f *Filter) Inserted() uint64 { return f.nInserted }

func (f *Filter) MBits() uint64 { return f.mBits }

func hashPair(elem []byte) (h1 uint64, h2 uint64) {
	// SHA-256( 0xB0 || elem )
	h := sha256.New()
	h.Write([]byte{bloomDomain})
	h.Write(elem)
	sum := h.Sum(nil)
	h1 = binary.BigEndian.Uint64(sum[0:8])
	h2 = binary.BigEndian.Uint64(sum[8:16])
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}
