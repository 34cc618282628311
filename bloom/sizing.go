package bloom

// CheckBPE validates bitsPerElement for safe sizing computations.
func CheckBPE(bitsPerElement uint64) error {
	if bitsPerElement == 0 {
		return ErrBadMBits
	}
	if bitsPerElement > uint64(^uint32(0)) {
		return ErrMBitsOverflow
	}
	return nil
}

// MBits returns bitsPerElement * expected, or 0 if the product does not fit
// in a uint32.
func MBits(expected uint64, bitsPerElement uint64) uint32 {
	if expected == 0 || bitsPerElement == 0 {
		return 0
	}
	if expected > uint64(^uint32(0))/bitsPerElement {
		return 0
	}
	return uint32(expected * bitsPerElement)
}

// BitsetBytes returns ceil(mBits/8).
func BitsetBytes(mBits uint32) uint32 {
	return uint32((uint64(mBits) + 7) / 8)
}
