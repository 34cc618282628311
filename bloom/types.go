package bloom

import "errors"

const (
	// DefaultBitsPerElement and DefaultK give roughly a 1% false positive
	// rate at the expected element count.
	DefaultBitsPerElement uint64 = 10
	DefaultK              uint8  = 7
)

var (
	ErrBadK          = errors.New("bloom: k invalid")
	ErrBadMBits      = errors.New("bloom: mBits invalid")
	ErrMBitsOverflow = errors.New("bloom: mBits overflows supported range")
)
