package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizing(t *testing.T) {
	require.NoError(t, CheckBPE(10))
	mBits := MBits(1, 10)
	require.Equal(t, uint32(10), mBits)
	require.Equal(t, uint32(2), BitsetBytes(mBits))

	mBits = MBits(8, 8)
	require.Equal(t, uint32(64), mBits)
	require.Equal(t, uint32(8), BitsetBytes(mBits))

	require.Equal(t, uint32(536870912), BitsetBytes(^uint32(0)))
}

func TestMBitsOverflow(t *testing.T) {
	require.Equal(t, uint32(0), MBits(0, 10))
	require.Equal(t, uint32(0), MBits(uint64(^uint32(0)), 2))
	require.Equal(t, uint32(^uint32(0)), MBits(uint64(^uint32(0)), 1))
}

func TestCheckBPE(t *testing.T) {
	require.ErrorIs(t, CheckBPE(0), ErrBadMBits)
	require.ErrorIs(t, CheckBPE(uint64(^uint32(0))+1), ErrMBitsOverflow)
}
