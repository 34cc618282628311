package checkpoint

import (
	"time"

	"github.com/google/uuid"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/proofcodec"
)

// RootState is the signed commitment to an accumulator at a given size.
type RootState struct {
	// AccumulatorID is the 16 byte UUID of the accumulator instance.
	AccumulatorID []byte `cbor:"1,keyasint"`
	// Kind is the accumulator design the root belongs to, it determines how
	// Size is replayed.
	Kind proofcodec.Kind `cbor:"2,keyasint"`
	// Size is the number of leaves, or items for a tower, committed to.
	Size uint64 `cbor:"3,keyasint"`
	Root []byte `cbor:"4,keyasint"`
	// Timestamp is the unix time (milliseconds) read at the time the root was
	// signed. Including it allows for the same root to be re-signed.
	Timestamp int64 `cbor:"5,keyasint"`
}

func NewRootState(id uuid.UUID, kind proofcodec.Kind, size int, root []byte) RootState {
	return RootState{
		AccumulatorID: id[:],
		Kind:          kind,
		Size:          uint64(size),
		Root:          root,
		Timestamp:     time.Now().UnixMilli(),
	}
}

// ID returns AccumulatorID as a UUID.
func (s RootState) ID() (uuid.UUID, error) {
	return uuid.FromBytes(s.AccumulatorID)
}
