package proofcodec

import (
	"github.com/privacy-scaling-explorations/zk-kit-sub001/imt"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/lazytower"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/leanimt"
)

// Kind names a proof shape.
type Kind string

const (
	KindIMT   Kind = "imt"
	KindLean  Kind = "lean"
	KindTower Kind = "tower"
)

// DecodeIMTProof decodes an imt proof in the codec's encoding.
func DecodeIMTProof[N comparable](c Codec, data []byte) (*imt.MerkleProof[N], error) {
	var proof imt.MerkleProof[N]
	if err := c.Unmarshal(data, &proof); err != nil {
		return nil, err
	}
	return &proof, nil
}

func DecodeLeanProof[N comparable](c Codec, data []byte) (*leanimt.MerkleProof[N], error) {
	var proof leanimt.MerkleProof[N]
	if err := c.Unmarshal(data, &proof); err != nil {
		return nil, err
	}
	return &proof, nil
}

func DecodeTowerProof[N comparable](c Codec, data []byte) (*lazytower.Proof[N], error) {
	var proof lazytower.Proof[N]
	if err := c.Unmarshal(data, &proof); err != nil {
		return nil, err
	}
	return &proof, nil
}
