package checkpoint

import (
	"crypto/rand"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/proofcodec"
	"github.com/veraison/go-cose"
)

const (
	HeaderLabelCWTClaims int64 = 15

	cwtClaimIssuer  int64 = 1
	cwtClaimSubject int64 = 2
)

// RootSigner produces signatures over accumulator root states.
type RootSigner struct {
	issuer string
	codec  proofcodec.Codec
}

func NewRootSigner(issuer string, codec proofcodec.Codec) RootSigner {
	return RootSigner{
		issuer: issuer,
		codec:  codec,
	}
}

// Sign1 signs state and returns the encoded COSE_Sign1 message with the root
// detached from the payload. The subject claim is the accumulator id.
func (rs RootSigner) Sign1(coseSigner cose.Signer, keyIdentifier string, state RootState, external []byte) ([]byte, error) {
	payload, err := rs.codec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	subject := ""
	if id, err := state.ID(); err == nil {
		subject = id.String()
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelAlgorithm: coseSigner.Algorithm(),
				cose.HeaderLabelKeyID:     []byte(keyIdentifier),
				HeaderLabelCWTClaims: map[int64]any{
					cwtClaimIssuer:  rs.issuer,
					cwtClaimSubject: subject,
				},
			},
		},
		Payload: payload,
	}
	err = msg.Sign(rand.Reader, external, coseSigner)
	if err != nil {
		return nil, err
	}

	// Verifiers must obtain the root from the accumulator.
	state.Root = nil
	payload, err = rs.codec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}
	msg.Payload = payload

	return msg.MarshalCBOR()
}
