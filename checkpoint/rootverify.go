package checkpoint

import (
	"crypto"
	"errors"
	"fmt"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/proofcodec"
	"github.com/veraison/go-cose"
)

var (
	ErrMissingKid   = errors.New("checkpoint: protected header has no key id")
	ErrRootAttached = errors.New("checkpoint: signed state still carries a root")
)

// DecodeSignedRoot decodes the RootState from a signed checkpoint. The
// returned state has no root and will not verify until one is supplied, see
// VerifySignedRoot.
func DecodeSignedRoot(codec proofcodec.Codec, msg []byte) (*cose.Sign1Message, RootState, error) {
	var signed cose.Sign1Message
	if err := signed.UnmarshalCBOR(msg); err != nil {
		return nil, RootState{}, err
	}

	var unverifiedState RootState
	if err := codec.UnmarshalInto(signed.Payload, &unverifiedState); err != nil {
		return nil, RootState{}, err
	}
	if len(unverifiedState.Root) != 0 {
		return nil, RootState{}, ErrRootAttached
	}
	return &signed, unverifiedState, nil
}

// VerifySignedRoot completes verification of a decoded checkpoint:
//
//  1. Use DecodeSignedRoot to obtain the RootState from the signed message.
//  2. Use RootState.Size to recompute the root of the accumulator at that size.
//  3. Set RootState.Root and call this function.
func VerifySignedRoot(
	codec proofcodec.Codec, publicKey crypto.PublicKey, signed *cose.Sign1Message, unverifiedState RootState, external []byte,
) error {
	algorithm, err := signed.Headers.Protected.Algorithm()
	if err != nil {
		return err
	}
	verifier, err := cose.NewVerifier(algorithm, publicKey)
	if err != nil {
		return err
	}

	// Sign1Message.Verify reads the payload, leave the caller's copy intact.
	detached := *signed
	detached.Payload, err = codec.MarshalCBOR(unverifiedState)
	if err != nil {
		return err
	}
	return detached.Verify(external, verifier)
}

// KidFromProtectedHeader returns the key id the checkpoint was signed with.
func KidFromProtectedHeader(signed *cose.Sign1Message) (string, error) {
	kid, ok := signed.Headers.Protected[cose.HeaderLabelKeyID]
	if !ok {
		return "", ErrMissingKid
	}
	kidBytes, ok := kid.([]byte)
	if !ok {
		return "", fmt.Errorf("%w: unexpected type %T", ErrMissingKid, kid)
	}
	return string(kidBytes), nil
}
