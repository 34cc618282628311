// Package checkpoint signs and verifies published accumulator roots.
//
// A checkpoint is a COSE_Sign1 message whose payload is a CBOR encoded
// RootState. The root is removed from the payload after signing, so a
// verifier must obtain the root from the accumulator itself (for example by
// replaying the leaves up to State.Size) and supply it to complete
// verification.
package checkpoint
