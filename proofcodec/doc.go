// Package proofcodec encodes accumulator proofs for transport.
//
// Proofs are encoded as CBOR maps with small integer keys, using the core
// deterministic encoding so that equal proofs always encode to equal bytes.
// The key assignment is fixed by the cbor tags on the proof types in the imt,
// leanimt and lazytower packages. The JSON field names on the same types are
// the interchange names used by other implementations.
package proofcodec
