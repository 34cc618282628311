// Package fieldhash provides BN254 scalar field nodes and MiMC hash oracles
// for the accumulators.
//
// Element is defined on the gnark-crypto fr.Element. It is a fixed width
// comparable value, so it can be used directly as the node type of imt,
// leanimt and lazytower.
//
// The conversion helpers and the JSON and CBOR codecs of Element reject values
// outside the field instead of reducing them. Reduction would silently map
// distinct inputs to the same leaf.
package fieldhash
