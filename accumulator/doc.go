// Package accumulator holds the pieces shared by the imt, leanimt and
// lazytower accumulators: the hash oracle function types, the error taxonomy
// and a handful of bit level helpers.
//
// Nothing in this package, or in the accumulators built on it, reduces values
// into a field. Nodes are whatever the hash oracle says they are.
package accumulator
