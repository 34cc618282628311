// Package leanimt implements a binary incremental Merkle tree that grows in
// depth as leaves are added and never pads with zeroes.
//
// With n leaves the depth is ceil(log2(n)). A node with a right sibling is
// hashed with it. A left node with no right sibling is carried to the level
// above unchanged, so the tree only ever hashes real nodes. Proofs therefore
// carry only the siblings that exist, and their index packs one bit per
// carried sibling: bit i is set when the path node on the i-th hashed level is
// a right child.
//
// The zero value of N marks a removed leaf. The tree does not check that
// leaves are distinct; IndexOf and Has report the first match.
package leanimt
