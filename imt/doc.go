// Package imt implements a fixed depth, fixed arity incremental Merkle tree.
//
// Every node has arity children. Missing children are padded with a per level
// zero value, so the root always commits to exactly arity^depth leaf slots and
// the tree can hold at most that many leaves. zeroes[0] is the zero value
// supplied by the caller and zeroes[l+1] is the hash of arity copies of
// zeroes[l].
//
// Leaves are appended left to right. Updating or deleting a leaf rehashes the
// single path from that leaf to the root. A proof for leaf i carries, for each
// level, the arity-1 siblings of the node on the path and that node's position
// among its siblings.
//
// The tree does not check that leaves are distinct. IndexOf reports the first
// match, so callers that rely on it must keep their leaves unique.
package imt
