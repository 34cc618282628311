// Package lazytower implements a lazy tower accumulator: an append only
// commitment made of at most H levels, each at most W wide.
//
// Items are appended to level 0. When a level already holds W values, adding
// one more first carries the digest of those W values up to the level above
// and then restarts the level with the new value. The digest of a level is a
// left fold of the binary hash over its values. The commitment is the digest
// of the level digests taken top level first (DigestOfDigests).
//
// Besides the live levels the tower can retain the full history of every
// level. With history a membership proof can be built for any item ever
// added; without it the tower only maintains the commitment.
package lazytower
