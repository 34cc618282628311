package bloom

/*

# Bloom prefilter for accumulator membership lookups

Finding the index of an item in an accumulator is a linear scan over its
leaves. This package provides a single in memory Bloom filter that callers put
in front of that scan:

- If the filter says "definitely not present", the item is not present and the
  scan is skipped.
- If the filter says "maybe present", the scan runs as before.

Bloom filters are NOT cryptographic commitments and do not provide proofs of
exclusion. A filter never changes what a lookup returns, only how long it
takes.

## Sizing

The filter is sized once from an expected element count and a bits per element
budget. The bitset holds mBits = expected * bitsPerElement bits, rounded up to
whole bytes, and mBits must fit in a uint32. Inserting more than the expected
count keeps the filter correct but raises the false positive rate.

## Indexing

Elements are arbitrary byte strings. Each is hashed once with SHA-256 under a
domain byte and the k bit positions are derived by double hashing,
j_i = (h1 + i*h2) mod mBits. Bit 0 is the least significant bit of byte 0.

*/
