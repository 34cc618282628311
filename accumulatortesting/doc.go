// Package accumulatortesting provides fixtures shared by the accumulator
// tests: a logging test context, deterministic leaf generation and small
// hash oracles over uint64 nodes.
package accumulatortesting
