package accumulator

// HashFunction combines an ordered list of child nodes into their parent. It
// must be deterministic and free of side effects.
type HashFunction[N any] func(children []N) N

// Hash2Function is the binary form of HashFunction.
type Hash2Function[N any] func(a, b N) N

// Fold computes the left fold digest of values with hash:
//
//	Fold(h, [v0]) = v0
//	Fold(h, [v0, v1, ..., vn]) = h(Fold(h, [v0, ..., vn-1]), vn)
//
// Fold of an empty list is the zero value of N.
func Fold[N any](hash Hash2Function[N], values []N) N {
	var digest N
	if len(values) == 0 {
		return digest
	}
	digest = values[0]
	for _, v := range values[1:] {
		digest = hash(digest, v)
	}
	return digest
}

// Binary adapts a binary hash to the list form, folding the children left to
// right. It lets a Hash2Function drive a fixed arity tree.
func Binary[N any](hash Hash2Function[N]) HashFunction[N] {
	return func(children []N) N {
		return Fold(hash, children)
	}
}
