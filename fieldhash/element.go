package fieldhash

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a BN254 scalar field element. It shares the representation of
// gnark-crypto's fr.Element, but its wire encodings only accept canonical
// values.
type Element fr.Element

var (
	ErrNotInField = errors.New("fieldhash: value is not a canonical field element")
	ErrBadNumber  = errors.New("fieldhash: not a decimal or 0x prefixed hex number")
)

// Modulus returns the order of the BN254 scalar field.
func Modulus() *big.Int { return fr.Modulus() }

func FromUint64(v uint64) Element {
	var e fr.Element
	e.SetUint64(v)
	return Element(e)
}

// FromBigInt converts v, which must be in [0, modulus).
func FromBigInt(v *big.Int) (Element, error) {
	var e fr.Element
	if v == nil || v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return Element{}, fmt.Errorf("%w: %v", ErrNotInField, v)
	}
	e.SetBigInt(v)
	return Element(e), nil
}

// Parse reads a decimal or 0x prefixed hexadecimal number.
func Parse(s string) (Element, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok || strings.HasPrefix(s, "0") && len(s) > 1 && !strings.HasPrefix(s, "0x") {
		// SetString with base 0 also accepts octal and binary prefixes.
		return Element{}, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return FromBigInt(v)
}

// FromBytes reads a 32 byte big endian canonical encoding.
func FromBytes(b []byte) (Element, error) {
	if len(b) != fr.Bytes {
		return Element{}, fmt.Errorf("%w: %d bytes", ErrNotInField, len(b))
	}
	return FromBigInt(new(big.Int).SetBytes(b))
}

// Bytes returns the 32 byte big endian encoding of e.
func Bytes(e Element) []byte {
	f := fr.Element(e)
	b := f.Bytes()
	return b[:]
}

// String returns e in decimal.
func String(e Element) string {
	return e.String()
}

// BigInt returns e as a big.Int.
func BigInt(e Element) *big.Int {
	f := fr.Element(e)
	return f.BigInt(new(big.Int))
}

func (e Element) String() string {
	f := fr.Element(e)
	return f.String()
}
