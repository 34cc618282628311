package fieldhash

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// MiMC hashes the children with the BN254 MiMC sponge, one block per child.
func MiMC(children []Element) Element {
	h := mimc.NewMiMC()
	for i := range children {
		f := fr.Element(children[i])
		b := f.Bytes()
		// canonical blocks never fail
		_, _ = h.Write(b[:])
	}
	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return Element(out)
}

// MiMC2 is the binary form of MiMC, for leanimt and lazytower.
func MiMC2(a, b Element) Element {
	return MiMC([]Element{a, b})
}
