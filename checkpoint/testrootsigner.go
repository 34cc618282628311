package checkpoint

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/proofcodec"
	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"
)

func TestGenerateECKey(t *testing.T, curve elliptic.Curve) *ecdsa.PrivateKey {
	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return privateKey
}

func TestNewRootSigner(t *testing.T, issuer string) RootSigner {
	codec, err := proofcodec.NewCodec()
	require.NoError(t, err)
	return NewRootSigner(issuer, codec)
}

func TestES256Signer(t *testing.T, key *ecdsa.PrivateKey) cose.Signer {
	signer, err := cose.NewSigner(cose.AlgorithmES256, key)
	require.NoError(t, err)
	return signer
}
