package main

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/checkpoint"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/fieldhash"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/leanimt"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/proofcodec"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag back to its default, flags keep their values
// between executions of the same command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	resetFlags(cmdMain)
	var out bytes.Buffer
	cmdMain.SetOut(&out)
	cmdMain.SetErr(&out)
	cmdMain.SetIn(strings.NewReader(stdin))
	cmdMain.SetArgs(args)
	err := cmdMain.Execute()
	return out.String(), err
}

func TestLeanProofRoundTrip(t *testing.T) {
	out, err := execute(t, "", "lean", "--index", "2", "1", "2", "3")
	require.NoError(t, err)

	var proof map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &proof))
	assert.Contains(t, proof, "root")
	assert.Contains(t, proof, "siblings")
	assert.EqualValues(t, 1, proof["index"])

	out, err = execute(t, out, "verify", "lean")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)
}

func TestIMTProofCBOR(t *testing.T) {
	out, err := execute(t, "", "imt", "--encoding", "cbor", "--depth", "3", "--index", "4", "5", "7", "9", "0x0b", "13")
	require.NoError(t, err)
	_, err = hex.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)

	verified, err := execute(t, out, "verify", "imt", "-e", "cbor")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", verified)

	// the same proof read as json is rejected as malformed
	_, err = execute(t, out, "verify", "imt")
	require.ErrorIs(t, err, proofcodec.ErrDecode)
}

func TestTowerProofByItem(t *testing.T) {
	out, err := execute(t, "", "tower", "--height", "3", "--width", "2", "--item", "4", "0", "1", "2", "3", "4", "5", "6")
	require.NoError(t, err)

	var proof map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &proof))
	assert.EqualValues(t, 273, proof["levelLengths"])

	_, err = execute(t, out, "verify", "tower", "--height", "3", "--width", "2")
	require.NoError(t, err)

	_, err = execute(t, out, "verify", "tower", "--height", "4", "--width", "2")
	require.ErrorIs(t, err, ErrProofInvalid)

	_, err = execute(t, "", "tower", "--height", "3", "--width", "2", "--item", "9", "0", "1")
	require.Error(t, err)
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	out, err := execute(t, "", "lean", "--index", "0", "10", "20", "30")
	require.NoError(t, err)

	var proof leanimt.MerkleProof[fieldhash.Element]
	require.NoError(t, proofcodec.UnmarshalJSON([]byte(out), &proof))
	proof.Leaf = fieldhash.FromUint64(11)
	tampered, err := proofcodec.MarshalJSON(&proof)
	require.NoError(t, err)

	_, err = execute(t, string(tampered), "verify", "lean")
	require.ErrorIs(t, err, ErrProofInvalid)

	// a leaf above the modulus would alias the genuine leaf 10 if reduced
	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	fields["leaf"] = new(big.Int).Add(fieldhash.Modulus(), big.NewInt(10)).String()
	aliased, err := json.Marshal(fields)
	require.NoError(t, err)

	_, err = execute(t, string(aliased), "verify", "lean")
	require.ErrorIs(t, err, fieldhash.ErrNotInField)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad leaf", []string{"lean", "one"}},
		{"unreduced leaf", []string{"lean", fieldhash.Modulus().String()}},
		{"index out of range", []string{"lean", "--index", "3", "1", "2", "3"}},
		{"tree full", []string{"imt", "--depth", "1", "1", "2", "3"}},
		{"tower full", []string{"tower", "--height", "1", "--width", "2", "1", "2", "3"}},
		{"bad encoding", []string{"lean", "--encoding", "xml", "1"}},
		{"unknown kind", []string{"verify", "smt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "zkaccum.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log-level: DEBUG\nimt:\n  depth: 3\n  arity: 4\n"), 0o600))

	out, err := execute(t, "", "imt", "--config", cfgPath, "1", "2")
	require.NoError(t, err)
	var proof struct {
		Siblings    [][]any `json:"siblings"`
		PathIndices []int   `json:"pathIndices"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &proof))
	require.Len(t, proof.Siblings, 3)
	assert.Len(t, proof.Siblings[0], 3)

	// flags win over the config file
	out, err = execute(t, "", "imt", "--config", cfgPath, "--depth", "2", "1", "2")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &proof))
	assert.Len(t, proof.Siblings, 2)
}

func TestReadConfig(t *testing.T) {
	c, err := ReadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("imt: [1, 2"), 0o600))
	_, err = ReadConfig(bad)
	require.Error(t, err)

	_, err = ReadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	c.Encoding = "xml"
	require.Error(t, c.Validate())

	c = DefaultConfig()
	c.CBORMaxArrayElements = 8
	require.Error(t, c.Validate())
}

func TestCheckpoint(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	keyPath := filepath.Join(t.TempDir(), "signer.pem")
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der}), 0o600))

	id := "6f1c2a5e-8a1b-4e0e-9d7e-1f2a3b4c5d6e"
	out, err := execute(t, "", "checkpoint", "lean", "--key", keyPath, "--id", id, "1", "2", "3")
	require.NoError(t, err)
	msg, err := hex.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)

	codec, err := proofcodec.NewCodec()
	require.NoError(t, err)
	signed, state, err := checkpoint.DecodeSignedRoot(codec, msg)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), state.Size)
	got, err := state.ID()
	require.NoError(t, err)
	assert.Equal(t, id, got.String())
	kid, err := checkpoint.KidFromProtectedHeader(signed)
	require.NoError(t, err)
	assert.Equal(t, "signer.pem", kid)

	tree, err := leanimt.New(fieldhash.MiMC2, fieldhash.FromUint64(1), fieldhash.FromUint64(2), fieldhash.FromUint64(3))
	require.NoError(t, err)
	state.Root = fieldhash.Bytes(tree.Root())
	require.NoError(t, checkpoint.VerifySignedRoot(codec, &key.PublicKey, signed, state, nil))

	_, err = execute(t, "", "checkpoint", "lean", "1")
	require.Error(t, err)
}
