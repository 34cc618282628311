package main

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/checkpoint"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/fieldhash"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/proofcodec"
	"github.com/spf13/cobra"
	"github.com/veraison/go-cose"
)

var cmdCheckpoint = &cobra.Command{
	Use:   "checkpoint {imt|lean|tower} [leaves...]",
	Short: "Sign the root of an accumulator as a COSE_Sign1 checkpoint",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCheckpoint,
}

var flagCheckpoint struct {
	ID     string
	Issuer string
	Key    string
	Kid    string
}

func init() {
	cmdMain.AddCommand(cmdCheckpoint)
	cmdCheckpoint.Flags().StringVar(&flagCheckpoint.ID, "id", "", "Accumulator UUID (default a new random UUID)")
	cmdCheckpoint.Flags().StringVar(&flagCheckpoint.Issuer, "issuer", "zkaccum", "Issuer claim")
	cmdCheckpoint.Flags().StringVar(&flagCheckpoint.Key, "key", "", "PEM encoded EC private key")
	cmdCheckpoint.Flags().StringVar(&flagCheckpoint.Kid, "kid", "", "Key identifier (default the key file name)")
	// The accumulator shape flags of the build commands.
	cmdCheckpoint.Flags().IntVar(&flagIMT.Depth, "depth", 16, "Tree depth, for imt")
	cmdCheckpoint.Flags().IntVar(&flagIMT.Arity, "arity", 2, "Children per node, for imt")
	cmdCheckpoint.Flags().StringVar(&flagIMT.Zero, "zero", "0", "Zero value, for imt")
	cmdCheckpoint.Flags().IntVar(&flagTower.Height, "height", 4, "Maximum number of levels, for tower")
	cmdCheckpoint.Flags().IntVar(&flagTower.Width, "width", 4, "Maximum level width, for tower")
}

func readSigningKey(filename string) (*ecdsa.PrivateKey, error) {
	if filename == "" {
		return nil, errors.New("field not provided: key")
	}
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("no PEM block in %s", filename)
	}
	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %v", err)
	}
	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("signing key is %T, not an EC key", parsed)
	}
	return key, nil
}

func coseAlgorithm(key *ecdsa.PrivateKey) (cose.Algorithm, error) {
	switch key.Curve.Params().BitSize {
	case 256:
		return cose.AlgorithmES256, nil
	case 384:
		return cose.AlgorithmES384, nil
	case 521:
		return cose.AlgorithmES512, nil
	}
	return 0, fmt.Errorf("unsupported curve %s", key.Curve.Params().Name)
}

// accumulatorRoot builds the accumulator named by kind and returns its size
// and root, for a tower its commitment.
func accumulatorRoot(kind proofcodec.Kind, args []string) (int, fieldhash.Element, error) {
	switch kind {
	case proofcodec.KindIMT:
		tree, err := buildIMT(args)
		if err != nil {
			return 0, fieldhash.Element{}, err
		}
		return tree.Size(), tree.Root(), nil
	case proofcodec.KindLean:
		tree, err := buildLean(args)
		if err != nil {
			return 0, fieldhash.Element{}, err
		}
		return tree.Size(), tree.Root(), nil
	case proofcodec.KindTower:
		tower, err := buildTower(args)
		if err != nil {
			return 0, fieldhash.Element{}, err
		}
		return tower.Len(), tower.DigestOfDigests(), nil
	}
	return 0, fieldhash.Element{}, fmt.Errorf("unknown accumulator kind %q", kind)
}

func runCheckpoint(cmd *cobra.Command, args []string) error {
	kind := proofcodec.Kind(args[0])
	size, root, err := accumulatorRoot(kind, args[1:])
	if err != nil {
		return err
	}

	id := uuid.New()
	if flagCheckpoint.ID != "" {
		if id, err = uuid.Parse(flagCheckpoint.ID); err != nil {
			return err
		}
	}

	key, err := readSigningKey(flagCheckpoint.Key)
	if err != nil {
		return err
	}
	alg, err := coseAlgorithm(key)
	if err != nil {
		return err
	}
	signer, err := cose.NewSigner(alg, key)
	if err != nil {
		return err
	}

	codec, err := proofcodec.NewCodec()
	if err != nil {
		return err
	}
	rs := checkpoint.NewRootSigner(flagCheckpoint.Issuer, codec)
	state := checkpoint.NewRootState(id, kind, size, fieldhash.Bytes(root))
	kid := flagCheckpoint.Kid
	if kid == "" {
		kid = filepath.Base(flagCheckpoint.Key)
	}
	msg, err := rs.Sign1(signer, kid, state, nil)
	if err != nil {
		return err
	}

	log.Infof("checkpoint %s %s size %d root %s", id, kind, size, fieldhash.String(root))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(msg))
	return err
}
