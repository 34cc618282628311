package main

import (
	"errors"
	"fmt"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/fieldhash"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/imt"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/lazytower"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/leanimt"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/proofcodec"
	"github.com/spf13/cobra"
)

var ErrProofInvalid = errors.New("proof does not verify")

var cmdVerify = &cobra.Command{
	Use:       "verify {imt|lean|tower}",
	Short:     "Verify a proof read from a file",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(proofcodec.KindIMT), string(proofcodec.KindLean), string(proofcodec.KindTower)},
	RunE:      runVerify,
}

var flagVerify struct {
	File   string
	Height int
	Width  int
}

func init() {
	cmdMain.AddCommand(cmdVerify)
	cmdVerify.Flags().StringVarP(&flagVerify.File, "file", "f", "-", "Proof file, - for stdin")
	cmdVerify.Flags().IntVar(&flagVerify.Height, "height", 4, "Tower height, for tower proofs")
	cmdVerify.Flags().IntVar(&flagVerify.Width, "width", 4, "Tower width, for tower proofs")
}

func runVerify(cmd *cobra.Command, args []string) error {
	codec, err := newCodec()
	if err != nil {
		return err
	}
	data, err := readProof(cmd.InOrStdin(), flagVerify.File)
	if err != nil {
		return err
	}

	var ok bool
	switch kind := proofcodec.Kind(args[0]); kind {
	case proofcodec.KindIMT:
		proof, err := proofcodec.DecodeIMTProof[fieldhash.Element](codec, data)
		if err != nil {
			return err
		}
		ok = imt.VerifyProof(proof, fieldhash.MiMC)
	case proofcodec.KindLean:
		proof, err := proofcodec.DecodeLeanProof[fieldhash.Element](codec, data)
		if err != nil {
			return err
		}
		ok = leanimt.VerifyProof(proof, fieldhash.MiMC2)
	case proofcodec.KindTower:
		proof, err := proofcodec.DecodeTowerProof[fieldhash.Element](codec, data)
		if err != nil {
			return err
		}
		ok = lazytower.VerifyProof(proof, flagVerify.Height, flagVerify.Width, fieldhash.MiMC2)
	default:
		return fmt.Errorf("unknown proof kind %q", kind)
	}

	log.Debugf("verify %s: %v", args[0], ok)
	if !ok {
		return ErrProofInvalid
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return err
}
