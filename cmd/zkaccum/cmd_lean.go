package main

import (
	"github.com/privacy-scaling-explorations/zk-kit-sub001/fieldhash"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/leanimt"
	"github.com/spf13/cobra"
)

var cmdLean = &cobra.Command{
	Use:   "lean [leaves...]",
	Short: "Build a lean tree and print the proof for one leaf",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLean,
}

var flagLean struct {
	Index  int
	Export bool
}

func init() {
	cmdMain.AddCommand(cmdLean)
	cmdLean.Flags().IntVarP(&flagLean.Index, "index", "i", 0, "Leaf to prove")
	cmdLean.Flags().BoolVar(&flagLean.Export, "export", false, "Print the exported tree instead of a proof")
}

func buildLean(args []string) (*leanimt.LeanIMT[fieldhash.Element], error) {
	leaves, err := parseElements(args)
	if err != nil {
		return nil, err
	}
	return leanimt.New(fieldhash.MiMC2, leaves...)
}

func runLean(cmd *cobra.Command, args []string) error {
	tree, err := buildLean(args)
	if err != nil {
		return err
	}
	log.Infof("lean depth %d size %d root %s", tree.Depth(), tree.Size(), fieldhash.String(tree.Root()))

	if flagLean.Export {
		data, err := tree.Export()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}

	proof, err := tree.GenerateProof(flagLean.Index)
	if err != nil {
		return err
	}
	return writeProof(cmd.OutOrStdout(), proof)
}
