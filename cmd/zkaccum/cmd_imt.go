package main

import (
	"fmt"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/fieldhash"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/imt"
	"github.com/spf13/cobra"
)

var cmdIMT = &cobra.Command{
	Use:   "imt [leaves...]",
	Short: "Build a fixed depth tree and print the proof for one leaf",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIMT,
}

var flagIMT struct {
	Depth int
	Arity int
	Zero  string
	Index int
}

func init() {
	cmdMain.AddCommand(cmdIMT)
	cmdIMT.Flags().IntVar(&flagIMT.Depth, "depth", 16, "Tree depth")
	cmdIMT.Flags().IntVar(&flagIMT.Arity, "arity", 2, "Children per node")
	cmdIMT.Flags().StringVar(&flagIMT.Zero, "zero", "0", "Zero value for empty leaves")
	cmdIMT.Flags().IntVarP(&flagIMT.Index, "index", "i", 0, "Leaf to prove")
}

func buildIMT(args []string) (*imt.IMT[fieldhash.Element], error) {
	leaves, err := parseElements(args)
	if err != nil {
		return nil, err
	}
	zero, err := fieldhash.Parse(flagIMT.Zero)
	if err != nil {
		return nil, fmt.Errorf("zero: %w", err)
	}
	return imt.New(fieldhash.MiMC, flagIMT.Depth, zero, flagIMT.Arity, leaves)
}

func runIMT(cmd *cobra.Command, args []string) error {
	tree, err := buildIMT(args)
	if err != nil {
		return err
	}
	root := tree.Root()
	log.Infof("imt depth %d arity %d size %d root %s", tree.Depth(), tree.Arity(), tree.Size(), fieldhash.String(root))

	proof, err := tree.CreateProof(flagIMT.Index)
	if err != nil {
		return err
	}
	return writeProof(cmd.OutOrStdout(), proof)
}
