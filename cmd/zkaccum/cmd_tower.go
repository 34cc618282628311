package main

import (
	"fmt"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/fieldhash"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/lazytower"
	"github.com/spf13/cobra"
)

var cmdTower = &cobra.Command{
	Use:   "tower [items...]",
	Short: "Build a lazy tower and print the proof for one item",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTower,
}

var flagTower struct {
	Height int
	Width  int
	Index  int
	Item   string
}

func init() {
	cmdMain.AddCommand(cmdTower)
	cmdTower.Flags().IntVar(&flagTower.Height, "height", 4, "Maximum number of levels")
	cmdTower.Flags().IntVar(&flagTower.Width, "width", 4, "Maximum level width")
	cmdTower.Flags().IntVarP(&flagTower.Index, "index", "i", 0, "Item to prove, in insertion order")
	cmdTower.Flags().StringVar(&flagTower.Item, "item", "", "Item to prove, looked up by value (overrides --index)")
}

func buildTower(args []string) (*lazytower.Tower[fieldhash.Element], error) {
	items, err := parseElements(args)
	if err != nil {
		return nil, err
	}
	tower, err := lazytower.New(
		flagTower.Height, flagTower.Width, fieldhash.MiMC2,
		lazytower.WithMembershipFilter(fieldhash.Bytes, uint64(len(items))))
	if err != nil {
		return nil, err
	}
	for i, item := range items {
		if err := tower.Add(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return tower, nil
}

func runTower(cmd *cobra.Command, args []string) error {
	tower, err := buildTower(args)
	if err != nil {
		return err
	}
	log.Infof("tower height %d width %d items %d levels %s commitment %s",
		tower.Height(), tower.Width(), tower.Len(), tower.LevelLengths().Text(16),
		fieldhash.String(tower.DigestOfDigests()))

	index := flagTower.Index
	if flagTower.Item != "" {
		item, err := fieldhash.Parse(flagTower.Item)
		if err != nil {
			return fmt.Errorf("item: %w", err)
		}
		if index, err = tower.IndexOf(item); err != nil {
			return err
		}
		if index < 0 {
			return fmt.Errorf("item %s was not added", flagTower.Item)
		}
	}

	proof, err := tower.Build(index)
	if err != nil {
		return err
	}
	return writeProof(cmd.OutOrStdout(), proof)
}
