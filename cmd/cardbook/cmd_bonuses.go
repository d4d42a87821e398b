package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ruminaider/cardbook/internal/commands"
	"github.com/spf13/cobra"
)

var bonusesNoData bool

var bonusesCmd = &cobra.Command{
	Use:   "bonuses",
	Short: "List the bonus types accepted by --bonus",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setupEnv(cmd)
		if err != nil {
			return err
		}

		dataFile := e.cfg.DataFile
		if bonusesNoData {
			dataFile = ""
		}
		bonuses, err := commands.Bonuses(dataFile, e.taxonomy, e.logger)
		if err != nil {
			return err
		}
		printBonuses(cmd.OutOrStdout(), bonuses, !bonusesNoData)
		return nil
	},
}

// printBonuses writes one row per bonus type, with card counts when known.
func printBonuses(w io.Writer, bonuses []commands.BonusCount, withCounts bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, b := range bonuses {
		value := b.Value
		if value == "" {
			value = `""`
		}
		if withCounts {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", value, b.Label, b.Cards)
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", value, b.Label)
		}
	}
	tw.Flush()
}

func init() {
	bonusesCmd.Flags().BoolVar(&bonusesNoData, "no-data", false, "skip loading the data file and omit card counts")
}
