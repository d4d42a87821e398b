package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/cardbook/cmd/cardbook/tui"
	"github.com/ruminaider/cardbook/internal/commands"
	"github.com/ruminaider/cardbook/internal/filter"
	"github.com/spf13/cobra"
)

// Values for the interactive passive/active choice.
const (
	kindAll     = "all"
	kindPassive = "passive"
	kindActive  = "active"
)

func init() {
	addListFlags(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the card sets matching the filters",
	Long:  "list applies the name search and filters once and prints the matching card sets. It is what cardbook runs when stdin is not a terminal.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setupEnv(cmd)
		if err != nil {
			return err
		}

		opts := commands.ListOptions{
			DataFile: e.cfg.DataFile,
			Taxonomy: e.taxonomy,
			Gallery:  e.galleryOptions(),
		}
		readListFlags(cmd, &opts)

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			if err := promptFilters(e.taxonomy, &opts); err != nil {
				return err
			}
		}

		result, err := commands.List(opts)
		if err != nil {
			return err
		}
		details, _ := cmd.Flags().GetBool("details")
		printList(cmd.OutOrStdout(), result, details)
		return nil
	},
}

// addFilterFlags registers the filter flags on cmd.
func addFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("search", "s", "", "show only cards whose name contains this text")
	f.StringP("bonus", "b", "", "bonus type: a category (damage, exp, stats, drop) or skill_<index>")
	f.Bool("passive", false, "show only passive cards")
	f.Bool("active", false, "show only active cards")
	cmd.MarkFlagsMutuallyExclusive("passive", "active")
}

// addListFlags registers the filter flags plus --interactive.
func addListFlags(cmd *cobra.Command) {
	addFilterFlags(cmd)
	cmd.Flags().BoolP("interactive", "i", false, "choose the filters with a form")
	cmd.Flags().BoolP("details", "d", false, "show each card's drop rate and star tiers")
}

// readListFlags copies the filter flags cmd defines into opts.
func readListFlags(cmd *cobra.Command, opts *commands.ListOptions) {
	f := cmd.Flags()
	if f.Lookup("search") == nil {
		return
	}
	opts.Search, _ = f.GetString("search")
	opts.BonusType, _ = f.GetString("bonus")
	opts.PassiveOnly, _ = f.GetBool("passive")
	opts.ActiveOnly, _ = f.GetBool("active")
}

// promptFilters asks for the filters, starting from the flag values.
func promptFilters(tax filter.Taxonomy, opts *commands.ListOptions) error {
	options := make([]huh.Option[string], 0, len(tax.Options()))
	for _, o := range tax.Options() {
		options = append(options, huh.NewOption(o.Label, o.Value))
	}

	kind := kindAll
	switch {
	case opts.PassiveOnly:
		kind = kindPassive
	case opts.ActiveOnly:
		kind = kindActive
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Card name contains:").
				Value(&opts.Search),
			huh.NewSelect[string]().
				Title("Bonus type:").
				Options(options...).
				Value(&opts.BonusType),
			huh.NewSelect[string]().
				Title("Show:").
				Options(
					huh.NewOption("All cards", kindAll),
					huh.NewOption("Passive only", kindPassive),
					huh.NewOption("Active only", kindActive),
				).
				Value(&kind),
		),
	).Run()
	if err != nil {
		return fmt.Errorf("filter form: %w", err)
	}

	opts.PassiveOnly = kind == kindPassive
	opts.ActiveOnly = kind == kindActive
	return nil
}

// printList writes the rendered gallery and a summary line.
func printList(w io.Writer, result *commands.ListResult, details bool) {
	fmt.Fprintln(w, tui.RenderGallery(result.Pipeline, "", details))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d/%d cards in %d sets\n", result.Cards, result.Total, result.Sets)
}
