package main

import (
	"fmt"

	"github.com/ruminaider/cardbook/internal/commands"
	"github.com/ruminaider/cardbook/internal/paths"
	"github.com/spf13/cobra"
)

var (
	initDir   string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file and starter card data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := initDir
		if dir == "" {
			dir = paths.DataDir()
		}
		result, err := commands.Init(dir, initForce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, p := range result.Written {
			fmt.Fprintf(out, "  ✓ wrote %s\n", p)
		}
		for _, p := range result.Skipped {
			fmt.Fprintf(out, "  - kept %s (use --force to overwrite)\n", p)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", "", "directory to create (default ~/.cardbook)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
}
