package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"com.bradleytenuta/deauth/internal"
)

func init() {
	rootCmd.AddCommand(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:   "merge <file>",
	Short: "Move the targets of another target file into the list.",
	Long: `Reads the targets section of another YAML file and moves as many of them
as the capacity allows into the stored list. Targets that do not fit, or
that are already in the list, are reported and left out.`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	entries, err := internal.ReadTargetFile(args[0])
	if err != nil {
		return err
	}

	staging := internal.BuildTargetList(entries, 0)
	list := internal.LoadTargetList()
	before := list.Size()
	list.MoveFrom(staging)
	moved := list.Size() - before

	out := cmd.OutOrStdout()
	if moved > 0 {
		if err := internal.SaveTargetList(list); err != nil {
			log.Error().Msgf("Failed to save target list: %v", err)
			return err
		}
	}
	fmt.Fprintf(out, "Merged %d targets, %d not merged\n", moved, staging.Size())

	staging.Begin()
	for staging.Available() {
		fmt.Fprintf(out, "  skipped %s\n", staging.Iterate())
	}
	return nil
}
