package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"com.bradleytenuta/deauth/internal"
	"com.bradleytenuta/deauth/internal/ui"
)

func init() {
	rootCmd.AddCommand(selectCmd)
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick a target from the list interactively.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer ui.InitTerminal()()
		list := internal.LoadTargetList()

		target, err := ui.CreateInteractiveSelect(list, "Select a target")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", target)
		return nil
	},
}
