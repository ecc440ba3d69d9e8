package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"com.bradleytenuta/deauth/internal"
)

func init() {
	rootCmd.AddCommand(clearCmd)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every target from the list.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := internal.LoadTargetList()
		n := list.Size()
		list.Clear()
		if err := internal.SaveTargetList(list); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d targets\n", n)
		return nil
	},
}
