package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"com.bradleytenuta/deauth/internal"
)

var listIndex int

func init() {
	listCmd.Flags().IntVar(&listIndex, "index", 0, "print only the target at this position")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored targets in order.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := internal.LoadTargetList()
		out := cmd.OutOrStdout()

		if cmd.Flags().Changed("index") {
			t := list.Get(listIndex)
			if t == nil {
				return fmt.Errorf("index %d out of range, list holds %d targets", listIndex, list.Size())
			}
			fmt.Fprintf(out, "%3d  %s\n", listIndex, t)
			return nil
		}

		list.Begin()
		for i := 0; list.Available(); i++ {
			fmt.Fprintf(out, "%3d  %s\n", i, list.Iterate())
		}
		if list.Capacity() > 0 {
			fmt.Fprintf(out, "%d/%d targets\n", list.Size(), list.Capacity())
		} else {
			fmt.Fprintf(out, "%d targets\n", list.Size())
		}
		return nil
	},
}
