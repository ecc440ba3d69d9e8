package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"com.bradleytenuta/deauth/internal"
	"com.bradleytenuta/deauth/internal/targets"
	"com.bradleytenuta/deauth/internal/ui"
)

var addInteractive bool

func init() {
	addCmd.Flags().BoolVarP(&addInteractive, "interactive", "i", false, "prompt for the target instead of reading arguments")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <from> <to> <channel>",
	Short: "Add a target to the list.",
	Long: `Add a target to the list. The list stays sorted and a target that is
already present, or a list that has reached its capacity, leaves the stored
list unchanged.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if addInteractive {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addInteractive {
		var err error
		if args, err = promptTarget(); err != nil {
			return err
		}
	}

	from, to, ch, err := parseTarget(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	list := internal.LoadTargetList()
	out := cmd.OutOrStdout()
	target := targets.NewTarget(from, to, ch)

	switch err := list.Add(from, to, ch); {
	case errors.Is(err, targets.ErrDuplicate):
		fmt.Fprintf(out, "Target %s is already in the list. No changes made.\n", target)
		return nil
	case errors.Is(err, targets.ErrFull):
		fmt.Fprintf(out, "Target list is full (%d targets). No changes made.\n", list.Capacity())
		return nil
	}

	if err := internal.SaveTargetList(list); err != nil {
		log.Error().Msgf("Failed to save target list: %v", err)
		return err
	}
	fmt.Fprintf(out, "Added %s (%d targets)\n", target, list.Size())
	return nil
}

// parseTarget validates the textual form of a target.
func parseTarget(fromStr, toStr, chStr string) (from, to targets.MAC, ch uint8, err error) {
	if from, err = targets.ParseMAC(fromStr); err != nil {
		return
	}
	if to, err = targets.ParseMAC(toStr); err != nil {
		return
	}
	c, err := strconv.ParseUint(chStr, 10, 8)
	if err != nil {
		return from, to, 0, fmt.Errorf("invalid channel %q: %w", chStr, err)
	}
	return from, to, uint8(c), nil
}

func promptTarget() ([]string, error) {
	defer ui.InitTerminal()()
	if !ui.IsInteractive() {
		return nil, ui.ErrNotTerminal
	}

	validMAC := func(s string) error {
		_, err := targets.ParseMAC(s)
		return err
	}
	validChannel := func(s string) error {
		_, err := strconv.ParseUint(s, 10, 8)
		return err
	}

	from, err := ui.GetPromptInput("From address", validMAC)
	if err != nil {
		return nil, err
	}
	to, err := ui.GetPromptInput("To address", validMAC)
	if err != nil {
		return nil, err
	}
	ch, err := ui.GetPromptInput("Channel", validChannel)
	if err != nil {
		return nil, err
	}
	return []string{from, to, ch}, nil
}
