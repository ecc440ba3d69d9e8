//go:build windows

package ui

import (
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"
)

// InitTerminal switches the Windows console into virtual terminal mode so the colour
// codes used by the prompts render. The returned function restores the old mode.
func InitTerminal() (cleanup func()) {
	cleanup = func() {}

	stdout := windows.Handle(os.Stdout.Fd())
	var originalMode uint32
	if err := windows.GetConsoleMode(stdout, &originalMode); err != nil {
		log.Debug().Msgf("Error getting console mode: %v", err)
		return
	}

	if err := windows.SetConsoleMode(stdout, originalMode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		log.Debug().Msgf("Error setting console mode: %v", err)
		return
	}

	cleanup = func() {
		_ = windows.SetConsoleMode(stdout, originalMode)
	}
	return
}
