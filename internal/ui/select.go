package ui

import (
	"errors"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"com.bradleytenuta/deauth/internal/targets"
)

// ErrNotTerminal is returned when a prompt is requested without an interactive terminal.
var ErrNotTerminal = errors.New("standard input is not a terminal")

// IsInteractive reports whether both stdin and stdout are attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// CreateInteractiveSelect lets the user pick one target of the list. Targets are
// offered in list order.
func CreateInteractiveSelect(list *targets.List, label string) (*targets.Target, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▶ {{ .From | cyan }} -> {{ .To | magenta }}	ch {{ .Channel | green }}",
		Inactive: "  {{ .From | faint }} -> {{ .To | faint }}	ch {{ .Channel | faint }}",
		Selected: "✔ You selected {{ .From | blue }} -> {{ .To | blue }} ch {{ .Channel }}",
		Details: `
--------- Target Details ----------
{{ "From:" | faint }}	{{ .From }}
{{ "To:" | faint }}	{{ .To }}
{{ "Channel:" | faint }}	{{ .Channel }}`,
	}

	items := make([]*targets.Target, 0, list.Size())
	for t := range list.All() {
		items = append(items, t)
	}

	if len(items) == 0 {
		return nil, errors.New("no targets to select")
	}
	if !IsInteractive() {
		return nil, ErrNotTerminal
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
	}

	i, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			log.Error().Msg("Selection cancelled by user")
			return nil, err
		}
		log.Error().Msgf("Prompt failed %v", err)
		return nil, err
	}
	return items[i], nil
}

// GetPromptInput asks for a single line of input. validate may be nil.
func GetPromptInput(label string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
	}
	return prompt.Run()
}
