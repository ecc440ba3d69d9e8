package model

import (
	"fmt"

	"com.bradleytenuta/deauth/internal/targets"
)

// TargetEntry is the serializable form of a target as stored in the configuration file.
type TargetEntry struct {
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Channel uint8  `yaml:"channel"`
}

// NewTargetEntry converts a list target back into its configuration form.
func NewTargetEntry(t *targets.Target) TargetEntry {
	return TargetEntry{From: t.From().String(), To: t.To().String(), Channel: t.Channel()}
}

// Addresses parses both address strings of the entry.
func (e TargetEntry) Addresses() (from, to targets.MAC, err error) {
	if from, err = targets.ParseMAC(e.From); err != nil {
		return from, to, fmt.Errorf("from address: %w", err)
	}
	if to, err = targets.ParseMAC(e.To); err != nil {
		return from, to, fmt.Errorf("to address: %w", err)
	}
	return from, to, nil
}
