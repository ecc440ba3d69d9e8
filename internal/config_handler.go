package internal

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"com.bradleytenuta/deauth/internal/model"
	"com.bradleytenuta/deauth/internal/targets"
)

// FileExists checks if a file or directory exists at the given path.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	// Other error (e.g., permissions)
	return false, err
}

// WriteConfigFile creates a new configuration file at the specified path
// with default settings.
func WriteConfigFile(configFilePath string) error {
	yamlBytes, err := yaml.Marshal(model.NewConfig())
	if err != nil {
		return err
	}
	return atomic.WriteFile(configFilePath, bytes.NewReader(yamlBytes))
}

// ReadTargetEntries retrieves the stored targets from the configuration.
func ReadTargetEntries() []model.TargetEntry {
	var entries []model.TargetEntry
	if err := viper.UnmarshalKey("targets", &entries); err != nil {
		log.Error().Msgf("Error reading targets from the configuration file: %v", err)
		return []model.TargetEntry{}
	}
	return entries
}

// BuildTargetList pushes every entry into a new list of the given capacity.
// Entries with malformed addresses, duplicates and overflow are logged and skipped.
func BuildTargetList(entries []model.TargetEntry, capacity int) *targets.List {
	list := targets.New(capacity)
	for i, entry := range entries {
		from, to, err := entry.Addresses()
		if err != nil {
			log.Warn().Msgf("Skipping target %d: %v", i, err)
			continue
		}
		if err := list.Add(from, to, entry.Channel); err != nil {
			if errors.Is(err, targets.ErrFull) {
				log.Warn().Msgf("Target list is full at %d entries, dropping %d remaining", list.Size(), len(entries)-i)
				break
			}
			log.Debug().Msgf("Skipping target %d: %v", i, err)
		}
	}
	return list
}

// LoadTargetList builds the list described by the configuration file.
func LoadTargetList() *targets.List {
	return BuildTargetList(ReadTargetEntries(), viper.GetInt("capacity"))
}

// SaveTargetList replaces the stored targets with the contents of list, in order.
func SaveTargetList(list *targets.List) error {
	entries := make([]model.TargetEntry, 0, list.Size())
	for t := range list.All() {
		entries = append(entries, model.NewTargetEntry(t))
	}

	viper.Set("targets", entries)
	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("error writing configuration file: %w", err)
	}
	log.Debug().Msgf("Saved %d targets to '%s'", len(entries), viper.ConfigFileUsed())
	return nil
}

// ReadTargetFile decodes the targets section of another configuration file without
// touching the active configuration.
func ReadTargetFile(path string) ([]model.TargetEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read target file: %w", err)
	}
	var cfg model.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse target file %s: %w", path, err)
	}
	return cfg.Targets, nil
}
