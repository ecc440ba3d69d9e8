package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"com.bradleytenuta/deauth/internal"
)

var (
	// Used for flags.
	configFilePath string
	debug          bool

	rootCmd = &cobra.Command{
		Use:   "deauth",
		Short: "Manage the list of deauthentication targets.",
		Long: `Keeps a sorted, duplicate free list of targets, each made of a source
and destination hardware address and the channel they were seen on.
The list is stored in a YAML configuration file and bounded by its capacity.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFilePath, "config", "", "config file (default is configuration.yaml next to the executable)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// defaultConfigPath returns configuration.yaml in the directory of the executable.
func defaultConfigPath() (string, error) {
	executablePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("error getting executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(executablePath), "configuration.yaml"), nil
}

// initConfig makes sure a configuration file exists, loads it into viper and sets up logging.
func initConfig(cmd *cobra.Command, args []string) error {
	setupLogging(debug)

	path := configFilePath
	if path == "" {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return err
		}
	}

	exists, err := internal.FileExists(path)
	if err != nil {
		return fmt.Errorf("error while reading configuration file: %w", err)
	}
	if !exists {
		if err := internal.WriteConfigFile(path); err != nil {
			return fmt.Errorf("error writing default configuration to %s: %w", path, err)
		}
		log.Info().Msgf("Successfully wrote default configuration to '%s'", path)
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error when reading config file: %w", err)
	}
	// --debug only affects this run, it is never written back to the file.
	setupLogging(debug || viper.GetBool("debug"))
	log.Debug().Msgf("Using config file: %s", viper.ConfigFileUsed())
	return nil
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
