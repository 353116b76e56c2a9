package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/flatten/internal/config"
	"github.com/spf13/cobra"
)

// configCmd groups configuration helper subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage flatten configuration",
}

// configInitCmd writes a config file populated with defaults.
var configInitCmd = &cobra.Command{
	Use:          "init [file]",
	Short:        "Write a default configuration file",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "flatten.yaml"
		if len(args) == 1 {
			filename = args[0]
		}

		if err := config.GenerateDefaultConfigFile(filename); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Default configuration written to %s\n", filename)
		return nil
	},
}

// configPathsCmd lists the configuration search paths.
var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List configuration file search paths",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range config.GetConfigSearchPaths() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathsCmd)
}
