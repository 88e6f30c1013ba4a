// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration directory")
}

var configPath string // Path to the configuration directory

var rootCmd = &cobra.Command{
	Use:   "keyforge",
	Short: "keyforge generates customizable random keys and passphrases",
	Long: `keyforge generates randomized strings suitable for keys, passwords and
identifiers, with control over length, character exclusions, uniqueness,
encoding and separator wrapping.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
