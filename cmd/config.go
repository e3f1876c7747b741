package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/eventregistry/internal/config"
)

var configForce bool

var configInitCmd = &cobra.Command{
	Use:   "config:init [path]",
	Short: "Write a default config file",
	Long: `Write a commented default config file to [path]
(default: .eventreg/config.yaml). Existing files are kept unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := localConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return err
	},
}

var configSuffixesCmd = &cobra.Command{
	Use:   "config:suffixes <suffix>...",
	Short: "Set the resource suffixes treated as event definitions",
	Long: `Replace registry.resource_suffixes in the active config file, keeping every
other setting and comment. Writes .eventreg/config.yaml when no config file is
in use.

Examples:
  eventreg config:suffixes .event .event.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			path = localConfigPath
		}
		if err := config.SaveResourceSuffixes(path, cfg.Registry, args); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", path)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")
	rootCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configSuffixesCmd)
}
