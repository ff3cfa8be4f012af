/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/roundtrip/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file with default settings.

The file goes to --config when given, otherwise to the platform default
(~/.config/roundtrip/config.yaml). Pass it back with --config to use it.

Examples:
	  roundtrip init --config ./roundtrip.yaml
	  roundtrip init --output-dir ./out --force`,
	Args: cobra.NoArgs,
	// The config file may not exist yet, so skip the root's loading hook
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		created, err := initializeConfig(configPath, outputDir, force)
		if err != nil {
			return err
		}

		if !created {
			cmd.Printf("Config already exists. Use --force to overwrite.\n")
			cmd.Printf("Config location: %s\n", configPath)
			return nil
		}

		cmd.Printf("✅ Wrote config: %s\n", configPath)
		cmd.Printf("\nUse it with:\n")
		cmd.Printf("  roundtrip demo --config=%s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

// initializeConfig writes a default config unless one exists and force is false.
// It reports whether a file was written.
func initializeConfig(configPath, outputDir string, force bool) (bool, error) {
	if config.ConfigExists(configPath) && !force {
		return false, nil
	}

	if _, err := config.BootstrapConfig(configPath, outputDir); err != nil {
		return false, err
	}
	return true, nil
}
