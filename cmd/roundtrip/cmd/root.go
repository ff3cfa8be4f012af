/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/roundtrip/pkg/config"
	"github.com/ssargent/roundtrip/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by all commands
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roundtrip",
	Short: "Write records to JSON, XML and YAML files and read them back",
	Long: `roundtrip converts in-memory records to text documents, writes them
to files and reads them back to check that nothing was lost on the way.

Run without a subcommand it executes the demonstration sequence.

Examples:
  roundtrip
  roundtrip demo --output-dir ./out
  roundtrip convert out/book.xml out/book.yaml --kind book
  roundtrip show out/students.json --kind student`,
	SilenceUsage:      true,
	PersistentPreRunE: configure,
	Run: func(cmd *cobra.Command, args []string) {
		runDemo(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (defaults apply when omitted)")
	rootCmd.PersistentFlags().StringP("output-dir", "d", "", "Directory for generated documents (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored status lines")
}

// configure loads the config file, applies flag overrides and rebuilds the container
func configure(cmd *cobra.Command, args []string) error {
	if container == nil {
		container = di.NewContainer()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := container.Configure(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if outputDir, _ := flags.GetString("output-dir"); outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Color = false
	}

	return cfg, nil
}
