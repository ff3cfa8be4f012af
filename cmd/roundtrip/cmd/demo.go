/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the serialization demonstration",
	Long: `Run the fixed sequence of serialization examples.

Each example writes a document (person.json, book.xml, students.json and
product.json/.xml/.yaml) into the output directory, prints it and reads it
back. Failures are reported and the next example still runs; the command
always exits with status 0.

Example:
  roundtrip demo --output-dir ./out`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDemo(cmd)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command) {
	logger := container.GetLogger()
	defer func() { _ = logger.Sync() }()

	outputDir := container.GetConfig().OutputDir
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		logger.Error("failed to create output directory", zap.String("path", outputDir), zap.Error(err))
		cmd.PrintErrf("Error creating output directory: %v\n", err)
	}

	summary := container.NewRunner(cmd.OutOrStdout()).Run()
	if summary.Failures > 0 {
		logger.Warn("demonstration finished with failures", zap.Int("failures", summary.Failures))
	}
}
