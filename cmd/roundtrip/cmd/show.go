/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/roundtrip/pkg/codec"
	"github.com/ssargent/roundtrip/pkg/demo"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the records stored in a document",
	Long: `Read a document and print its records as a table or in another format.

Examples:
  roundtrip show students.json --kind student
  roundtrip show book.xml --kind book --output yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		output, _ := cmd.Flags().GetString("output")

		return showDocument(cmd.OutOrStdout(), container.GetCodec(), kind, args[0], output)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("kind", "k", "",
		"Record kind: "+strings.Join(demo.RecordTypeNames(), ", ")+" (required)")
	showCmd.Flags().StringP("output", "o", "table", "Output format: table, json, xml or yaml")
	if err := showCmd.MarkFlagRequired("kind"); err != nil {
		panic(err)
	}
}

// showDocument loads path and renders it to w
func showDocument(w io.Writer, c *codec.FileCodec, kind, path, output string) error {
	rt, err := demo.LookupRecordType(kind)
	if err != nil {
		return err
	}

	from, err := codec.FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	v, err := rt.Load(c, path, from)
	if err != nil {
		return err
	}

	if output == "" || output == "table" {
		return rt.WriteTable(w, v)
	}

	to, err := codec.ParseFormat(output)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	data, err := c.Marshal(v, to)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
