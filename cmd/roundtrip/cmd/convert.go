/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/roundtrip/pkg/codec"
	"github.com/ssargent/roundtrip/pkg/demo"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <src> <dst>",
	Short: "Convert a document between JSON, XML and YAML",
	Long: `Read a document and write it in another format.

Formats are taken from the file extensions (.json, .xml, .yaml or .yml).
The document may hold a single record or a list of records of the given kind.

Example:
  roundtrip convert book.xml book.json --kind book`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")

		from, to, err := convertDocument(container.GetCodec(), kind, args[0], args[1])
		if err != nil {
			return err
		}

		cmd.Printf("✓ Converted %s (%s) to %s (%s)\n", args[0], from, args[1], to)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("kind", "k", "",
		"Record kind: "+strings.Join(demo.RecordTypeNames(), ", ")+" (required)")
	if err := convertCmd.MarkFlagRequired("kind"); err != nil {
		panic(err)
	}
}

// convertDocument reads src as records of kind and writes them to dst
func convertDocument(c *codec.FileCodec, kind, src, dst string) (codec.Format, codec.Format, error) {
	rt, err := demo.LookupRecordType(kind)
	if err != nil {
		return "", "", err
	}

	from, err := codec.FormatFromPath(src)
	if err != nil {
		return "", "", fmt.Errorf("source %s: %w", src, err)
	}
	to, err := codec.FormatFromPath(dst)
	if err != nil {
		return "", "", fmt.Errorf("destination %s: %w", dst, err)
	}

	v, err := rt.Load(c, src, from)
	if err != nil {
		return "", "", err
	}

	if err := c.Write(v, to, dst); err != nil {
		return "", "", err
	}
	return from, to, nil
}
