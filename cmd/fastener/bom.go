package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/soypat/fasteners/bom"
	"github.com/spf13/cobra"
)

var bomCmd = &cobra.Command{
	Use:   "bom FILE",
	Short: "Build a bill of materials",
	Long: "Reads fastener items from a JSON array or an .xlsx sheet with type, diameter, length and count " +
		"columns, aggregates them by designation and prints the bill. Optionally writes it as a workbook " +
		"or a PDF and generates every solid.",
	Args: cobra.ExactArgs(1),
	RunE: runBOM,
}

type bomOptions struct {
	XLSX     string
	PDF      string
	Generate bool
}

var bomOpts bomOptions

func init() {
	f := bomCmd.Flags()
	f.StringVar(&bomOpts.XLSX, "xlsx", "", "Write the bill to this workbook")
	f.StringVar(&bomOpts.PDF, "pdf", "", "Write the bill to this PDF")
	f.BoolVar(&bomOpts.Generate, "generate", false, "Generate the solid of every item")
	rootCmd.AddCommand(bomCmd)
}

func runBOM(cmd *cobra.Command, args []string) error {
	items, err := readItems(args[0])
	if err != nil {
		return err
	}
	bill, err := bom.Build(items)
	if err != nil {
		return err
	}
	logger.Info().Int("items", len(items)).Int("rows", len(bill.Rows)).Msg("built bill of materials")

	if bomOpts.Generate {
		results, err := bom.Generate(cmd.Context(), newGenerator(), items, cfg.Workers, logger)
		if err != nil {
			return err
		}
		logger.Info().Int("solids", len(results)).Msg("generated items")
	}
	if bomOpts.XLSX != "" {
		if err := writeFile(bomOpts.XLSX, bill.WriteXLSX); err != nil {
			return err
		}
	}
	if bomOpts.PDF != "" {
		if err := writeFile(bomOpts.PDF, bill.WritePDF); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, r := range bill.Rows {
		fmt.Fprintf(tw, "%s\t%d\n", r.Designation, r.Count)
	}
	fmt.Fprintf(tw, "Total\t%d\n", bill.Total())
	return tw.Flush()
}

func readItems(path string) ([]bom.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return bom.ReadItems(f)
	case ".json":
		var items []bom.Item
		if err := json.NewDecoder(f).Decode(&items); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return items, nil
	}
	return nil, fmt.Errorf("unsupported item file %q, want .json or .xlsx", path)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info().Str("file", path).Msg("wrote")
	return nil
}
