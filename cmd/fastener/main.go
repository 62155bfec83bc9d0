// Command fastener generates standard fastener solids and bills of
// materials.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/soypat/fasteners/forge"
	"github.com/soypat/fasteners/internal/config"
	"github.com/soypat/fasteners/kernel/sdfx"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.Default()
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "fastener",
	Short: "Standard fastener generator",
	Long: "fastener resolves standard fasteners (pins, clevis pins, tapping screws, nails, T-slot nuts) " +
		"to their dimensions, builds their solids and writes bills of materials.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c
	logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(cfg.Level()).
		With().Timestamp().Logger()
	return nil
}

func newGenerator() *forge.Generator {
	g := forge.New(sdfx.Kernel{})
	g.Facets = cfg.CurveFacets
	return g
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
