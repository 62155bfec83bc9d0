package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/soypat/fasteners"
	"github.com/soypat/fasteners/standard"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one fastener",
	Long: "Resolves a fastener's dimensions, builds its solid and meshes it. Prints the designation, " +
		"the dimensions and the mesh bounds, triangle count and volume.",
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

type generateOptions struct {
	Type           string
	Diameter       string
	Length         string
	CustomDiameter float64
	CustomLength   float64
	Threaded       bool
	LeftHanded     bool
	ThreadLength   float64
	TCode          string
	JSON           bool
	STL            string
}

var genOpts generateOptions

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genOpts.Type, "type", "t", "", "Base type, e.g. ISO7049-C (required)")
	f.StringVarP(&genOpts.Diameter, "diameter", "d", "", "Size key, e.g. \"ST 3.5\" (required unless --custom-diameter)")
	f.StringVarP(&genOpts.Length, "length", "l", "", "Nominal length")
	f.Float64Var(&genOpts.CustomDiameter, "custom-diameter", 0, "Custom diameter in the family's units")
	f.Float64Var(&genOpts.CustomLength, "custom-length", 0, "Custom length in the family's units")
	f.BoolVar(&genOpts.Threaded, "threaded", false, "Model the thread")
	f.BoolVar(&genOpts.LeftHanded, "left-handed", false, "Left hand thread")
	f.Float64Var(&genOpts.ThreadLength, "thread-length", 0, "Threaded length in mm, 0 for full length")
	f.StringVar(&genOpts.TCode, "tcode", "", "Thickness code")
	f.BoolVar(&genOpts.JSON, "json", false, "Print JSON")
	f.StringVar(&genOpts.STL, "stl", "", "Write the mesh to this STL file")
	if err := generateCmd.MarkFlagRequired("type"); err != nil {
		panic(fmt.Sprintf("failed to mark type flag as required: %v", err))
	}
	rootCmd.AddCommand(generateCmd)
}

func (o generateOptions) spec() (fasteners.Spec, error) {
	t, err := standard.ParseType(o.Type)
	if err != nil {
		return fasteners.Spec{}, err
	}
	spec := fasteners.Spec{
		Type:         t,
		Diameter:     o.Diameter,
		Length:       o.Length,
		Threaded:     o.Threaded,
		LeftHanded:   o.LeftHanded,
		ThreadLength: o.ThreadLength,
		TCode:        o.TCode,
	}
	units := fasteners.UnitsOf(t)
	if o.CustomDiameter > 0 {
		spec.Diameter = fasteners.Custom
		spec.CustomDiameter = fasteners.Length{Value: o.CustomDiameter, Unit: units}
	}
	if o.CustomLength > 0 {
		spec.Length = fasteners.Custom
		spec.CustomLength = fasteners.Length{Value: o.CustomLength, Unit: units}
	}
	return spec, nil
}

type generateReport struct {
	Designation string               `json:"designation"`
	Dimensions  fasteners.Dimensions `json:"dimensions"`
	Min         [3]float64           `json:"min"`
	Max         [3]float64           `json:"max"`
	Triangles   int                  `json:"triangles"`
	Volume      float64              `json:"volume"`
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	spec, err := genOpts.spec()
	if err != nil {
		return err
	}
	dims, err := fasteners.Resolve(spec)
	if err != nil {
		return err
	}
	designation, err := fasteners.Designation(spec, dims)
	if err != nil {
		return err
	}
	start := time.Now()
	gen := newGenerator()
	solid, err := gen.Build(spec, dims)
	if err != nil {
		return err
	}
	mesh, err := gen.Kernel.Mesh(solid, cfg.MeshCells)
	if err != nil {
		return fmt.Errorf("meshing %s: %w", designation, err)
	}
	logger.Debug().Str("designation", designation).Int("triangles", mesh.Triangles()).
		Dur("elapsed", time.Since(start)).Msg("generated")

	if genOpts.STL != "" {
		if err := writeFile(genOpts.STL, mesh.WriteSTL); err != nil {
			return err
		}
	}

	bb := mesh.Bounds()
	report := generateReport{
		Designation: designation,
		Dimensions:  dims,
		Min:         [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z},
		Max:         [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z},
		Triangles:   mesh.Triangles(),
		Volume:      mesh.Volume(),
	}
	out := cmd.OutOrStdout()
	if genOpts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "designation\t%s\n", report.Designation)
	for _, r := range dims.Roles() {
		fmt.Fprintf(tw, "  %s\t%g\n", r, dims.Get(r))
	}
	fmt.Fprintf(tw, "bounds\t%.3f .. %.3f\n", report.Min, report.Max)
	fmt.Fprintf(tw, "triangles\t%d\n", report.Triangles)
	fmt.Fprintf(tw, "volume\t%.3f mm³\n", report.Volume)
	return tw.Flush()
}
