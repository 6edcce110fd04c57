package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pinlat/config"
	"github.com/katalvlaran/pinlat/model"
	"github.com/katalvlaran/pinlat/pin"
	"github.com/katalvlaran/pinlat/solver"
	"github.com/katalvlaran/pinlat/xmlexport"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Build the model and report the first problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, doc, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			lat := m.Geometry().Lattice()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d materials, %d pins, %d×%d lattice)\n",
				doc.Source, m.Catalog().Len(), len(lat.Templates()), lat.Size(), lat.Size())

			return nil
		},
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the lattice map with a legend and pin counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, doc, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			describe(cmd.OutOrStdout(), doc, m)

			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the solver input files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			dir := a.outputDir(out)
			if err := xmlexport.New(dir, xmlexport.WithLogger(a.log)).Export(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dir)

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default $PINLAT_OUTPUT_DIR or .)")

	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var (
		out     string
		threads int
		plot    bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Export the model and start the solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			dir := a.outputDir(out)
			if err := xmlexport.New(dir, xmlexport.WithLogger(a.log)).Export(cmd.Context(), m); err != nil {
				return err
			}

			if threads == 0 {
				threads = a.env.Threads
			}
			opts := []solver.Option{
				solver.WithBinary(a.env.Solver),
				solver.WithThreads(threads),
				solver.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
				solver.WithLogger(a.log),
			}
			if plot {
				opts = append(opts, solver.WithPlotMode())
			}

			return solver.NewExec(opts...).Run(cmd.Context(), dir)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default $PINLAT_OUTPUT_DIR or .)")
	cmd.Flags().IntVarP(&threads, "threads", "t", 0, "solver threads (default $PINLAT_THREADS or solver default)")
	cmd.Flags().BoolVar(&plot, "plot", false, "run the geometry plotter instead of transport")

	return cmd
}

// describe prints a human-readable summary of m.
func describe(w io.Writer, doc *config.File, m *model.Model) {
	region := m.Geometry()
	lat := region.Lattice()
	symbols := legend(lat.Templates())

	fmt.Fprintf(w, "assembly %s (%s)\n", doc.Name, doc.Source)
	fmt.Fprintf(w, "lattice %d×%d, pitch %g cm, span %g cm\n\n", lat.Size(), lat.Size(), lat.Pitch(), lat.Span())
	for _, row := range lat.Universes() {
		cells := make([]string, len(row))
		for i, t := range row {
			cells[i] = symbols[t]
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}

	fmt.Fprintln(w)
	width := 0
	for _, t := range lat.Templates() {
		width = max(width, len(t.Name()))
	}
	for _, t := range lat.Templates() {
		fmt.Fprintf(w, "  %s  %-*s %4d\n", symbols[t], width, t.Name(), lat.Count(t))
	}

	lo, hi := region.RadialExtent()
	zlo, zhi := region.AxialExtent()
	fmt.Fprintf(w, "\nbounds x,y [%g, %g] %s, z [%g, %g] %s\n",
		lo, hi, region.RadialCondition(), zlo, zhi, region.AxialCondition())
}

// legend assigns one symbol per template: the upper-cased first letter of its
// name when free, otherwise the first free letter of the alphabet.
func legend(templates []*pin.Template) map[*pin.Template]string {
	used := make(map[rune]bool, len(templates))
	out := make(map[*pin.Template]string, len(templates))
	for _, t := range templates {
		r := unicode.ToUpper([]rune(t.Name() + "?")[0])
		if used[r] || !unicode.IsLetter(r) {
			r = 'A'
			for used[r] && r < 'Z' {
				r++
			}
		}
		used[r] = true
		out[t] = string(r)
	}

	return out
}
