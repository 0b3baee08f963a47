// funcalc — demonstration front end for the symbolic function library.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/funcalc/funcalc"
)

// sampleFunctions are the named expressions the subcommands operate on.
func sampleFunctions() map[string]*funcalc.Function {
	return map[string]*funcalc.Function{
		"quadratic": funcalc.NewFunction(
			funcalc.SumOf(funcalc.PowerOf(funcalc.Var(), 2), funcalc.Const(-4)), "f"),
		"sine": funcalc.NewFunction(
			funcalc.SinOf(funcalc.Var()), "g"),
		"gauss": funcalc.NewFunction(
			funcalc.ExpOf(funcalc.ProductOf(funcalc.Const(-1),
				funcalc.PowerOf(funcalc.Var(), 2))), "h"),
		"logline": funcalc.NewFunction(
			funcalc.ProductOf(funcalc.Var(), funcalc.LnOf(funcalc.Var())), "p"),
	}
}

func sampleNames() string {
	names := make([]string, 0, len(sampleFunctions()))
	for name := range sampleFunctions() {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupSample(name string) (*funcalc.Function, error) {
	f, ok := sampleFunctions()[name]
	if !ok {
		return nil, errors.Errorf("unknown function %q (available: %s)", name, sampleNames())
	}
	return f, nil
}

func main() {
	var (
		debug      bool
		configPath string
		cfg        Config
	)

	rootCmd := &cobra.Command{
		Use:   "funcalc",
		Short: "Symbolic expression engine demo",
		Long: `funcalc demonstrates the symbolic expression library: evaluation,
symbolic differentiation, numeric integration, Taylor coefficients,
Newton root finding, tabulation, sparse containers, and export to
computer-algebra notations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))

			var err error
			cfg, err = loadConfig(configPath)
			if err != nil {
				return err
			}
			slog.Debug("configuration loaded",
				"steps", cfg.IntegrationSteps,
				"tolerance", cfg.Tolerance,
				"maxIterations", cfg.MaxIterations,
				"points", cfg.TabulationPoints)
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to TOML config with numeric defaults")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the full library demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), cfg)
		},
	}

	var (
		fnName string
		start  float64
		end    float64
		points int
		out    string
	)
	tabulateCmd := &cobra.Command{
		Use:   "tabulate",
		Short: "Write a TSV table of a sample function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupSample(fnName)
			if err != nil {
				return err
			}
			if points == 0 {
				points = cfg.TabulationPoints
			}
			w := cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return errors.Wrapf(err, "create %s", out)
				}
				defer file.Close()
				w = file
			}
			slog.Debug("tabulating", "function", f.Name(), "start", start, "end", end, "points", points)
			return f.ExportTable(w, start, end, points)
		},
	}
	tabulateCmd.Flags().StringVar(&fnName, "function", "quadratic", "Sample function: "+sampleNames())
	tabulateCmd.Flags().Float64Var(&start, "start", -2, "Range start")
	tabulateCmd.Flags().Float64Var(&end, "end", 2, "Range end")
	tabulateCmd.Flags().IntVar(&points, "points", 0, "Sample count (default from config)")
	tabulateCmd.Flags().StringVar(&out, "out", "", "Output file (stdout if empty)")

	var (
		exportFn  string
		system    string
		exportOut string
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a sample function as a computer-algebra script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupSample(exportFn)
			if err != nil {
				return err
			}
			var exporter funcalc.Exporter
			for _, e := range funcalc.Exporters() {
				if strings.EqualFold(strings.Fields(e.System())[0], system) {
					exporter = e
					break
				}
			}
			if exporter == nil {
				return errors.Errorf("unknown system %q (available: mathematica, sympy, latex)", system)
			}
			if exportOut != "" {
				slog.Debug("exporting", "system", exporter.System(), "path", exportOut)
				return funcalc.ExportToFile(exporter, f, exportOut)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s notation: %s\n", exporter.System(), exporter.Export(f))
			return exporter.ExportScript(cmd.OutOrStdout(), f)
		},
	}
	exportCmd.Flags().StringVar(&exportFn, "function", "quadratic", "Sample function: "+sampleNames())
	exportCmd.Flags().StringVar(&system, "system", "sympy", "Target system: mathematica, sympy, latex")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (stdout if empty)")

	rootCmd.AddCommand(demoCmd, tabulateCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
