package main

import (
	"fmt"
	"io"
	"math"

	"github.com/funcalc/funcalc"
	"github.com/funcalc/funcalc/sparse"
)

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n═══ %s ═══\n", title)
}

// runDemo walks every part of the library with small examples.
func runDemo(w io.Writer, cfg Config) error {
	x := func() *funcalc.Variable { return funcalc.Var() }

	// ── Expression trees ───────────────────────────────────────
	section(w, "Expression trees")

	quad := funcalc.NewFunction(
		funcalc.SumOf(funcalc.PowerOf(x(), 2), funcalc.Const(-4)), "f")
	fmt.Fprintln(w, quad)
	fmt.Fprintf(w, "f(3) = %g\n", quad.Evaluate(3))

	wave := funcalc.NewFunction(
		funcalc.SinOf(funcalc.ProductOf(funcalc.Const(2), x())), "g")
	fmt.Fprintln(w, wave)

	// ── Symbolic differentiation ───────────────────────────────
	section(w, "Symbolic differentiation")

	fmt.Fprintln(w, quad.Derivative())
	fmt.Fprintln(w, wave.Derivative())

	second, err := quad.NthDerivative(2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, second)

	// ── Numeric integration ────────────────────────────────────
	section(w, "Trapezoidal integration")

	integral, err := quad.Integrate(0, 2, cfg.IntegrationSteps)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "∫ f over [0,2] with %d steps ≈ %g\n", cfg.IntegrationSteps, integral)

	// ── Taylor coefficients ────────────────────────────────────
	section(w, "Taylor coefficients")

	expFn := funcalc.NewFunction(funcalc.ExpOf(x()), "e")
	coeffs := expFn.TaylorSeries(0, 6)
	fmt.Fprintf(w, "exp(x) around 0: %.5g\n", coeffs)

	// ── Newton root finding ────────────────────────────────────
	section(w, "Newton root finding")

	root, err := quad.FindRoot(3, cfg.Tolerance, cfg.MaxIterations)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "root of f near 3: %g\n", root)

	// ── Limits and series ──────────────────────────────────────
	section(w, "Limits and series")

	ratio := funcalc.NewFunction(
		funcalc.ProductOf(funcalc.SinOf(x()), funcalc.PowerOf(x(), -1)), "r")
	fmt.Fprintf(w, "sin(x)/x near 0 ≈ %g\n", ratio.Limit(0, funcalc.DefaultEpsilon))

	basel := quad.SeriesSum(1, 1000, func(n int) float64 {
		return 1 / (float64(n) * float64(n))
	})
	fmt.Fprintf(w, "Σ 1/n² for n=1..1000 ≈ %g (π²/6 ≈ %g)\n", basel, math.Pi*math.Pi/6)

	harmonic := funcalc.NewSequence(func(n int) float64 {
		return 1 / float64(n)
	}, "a")
	fmt.Fprintf(w, "sequence %s: first terms %v, converges: %v\n",
		harmonic.Name(), harmonic.Terms(1, 5), harmonic.Converges(1000, cfg.Tolerance*1000))

	// ── Tabulation ─────────────────────────────────────────────
	section(w, "Tabulation")

	if err := quad.ExportTable(w, -2, 2, 5); err != nil {
		return err
	}

	// ── Computer-algebra export ────────────────────────────────
	section(w, "Computer-algebra export")

	for _, exporter := range funcalc.Exporters() {
		fmt.Fprintf(w, "%-16s %s\n", exporter.System()+":", exporter.Export(quad))
	}

	// ── Sparse containers ──────────────────────────────────────
	section(w, "Sparse containers")

	list := sparse.NewList(10, 0.0)
	list.Set(2, 3.5)
	list.Set(7, -1.25)
	fmt.Fprintln(w, list)
	fmt.Fprintf(w, "first negative at index %d\n", list.FindFirstBy(func(v float64) bool { return v < 0 }))

	m := sparse.NewMatrix(3, 3, 0.0)
	m.Set(0, 0, 2)
	m.Set(1, 2, 5)
	fmt.Fprintln(w, m)
	fmt.Fprintln(w, m.Transpose())

	return nil
}
