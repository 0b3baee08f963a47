// export.go
// Computer-algebra export adapters.
//
// Adapters consume only the read-only rendering of a Function (its
// expression String and its derivative); they are plain notation
// substitution, not re-rendering from the tree.
//
// Limitations:
// - Grouping parentheses are translated blindly (Mathematica gets
//   square brackets everywhere)
// - LaTeX exponent bracing is a token scan, not a parse

package funcalc

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Exporter renders a Function in an external computer-algebra
// notation and can emit a runnable script around it.
type Exporter interface {
	// Export returns the expression in the target notation.
	Export(f *Function) string

	// ExportScript writes a self-contained script: the function, its
	// derivative, and a plot command.
	ExportScript(w io.Writer, f *Function) error

	// System names the target system.
	System() string
}

// Exporters returns one adapter per supported system.
func Exporters() []Exporter {
	return []Exporter{MathematicaExporter{}, SymPyExporter{}, LaTeXExporter{}}
}

// ExportToFile writes the exporter's script for f to path.
func ExportToFile(e Exporter, f *Function, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "export to %s", path)
	}
	if err := e.ExportScript(out, f); err != nil {
		out.Close()
		return err
	}
	return errors.Wrapf(out.Close(), "export to %s", path)
}

func replaceAll(s string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(s)
}

// ============================================================
// Mathematica
// ============================================================

type MathematicaExporter struct{}

func (MathematicaExporter) System() string { return "Mathematica" }

func (MathematicaExporter) Export(f *Function) string {
	return replaceAll(f.Expr().String(),
		"exp(", "Exp[",
		"sin(", "Sin[",
		"cos(", "Cos[",
		"ln(", "Log[",
		")", "]",
	)
}

func (m MathematicaExporter) ExportScript(w io.Writer, f *Function) error {
	expr := m.Export(f)
	lines := []string{
		"(* Mathematica code *)",
		expr,
		"",
		"(* Derivative *)",
		"D[" + expr + ", x]",
		"",
		"(* Plot *)",
		"Plot[" + expr + ", {x, -10, 10}]",
		"",
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return errors.Wrap(err, "write Mathematica script")
}

// ============================================================
// SymPy
// ============================================================

type SymPyExporter struct{}

func (SymPyExporter) System() string { return "SymPy (Python)" }

func (SymPyExporter) Export(f *Function) string {
	return replaceAll(f.Expr().String(),
		"^", "**",
		"ln(", "log(",
	)
}

func (s SymPyExporter) ExportScript(w io.Writer, f *Function) error {
	expr := s.Export(f)
	lines := []string{
		"# Python (SymPy) code",
		"from sympy import *",
		"x = Symbol('x')",
		"",
		"f = " + expr,
		"print('Function:', f)",
		"print('Derivative:', diff(f, x))",
		"print('Integral:', integrate(f, x))",
		"",
		"# Plot",
		"plot(f, (x, -10, 10))",
		"",
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return errors.Wrap(err, "write SymPy script")
}

// ============================================================
// LaTeX
// ============================================================

type LaTeXExporter struct{}

func (LaTeXExporter) System() string { return "LaTeX" }

func (LaTeXExporter) Export(f *Function) string {
	expr := replaceAll(f.Expr().String(),
		"*", " \\cdot ",
		"sin(", "\\sin(",
		"cos(", "\\cos(",
		"exp(", "\\exp(",
		"ln(", "\\ln(",
	)
	return "$" + braceExponents(expr) + "$"
}

// braceExponents turns ^exp into ^{exp}, closing the brace at the end
// of the numeric exponent token.
func braceExponents(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '^' {
			b.WriteByte(s[i])
			continue
		}
		b.WriteString("^{")
		j := i + 1
		for j < len(s) && !strings.ContainsRune(" +)*", rune(s[j])) {
			b.WriteByte(s[j])
			j++
		}
		b.WriteByte('}')
		i = j - 1
	}
	return b.String()
}

func (l LaTeXExporter) ExportScript(w io.Writer, f *Function) error {
	lines := []string{
		"\\documentclass{article}",
		"\\usepackage{amsmath}",
		"\\begin{document}",
		"",
		"Function: " + l.Export(f),
		"",
		"Derivative: " + l.Export(f.Derivative()),
		"",
		"\\end{document}",
		"",
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return errors.Wrap(err, "write LaTeX document")
}
