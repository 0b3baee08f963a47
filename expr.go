// Package funcalc provides a small symbolic math engine for Go.
//
// The core is an immutable expression tree over a single variable x.
// Trees are built programmatically from the nine node constructors,
// evaluated numerically, and differentiated symbolically. Derivative
// construction never simplifies: 0 + x stays 0 + x, so the rendered
// output is a faithful record of the rule applications.
//
// Function wraps a tree with a name and offers calculus-style numeric
// services on top: trapezoidal integration, Newton root finding, Taylor
// coefficients, tabulation.
package funcalc

import (
	"math"
	"strconv"
)

// ============================================================
// Core Interface
// ============================================================

// Expr is one node of a symbolic expression tree. The set of
// implementors is closed: Constant, Variable, Sum, Product, Power,
// Sin, Cos, Exp and Ln.
//
// Nodes are immutable after construction. Derivative and Clone return
// newly allocated trees that share no nodes with the receiver.
type Expr interface {
	// Evaluate substitutes x for the variable and computes the value
	// bottom-up. Results may be NaN or ±Inf (e.g. Ln at x <= 0);
	// non-finite values propagate like any other float64.
	Evaluate(x float64) float64

	// String renders the tree as deterministic, fully parenthesized
	// infix with no simplification.
	String() string

	// Derivative builds the symbolic derivative as an independent tree.
	Derivative() Expr

	// Clone deep-copies the tree.
	Clone() Expr

	exprType() string
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// ============================================================
// Constant
// ============================================================

type Constant struct{ value float64 }

// Const returns a constant node.
func Const(v float64) *Constant { return &Constant{value: v} }

func (c *Constant) Evaluate(float64) float64 { return c.value }
func (c *Constant) String() string { return formatFloat(c.value) }
func (c *Constant) Derivative() Expr { return Const(0) }
func (c *Constant) Clone() Expr { return Const(c.value) }
func (c *Constant) Value() float64 { return c.value }
func (c *Constant) exprType() string { return "const" }

// ============================================================
// Variable
// ============================================================

type Variable struct{}

// Var returns the variable node x.
func Var() *Variable { return &Variable{} }

func (v *Variable) Evaluate(x float64) float64 { return x }
func (v *Variable) String() string { return "x" }
func (v *Variable) Derivative() Expr { return Const(1) }
func (v *Variable) Clone() Expr { return Var() }
func (v *Variable) exprType() string { return "var" }

// ============================================================
// Sum
// ============================================================

type Sum struct{ left, right Expr }

// SumOf returns the sum node l + r. The node takes ownership of both
// operands; callers must not retain and reuse them elsewhere.
func SumOf(l, r Expr) *Sum { return &Sum{left: l, right: r} }

func (s *Sum) Evaluate(x float64) float64 {
	return s.left.Evaluate(x) + s.right.Evaluate(x)
}

func (s *Sum) String() string {
	return "(" + s.left.String() + " + " + s.right.String() + ")"
}

func (s *Sum) Derivative() Expr {
	return SumOf(s.left.Derivative(), s.right.Derivative())
}

func (s *Sum) Clone() Expr { return SumOf(s.left.Clone(), s.right.Clone()) }
func (s *Sum) Left() Expr { return s.left }
func (s *Sum) Right() Expr { return s.right }
func (s *Sum) exprType() string { return "sum" }

// ============================================================
// Product
// ============================================================

type Product struct{ left, right Expr }

// ProductOf returns the product node l * r.
func ProductOf(l, r Expr) *Product { return &Product{left: l, right: r} }

func (p *Product) Evaluate(x float64) float64 {
	return p.left.Evaluate(x) * p.right.Evaluate(x)
}

func (p *Product) String() string {
	return "(" + p.left.String() + " * " + p.right.String() + ")"
}

// Derivative applies the product rule l'·r + l·r'. Operands reused
// numerically unchanged are cloned so the result aliases nothing.
func (p *Product) Derivative() Expr {
	term1 := ProductOf(p.left.Derivative(), p.right.Clone())
	term2 := ProductOf(p.left.Clone(), p.right.Derivative())
	return SumOf(term1, term2)
}

func (p *Product) Clone() Expr { return ProductOf(p.left.Clone(), p.right.Clone()) }
func (p *Product) Left() Expr { return p.left }
func (p *Product) Right() Expr { return p.right }
func (p *Product) exprType() string { return "product" }

// ============================================================
// Power — base^n with a constant real exponent
// ============================================================

// Power raises a sub-expression to a fixed real exponent. The exponent
// is an attribute, not a sub-expression: variable exponents are out of
// scope (use Exp/Ln composition for those).
type Power struct {
	base     Expr
	exponent float64
}

// PowerOf returns the power node base^exp.
func PowerOf(base Expr, exp float64) *Power {
	return &Power{base: base, exponent: exp}
}

func (p *Power) Evaluate(x float64) float64 {
	return math.Pow(p.base.Evaluate(x), p.exponent)
}

func (p *Power) String() string {
	return "(" + p.base.String() + ")^" + formatFloat(p.exponent)
}

// Derivative applies the general power rule n·base^(n-1)·base'. The
// chain factor base' is what keeps the rule correct when base is a
// composite sub-expression rather than the bare variable.
func (p *Power) Derivative() Expr {
	coef := Const(p.exponent)
	pow := PowerOf(p.base.Clone(), p.exponent-1)
	return ProductOf(ProductOf(coef, pow), p.base.Derivative())
}

func (p *Power) Clone() Expr { return PowerOf(p.base.Clone(), p.exponent) }
func (p *Power) Base() Expr { return p.base }
func (p *Power) Exponent() float64 { return p.exponent }
func (p *Power) exprType() string { return "power" }

// ============================================================
// Sin / Cos / Exp / Ln — unary function applications
// ============================================================

type Sin struct{ arg Expr }

// SinOf returns the node sin(arg).
func SinOf(arg Expr) *Sin { return &Sin{arg: arg} }

func (s *Sin) Evaluate(x float64) float64 { return math.Sin(s.arg.Evaluate(x)) }
func (s *Sin) String() string { return "sin(" + s.arg.String() + ")" }

func (s *Sin) Derivative() Expr {
	return ProductOf(CosOf(s.arg.Clone()), s.arg.Derivative())
}

func (s *Sin) Clone() Expr { return SinOf(s.arg.Clone()) }
func (s *Sin) Arg() Expr { return s.arg }
func (s *Sin) exprType() string { return "sin" }

type Cos struct{ arg Expr }

// CosOf returns the node cos(arg).
func CosOf(arg Expr) *Cos { return &Cos{arg: arg} }

func (c *Cos) Evaluate(x float64) float64 { return math.Cos(c.arg.Evaluate(x)) }
func (c *Cos) String() string { return "cos(" + c.arg.String() + ")" }

func (c *Cos) Derivative() Expr {
	inner := ProductOf(Const(-1), SinOf(c.arg.Clone()))
	return ProductOf(inner, c.arg.Derivative())
}

func (c *Cos) Clone() Expr { return CosOf(c.arg.Clone()) }
func (c *Cos) Arg() Expr { return c.arg }
func (c *Cos) exprType() string { return "cos" }

type Exp struct{ arg Expr }

// ExpOf returns the node exp(arg).
func ExpOf(arg Expr) *Exp { return &Exp{arg: arg} }

func (e *Exp) Evaluate(x float64) float64 { return math.Exp(e.arg.Evaluate(x)) }
func (e *Exp) String() string { return "exp(" + e.arg.String() + ")" }

func (e *Exp) Derivative() Expr {
	return ProductOf(ExpOf(e.arg.Clone()), e.arg.Derivative())
}

func (e *Exp) Clone() Expr { return ExpOf(e.arg.Clone()) }
func (e *Exp) Arg() Expr { return e.arg }
func (e *Exp) exprType() string { return "exp" }

type Ln struct{ arg Expr }

// LnOf returns the node ln(arg). Evaluation at a non-positive argument
// yields -Inf or NaN per math.Log, never an error.
func LnOf(arg Expr) *Ln { return &Ln{arg: arg} }

func (l *Ln) Evaluate(x float64) float64 { return math.Log(l.arg.Evaluate(x)) }
func (l *Ln) String() string { return "ln(" + l.arg.String() + ")" }

func (l *Ln) Derivative() Expr {
	return ProductOf(l.arg.Derivative(), PowerOf(l.arg.Clone(), -1))
}

func (l *Ln) Clone() Expr { return LnOf(l.arg.Clone()) }
func (l *Ln) Arg() Expr { return l.arg }
func (l *Ln) exprType() string { return "ln" }
