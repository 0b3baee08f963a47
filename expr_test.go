package funcalc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcalc/funcalc"
)

// ============================================================
// Evaluation
// ============================================================

func TestConstant_Evaluate(t *testing.T) {
	c := funcalc.Const(4.25)
	assert.Equal(t, 4.25, c.Evaluate(0))
	assert.Equal(t, 4.25, c.Evaluate(-100))
}

func TestVariable_Evaluate(t *testing.T) {
	x := funcalc.Var()
	assert.Equal(t, 3.5, x.Evaluate(3.5))
	assert.Equal(t, -1.0, x.Evaluate(-1))
}

func TestSum_Evaluate(t *testing.T) {
	e := funcalc.SumOf(funcalc.Var(), funcalc.Const(3))
	assert.Equal(t, 5.0, e.Evaluate(2))
}

func TestProduct_Evaluate(t *testing.T) {
	e := funcalc.ProductOf(funcalc.Const(3), funcalc.Var())
	assert.Equal(t, 12.0, e.Evaluate(4))
}

func TestPower_Evaluate(t *testing.T) {
	e := funcalc.PowerOf(funcalc.Var(), 3)
	assert.Equal(t, 8.0, e.Evaluate(2))
}

func TestPower_FractionalExponent(t *testing.T) {
	e := funcalc.PowerOf(funcalc.Var(), 0.5)
	assert.InDelta(t, 3.0, e.Evaluate(9), 1e-12)
}

func TestUnary_Evaluate(t *testing.T) {
	x := 0.7
	assert.InDelta(t, math.Sin(x), funcalc.SinOf(funcalc.Var()).Evaluate(x), 1e-15)
	assert.InDelta(t, math.Cos(x), funcalc.CosOf(funcalc.Var()).Evaluate(x), 1e-15)
	assert.InDelta(t, math.Exp(x), funcalc.ExpOf(funcalc.Var()).Evaluate(x), 1e-15)
	assert.InDelta(t, math.Log(x), funcalc.LnOf(funcalc.Var()).Evaluate(x), 1e-15)
}

func TestLn_NonPositive_NotAnError(t *testing.T) {
	ln := funcalc.LnOf(funcalc.Var())
	assert.True(t, math.IsInf(ln.Evaluate(0), -1))
	assert.True(t, math.IsNaN(ln.Evaluate(-1)))
}

// ============================================================
// Rendering
// ============================================================

func TestString_FullyParenthesized(t *testing.T) {
	e := funcalc.SumOf(
		funcalc.ProductOf(funcalc.Const(2), funcalc.Var()),
		funcalc.PowerOf(funcalc.SinOf(funcalc.Var()), 2),
	)
	assert.Equal(t, "((2 * x) + (sin(x))^2)", e.String())
}

func TestString_ConstantFormatting(t *testing.T) {
	assert.Equal(t, "0.5", funcalc.Const(0.5).String())
	assert.Equal(t, "-4", funcalc.Const(-4).String())
	assert.Equal(t, "1e+21", funcalc.Const(1e21).String())
}

func TestString_NoSimplification(t *testing.T) {
	// 0 + x stays 0 + x.
	e := funcalc.SumOf(funcalc.Const(0), funcalc.Var())
	assert.Equal(t, "(0 + x)", e.String())
}

func TestString_Deterministic(t *testing.T) {
	build := func() funcalc.Expr {
		return funcalc.ProductOf(funcalc.LnOf(funcalc.Var()), funcalc.ExpOf(funcalc.Const(1)))
	}
	assert.Equal(t, build().String(), build().String())
}

// ============================================================
// Derivative rules
// ============================================================

func TestConstant_Derivative_ZeroEverywhere(t *testing.T) {
	d := funcalc.Const(7).Derivative()
	for _, x := range []float64{-5, 0, 2.5, 100} {
		assert.Equal(t, 0.0, d.Evaluate(x))
	}
}

func TestVariable_Derivative_OneEverywhere(t *testing.T) {
	d := funcalc.Var().Derivative()
	for _, x := range []float64{-5, 0, 2.5, 100} {
		assert.Equal(t, 1.0, d.Evaluate(x))
	}
}

func TestSum_Derivative(t *testing.T) {
	d := funcalc.SumOf(funcalc.Var(), funcalc.Const(3)).Derivative()
	assert.Equal(t, 1.0, d.Evaluate(0))
	assert.Equal(t, 1.0, d.Evaluate(42))
	// Unsimplified: derivative of x + 3 renders as (1 + 0).
	assert.Equal(t, "(1 + 0)", d.String())
}

func TestProduct_Derivative_ConstantTimesVariable(t *testing.T) {
	d := funcalc.ProductOf(funcalc.Const(3), funcalc.Var()).Derivative()
	for _, x := range []float64{-2, 0, 1, 9} {
		assert.Equal(t, 3.0, d.Evaluate(x))
	}
	assert.Equal(t, "((0 * x) + (3 * 1))", d.String())
}

func TestPower_Derivative(t *testing.T) {
	d := funcalc.PowerOf(funcalc.Var(), 2).Derivative()
	assert.InDelta(t, 6.0, d.Evaluate(3), 1e-12)
	assert.InDelta(t, 10.0, d.Evaluate(5), 1e-12)
	assert.Equal(t, "((2 * (x)^1) * 1)", d.String())
}

func TestPower_Derivative_ChainRule(t *testing.T) {
	// d/dx (sin x)^2 = 2 sin x cos x.
	d := funcalc.PowerOf(funcalc.SinOf(funcalc.Var()), 2).Derivative()
	x := 0.4
	assert.InDelta(t, 2*math.Sin(x)*math.Cos(x), d.Evaluate(x), 1e-12)
}

func TestSin_Derivative(t *testing.T) {
	// d/dx sin(2x) = 2 cos(2x).
	d := funcalc.SinOf(funcalc.ProductOf(funcalc.Const(2), funcalc.Var())).Derivative()
	assert.InDelta(t, 2.0, d.Evaluate(0), 1e-12)
}

func TestCos_Derivative(t *testing.T) {
	d := funcalc.CosOf(funcalc.Var()).Derivative()
	assert.InDelta(t, -1.0, d.Evaluate(math.Pi/2), 1e-12)
	assert.Equal(t, "((-1 * sin(x)) * 1)", d.String())
}

func TestExp_Derivative(t *testing.T) {
	d := funcalc.ExpOf(funcalc.Var()).Derivative()
	x := 1.3
	assert.InDelta(t, math.Exp(x), d.Evaluate(x), 1e-12)
}

func TestLn_Derivative(t *testing.T) {
	d := funcalc.LnOf(funcalc.Var()).Derivative()
	assert.InDelta(t, 0.5, d.Evaluate(2), 1e-12)
	assert.Equal(t, "(1 * (x)^-1)", d.String())
}

// ============================================================
// Clone discipline
// ============================================================

func TestClone_SameEvaluations(t *testing.T) {
	e := funcalc.SumOf(
		funcalc.ProductOf(funcalc.ExpOf(funcalc.Var()), funcalc.CosOf(funcalc.Var())),
		funcalc.PowerOf(funcalc.Var(), 3),
	)
	c := e.Clone()
	for _, x := range []float64{-1, 0, 0.5, 2} {
		assert.Equal(t, e.Evaluate(x), c.Evaluate(x))
	}
	assert.Equal(t, e.String(), c.String())
}

func TestClone_Independent(t *testing.T) {
	inner := funcalc.SumOf(funcalc.Var(), funcalc.Const(1))
	e := funcalc.SinOf(inner)
	c := e.Clone().(*funcalc.Sin)
	require.NotSame(t, e, c)
	require.NotSame(t, funcalc.Expr(inner), c.Arg())
}

func TestDerivative_DoesNotAliasOriginal(t *testing.T) {
	right := funcalc.SinOf(funcalc.Var())
	e := funcalc.ProductOf(funcalc.Var(), right)
	d := e.Derivative().(*funcalc.Sum)
	// The product rule reuses the right operand numerically; it must
	// be a clone, not the original node.
	reused := d.Left().(*funcalc.Product).Right()
	require.NotSame(t, funcalc.Expr(right), reused)
	assert.Equal(t, right.String(), reused.String())
}
