package funcalc

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Error kinds returned by Function operations. Match with errors.Is.
var (
	// ErrInvalidArgument reports a parameter outside its documented
	// domain (negative derivative order, non-positive step count,
	// degenerate point count).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerate reports a derivative magnitude below tolerance
	// during root finding, which would divide by near-zero.
	ErrDegenerate = errors.New("derivative magnitude below tolerance")

	// ErrNonConvergence reports an exhausted iteration budget.
	ErrNonConvergence = errors.New("did not converge")
)

// Defaults for the numeric services. Callers pass values explicitly;
// these are the reference choices used by the CLI front end.
const (
	DefaultIntegrationSteps = 1000
	DefaultEpsilon          = 1e-6
	DefaultTolerance        = 1e-6
	DefaultMaxIterations    = 100
)

// Function is a named wrapper around an expression root offering
// calculus-style numeric operations. Functions are immutable:
// Derivative and NthDerivative return new values.
type Function struct {
	expr Expr
	name string
}

// NewFunction wraps expr under the given display name. The Function
// takes ownership of expr.
func NewFunction(expr Expr, name string) *Function {
	return &Function{expr: expr, name: name}
}

func (f *Function) Name() string { return f.name }

// Expr returns the root node. The tree is immutable, so sharing the
// returned value is safe.
func (f *Function) Expr() Expr { return f.expr }

func (f *Function) Evaluate(x float64) float64 { return f.expr.Evaluate(x) }

func (f *Function) String() string {
	return f.name + "(x) = " + f.expr.String()
}

// Derivative returns a new Function wrapping the symbolic derivative,
// with one prime mark appended to the name.
func (f *Function) Derivative() *Function {
	return &Function{expr: f.expr.Derivative(), name: f.name + "'"}
}

// NthDerivative differentiates n times. n = 0 yields a clone of the
// receiver. Repeated differentiation never simplifies, so the result
// tree grows geometrically with n.
func (f *Function) NthDerivative(n int) (*Function, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "derivative order %d must be non-negative", n)
	}
	if n == 0 {
		return &Function{expr: f.expr.Clone(), name: f.name}, nil
	}
	result := f.expr.Derivative()
	for i := 1; i < n; i++ {
		result = result.Derivative()
	}
	return &Function{expr: result, name: f.name + strings.Repeat("'", n)}, nil
}

// Integrate approximates the definite integral over [a, b] with the
// composite trapezoidal rule on the given number of equal steps. There
// is no adaptive refinement; accuracy is the caller's responsibility
// via steps.
func (f *Function) Integrate(a, b float64, steps int) (float64, error) {
	if steps <= 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "integration steps %d must be positive", steps)
	}
	h := (b - a) / float64(steps)
	sum := 0.5 * (f.Evaluate(a) + f.Evaluate(b))
	for i := 1; i < steps; i++ {
		sum += f.Evaluate(a + float64(i)*h)
	}
	return sum * h, nil
}

// Limit approximates the value approaching point by evaluating at
// point+epsilon. This is a finite-offset probe, not a rigorous limit
// algorithm: it inherits whatever the function does at that offset.
func (f *Function) Limit(point, epsilon float64) float64 {
	return f.Evaluate(point + epsilon)
}

// TaylorSeries returns terms coefficients a_i = f⁽ⁱ⁾(point)/i! for
// i = 0..terms-1, differentiating the previous derivative tree once
// per iteration. Non-positive terms yields an empty result. Each
// extra term deepens the unsimplified derivative tree, so large terms
// counts get expensive quickly.
func (f *Function) TaylorSeries(point float64, terms int) []float64 {
	if terms <= 0 {
		return nil
	}
	coefficients := make([]float64, 0, terms)
	current := f.expr.Clone()
	factorial := 1.0
	for i := 0; i < terms; i++ {
		if i > 0 {
			factorial *= float64(i)
		}
		coefficients = append(coefficients, current.Evaluate(point)/factorial)
		if i < terms-1 {
			current = current.Derivative()
		}
	}
	return coefficients
}

// SeriesSum sums term over the inclusive integer range [start, end].
func (f *Function) SeriesSum(start, end int, term func(int) float64) float64 {
	sum := 0.0
	for n := start; n <= end; n++ {
		sum += term(n)
	}
	return sum
}

// FindRoot runs Newton-Raphson from initialGuess using the symbolic
// derivative evaluated numerically at each step. It returns the first
// iterate within tolerance of its predecessor, ErrDegenerate when the
// derivative magnitude drops below tolerance, and ErrNonConvergence
// when maxIterations is exhausted.
func (f *Function) FindRoot(initialGuess, tolerance float64, maxIterations int) (float64, error) {
	deriv := f.Derivative()
	x := initialGuess
	for i := 0; i < maxIterations; i++ {
		fx := f.Evaluate(x)
		dfx := deriv.Evaluate(x)
		if math.Abs(dfx) < tolerance {
			return 0, errors.Wrapf(ErrDegenerate, "f'(%g) = %g at iteration %d", x, dfx, i)
		}
		xNew := x - fx/dfx
		if math.Abs(xNew-x) < tolerance {
			return xNew, nil
		}
		x = xNew
	}
	return 0, errors.Wrapf(ErrNonConvergence, "no root within %d iterations from %g", maxIterations, initialGuess)
}

// Sample is one tabulated point (x, f(x)).
type Sample struct {
	X float64
	Y float64
}

// Tabulate produces points equally spaced samples over [start, end],
// inclusive of both endpoints.
func (f *Function) Tabulate(start, end float64, points int) ([]Sample, error) {
	if points <= 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "tabulation needs at least 2 points, got %d", points)
	}
	step := (end - start) / float64(points-1)
	result := make([]Sample, points)
	for i := 0; i < points; i++ {
		x := start + float64(i)*step
		result[i] = Sample{X: x, Y: f.Evaluate(x)}
	}
	return result, nil
}

// ExportTable writes a tab-separated table of points samples to w,
// headed by the function name.
func (f *Function) ExportTable(w io.Writer, start, end float64, points int) error {
	data, err := f.Tabulate(start, end, points)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "x\t%s(x)\n", f.name); err != nil {
		return errors.Wrap(err, "write table header")
	}
	for _, s := range data {
		if _, err := fmt.Fprintf(w, "%g\t%g\n", s.X, s.Y); err != nil {
			return errors.Wrap(err, "write table row")
		}
	}
	return nil
}

type functionFile struct {
	Name string          `json:"name"`
	Expr json.RawMessage `json:"expr"`
}

// Save writes the function (name and expression tree) as JSON.
func (f *Function) Save(path string) error {
	tree, err := ToJSON(f.expr)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(functionFile{Name: f.name, Expr: tree}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode function")
	}
	return errors.Wrapf(os.WriteFile(path, b, 0o644), "save function to %s", path)
}

// LoadFunction reads a function previously written by Save.
func LoadFunction(path string) (*Function, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load function from %s", path)
	}
	var file functionFile
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, errors.Wrapf(err, "decode function from %s", path)
	}
	expr, err := FromJSON(file.Expr)
	if err != nil {
		return nil, errors.Wrapf(err, "decode expression from %s", path)
	}
	return NewFunction(expr, file.Name), nil
}
