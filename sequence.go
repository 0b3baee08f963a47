package funcalc

import (
	"math"

	"github.com/pkg/errors"
)

// Sequence is a named numeric sequence defined by a per-index term
// function.
type Sequence struct {
	name string
	term func(n int) float64
}

// NewSequence wraps term under the given display name.
func NewSequence(term func(n int) float64, name string) *Sequence {
	return &Sequence{name: name, term: term}
}

func (s *Sequence) Name() string { return s.name }

// Term returns the n-th term.
func (s *Sequence) Term(n int) float64 { return s.term(n) }

// Terms returns count consecutive terms starting at start.
func (s *Sequence) Terms(start, count int) []float64 {
	out := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, s.term(start+i))
	}
	return out
}

// PartialSum sums the terms over the inclusive range [start, end].
func (s *Sequence) PartialSum(start, end int) float64 {
	sum := 0.0
	for n := start; n <= end; n++ {
		sum += s.term(n)
	}
	return sum
}

// Converges probes convergence to zero by checking a single distant
// term against tolerance. A heuristic, not a proof.
func (s *Sequence) Converges(testTerm int, tolerance float64) bool {
	return math.Abs(s.term(testTerm)) < tolerance
}

// Limit walks the sequence until two successive terms differ by less
// than tolerance and returns that term. ErrNonConvergence when
// maxTerms is exhausted first.
func (s *Sequence) Limit(maxTerms int, tolerance float64) (float64, error) {
	prev := s.term(1)
	for n := 2; n <= maxTerms; n++ {
		curr := s.term(n)
		if math.Abs(curr-prev) < tolerance {
			return curr, nil
		}
		prev = curr
	}
	return 0, errors.Wrapf(ErrNonConvergence, "sequence %s did not settle within %d terms", s.name, maxTerms)
}
