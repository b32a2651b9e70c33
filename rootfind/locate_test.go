package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polyroots/complexnum"
	"github.com/katalvlaran/polyroots/polynomial"
	"github.com/katalvlaran/polyroots/rootfind"
)

// maxEvaluations is the evaluation count of a search that never hits an exact zero.
const maxEvaluations = 1 + 4*rootfind.OuterIterations*rootfind.InnerIterations

// TestSearch_LinearExact pins the trajectory for X − 5: the search lands on
// 5 exactly and stops each inner loop early from then on.
func TestSearch_LinearExact(t *testing.T) {
	p := polynomial.FromReals(-5, 1)

	res := rootfind.Search(p)
	assert.Equal(t, complexnum.FromReal(5), res.Root)
	assert.True(t, res.ExactZero)
	assert.Equal(t, 69633, res.Evaluations)
	assert.Equal(t, res.Root, rootfind.Locate(p))
}

// TestSearch_Deterministic runs the same search twice and expects identical bits.
func TestSearch_Deterministic(t *testing.T) {
	p := polynomial.New(complexnum.New(0.3, -1.7), complexnum.New(2, 0.25), complexnum.New(-1, 1), complexnum.One)
	a := rootfind.Search(p)
	b := rootfind.Search(p)
	assert.Equal(t, a, b)
}

// TestSearch_ConstantNeverMoves checks that a non-zero constant yields the
// origin after the full bounded search.
func TestSearch_ConstantNeverMoves(t *testing.T) {
	res := rootfind.Search(polynomial.New(complexnum.New(2, -3)))
	assert.Equal(t, complexnum.Zero, res.Root)
	assert.False(t, res.ExactZero)
	assert.Equal(t, maxEvaluations, res.Evaluations)
}

// TestSearch_ZeroAtOrigin stops every inner loop after a single iteration.
func TestSearch_ZeroAtOrigin(t *testing.T) {
	res := rootfind.Search(polynomial.FromReals(0, 1)) // X
	assert.Equal(t, complexnum.Zero, res.Root)
	assert.True(t, res.ExactZero)
	assert.Equal(t, 1+4*rootfind.OuterIterations, res.Evaluations)

	var empty polynomial.Polynomial
	assert.True(t, rootfind.Search(&empty).ExactZero, "the empty polynomial is zero everywhere")
}

// TestSearch_NaNFreezes documents that a NaN value at the start point is
// never improved on, so the search stays at the origin.
func TestSearch_NaNFreezes(t *testing.T) {
	p := polynomial.New(complexnum.New(math.NaN(), 0), complexnum.One)
	res := rootfind.Search(p)
	assert.Equal(t, complexnum.Zero, res.Root)
	assert.False(t, res.ExactZero)
	assert.Equal(t, maxEvaluations, res.Evaluations)
}

// TestSearch_CandidateOrder records the evaluated points of a flat function
// and checks the fixed priority order and the inner step halving.
func TestSearch_CandidateOrder(t *testing.T) {
	var calls []complexnum.Complex
	flat := rootfind.EvaluatorFunc(func(x complexnum.Complex) complexnum.Complex {
		calls = append(calls, x)
		return complexnum.One
	})
	rootfind.Search(flat)

	s := rootfind.InitialStep
	want := []complexnum.Complex{
		complexnum.Zero,
		complexnum.New(s, s),
		complexnum.New(-s, s),
		complexnum.New(s, -s),
		complexnum.New(-s, -s),
		complexnum.New(s, s/2),
		complexnum.New(-s, s/2),
		complexnum.New(s, -s/2),
		complexnum.New(-s, -s/2),
	}
	assert.Equal(t, want, calls[:len(want)])

	// Second outer round re-seeds the imaginary step from the halved real step.
	first := 1 + 4*rootfind.InnerIterations
	assert.Equal(t, complexnum.New(s/2, s/2), calls[first])
	assert.Len(t, calls, maxEvaluations)
}

// TestSearch_FirstImprovementWins checks that only the first improving
// candidate is taken even when later ones would improve as well.
func TestSearch_FirstImprovementWins(t *testing.T) {
	target := complexnum.New(0, 5e20)
	var calls []complexnum.Complex
	shifted := rootfind.EvaluatorFunc(func(x complexnum.Complex) complexnum.Complex {
		calls = append(calls, x)
		return x.Sub(target)
	})
	rootfind.Search(shifted)

	s := rootfind.InitialStep
	// (s, s) improves on the origin, (-s, s) would too but is never tried.
	assert.Equal(t, complexnum.New(s, s), calls[1])
	assert.Equal(t, complexnum.New(2*s, s+s/2), calls[2])
}
