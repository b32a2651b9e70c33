package polynomial_test

import (
	"testing"

	"github.com/katalvlaran/polyroots/complexnum"
	"github.com/katalvlaran/polyroots/polynomial"
)

// benchPoly builds a dense polynomial of the given degree with non-trivial
// complex coefficients.
func benchPoly(degree int) *polynomial.Polynomial {
	p := &polynomial.Polynomial{}
	for k := 0; k <= degree; k++ {
		_ = p.AddTerm(k, complexnum.New(float64(k+1), float64(degree-k)/2))
	}
	return p
}

// BenchmarkValueAt_Degree10 measures a single evaluation, the locator's hot path.
func BenchmarkValueAt_Degree10(b *testing.B) {
	p := benchPoly(10)
	x := complexnum.New(0.3, -0.7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.ValueAt(x)
	}
}

// BenchmarkDeflate_Degree50 measures synthetic division on a fresh clone each time.
func BenchmarkDeflate_Degree50(b *testing.B) {
	p := benchPoly(50)
	r := complexnum.New(0.5, 0.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := p.Clone()
		q.Deflate(r)
	}
}
