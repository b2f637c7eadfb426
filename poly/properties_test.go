package poly_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/polyarith/intpoly/poly"
)

// genPoly generates polynomials with small coefficients and varying storage
// lengths, including trailing zero slots.
func genPoly() gopter.Gen {
	return gen.SliceOf(gen.Int64Range(-50, 50)).Map(func(cs []int64) poly.Poly {
		p := poly.New()
		for i, c := range cs {
			p.SetCoeff(c, i)
		}
		return p
	})
}

func TestPolyProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("addition is commutative", prop.ForAll(
		func(p, q poly.Poly) bool {
			return p.Add(q).Equal(q.Add(p))
		},
		genPoly(), genPoly(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(p, q poly.Poly) bool {
			return p.Mul(q).Equal(q.Mul(p))
		},
		genPoly(), genPoly(),
	))

	properties.Property("zero is the additive identity", prop.ForAll(
		func(p poly.Poly) bool {
			return p.Add(poly.New()).Equal(p)
		},
		genPoly(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(p, q, r poly.Poly) bool {
			return p.Mul(q.Add(r)).Equal(p.Mul(q).Add(p.Mul(r)))
		},
		genPoly(), genPoly(), genPoly(),
	))

	properties.Property("subtraction inverts addition", prop.ForAll(
		func(p, q poly.Poly) bool {
			return p.Add(q).Sub(q).Equal(p)
		},
		genPoly(), genPoly(),
	))

	properties.Property("negation cancels", prop.ForAll(
		func(p poly.Poly) bool {
			return p.Add(p.Neg()).IsZero()
		},
		genPoly(),
	))

	properties.Property("set then get round-trips", prop.ForAll(
		func(c int64, e int) bool {
			p := poly.New()
			p.SetCoeff(c, e)
			if e < 0 {
				e = -e
			}
			return p.Coeff(e) == c
		},
		gen.Int64(), gen.IntRange(-64, 64),
	))

	properties.Property("set leaves other exponents untouched", prop.ForAll(
		func(p poly.Poly, c int64, e int) bool {
			q := p.CopyNew()
			q.SetCoeff(c, e)
			for i := 0; i < q.Len(); i++ {
				if i == e {
					continue
				}
				if q.Coeff(i) != p.Coeff(i) {
					return false
				}
			}
			return true
		},
		genPoly(), gen.Int64Range(-50, 50), gen.IntRange(0, 16),
	))

	properties.Property("get beyond storage is zero", prop.ForAll(
		func(p poly.Poly, e int) bool {
			return p.Coeff(p.Len()+e) == 0 && p.Coeff(-e-1) == 0
		},
		genPoly(), gen.IntRange(0, 1000),
	))

	properties.Property("equality tolerates trailing zero padding", prop.ForAll(
		func(p poly.Poly, pad int) bool {
			q := p.CopyNew()
			q.SetCoeff(0, q.Len()+pad)
			return p.Equal(q) && q.Equal(p)
		},
		genPoly(), gen.IntRange(0, 16),
	))

	properties.Property("self-copy is a no-op", prop.ForAll(
		func(p poly.Poly) bool {
			q := p.CopyNew()
			q.Copy(q)
			return q.Equal(p) && q.Len() == p.Len()
		},
		genPoly(),
	))

	properties.Property("evaluation is additive", prop.ForAll(
		func(p, q poly.Poly, x int64) bool {
			return p.Add(q).Eval(x) == p.Eval(x)+q.Eval(x)
		},
		genPoly(), genPoly(), gen.Int64Range(-5, 5),
	))

	properties.TestingRun(t)
}
