// Package poly implements a dense single-variable polynomial with integer
// coefficients. Coeffs[i] holds the coefficient of x^i, so a Poly with
// Coeffs[5] = 4 contains the term 4x^5. Storage grows on demand and never
// shrinks; trailing zero coefficients may persist and are ignored by Equal.
package poly

import "github.com/polyarith/intpoly/num"

// Poly is a polynomial with int64 coefficients, ordered by ascending degree.
// Create one through a constructor or ReadFrom; the zero value of this type
// has no coefficient storage.
type Poly struct {
	Coeffs []int64
}

// New creates the zero polynomial, with storage for a single coefficient.
func New() Poly {
	return Poly{Coeffs: make([]int64, 1)}
}

// NewScalar creates the constant polynomial c.
func NewScalar(c int64) Poly {
	return Poly{Coeffs: []int64{c}}
}

// NewTerm creates the single-term polynomial c*x^|exp|.
// A negative exponent is treated as its absolute value.
func NewTerm(c int64, exp int) Poly {
	d := num.Abs(exp)
	coeffs := make([]int64, d+1)
	coeffs[d] = c
	return Poly{Coeffs: coeffs}
}

// CopyNew returns an independent copy of p.
func (p Poly) CopyNew() Poly {
	coeffs := make([]int64, len(p.Coeffs))
	copy(coeffs, p.Coeffs)
	return Poly{Coeffs: coeffs}
}

// Copy replaces p's coefficients with an independent copy of src's.
// Copying a Poly onto itself is a no-op.
func (p *Poly) Copy(src Poly) {
	if len(p.Coeffs) == len(src.Coeffs) && len(p.Coeffs) > 0 && &p.Coeffs[0] == &src.Coeffs[0] {
		return
	}
	p.Coeffs = make([]int64, len(src.Coeffs))
	copy(p.Coeffs, src.Coeffs)
}

// Len returns the length of the coefficient slice, one more than the largest
// exponent p has storage for.
func (p Poly) Len() int {
	return len(p.Coeffs)
}

// Degree returns the largest exponent with a non-zero coefficient.
// The zero polynomial has degree 0.
func (p Poly) Degree() int {
	for i := len(p.Coeffs) - 1; i > 0; i-- {
		if p.Coeffs[i] != 0 {
			return i
		}
	}
	return 0
}

// IsZero reports whether every coefficient of p is zero.
func (p Poly) IsZero() bool {
	for _, c := range p.Coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

// Coeff returns the coefficient of x^exp. Exponents outside the stored
// range, including negative ones, have coefficient 0.
func (p Poly) Coeff(exp int) int64 {
	if exp < 0 || exp >= len(p.Coeffs) {
		return 0
	}
	return p.Coeffs[exp]
}

// SetCoeff sets the coefficient of x^|exp| to c. If |exp| lies beyond the
// current storage, the coefficient slice grows to |exp|+1 entries with the
// new slots zero-filled. Growth only ever extends; no coefficient is lost.
func (p *Poly) SetCoeff(c int64, exp int) {
	idx := num.Abs(exp)
	if idx >= len(p.Coeffs) {
		coeffs := make([]int64, idx+1)
		copy(coeffs, p.Coeffs)
		p.Coeffs = coeffs
	}
	p.Coeffs[idx] = c
}

// Clear sets every stored coefficient to zero without shrinking storage.
func (p *Poly) Clear() {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
}

// Equal reports whether p and q represent the same polynomial, regardless of
// storage length: the coefficients both hold must match, and any trailing
// coefficients held only by the longer one must be zero.
func (p Poly) Equal(q Poly) bool {
	small, large := p.Coeffs, q.Coeffs
	if len(small) > len(large) {
		small, large = large, small
	}
	for i := range small {
		if small[i] != large[i] {
			return false
		}
	}
	for _, c := range large[len(small):] {
		if c != 0 {
			return false
		}
	}
	return true
}
