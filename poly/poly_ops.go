package poly

// Add returns p + q. Neither operand is modified.
func (p Poly) Add(q Poly) Poly {
	if len(p.Coeffs) < len(q.Coeffs) {
		p, q = q, p
	}
	r := p.CopyNew()
	for i := range q.Coeffs {
		r.Coeffs[i] += q.Coeffs[i]
	}
	return r
}

// AddAssign assigns p += q, growing p first when q is longer.
func (p *Poly) AddAssign(q Poly) {
	if len(p.Coeffs) < len(q.Coeffs) {
		p.SetCoeff(0, len(q.Coeffs)-1)
	}
	for i := range q.Coeffs {
		p.Coeffs[i] += q.Coeffs[i]
	}
}

// Sub returns p - q. Neither operand is modified.
func (p Poly) Sub(q Poly) Poly {
	r := p.CopyNew()
	r.SubAssign(q)
	return r
}

// SubAssign assigns p -= q, growing p first when q is longer.
func (p *Poly) SubAssign(q Poly) {
	if len(p.Coeffs) < len(q.Coeffs) {
		p.SetCoeff(0, len(q.Coeffs)-1)
	}
	for i := range q.Coeffs {
		p.Coeffs[i] -= q.Coeffs[i]
	}
}

// Mul returns p * q by schoolbook convolution. The result has storage for
// every possible product term, p.Len()+q.Len()-1 slots, whether or not the
// leading ones end up non-zero.
func (p Poly) Mul(q Poly) Poly {
	r := Poly{Coeffs: make([]int64, len(p.Coeffs)+len(q.Coeffs)-1)}
	for i := range p.Coeffs {
		for j := range q.Coeffs {
			r.Coeffs[i+j] += p.Coeffs[i] * q.Coeffs[j]
		}
	}
	return r
}

// MulAssign assigns p *= q. The product accumulates into fresh zero-filled
// storage that replaces p's afterwards, so p's original coefficients stay
// readable for the whole convolution even when q aliases p.
func (p *Poly) MulAssign(q Poly) {
	*p = p.Mul(q)
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	r := p.CopyNew()
	r.NegAssign()
	return r
}

// NegAssign negates every coefficient of p in place.
func (p *Poly) NegAssign() {
	for i := range p.Coeffs {
		p.Coeffs[i] = -p.Coeffs[i]
	}
}

// ScalarMul returns p with every coefficient multiplied by c.
func (p Poly) ScalarMul(c int64) Poly {
	r := p.CopyNew()
	r.ScalarMulAssign(c)
	return r
}

// ScalarMulAssign multiplies every coefficient of p by c in place.
func (p *Poly) ScalarMulAssign(c int64) {
	for i := range p.Coeffs {
		p.Coeffs[i] *= c
	}
}
