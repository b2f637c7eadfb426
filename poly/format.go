package poly

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTo writes the human-readable form of p to w and implements
// io.WriterTo. Terms appear in descending degree, each as a leading space,
// an explicit + for positive coefficients, the coefficient value, then x for
// exponents above 0 and ^exp for exponents above 1. Zero coefficients are
// skipped; the zero polynomial writes exactly " 0".
func (p Poly) WriteTo(w io.Writer) (int64, error) {
	var n int64
	nonzero := false
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		c := p.Coeffs[i]
		if c == 0 {
			continue
		}
		nonzero = true

		var term strings.Builder
		term.WriteByte(' ')
		if c > 0 {
			term.WriteByte('+')
		}
		term.WriteString(strconv.FormatInt(c, 10))
		if i > 0 {
			term.WriteByte('x')
		}
		if i > 1 {
			term.WriteByte('^')
			term.WriteString(strconv.Itoa(i))
		}

		nn, err := io.WriteString(w, term.String())
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}

	if !nonzero {
		nn, err := io.WriteString(w, " 0")
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}

	return n, nil
}

// String returns the WriteTo rendering of p.
func (p Poly) String() string {
	var sb strings.Builder
	p.WriteTo(&sb)
	return sb.String()
}

// ReadFrom replaces p's terms with terms read from r and implements
// io.ReaderFrom. The input is a stream of whitespace-separated integers
// consumed in (coefficient, exponent) pairs and applied via SetCoeff, ending
// with the pair "0 0", which is consumed but not applied as a term. p's
// existing coefficients are zeroed first; its storage is kept, never shrunk.
//
// A stream that ends before the terminator yields an error wrapping
// io.ErrUnexpectedEOF; a token that is not an integer yields a parse error.
// In both cases p keeps the terms applied so far, so callers that need the
// old value on failure should read into a scratch Poly and Copy it over.
func (p *Poly) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}

	p.Clear()
	if len(p.Coeffs) == 0 {
		p.Coeffs = make([]int64, 1)
	}

	for {
		var coeff, exp int64
		if _, err := fmt.Fscan(cr, &coeff, &exp); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return cr.n, fmt.Errorf("poly: stream ended before the 0 0 terminator: %w", io.ErrUnexpectedEOF)
			}
			return cr.n, fmt.Errorf("poly: read term pair: %w", err)
		}
		if coeff == 0 && exp == 0 {
			return cr.n, nil
		}
		p.SetCoeff(coeff, int(exp))
	}
}

// countingReader tracks how many bytes ReadFrom consumed from the caller's
// reader. fmt.Fscan reads a plain io.Reader one byte at a time, so the count
// is exact up to the single delimiter byte that ends the terminator pair.
type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(b []byte) (int, error) {
	n, err := cr.r.Read(b)
	cr.n += int64(n)
	return n, err
}
