package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/polyarith/intpoly/poly"
)

// readPoly decodes one polynomial from the named file, with "-" meaning
// stdin.
func readPoly(path string) (poly.Poly, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return poly.Poly{}, err
		}
		defer f.Close()
	}

	p := poly.New()
	n, err := p.ReadFrom(f)
	if err != nil {
		return poly.Poly{}, err
	}
	log.Debugf("read %d bytes from %s", n, path)

	return p, nil
}
