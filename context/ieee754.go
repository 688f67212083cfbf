package context

import (
	"math"

	"github.com/pfcm/mpfx/params"
	"github.com/pfcm/mpfx/round"
)

// NewIEEE754 builds an MPBContext from IEEE-754 format parameters: es
// exponent bits and nbits total bits. It derives p, emin and maxval and
// delegates to NewMPB, exactly as the reference IEEE754Context does.
func NewIEEE754(es, nbits uint, rm round.Mode) MPBContext {
	f := params.NewFormat(es, nbits)
	maxval := math.Ldexp(2-math.Ldexp(1, 1-int(f.Prec)), int(f.EMax))
	return NewMPB(f.Prec, f.EMin, rm, maxval)
}
