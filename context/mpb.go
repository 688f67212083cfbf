package context

import (
	"math"

	"github.com/pfcm/mpfx/params"
	"github.com/pfcm/mpfx/round"
)

// MPBContext adds a finite maxval to MPSContext: a rounded result whose
// magnitude exceeds maxval saturates to ±maxval or escapes to ±infinity,
// chosen by the rounding mode's direction and whether maxval's own p-th
// mantissa bit is set.
type MPBContext struct {
	inner       MPSContext
	rm          round.Mode
	maxval      float64
	maxvalIsOdd bool
	emax        int32
}

// NewMPB constructs an MPBContext. Panics if p is outside [2, 53], if
// maxval is negative, or if maxval is not exactly representable at
// (p, emin, rm) under this context's own rounding — the construction-time
// contract check the reference context constructor performs.
func NewMPB(p uint, emin int32, rm round.Mode, maxval float64) MPBContext {
	if maxval < 0 || math.Signbit(maxval) {
		panic("context: maxval must be non-negative")
	}
	inner := NewMPS(p, emin, rm)
	if rounded := inner.Round(maxval, round.NoFlags{}); rounded != maxval {
		panic("context: maxval is not exactly representable under (p, emin, rm)")
	}

	bits := math.Float64bits(maxval)
	pthBitPos := int(params.Double.M) - int(p) + 1
	maxvalIsOdd := false
	if pthBitPos >= 0 {
		maxvalIsOdd = (bits>>uint(pthBitPos))&1 != 0
	}

	_, emax, _ := params.Unpack(maxval)

	return MPBContext{
		inner:       inner,
		rm:          rm,
		maxval:      maxval,
		maxvalIsOdd: maxvalIsOdd,
		emax:        emax,
	}
}

func (c MPBContext) Prec() uint      { return c.inner.Prec() }
func (c MPBContext) RoundPrec() uint { return c.inner.RoundPrec() }

// EMax returns floor(log2(maxval)), the context's maximum normalized
// exponent.
func (c MPBContext) EMax() int32 { return c.emax }

// MaxVal returns the context's finite saturation bound.
func (c MPBContext) MaxVal() float64 { return c.maxval }

func (c MPBContext) Round(x float64, fl round.FlagSink) float64 {
	return c.overflow(c.inner.Round(x, fl), fl)
}

func (c MPBContext) RoundFixed(m int64, exp int32, fl round.FlagSink) float64 {
	return c.overflow(c.inner.RoundFixed(m, exp, fl), fl)
}

func (c MPBContext) overflow(r float64, fl round.FlagSink) float64 {
	if math.IsInf(r, 0) || math.IsNaN(r) || math.Abs(r) <= c.maxval {
		return r
	}

	sign := math.Signbit(r)
	toInfinity := false
	switch round.GetDirection(c.rm, sign) {
	case round.ToZero:
		toInfinity = false
	case round.AwayZero:
		toInfinity = true
	case round.ToEven:
		toInfinity = c.maxvalIsOdd
	case round.ToOdd:
		toInfinity = !c.maxvalIsOdd
	}

	fl.SetOverflow()
	fl.SetInexact()

	if toInfinity {
		if sign {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if sign {
		return -c.maxval
	}
	return c.maxval
}
