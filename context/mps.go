package context

import "github.com/pfcm/mpfx/round"

// MPSContext adds a minimum normalized exponent to MPContext: values
// below it are subnormalized rather than rounded as if the exponent range
// were unbounded, but there is still no overflow saturation.
type MPSContext struct {
	p    uint
	emin int32
	rm   round.Mode
	n    int32
}

// NewMPS constructs an MPSContext. Panics if p is outside [2, 53].
func NewMPS(p uint, emin int32, rm round.Mode) MPSContext {
	if p < 2 || p > 53 {
		panic("context: precision must be in [2, 53]")
	}
	return MPSContext{p: p, emin: emin, rm: rm, n: emin - int32(p)}
}

func (c MPSContext) Prec() uint      { return c.p }
func (c MPSContext) RoundPrec() uint { return c.p + 2 }

func (c MPSContext) Round(x float64, fl round.FlagSink) float64 {
	n := c.n
	return round.Round(fl, x, c.p, &n, c.rm)
}

func (c MPSContext) RoundFixed(m int64, exp int32, fl round.FlagSink) float64 {
	n := c.n
	return round.RoundFixed(fl, m, exp, c.p, &n, c.rm)
}
