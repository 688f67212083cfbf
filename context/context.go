// Package context implements the L4 rounding contexts: MPContext,
// MPSContext, MPBContext and the IEEE754Context convenience constructor,
// composed rather than inherited per the reimplementation's context
// hierarchy redesign.
package context

import "github.com/pfcm/mpfx/round"

// Context is the common capability every rounding context exposes to the
// operations facade. It is intentionally a plain interface (not a
// generic one) — contexts may be polymorphic at this outer boundary, but
// the round package's finalizer beneath them stays monomorphic over the
// flag sink through its own type parameter.
type Context interface {
	// Prec returns the target format's significand width in bits.
	Prec() uint
	// RoundPrec returns the minimum intermediate precision (Prec()+2) an
	// engine must deliver for round-to-odd re-rounding to be exact.
	RoundPrec() uint
	// Round rounds a host double under this context.
	Round(x float64, fl round.FlagSink) float64
	// RoundFixed rounds m*2^exp under this context.
	RoundFixed(m int64, exp int32, fl round.FlagSink) float64
}

// MPContext rounds to p bits of precision with no exponent bound: no
// subnormalization, no overflow saturation.
type MPContext struct {
	p  uint
	rm round.Mode
}

// NewMP constructs an MPContext. Panics if p is outside [2, 53].
func NewMP(p uint, rm round.Mode) MPContext {
	if p < 2 || p > 53 {
		panic("context: precision must be in [2, 53]")
	}
	return MPContext{p: p, rm: rm}
}

func (c MPContext) Prec() uint      { return c.p }
func (c MPContext) RoundPrec() uint { return c.p + 2 }

func (c MPContext) Round(x float64, fl round.FlagSink) float64 {
	return round.Round(fl, x, c.p, nil, c.rm)
}

func (c MPContext) RoundFixed(m int64, exp int32, fl round.FlagSink) float64 {
	return round.RoundFixed(fl, m, exp, c.p, nil, c.rm)
}
