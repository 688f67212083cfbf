package round

import "github.com/pfcm/mpfx/params"

// decideIncrement answers the single rounding-direction question shared by
// finalize's real split and its one-bit-finer tininess probe: given that
// the p_lost low bits of sig have already been isolated, does rm increment
// the kept significand by one ULP? overshift forces RNE/RNA to never
// increment, matching the finalizer's treatment of a discarded region
// wider than the whole result.
func decideIncrement(sig uint64, pLost uint, s bool, rm Mode, overshift bool) bool {
	sigLost := sig & params.Bitmask[uint64](pLost)
	if sigLost == 0 {
		return false
	}
	sigKept := sig &^ sigLost
	halfway := uint64(1) << (pLost - 1)
	bitPLost := (sigKept >> pLost) & 1

	switch rm {
	case RNE:
		return !overshift && (sigLost > halfway || (sigLost == halfway && bitPLost == 1))
	case RNA:
		return !overshift && sigLost >= halfway
	case RTP:
		return !s
	case RTN:
		return s
	case RTZ:
		return false
	case RAZ:
		return true
	case RTO:
		return bitPLost == 0
	case RTE:
		return bitPLost == 1
	default:
		panic("round: invalid rounding mode")
	}
}

// predictTinyAfter implements the finalizer's pre-increment tininess
// prediction: once the leading bit sits strictly below emin-1, the result
// is unconditionally tiny after rounding. At exactly emin-1, a
// significand at or below the all-ones-in-the-top-p-bits cutoff is still
// unconditionally tiny. Otherwise the only way the rounded result reaches
// 2^emin is if the increment decision taken with a full p-bit (one-bit
// finer) split would fire, so that decision — not the shifted one actually
// used for the real split — is what the flag reports. This has to run
// before the real split's increment: once that increment has happened,
// a promotion to normal is no longer distinguishable from a result that
// was never tiny to begin with.
func predictTinyAfter(sig uint64, e, emin int32, width, p uint, s bool, rm Mode) bool {
	if e < emin-1 {
		return true
	}
	cutoff := params.Bitmask[uint64](p) << (width - p)
	if sig <= cutoff {
		return true
	}
	return !decideIncrement(sig, width-p, s, rm, false)
}

// finalize is the kernel's single finalizer, shared by both public entry
// points. sig is either zero or occupies exactly width bits with its
// leading bit at exponent e, i.e. the represented value is
// sign(s)*sig*2^(e-(width-1)). n, when non-nil, is the first
// unrepresentable digit position; its absence means no subnormalization
// and no tininess tracking for a nonzero sig (MPContext's unbounded
// exponent range). A zero sig raises both tininess flags either way.
func finalize[F FlagSink](fl F, s bool, e int32, sig uint64, width uint, p uint, n *int32, rm Mode) float64 {
	if sig == 0 {
		fl.SetTinyBeforeRounding()
		fl.SetTinyAfterRounding()
		return params.Pack(s, params.Double.EMin, 0)
	}

	tinyBefore := false
	tinyAfterPred := false
	overshift := false
	pKept := p

	var emin int32
	if n != nil {
		emin = *n + int32(p)
		if e >= emin {
			pKept = p
		} else {
			tinyBefore = true
			fl.SetTinyBeforeRounding()
			tinyAfterPred = predictTinyAfter(sig, e, emin, width, p, s, rm)

			shift := emin - e
			if uint(shift) > p {
				overshift = true
				pKept = 0
				e = *n
			} else {
				pKept = p - uint(shift)
			}
		}
	}

	pLost := width - pKept
	sigLost := sig & params.Bitmask[uint64](pLost)
	sigKept := sig &^ sigLost
	exact := sigLost == 0

	if !exact && pLost > 0 && decideIncrement(sig, pLost, s, rm, overshift) {
		sigKept += uint64(1) << pLost
	}

	if sigKept >= uint64(1)<<width {
		sigKept >>= 1
		e++
		if !tinyBefore {
			fl.SetCarry()
		}
	}

	tinyAfter := false
	if n != nil {
		if exact {
			tinyAfter = tinyBefore
		} else {
			tinyAfter = tinyAfterPred
		}
	}
	if tinyAfter {
		fl.SetTinyAfterRounding()
	}
	if !exact {
		fl.SetInexact()
		if tinyBefore {
			fl.SetUnderflowBeforeRounding()
		}
		if tinyAfter {
			fl.SetUnderflowAfterRounding()
		}
	}

	sigP := sigKept
	switch {
	case width > params.Double.Prec:
		sigP >>= width - params.Double.Prec
	case width < params.Double.Prec:
		sigP <<= params.Double.Prec - width
	}

	return params.Pack(s, e, sigP)
}
