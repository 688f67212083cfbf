package round

import (
	"math"
	"math/bits"

	"github.com/pfcm/mpfx/params"
)

// Round rounds a finite-or-not host double x to p bits of precision under
// rounding mode rm, optionally subnormalizing against first-unrepresentable
// position n. NaN and infinite x are returned unchanged and raise no
// flags. fl receives the flag writes; pass NoFlags{} to skip tracking.
func Round[F FlagSink](fl F, x float64, p uint, n *int32, rm Mode) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	sign, e, sig := params.Unpack(x)
	return finalize(fl, sign, e, sig, params.Double.Prec, p, n, rm)
}

// RoundFixed rounds m*2^exp to p bits of precision under rounding mode rm.
// m is normalized to occupy exactly 63 significant bits before the
// finalizer runs (63 bits hold the magnitude of any other int64, so the
// fixed-point engine's 64-bit product is decoded without losing its top
// bit). math.MinInt64 is special-cased since its magnitude does not fit a
// signed 63-bit field.
func RoundFixed[F FlagSink](fl F, m int64, exp int32, p uint, n *int32, rm Mode) float64 {
	const prec = 63

	var sign bool
	var sig uint64
	if m == math.MinInt64 {
		sign = true
		sig = uint64(1) << (prec - 1)
		exp++
	} else if m < 0 {
		sign = true
		sig = uint64(-m)
	} else {
		sign = false
		sig = uint64(m)
	}

	lz := prec - bits.Len64(sig)
	sig <<= uint(lz)
	exp -= int32(lz)

	e := exp + int32(prec-1)
	return finalize(fl, sign, e, sig, prec, p, n, rm)
}
