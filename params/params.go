// Package params provides the bit-level primitives the rest of mpfx is
// built on: unpacking and packing host doubles, minimal-precision fixed
// decomposition, and the IEEE-754 format constants parametrized over an
// arbitrary (exponent bits, total bits) pair.
package params

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Double is the IEEE-754 binary64 format: 11 exponent bits, 64 total bits.
var Double = NewFormat(11, 64)

// Format holds the derived constants of an IEEE-754-shaped binary format
// with es exponent bits and nbits total bits, generalizing
// ieee754_consts<E, N> to a runtime value instead of a template
// instantiation (Go has no non-generic compile-time integer parameters for
// this many derived constants without code generation, so it is computed
// once at construction and reused by value thereafter).
type Format struct {
	ES, NBits uint

	Prec uint // P = nbits - es
	M    uint // mantissa field width, P - 1

	EMax, EMin     int32
	ExpMax, ExpMin int32
	Bias           int32

	SMask, EMask, MMask uint64
	Implicit1           uint64
}

// NewFormat derives the constants for an es-bit-exponent, nbits-wide
// IEEE-754-shaped format. Panics if the shape is not representable by this
// library (es < 2, nbits < es+2, nbits > 64) — a construction-time
// contract violation, not a runtime numeric condition.
func NewFormat(es, nbits uint) Format {
	if es < 2 {
		panic("params: exponent field must be at least 2 bits wide")
	}
	if nbits < es+2 {
		panic("params: format too narrow for its exponent field")
	}
	if nbits > 64 {
		panic("params: format exceeds 64 bits")
	}

	p := nbits - es
	m := p - 1
	emax := int32(Bitmask[uint32](es - 1))
	emin := 1 - emax
	bias := emax

	return Format{
		ES:        es,
		NBits:     nbits,
		Prec:      p,
		M:         m,
		EMax:      emax,
		EMin:      emin,
		ExpMax:    emax - int32(p) + 1,
		ExpMin:    emin - int32(p) + 1,
		Bias:      bias,
		SMask:     uint64(1) << (nbits - 1),
		EMask:     Bitmask[uint64](es) << m,
		MMask:     Bitmask[uint64](m),
		Implicit1: uint64(1) << m,
	}
}

// Bitmask returns a value of type T with its low k bits set. Safe at k == 0
// and k == bit width of T, both of which are undefined behavior for a raw
// shift. T follows PFCM-fxp's fix.Float[T constraints.Float] pattern of
// genericizing a numeric helper over golang.org/x/exp/constraints rather
// than over a bespoke local union.
func Bitmask[T constraints.Unsigned](k uint) T {
	if k == 0 {
		return 0
	}
	var zero T
	width := uint(bits.UintSize)
	switch any(zero).(type) {
	case uint8:
		width = 8
	case uint16:
		width = 16
	case uint32:
		width = 32
	case uint64:
		width = 64
	}
	if k >= width {
		return ^T(0)
	}
	return (T(1) << k) - 1
}

// Unpack decodes a finite host double into (sign, leading-bit exponent,
// significand). Normal values yield a full 53-bit significand with the
// implicit bit set; subnormal values are renormalized up to the same
// width, exactly as the finalizer's callers require. x must be finite.
func Unpack(x float64) (sign bool, e int32, sig uint64) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		panic("params: Unpack requires a finite input")
	}
	b := math.Float64bits(x)
	sign = b>>(Double.NBits-1) != 0
	ebits := (b & Double.EMask) >> Double.M
	mbits := b & Double.MMask

	if ebits == 0 {
		if mbits == 0 {
			return sign, Double.EMin, 0
		}
		lz := Double.Prec - uint(bits.Len64(mbits))
		e = Double.EMin - int32(lz)
		sig = mbits << lz
		return sign, e, sig
	}

	e = int32(ebits) - Double.Bias
	sig = Double.Implicit1 | mbits
	return sign, e, sig
}

// Pack is the inverse of Unpack: given a sign, the exponent of the leading
// bit of sig, and a sig occupying exactly Double.Prec bits (or zero), it
// reassembles the host double. The caller is responsible for having
// already rounded sig to Double.Prec bits; Pack performs no rounding of
// its own, only the subnormal right-shift.
func Pack(sign bool, e int32, sig uint64) float64 {
	var b uint64
	if sign {
		b = Double.SMask
	}

	if sig == 0 {
		return math.Float64frombits(b)
	}

	if e < Double.EMin {
		shift := Double.EMin - e
		mbits := sig >> shift
		return math.Float64frombits(b | mbits)
	}

	ebits := uint64(e+Double.Bias) << Double.M
	mbits := sig &^ Double.Implicit1
	return math.Float64frombits(b | ebits | mbits)
}

// ToFixed decomposes a finite x into m * 2^exp with m of minimal magnitude
// (trailing zero bits of |m| stripped into exp). Zero returns (0,
// Double.EMin).
func ToFixed(x float64) (m int64, exp int32) {
	sign, e, sig := Unpack(x)
	if sig == 0 {
		return 0, Double.EMin
	}

	tz := bits.TrailingZeros64(sig)
	sig >>= uint(tz)
	exp = e - int32(Double.Prec-1) + int32(tz)

	m = int64(sig)
	if sign {
		m = -m
	}
	return m, exp
}
