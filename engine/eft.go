package engine

import "math"

// EFT computes each primitive via an error-free transformation: a pair
// (hi, lo) such that hi+lo is the exact mathematical result and hi is the
// round-to-nearest double result, then finalizes that pair to round-to-odd.
// This is a direct port of the reference library's engine_eft module,
// built on math.FMA for the fused multiply-add primitive everything else
// here is defined in terms of.
type EFT struct{}

func (EFT) Add(x, y float64) Intermediate {
	if !isFinitePair(x, y) {
		return fromFloat(x + y)
	}
	s, t := twoSum(x, y)
	return fromFloat(roundFinalizeEFT(s, t))
}

func (EFT) Sub(x, y float64) Intermediate {
	if !isFinitePair(x, y) {
		return fromFloat(x - y)
	}
	s, t := twoSum(x, -y)
	return fromFloat(roundFinalizeEFT(s, t))
}

func (EFT) Mul(x, y float64) Intermediate {
	if !isFinitePair(x, y) {
		return fromFloat(x * y)
	}
	p, e := twoProd(x, y)
	return fromFloat(roundFinalizeEFT(p, e))
}

func (EFT) Div(x, y float64) Intermediate {
	if !isFinitePair(x, y) || y == 0 {
		return fromFloat(x / y)
	}
	q, r := twoDiv(x, y)
	return fromFloat(roundFinalizeEFT(q, r))
}

func (EFT) Sqrt(x float64) Intermediate {
	if !math.IsInf(x, 0) && !math.IsNaN(x) && x > 0 {
		r1, r2 := twoSqrt(x)
		return fromFloat(roundFinalizeEFT(r1, r2))
	}
	return fromFloat(math.Sqrt(x))
}

func (EFT) Fma(x, y, z float64) Intermediate {
	if !math.IsInf(x, 0) && !math.IsNaN(x) && !math.IsInf(y, 0) && !math.IsNaN(y) && !math.IsInf(z, 0) && !math.IsNaN(z) {
		hi, lo := eftFMA(x, y, z)
		return fromFloat(roundFinalizeEFT(hi, lo))
	}
	return fromFloat(math.FMA(x, y, z))
}

func isFinitePair(x, y float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x) && !math.IsInf(y, 0) && !math.IsNaN(y)
}

// roundFinalizeEFT finalizes an EFT (hi, lo) pair, both finite, to
// round-to-odd. hi must already be the round-to-nearest result.
func roundFinalizeEFT(hi, lo float64) float64 {
	if lo == 0 {
		return hi
	}

	bHi := math.Float64bits(hi)
	bLo := math.Float64bits(lo)

	signHi := bHi >> 63
	signLo := bLo >> 63

	var result uint64
	if signHi == signLo {
		// hi is already the round-toward-zero result.
		result = bHi
	} else {
		// lo's sign disagrees with hi's: hi overshot past the true value,
		// so step one ULP toward zero regardless of hi's own sign.
		result = bHi - 1
	}
	result |= 1
	return math.Float64frombits(result)
}

func twoSum(x, y float64) (s, t float64) {
	a, b := x, y
	if math.Abs(x) < math.Abs(y) {
		a, b = y, x
	}
	s = a + b
	yy := s - a
	t = b - yy
	return s, t
}

func twoProd(x, y float64) (p, e float64) {
	p = x * y
	e = math.FMA(x, y, -p)
	return p, e
}

func twoDiv(x, y float64) (q, r float64) {
	q = x / y
	r = -math.FMA(q, y, -x) / y
	return q, r
}

func twoSqrt(x float64) (r1, r2 float64) {
	r1 = math.Sqrt(x)
	n := math.FMA(-r1, r1, x)
	d := 2 * r1
	r2 = n / d
	return r1, r2
}

func eftFMA(x, y, z float64) (r1, r2 float64) {
	r1 = math.FMA(x, y, z)
	u1, u2 := twoProd(x, y)
	a1, a2 := twoSum(z, u2)
	b1, b2 := twoSum(u1, a1)
	g := (b1 - r1) + b2
	r2 = g + a2
	return r1, r2
}
