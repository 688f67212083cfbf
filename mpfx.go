// Package mpfx implements correctly rounded, emulated floating-point
// arithmetic in arbitrary IEEE-754-like target formats narrower than host
// double precision. It is the operations facade sitting atop the
// round, context and engine packages: each primitive selects an engine at
// compile time via a type parameter, rounds the engine's intermediate
// result through a Context, and classifies the rounded result for
// invalid/div-by-zero per IEEE-754 semantics.
package mpfx

import (
	"math"

	"github.com/pfcm/mpfx/context"
	"github.com/pfcm/mpfx/engine"
	"github.com/pfcm/mpfx/round"
)

// Round rounds x under ctx.
func Round(x float64, ctx context.Context, fl round.FlagSink) float64 {
	return ctx.Round(x, fl)
}

// Neg negates x's sign bit and rounds the result under ctx.
func Neg(x float64, ctx context.Context, fl round.FlagSink) float64 {
	b := math.Float64bits(x) ^ (uint64(1) << 63)
	return ctx.Round(math.Float64frombits(b), fl)
}

// Abs clears x's sign bit and rounds the result under ctx.
func Abs(x float64, ctx context.Context, fl round.FlagSink) float64 {
	b := math.Float64bits(x) &^ (uint64(1) << 63)
	return ctx.Round(math.Float64frombits(b), fl)
}

func roundIntermediate(inter engine.Intermediate, ctx context.Context, fl round.FlagSink) float64 {
	if inter.Fixed {
		return ctx.RoundFixed(inter.M, inter.Exp, fl)
	}
	return ctx.Round(inter.F, fl)
}

// Add computes x+y using engine E, rounded under ctx.
func Add[E engine.Adder](x, y float64, ctx context.Context, fl round.FlagSink) float64 {
	var e E
	r := roundIntermediate(e.Add(x, y), ctx, fl)
	if math.IsNaN(r) && math.IsInf(x, 0) && math.IsInf(y, 0) {
		fl.SetInvalid()
	}
	return r
}

// Sub computes x-y using engine E, rounded under ctx.
func Sub[E engine.Subtractor](x, y float64, ctx context.Context, fl round.FlagSink) float64 {
	var e E
	r := roundIntermediate(e.Sub(x, y), ctx, fl)
	if math.IsNaN(r) && math.IsInf(x, 0) && math.IsInf(y, 0) {
		fl.SetInvalid()
	}
	return r
}

// Mul computes x*y using engine E, rounded under ctx.
func Mul[E engine.Multiplier](x, y float64, ctx context.Context, fl round.FlagSink) float64 {
	var e E
	r := roundIntermediate(e.Mul(x, y), ctx, fl)
	if math.IsNaN(r) && ((math.IsInf(x, 0) && y == 0) || (math.IsInf(y, 0) && x == 0)) {
		fl.SetInvalid()
	}
	return r
}

// Div computes x/y using engine E, rounded under ctx.
func Div[E engine.Divider](x, y float64, ctx context.Context, fl round.FlagSink) float64 {
	var e E
	r := roundIntermediate(e.Div(x, y), ctx, fl)
	if math.IsNaN(r) && ((x == 0 && y == 0) || (math.IsInf(x, 0) && math.IsInf(y, 0))) {
		fl.SetInvalid()
	}
	if !math.IsNaN(x) && !math.IsInf(x, 0) && x != 0 && y == 0 {
		fl.SetDivByZero()
	}
	return r
}

// Sqrt computes sqrt(x) using engine E, rounded under ctx.
func Sqrt[E engine.Sqrter](x float64, ctx context.Context, fl round.FlagSink) float64 {
	var e E
	r := roundIntermediate(e.Sqrt(x), ctx, fl)
	if math.IsNaN(r) && !math.IsNaN(x) && x < 0 {
		fl.SetInvalid()
	}
	return r
}

// Fma computes x*y+z using engine E, rounded under ctx.
func Fma[E engine.FMAer](x, y, z float64, ctx context.Context, fl round.FlagSink) float64 {
	var e E
	r := roundIntermediate(e.Fma(x, y, z), ctx, fl)
	if math.IsNaN(r) {
		zeroTimesInf := (math.IsInf(x, 0) && y == 0) || (math.IsInf(y, 0) && x == 0)
		if zeroTimesInf {
			fl.SetInvalid()
		} else if (math.IsInf(x, 0) || math.IsInf(y, 0)) && math.IsInf(z, 0) {
			fl.SetInvalid()
		}
	}
	return r
}
