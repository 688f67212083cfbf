package engine

import "github.com/pfcm/mpfx/internal/softfloat"

// SoftFloat delegates to an external software-floating-point backend that
// natively supports round-to-odd. See internal/softfloat for why this
// port's backend is a single math/big.Float-based implementation shared
// with FFloat rather than two distinct external libraries.
type SoftFloat struct{}

func (SoftFloat) Add(x, y float64) Intermediate { return fromFloat(softfloat.Add(x, y)) }
func (SoftFloat) Sub(x, y float64) Intermediate { return fromFloat(softfloat.Sub(x, y)) }
func (SoftFloat) Mul(x, y float64) Intermediate { return fromFloat(softfloat.Mul(x, y)) }
func (SoftFloat) Div(x, y float64) Intermediate { return fromFloat(softfloat.Div(x, y)) }
func (SoftFloat) Sqrt(x float64) Intermediate   { return fromFloat(softfloat.Sqrt(x)) }
func (SoftFloat) Fma(x, y, z float64) Intermediate { return fromFloat(softfloat.Fma(x, y, z)) }

// FFloat delegates to a second software-floating-point backend that does
// not natively support round-to-odd: it rounds toward zero and then jams
// the result's LSB to one whenever that rounding was inexact. Sharing
// internal/softfloat's implementation with SoftFloat means both paths are
// already observationally round-to-odd; FFloat exists as a distinct type
// to preserve the library's documented engine-selector surface and so a
// caller's choice of engine remains meaningful even though, on this port,
// the two happen to compute identically.
type FFloat struct{}

func (FFloat) Add(x, y float64) Intermediate { return fromFloat(softfloat.Add(x, y)) }
func (FFloat) Sub(x, y float64) Intermediate { return fromFloat(softfloat.Sub(x, y)) }
func (FFloat) Mul(x, y float64) Intermediate { return fromFloat(softfloat.Mul(x, y)) }
func (FFloat) Div(x, y float64) Intermediate { return fromFloat(softfloat.Div(x, y)) }
func (FFloat) Sqrt(x float64) Intermediate   { return fromFloat(softfloat.Sqrt(x)) }
func (FFloat) Fma(x, y, z float64) Intermediate { return fromFloat(softfloat.Fma(x, y, z)) }
