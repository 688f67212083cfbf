// Package engine implements the L3 computation engines: the pluggable
// strategies that produce a round-to-odd-sufficient intermediate result
// for the rounding kernel to re-round. Every engine is a zero-size type
// implementing some subset of the Adder/Subtractor/Multiplier/Divider/
// Sqrter/FMAer interfaces, selected as a type parameter at the call site
// rather than through runtime virtual dispatch.
package engine

// Intermediate is the value an engine hands back to a Context for
// rounding. Most engines return a plain float64 in F; the FIXED engine
// instead returns an exact signed 64-bit significand/exponent pair, which
// a Context must round via its RoundFixed path.
type Intermediate struct {
	F     float64
	Fixed bool
	M     int64
	Exp   int32
}

func fromFloat(f float64) Intermediate { return Intermediate{F: f} }

func fromFixed(m int64, exp int32) Intermediate {
	return Intermediate{Fixed: true, M: m, Exp: exp}
}

// Adder, Subtractor, Multiplier, Divider, Sqrter and FMAer are the
// per-primitive capabilities an engine may implement. Engines that do not
// support a primitive simply do not implement its interface, turning an
// unsupported pairing (e.g. engine.Fixed used for Add) into a compile
// error at the mpfx facade's call site, exactly as the source's
// compile-time engine selector does.
type Adder interface {
	Add(x, y float64) Intermediate
}

type Subtractor interface {
	Sub(x, y float64) Intermediate
}

type Multiplier interface {
	Mul(x, y float64) Intermediate
}

type Divider interface {
	Div(x, y float64) Intermediate
}

type Sqrter interface {
	Sqrt(x float64) Intermediate
}

type FMAer interface {
	Fma(x, y, z float64) Intermediate
}
