package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagsIndependence(t *testing.T) {
	var f Flags
	f.SetInvalid()
	f.SetCarry()

	require.True(t, f.Invalid())
	require.True(t, f.Carry())
	require.False(t, f.DivByZero())
	require.False(t, f.Overflow())
	require.False(t, f.TinyBeforeRounding())
	require.False(t, f.TinyAfterRounding())
	require.False(t, f.UnderflowBeforeRounding())
	require.False(t, f.UnderflowAfterRounding())
	require.False(t, f.Inexact())
}

func TestFlagsReset(t *testing.T) {
	var f Flags
	f.SetInvalid()
	f.SetInexact()
	f.SetOverflow()
	require.NotZero(t, f.Bits())

	f.Reset()
	require.Zero(t, f.Bits())
	require.False(t, f.Invalid())
}

func TestFlagsAllBitsDistinct(t *testing.T) {
	setters := []func(*Flags){
		(*Flags).SetInvalid,
		(*Flags).SetDivByZero,
		(*Flags).SetOverflow,
		(*Flags).SetTinyBeforeRounding,
		(*Flags).SetTinyAfterRounding,
		(*Flags).SetUnderflowBeforeRounding,
		(*Flags).SetUnderflowAfterRounding,
		(*Flags).SetInexact,
		(*Flags).SetCarry,
	}

	seen := uint32(0)
	for _, set := range setters {
		var f Flags
		set(&f)
		require.NotZero(t, f.Bits())
		require.Zero(t, seen&f.Bits(), "flag bit collides with a previous one")
		seen |= f.Bits()
	}
}
