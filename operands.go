package msgfmt

import (
	"strconv"
	"strings"
)

// PluralOperands is the CLDR operand set a plural rule function matches
// against: absolute value (n), integer digits (i), visible fraction digit
// count with (v) and without (w) trailing zeros, and the fraction digits
// themselves with (f) and without (t) trailing zeros.
type PluralOperands struct {
	N float64
	I int64
	V int
	W int
	F int64
	T int64
}

// operandsFromValue derives plural operands from an arbitrary argument
// value, preferring its original decimal text (so "1.50" keeps two visible
// fraction digits) and falling back to a plain numeric coercion when no
// stable textual form exists.
func operandsFromValue(v any) (PluralOperands, bool) {
	if s, ok := coerceDecimalString(v); ok {
		s = strings.TrimPrefix(s, "-")
		return operandsFromDecimalString(s), true
	}
	f, ok := coerceNumber(v)
	if !ok {
		return PluralOperands{}, false
	}
	return operandsFromFloat(f), true
}

// operandsFromFloat derives operands from a float64 using its shortest
// round-tripping decimal representation. Floats carry no record of
// trailing zeros in the original source text, so V and W always agree here;
// operandsFromDecimalString is used instead when the original textual form
// is available and its trailing-zero count matters (e.g. "1.50" vs "1.5").
func operandsFromFloat(f float64) PluralOperands {
	if f < 0 {
		f = -f
	}
	return operandsFromDecimalString(strconv.FormatFloat(f, 'f', -1, 64))
}

// operandsFromDecimalString derives operands from a plain decimal literal
// (no sign, no exponent) such as "1.50" or "42".
func operandsFromDecimalString(s string) PluralOperands {
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	ops := PluralOperands{V: len(fracPart)}
	ops.I, _ = strconv.ParseInt(intPart, 10, 64)
	if ops.V > 0 {
		ops.F, _ = strconv.ParseInt(fracPart, 10, 64)
	}

	trimmed := strings.TrimRight(fracPart, "0")
	ops.W = len(trimmed)
	if ops.W > 0 {
		ops.T, _ = strconv.ParseInt(trimmed, 10, 64)
	}

	n := intPart
	if fracPart != "" {
		n += "." + fracPart
	}
	ops.N, _ = strconv.ParseFloat(n, 64)

	return ops
}
