// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package floatconv converts decimal numeral text to correctly rounded
binary floating-point values.

The conversion is bit-exact: for any literal, the result is the nearest
value representable in the target format under IEEE 754
round-to-nearest, ties-to-even, including exact half-way ties,
subnormals and the maximum-finite boundary. Naive conversions built on
repeated multiplication or division by ten in native floating-point
arithmetic cannot achieve this at the boundary of precision; this
package instead normalizes the literal into an exact multi-precision
decimal and extracts the mantissa bits by exact power-of-two scaling.

The recognized literal grammar is

	literal  = [ "+" | "-" ] ( special | numeral ) .
	special  = "inf" | "infinity" | "nan" .    // ASCII case-insensitive
	numeral  = mantissa [ exponent ] .
	mantissa = digits [ "." [ digits ] ] | "." digits .
	exponent = ( "e" | "E" ) [ "+" | "-" ] digits .
	digits   = digit { [ "_" ] digit } .

An underscore is a digit group separator and is legal only between two
decimal digits. The entire literal must be consumed; trailing
characters are a syntax error.

The target format is described by a FloatInfo, which carries the
mantissa width, exponent width and exponent bias of one IEEE 754 binary
interchange format. Float64, Float32 and Float16 are predefined.
Parse returns the raw bit pattern in the requested format:

	bits, err := floatconv.Parse("1.5e300", floatconv.Float64)
	f := math.Float64frombits(bits)

ParseFloat is the convenience wrapper for the two machine formats and
mirrors the strconv contract: ParseFloat(s, 64) yields a float64,
ParseFloat(s, 32) yields a float64 that converts to float32 without
change of value.

Failures are reported as ordinary error values of two kinds, never as
panics: ErrSyntax when the literal does not match the grammar, and
ErrRange when the rounded magnitude exceeds the format's largest
finite value. Underflow is not an error; a magnitude below half the
smallest subnormal yields a signed zero, per IEEE 754. Both kinds
unwrap with errors.Is and belong to the package error class Error.

All conversions are pure computations over caller-provided text. The
package holds no state across calls; concurrent use requires no
synchronization.
*/
package floatconv
