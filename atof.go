// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

// Decimal to binary floating point conversion.
// Algorithm:
//   1) Store input in multiprecision decimal.
//   2) Multiply/divide decimal by powers of two until in range [0.5, 1)
//   3) Multiply by 2^precision and round to get mantissa.
// An exact fast path in native arithmetic handles the common small
// literals; it never changes results, only skips the scaling.

import "math"

// optimize can be cleared to force every conversion through the exact
// scaling path; conversion results must not change.
var optimize = true

// maxDecExp bounds the explicit exponent accumulator. Once the
// accumulated exponent passes this bound, further exponent digits
// cannot move the value in or out of any supported format's range
// (binary64 is decided within ±330), so they are consumed without
// arithmetic. This keeps the cost of absurd exponents, tens of
// thousands of digits long, proportional to their length.
const maxDecExp = 10000

// readFloat reads a decimal mantissa and exponent from s, the
// mantissa accumulated in native arithmetic for the fast path.
// Digits beyond what a uint64 holds are recorded via the sticky trunc
// flag. It reports ok == false if s does not match the numeral
// grammar in its entirety.
func readFloat(s string) (mantissa uint64, exp int, neg, trunc, ok bool) {
	const maxMantDigits = 19 // 10^19 fits in uint64
	i := 0

	// optional sign
	if i >= len(s) {
		return
	}
	switch {
	case s[i] == '+':
		i++
	case s[i] == '-':
		neg = true
		i++
	}

	// digits
	sawdot := false
	sawdigits := false
	nd := 0
	ndMant := 0
	dp := 0
	for ; i < len(s); i++ {
		switch c := s[i]; true {
		case c == '_':
			// separator legality is checked by sepOK beforehand
			continue

		case c == '.':
			if sawdot {
				return
			}
			sawdot = true
			dp = nd
			continue

		case '0' <= c && c <= '9':
			sawdigits = true
			if c == '0' && nd == 0 { // ignore leading zeros
				dp--
				continue
			}
			nd++
			if ndMant < maxMantDigits {
				mantissa *= 10
				mantissa += uint64(c - '0')
				ndMant++
			} else if c != '0' {
				trunc = true
			}
			continue
		}
		break
	}
	if !sawdigits {
		return
	}
	if !sawdot {
		dp = nd
	}

	// optional exponent moves decimal point. Beyond maxDecExp the
	// point has moved so far that the exact amount no longer matters.
	if i < len(s) && lower(s[i]) == 'e' {
		i++
		if i >= len(s) {
			return
		}
		esign := 1
		if s[i] == '+' {
			i++
		} else if s[i] == '-' {
			i++
			esign = -1
		}
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return
		}
		e := 0
		for ; i < len(s) && (isDigit(s[i]) || s[i] == '_'); i++ {
			if s[i] == '_' {
				continue
			}
			if e < maxDecExp {
				e = e*10 + int(s[i]) - '0'
			}
		}
		dp += e * esign
	}

	if i != len(s) {
		return
	}

	if mantissa != 0 {
		exp = dp - ndMant
	}
	ok = true
	return
}

// set parses s into the exact decimal b. It accepts the same grammar
// as readFloat but retains up to digitCap significant digits; the
// rest fold into the sticky flag.
func (b *decimal) set(s string) (ok bool) {
	i := 0
	b.nd = 0
	b.dp = 0
	b.neg = false
	b.trunc = false

	// optional sign
	if i >= len(s) {
		return
	}
	switch {
	case s[i] == '+':
		i++
	case s[i] == '-':
		b.neg = true
		i++
	}

	// digits. nd counts every significant digit seen so that the
	// decimal point position stays exact even when the retained
	// digits are capped at digitCap.
	sawdot := false
	sawdigits := false
	nd := 0
	for ; i < len(s); i++ {
		switch {
		case s[i] == '_':
			continue
		case s[i] == '.':
			if sawdot {
				return
			}
			sawdot = true
			b.dp = nd
			continue
		case '0' <= s[i] && s[i] <= '9':
			sawdigits = true
			if s[i] == '0' && nd == 0 { // ignore leading zeros
				b.dp--
				continue
			}
			nd++
			if b.nd < len(b.d) {
				b.d[b.nd] = s[i]
				b.nd++
			} else if s[i] != '0' {
				b.trunc = true
			}
			continue
		}
		break
	}
	if !sawdigits {
		return
	}
	if !sawdot {
		b.dp = nd
	}

	// optional exponent moves decimal point, saturating at maxDecExp
	if i < len(s) && lower(s[i]) == 'e' {
		i++
		if i >= len(s) {
			return
		}
		esign := 1
		if s[i] == '+' {
			i++
		} else if s[i] == '-' {
			i++
			esign = -1
		}
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return
		}
		e := 0
		for ; i < len(s) && (isDigit(s[i]) || s[i] == '_'); i++ {
			if s[i] == '_' {
				continue
			}
			if e < maxDecExp {
				e = e*10 + int(s[i]) - '0'
			}
		}
		b.dp += e * esign
	}

	if i != len(s) {
		return
	}

	ok = true
	return
}

// decimal power of ten to binary power of two.
var powtab = []int{1, 3, 6, 9, 13, 16, 19, 23, 26}

// floatBits converts the exact decimal d to the nearest value
// representable in flt's format and returns its bit pattern.
// overflow reports that the rounded magnitude exceeds the largest
// finite value; underflow silently produces a signed zero.
func (d *decimal) floatBits(flt *FloatInfo) (b uint64, overflow bool) {
	if debugFloatconv {
		d.validate()
	}
	var exp int
	var mant uint64

	// Zero is always a special case.
	if d.nd == 0 {
		mant = 0
		exp = flt.bias
		goto out
	}

	// Obvious overflow/underflow. These bounds hold for every format
	// up to binary64.
	if d.dp > 310 {
		goto overflow
	}
	if d.dp < -330 {
		// zero
		mant = 0
		exp = flt.bias
		goto out
	}

	// Scale by powers of two until in range [0.5, 1.0)
	exp = 0
	for d.dp > 0 {
		var n int
		if d.dp >= len(powtab) {
			n = 27
		} else {
			n = powtab[d.dp]
		}
		d.shift(-n)
		exp += n
	}
	for d.dp < 0 || d.dp == 0 && d.d[0] < '5' {
		var n int
		if -d.dp >= len(powtab) {
			n = 27
		} else {
			n = powtab[-d.dp]
		}
		d.shift(n)
		exp -= n
	}

	// Our range is [0.5,1) but floating point range is [1,2).
	exp--

	// Minimum representable exponent is flt.bias+1.
	// If the exponent is smaller, move it up and
	// adjust d accordingly.
	if exp < flt.bias+1 {
		n := flt.bias + 1 - exp
		d.shift(-n)
		exp += n
	}

	if exp-flt.bias >= 1<<flt.expbits-1 {
		goto overflow
	}

	// Extract 1+mantbits bits.
	d.shift(int(1 + flt.mantbits))
	mant = d.roundedInteger()

	// Rounding might have added a bit; shift down.
	if mant == 2<<flt.mantbits {
		mant >>= 1
		exp++
		if exp-flt.bias >= 1<<flt.expbits-1 {
			goto overflow
		}
	}

	// Denormalized?
	if mant&(1<<flt.mantbits) == 0 {
		exp = flt.bias
	}
	goto out

overflow:
	// ±Inf
	mant = 0
	exp = 1<<flt.expbits - 1 + flt.bias
	overflow = true

out:
	return flt.assemble(mant, exp, d.neg), overflow
}

// Exact powers of 10.
var float64pow10 = []float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}
var float32pow10 = []float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// atof64exact computes mantissa*10^exp as a float64 entirely in
// native floating-point arithmetic when every intermediate value is
// exactly representable, avoiding the scaling machinery. Three common
// cases: value is an exact integer, an exact integer times an exact
// power of ten, or an exact integer divided by an exact power of ten.
func atof64exact(mantissa uint64, exp int, neg bool) (f float64, ok bool) {
	if mantissa>>Float64.mantbits != 0 {
		return
	}
	f = float64(mantissa)
	if neg {
		f = -f
	}
	switch {
	case exp == 0:
		// an integer.
		return f, true
	// Exact integers are <= 10^15.
	// Exact powers of ten are <= 10^22.
	case exp > 0 && exp <= 15+22: // int * 10^k
		// If exponent is big but number of digits is not,
		// can move a few zeros into the integer part.
		if exp > 22 {
			f *= float64pow10[exp-22]
			exp = 22
		}
		if f > 1e15 || f < -1e15 {
			// the exponent was really too large.
			return
		}
		return f * float64pow10[exp], true
	case exp < 0 && exp >= -22: // int / 10^k
		return f / float64pow10[-exp], true
	}
	return
}

// atof32exact is the float32 analogue of atof64exact.
func atof32exact(mantissa uint64, exp int, neg bool) (f float32, ok bool) {
	if mantissa>>Float32.mantbits != 0 {
		return
	}
	f = float32(mantissa)
	if neg {
		f = -f
	}
	switch {
	case exp == 0:
		return f, true
	// Exact integers are <= 10^7.
	// Exact powers of ten are <= 10^10.
	case exp > 0 && exp <= 7+10: // int * 10^k
		if exp > 10 {
			f *= float32pow10[exp-10]
			exp = 10
		}
		if f > 1e7 || f < -1e7 {
			return
		}
		return f * float32pow10[exp], true
	case exp < 0 && exp >= -10: // int / 10^k
		return f / float32pow10[-exp], true
	}
	return
}

// Parse converts the literal s to the nearest value representable in
// flt's format and returns its IEEE 754 bit pattern.
//
// Parse recognizes "inf", "infinity" and "nan" with an optional sign,
// ASCII case-insensitive. Otherwise s must match the numeral grammar
// in the package documentation and be consumed in its entirety;
// deviations yield an error unwrapping to ErrSyntax. If the rounded
// magnitude exceeds flt's largest finite value, Parse returns the bit
// pattern of ±Inf and an error unwrapping to ErrRange. A magnitude
// below half of flt's smallest subnormal yields a signed zero and no
// error.
func Parse(s string, flt *FloatInfo) (bits uint64, err error) {
	if bits, ok := special(s, flt); ok {
		return bits, nil
	}

	if !sepOK(s) {
		return 0, syntaxError(s)
	}

	mantissa, exp, neg, trunc, ok := readFloat(s)
	if !ok {
		return 0, syntaxError(s)
	}

	if optimize && !trunc {
		switch flt {
		case Float64:
			if f, ok := atof64exact(mantissa, exp, neg); ok {
				return math.Float64bits(f), nil
			}
		case Float32:
			if f, ok := atof32exact(mantissa, exp, neg); ok {
				return uint64(math.Float32bits(f)), nil
			}
		}
	}

	// Exact scaling path.
	var d decimal
	if !d.set(s) {
		return 0, syntaxError(s)
	}
	bits, ovf := d.floatBits(flt)
	if ovf {
		err = rangeError(s)
	}
	return bits, err
}

// ParseFloat converts the literal s to a floating-point number with
// the precision specified by bitSize: 32 for float32, or 64 for
// float64. When bitSize is 32, the result still has type float64, but
// it is convertible to float32 without changing its value. Any other
// bitSize is treated as 64.
func ParseFloat(s string, bitSize int) (float64, error) {
	if bitSize == 32 {
		bits, err := Parse(s, Float32)
		return float64(math.Float32frombits(uint32(bits))), err
	}
	bits, err := Parse(s, Float64)
	return math.Float64frombits(bits), err
}
