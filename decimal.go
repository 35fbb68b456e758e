// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

// Multi-precision decimal numbers used as the exact intermediate form
// of the conversion. The mantissa is a fixed-capacity buffer of byte
// digits owned by one conversion call; no allocation, no aliasing.
//
// A decimal holds the value 0.d[0]d[1]...d[nd-1] * 10**dp. Shifting
// it by powers of two is exact: digits shifted out below the buffer
// only ever set the sticky trunc flag, which is all the rounding step
// needs to know about them.

import "fmt"

const debugFloatconv = true

// digitCap is the number of significant decimal digits retained
// exactly. It must cover every digit that can influence rounding in
// any supported format; the binary64 subnormal range needs 767
// digits, so 800 leaves margin. Digits beyond the cap are folded into
// the sticky flag, never dropped silently.
const digitCap = 800

type decimal struct {
	d     [digitCap]byte // digits, big-endian order
	nd    int            // number of digits used
	dp    int            // decimal point: value = 0.d[:nd] * 10**dp
	neg   bool           // sign
	trunc bool           // discarded nonzero digits beyond d[:nd]
}

const uintSize = 32 << (^uint(0) >> 63)

// maxShift is the largest binary shift that one pass of leftShift or
// rightShift can absorb without overflowing the per-digit
// accumulator: the accumulator must hold 9<<k, so 4 bits of a uint
// stay reserved for the digit.
const maxShift = uintSize - 4

func (a *decimal) String() string {
	n := 10 + a.nd
	if a.dp > 0 {
		n += a.dp
	}
	if a.dp < 0 {
		n += -a.dp
	}
	buf := make([]byte, n)
	w := 0
	switch {
	case a.nd == 0:
		return "0"
	case a.dp <= 0:
		// zeros fill space between decimal point and digits
		buf[w] = '0'
		w++
		buf[w] = '.'
		w++
		w += digitZero(buf[w : w+-a.dp])
		w += copy(buf[w:], a.d[0:a.nd])
	case a.dp < a.nd:
		// decimal point in middle of digits
		w += copy(buf[w:], a.d[0:a.dp])
		buf[w] = '.'
		w++
		w += copy(buf[w:], a.d[a.dp:a.nd])
	default:
		// zeros fill space between digits and decimal point
		w += copy(buf[w:], a.d[0:a.nd])
		w += digitZero(buf[w : w+a.dp-a.nd])
	}
	return string(buf[0:w])
}

func digitZero(dst []byte) int {
	for i := range dst {
		dst[i] = '0'
	}
	return len(dst)
}

// trim removes trailing zeros from the digit buffer; they carry no
// information (the decimal point is encoded in dp, not in the digit
// count).
func (a *decimal) trim() {
	for a.nd > 0 && a.d[a.nd-1] == '0' {
		a.nd--
	}
	if a.nd == 0 {
		a.dp = 0
	}
}

// assign sets a to the exact value of v.
func (a *decimal) assign(v uint64) {
	var buf [24]byte

	// write reversed decimal in buf, then flip into a.d
	n := 0
	for v > 0 {
		v1 := v / 10
		v -= 10 * v1
		buf[n] = byte(v + '0')
		n++
		v = v1
	}
	a.nd = 0
	for n--; n >= 0; n-- {
		a.d[a.nd] = buf[n]
		a.nd++
	}
	a.dp = a.nd
	a.trunc = false
	a.trim()
}

// rightShift sets a to a >> k. k must be at most maxShift.
func (a *decimal) rightShift(k uint) {
	r := 0 // read pointer
	w := 0 // write pointer

	// pick up enough leading digits to cover the first shift
	var n uint
	for ; n>>k == 0; r++ {
		if r >= a.nd {
			if n == 0 {
				// a == 0; shouldn't get here, but handle anyway
				a.nd = 0
				return
			}
			for n>>k == 0 {
				n = n * 10
				r++
			}
			break
		}
		c := uint(a.d[r])
		n = n*10 + c - '0'
	}
	a.dp -= r - 1

	var mask uint = (1 << k) - 1

	// pick up a digit, put down a digit
	for ; r < a.nd; r++ {
		c := uint(a.d[r])
		dig := n >> k
		n &= mask
		a.d[w] = byte(dig + '0')
		w++
		n = n*10 + c - '0'
	}

	// put down extra digits
	for n > 0 {
		dig := n >> k
		n &= mask
		if w < len(a.d) {
			a.d[w] = byte(dig + '0')
			w++
		} else if dig > 0 {
			a.trunc = true
		}
		n = n * 10
	}

	a.nd = w
	a.trim()
}

// A leftCheat bounds the digit growth of a left shift by k: the
// result has delta more digits, or delta-1 when the current digit
// prefix is lexically below cutoff, the decimal representation of
// 5**k.
type leftCheat struct {
	delta  int    // number of new digits
	cutoff string // minus one digit if original < a
}

var leftcheats = []leftCheat{
	// Leading digits of 1/2^i = 5^i.
	{0, ""},
	{1, "5"},
	{1, "25"},
	{1, "125"},
	{2, "625"},
	{2, "3125"},
	{2, "15625"},
	{3, "78125"},
	{3, "390625"},
	{3, "1953125"},
	{4, "9765625"},
	{4, "48828125"},
	{4, "244140625"},
	{4, "1220703125"},
	{5, "6103515625"},
	{5, "30517578125"},
	{5, "152587890625"},
	{6, "762939453125"},
	{6, "3814697265625"},
	{6, "19073486328125"},
	{7, "95367431640625"},
	{7, "476837158203125"},
	{7, "2384185791015625"},
	{7, "11920928955078125"},
	{8, "59604644775390625"},
	{8, "298023223876953125"},
	{8, "1490116119384765625"},
	{9, "7450580596923828125"},
	{9, "37252902984619140625"},
	{9, "186264514923095703125"},
	{10, "931322574615478515625"},
	{10, "4656612873077392578125"},
	{10, "23283064365386962890625"},
	{10, "116415321826934814453125"},
	{11, "582076609134674072265625"},
	{11, "2910383045673370361328125"},
	{11, "14551915228366851806640625"},
	{12, "72759576141834259033203125"},
	{12, "363797880709171295166015625"},
	{12, "1818989403545856475830078125"},
	{13, "9094947017729282379150390625"},
	{13, "45474735088646411895751953125"},
	{13, "227373675443232059478759765625"},
	{13, "1136868377216160297393798828125"},
	{14, "5684341886080801486968994140625"},
	{14, "28421709430404007434844970703125"},
	{14, "142108547152020037174224853515625"},
	{15, "710542735760100185871124267578125"},
	{15, "3552713678800500929355621337890625"},
	{15, "17763568394002504646778106689453125"},
	{16, "88817841970012523233890533447265625"},
	{16, "444089209850062616169452667236328125"},
	{16, "2220446049250313080847263336181640625"},
	{16, "11102230246251565404236316680908203125"},
	{17, "55511151231257827021181583404541015625"},
	{17, "277555756156289135105907917022705078125"},
	{17, "1387778780781445675529539585113525390625"},
	{18, "6938893903907228377647697925567626953125"},
	{18, "34694469519536141888238489627838134765625"},
	{18, "173472347597680709441192448139190673828125"},
	{19, "867361737988403547205962240695953369140625"},
}

// prefixIsLessThan reports whether b, interpreted as a digit string
// padded with implicit trailing zeros, is less than s.
func prefixIsLessThan(b []byte, s string) bool {
	for i := 0; i < len(s); i++ {
		if i >= len(b) {
			return true
		}
		if b[i] != s[i] {
			return b[i] < s[i]
		}
	}
	return false
}

// leftShift sets a to a << k. k must be at most maxShift.
func (a *decimal) leftShift(k uint) {
	delta := leftcheats[k].delta
	if prefixIsLessThan(a.d[0:a.nd], leftcheats[k].cutoff) {
		delta--
	}

	r := a.nd         // read index
	w := a.nd + delta // write index

	// pick up a digit, put down a digit
	var n uint
	for r--; r >= 0; r-- {
		n += (uint(a.d[r]) - '0') << k
		quo := n / 10
		rem := n - 10*quo
		w--
		if w < len(a.d) {
			a.d[w] = byte(rem + '0')
		} else if rem != 0 {
			a.trunc = true
		}
		n = quo
	}

	// put down extra digits
	for n > 0 {
		quo := n / 10
		rem := n - 10*quo
		w--
		if w < len(a.d) {
			a.d[w] = byte(rem + '0')
		} else if rem != 0 {
			a.trunc = true
		}
		n = quo
	}

	a.nd += delta
	if a.nd >= len(a.d) {
		a.nd = len(a.d)
	}
	a.dp += delta
	a.trim()
}

// shift sets a to a * 2**k, k of either sign, splitting large shifts
// into maxShift-sized passes.
func (a *decimal) shift(k int) {
	if debugFloatconv {
		a.validate()
	}
	switch {
	case a.nd == 0:
		// nothing to do: a == 0
	case k > 0:
		for k > maxShift {
			a.leftShift(maxShift)
			k -= maxShift
		}
		a.leftShift(uint(k))
	case k < 0:
		for k < -maxShift {
			a.rightShift(maxShift)
			k += maxShift
		}
		a.rightShift(uint(-k))
	}
	if debugFloatconv {
		a.validate()
	}
}

// shouldRoundUp reports whether the value rounds up when truncated to
// nd digits, under round-to-nearest, ties-to-even. An exact half-way
// value with the sticky flag set is over half and always rounds up.
func (a *decimal) shouldRoundUp(nd int) bool {
	if nd < 0 || nd >= a.nd {
		return false
	}
	if a.d[nd] == '5' && nd+1 == a.nd { // exactly halfway - round to even
		if a.trunc {
			return true
		}
		return nd > 0 && (a.d[nd-1]-'0')%2 != 0
	}
	// not halfway - digit tells all
	return a.d[nd] >= '5'
}

// roundedInteger returns the integer part of a, rounded to nearest
// with ties to even. It assumes the result fits a uint64; callers
// arrange dp <= 20 beforehand.
func (a *decimal) roundedInteger() uint64 {
	if a.dp > 20 {
		return 0xFFFFFFFFFFFFFFFF
	}
	var i int
	n := uint64(0)
	for i = 0; i < a.dp && i < a.nd; i++ {
		n = n*10 + uint64(a.d[i]-'0')
	}
	for ; i < a.dp; i++ {
		n *= 10
	}
	if a.shouldRoundUp(a.dp) {
		n++
	}
	return n
}

func (a *decimal) validate() {
	if !debugFloatconv {
		// avoid performance bugs
		panic("validate called but debugFloatconv is not set")
	}
	if a.nd < 0 || a.nd > len(a.d) {
		panic(fmt.Sprintf("digit count %d out of range", a.nd))
	}
	for i := 0; i < a.nd; i++ {
		if a.d[i] < '0' || a.d[i] > '9' {
			panic(fmt.Sprintf("byte %q in digit buffer", a.d[i]))
		}
	}
	if a.nd > 0 && a.d[0] == '0' {
		panic("leading zero digit in nonzero decimal")
	}
}
