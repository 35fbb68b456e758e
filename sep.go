package floatconv

// sepOK reports whether every digit group separator in s is legal.
// A separator is legal only between two decimal digits; in
// consequence it cannot appear first or last, doubled, or adjacent to
// a sign, a decimal point or an exponent marker. The check is a
// single structural pass over the raw literal, independent of the
// integer/fraction/exponent boundaries.
func sepOK(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 {
			return false
		}
		if !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}
