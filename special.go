package floatconv

// lower(c) is a lower-case letter if and only if c is either that
// lower-case letter or the equivalent upper-case letter. lower of
// non-letters can produce other non-letters, which is harmless here.
func lower(c byte) byte {
	return c | ('x' - 'X')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func equalIgnoreCase(s1, s2 string) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := 0; i < len(s1); i++ {
		c1 := s1[i]
		if 'A' <= c1 && c1 <= 'Z' {
			c1 += 'a' - 'A'
		}
		c2 := s2[i]
		if 'A' <= c2 && c2 <= 'Z' {
			c2 += 'a' - 'A'
		}
		if c1 != c2 {
			return false
		}
	}
	return true
}

// special recognizes the signed infinity and NaN literals before any
// numeric grammar applies: an optional sign followed by "inf",
// "infinity" or "nan", ASCII case-insensitive, matching the whole
// remaining text. Literals that merely start with one of the tokens
// ("infinity2") are not special and fall through to the numeral
// grammar.
func special(s string, flt *FloatInfo) (bits uint64, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	switch {
	case equalIgnoreCase(s, "inf"), equalIgnoreCase(s, "infinity"):
		return flt.inf(neg), true
	case equalIgnoreCase(s, "nan"):
		return flt.nan(), true
	}
	return 0, false
}
