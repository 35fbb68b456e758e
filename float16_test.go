package floatconv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The converter is generic over the target format; binary16 exercises
// the narrow end of the range.
func TestParseFloat16(t *testing.T) {
	for _, test := range []struct {
		in   string
		bits uint64
		err  error
	}{
		{"0", 0x0000, nil},
		{"-0", 0x8000, nil},
		{"1", 0x3c00, nil},
		{"-2", 0xc000, nil},
		{"0.5", 0x3800, nil},
		{"65504", 0x7bff, nil},      // largest finite value
		{"65519", 0x7bff, nil},      // below the upper midpoint: rounds down
		{"65520", 0x7c00, ErrRange}, // exact midpoint: ties to even, overflows
		{"65536", 0x7c00, ErrRange},
		{"-65520", 0xfc00, ErrRange},
		{"1e5", 0x7c00, ErrRange},

		// smallest subnormal is 2^-24
		{"0.000000059604644775390625", 0x0001, nil},
		{"6e-8", 0x0001, nil},
		{"3e-8", 0x0001, nil},
		{"0.0000000298023223876953125", 0x0000, nil},  // exact half: ties to even zero
		{"0.00000002980232238769531251", 0x0001, nil}, // just above half
		{"-0.0000000298023223876953125", 0x8000, nil}, // signed zero on underflow
		{"1e-30", 0x0000, nil},

		// ties to even inside the normal range (ulp is 2 at 2048)
		{"2048", 0x6800, nil},
		{"2049", 0x6800, nil},
		{"2050", 0x6801, nil},
		{"2051", 0x6802, nil},

		{"inf", 0x7c00, nil},
		{"-INF", 0xfc00, nil},
		{"nan", 0x7e00, nil},
	} {
		bits, err := Parse(test.in, Float16)
		require.Equal(t, test.bits, bits, "Parse(%q, Float16)", test.in)
		if test.err == nil {
			require.NoError(t, err, "Parse(%q, Float16)", test.in)
		} else {
			require.ErrorIs(t, err, test.err, "Parse(%q, Float16)", test.in)
		}
	}
}
