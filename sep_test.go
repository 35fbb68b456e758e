package floatconv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSepOK(t *testing.T) {
	for _, test := range []struct {
		in string
		ok bool
	}{
		{"", true},
		{"123", true},
		{"1_2", true},
		{"1_23.50_0_0e+1_2", true},
		{"1_2_3", true},

		{"_", false},
		{"_1", false},
		{"1_", false},
		{"1__2", false},
		{"+_1", false},
		{"-_1", false},
		{"1_.2", false},
		{"1._2", false},
		{"1e_2", false},
		{"1e2_", false},
		{"1_e2", false},
		{"1e+_2", false},
	} {
		require.Equal(t, test.ok, sepOK(test.in), "sepOK(%q)", test.in)
	}
}
