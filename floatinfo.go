package floatconv

// A FloatInfo describes one IEEE 754 binary interchange format: the
// number of explicit mantissa bits, the number of exponent bits, and
// the exponent bias. It parametrizes the converter so that the same
// algorithm serves every binary width.
//
// The fields are not exported; a FloatInfo is defined once per target
// format and never mutated.
type FloatInfo struct {
	mantbits uint
	expbits  uint
	bias     int
}

// Predefined target formats.
var (
	Float16 = &FloatInfo{10, 5, -15}
	Float32 = &FloatInfo{23, 8, -127}
	Float64 = &FloatInfo{52, 11, -1023}
)

// assemble packs a mantissa, an unbiased exponent and a sign into the
// format's interchange encoding. The mantissa is masked to mantbits
// bits; for normal values the caller keeps the implicit leading bit
// out of range, for subnormals and zero exp must equal bias.
func (flt *FloatInfo) assemble(mant uint64, exp int, neg bool) uint64 {
	bits := mant & (uint64(1)<<flt.mantbits - 1)
	bits |= uint64((exp-flt.bias)&(1<<flt.expbits-1)) << flt.mantbits
	if neg {
		bits |= 1 << flt.mantbits << flt.expbits
	}
	return bits
}

// zero returns the bit pattern of ±0 in flt's format.
func (flt *FloatInfo) zero(neg bool) uint64 {
	return flt.assemble(0, flt.bias, neg)
}

// inf returns the bit pattern of ±Inf in flt's format.
func (flt *FloatInfo) inf(neg bool) uint64 {
	return flt.assemble(0, flt.bias+1<<flt.expbits-1, neg)
}

// nan returns the bit pattern of a quiet NaN in flt's format.
func (flt *FloatInfo) nan() uint64 {
	return flt.assemble(1<<(flt.mantbits-1), flt.bias+1<<flt.expbits-1, false)
}
