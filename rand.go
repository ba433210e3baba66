package dd

// RandDouble generates a uniform random Double in [0, 1) from an external
// source, drawing 31 bits at a time so that every significand bit of both
// limbs is populated.
func RandDouble(source RandSource) (out Double) {
	const m = 4.6566128730773926e-10 // 2^-31

	mm := m
	for i := 0; i < 4; i++ {
		d := float64(source.Uint64()>>33) * mm
		out = out.AddFloat64(d)
		mm *= m
	}
	return out
}
