package dh

import "math/bits"

// ModPow returns base^exp mod m using square-and-multiply over the bits of
// exp, least significant first. Intermediate products are kept at 128 bits so
// they never overflow. ModPow(_, _, 1) is 0; m must not be 0.
func ModPow(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
