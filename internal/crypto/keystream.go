package crypto

import "crypto/cipher"

// Generator constants: x' = (LCGMultiplier*x + LCGIncrement) mod 2^32.
const (
	LCGMultiplier = 1103515245
	LCGIncrement  = 12345
)

// Keystream is a deterministic byte generator. It is not safe for concurrent
// use; each direction of a session owns its own instance.
type Keystream struct {
	state uint32
}

var _ cipher.Stream = (*Keystream)(nil)

// NewKeystream seeds a generator with the low 32 bits of seed.
func NewKeystream(seed uint64) *Keystream {
	return &Keystream{state: uint32(seed)}
}

// NextByte advances the generator one step and returns the low byte of the new state.
func (k *Keystream) NextByte() byte {
	// uint32 arithmetic wraps, which is the mod 2^32 of the recurrence.
	k.state = LCGMultiplier*k.state + LCGIncrement
	return byte(k.state)
}

// XORKeyStream XORs each byte of src with the next keystream byte into dst.
// dst and src may overlap entirely. It panics if dst is shorter than src.
func (k *Keystream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("crypto: output smaller than input")
	}
	for i, b := range src {
		dst[i] = b ^ k.NextByte()
	}
}

// ApplyKeystream returns buf XOR the next len(buf) keystream bytes, leaving
// buf untouched. Applying identically seeded streams twice restores buf.
func ApplyKeystream(buf []byte, ks *Keystream) []byte {
	out := make([]byte, len(buf))
	ks.XORKeyStream(out, buf)
	return out
}
