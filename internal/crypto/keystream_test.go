package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamchat/internal/domain"
)

// referenceStream recomputes the generator with 64-bit arithmetic and an
// explicit modulus.
func referenceStream(seed uint64, n int) []byte {
	state := seed & 0xFFFF_FFFF
	out := make([]byte, n)
	for i := range out {
		state = (1103515245*state + 12345) % (1 << 32)
		out[i] = byte(state & 0xFF)
	}
	return out
}

func draw(ks *Keystream, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = ks.NextByte()
	}
	return out
}

func TestNextByte_MatchesRecurrence(t *testing.T) {
	for _, seed := range []uint64{0, 1, 0xFFFF_FFFF, 0x1234_5678_9ABC_DEF0, ^uint64(0)} {
		assert.Equal(t, referenceStream(seed, 256), draw(NewKeystream(seed), 256), "seed %#x", seed)
	}
}

func TestNextByte_FirstOutputFromZero(t *testing.T) {
	// 1103515245*0 + 12345 = 0x3039
	assert.Equal(t, byte(0x39), NewKeystream(0).NextByte())
}

func TestKeystream_Deterministic(t *testing.T) {
	a, b := NewKeystream(42), NewKeystream(42)
	assert.Equal(t, draw(a, 1000), draw(b, 1000))
	assert.Equal(t, a.NextByte(), b.NextByte())
}

func TestKeystream_SeedTruncatedTo32Bits(t *testing.T) {
	assert.Equal(t,
		draw(NewKeystream(0x0000_0001_DEAD_BEEF), 64),
		draw(NewKeystream(0xFFFF_0000_DEAD_BEEF), 64))
}

func TestApplyKeystream_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		[]byte("Hello!"),
		bytes.Repeat([]byte{0x00, 0xFF}, 4096),
	}
	for _, seed := range []uint64{0, 7, 0x1234_5678_9ABC_DEF0} {
		for _, in := range inputs {
			ct := ApplyKeystream(in, NewKeystream(seed))
			require.Len(t, ct, len(in))
			pt := ApplyKeystream(ct, NewKeystream(seed))
			assert.Equal(t, len(in), len(pt))
			assert.True(t, bytes.Equal(in, pt))
		}
	}
}

func TestApplyKeystream_DoesNotMutateInput(t *testing.T) {
	in := []byte("plaintext")
	orig := append([]byte(nil), in...)
	_ = ApplyKeystream(in, NewKeystream(1))
	assert.Equal(t, orig, in)
}

func TestApplyKeystream_AdvancesByLength(t *testing.T) {
	ks := NewKeystream(99)
	_ = ApplyKeystream(make([]byte, 17), ks)
	assert.Equal(t, referenceStream(99, 18)[17], ks.NextByte())
}

func TestXORKeyStream_InPlace(t *testing.T) {
	buf := []byte("in place")
	want := ApplyKeystream(buf, NewKeystream(5))
	NewKeystream(5).XORKeyStream(buf, buf)
	assert.Equal(t, want, buf)
}

func TestXORKeyStream_ShortDstPanics(t *testing.T) {
	assert.Panics(t, func() { NewKeystream(1).XORKeyStream(make([]byte, 1), make([]byte, 2)) })
}

func TestDeriveSeeds_RoleSymmetry(t *testing.T) {
	secrets := []domain.SharedSecret{0, 1, 0x1234_5678_9ABC_DEF0, 0xFFFF_FFFF_FFFF_FFFF}
	for _, s := range secrets {
		rSend, rRecv := DeriveSeeds(s, domain.RoleResponder)
		iSend, iRecv := DeriveSeeds(s, domain.RoleInitiator)
		assert.Equal(t, rSend, iRecv, "secret %s", s)
		assert.Equal(t, rRecv, iSend, "secret %s", s)
		assert.Equal(t, uint64(s)^SeedMaskA, rSend)
		assert.Equal(t, uint64(s)^SeedMaskB, rRecv)
	}
}

func TestDeriveKeystreamPair_Conversation(t *testing.T) {
	secret := domain.SharedSecret(0x1234_5678_9ABC_DEF0)
	srvSend, srvRecv := DeriveKeystreamPair(secret, domain.RoleResponder)
	cliSend, cliRecv := DeriveKeystreamPair(secret, domain.RoleInitiator)

	msg := []byte("Hello Rust!")
	assert.Equal(t, msg, ApplyKeystream(ApplyKeystream(msg, srvSend), cliRecv))

	reply := []byte("Hi!")
	assert.Equal(t, reply, ApplyKeystream(ApplyKeystream(reply, cliSend), srvRecv))

	// both directions keep advancing in lockstep
	second := []byte("second message")
	assert.Equal(t, second, ApplyKeystream(ApplyKeystream(second, srvSend), cliRecv))
}

func TestDeriveKeystreamPair_DirectionsDiffer(t *testing.T) {
	send, recv := DeriveKeystreamPair(domain.SharedSecret(12345), domain.RoleResponder)
	assert.NotEqual(t, draw(send, 32), draw(recv, 32))
}
