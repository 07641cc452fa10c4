package crypto

import "streamchat/internal/domain"

// Seed masks that separate the two directions of a session.
const (
	SeedMaskA uint64 = 0xAAAA_AAAA_AAAA_AAAA
	SeedMaskB uint64 = 0x5555_5555_5555_5555
)

// DeriveSeeds returns the send and receive seeds for role. The responder
// sends on mask A and receives on mask B; the initiator is the mirror image,
// so one side's send stream is the other side's receive stream.
func DeriveSeeds(secret domain.SharedSecret, role domain.Role) (send, recv uint64) {
	s := uint64(secret)
	if role == domain.RoleResponder {
		return s ^ SeedMaskA, s ^ SeedMaskB
	}
	return s ^ SeedMaskB, s ^ SeedMaskA
}

// DeriveKeystreamPair builds the send and receive keystreams for role.
func DeriveKeystreamPair(secret domain.SharedSecret, role domain.Role) (send, recv *Keystream) {
	s, r := DeriveSeeds(secret, role)
	return NewKeystream(s), NewKeystream(r)
}
