package dh

import (
	"encoding/binary"
	"io"

	"github.com/samber/oops"

	"streamchat/internal/domain"
)

// GenerateKeyPair draws a private value uniformly from the full 64-bit range
// using rand (crypto/rand.Reader in production) and derives the public value.
func GenerateKeyPair(p Params, rand io.Reader) (domain.KeyPair, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return domain.KeyPair{}, oops.Wrapf(err, "read private key")
	}
	priv := binary.BigEndian.Uint64(buf[:])
	clear(buf[:])
	return domain.KeyPair{
		Private: priv,
		Public:  ModPow(p.G, priv, p.P),
	}, nil
}

// ComputeSharedSecret raises the peer's public value to our private value.
func ComputeSharedSecret(p Params, ownPrivate, peerPublic uint64) domain.SharedSecret {
	return domain.SharedSecret(ModPow(peerPublic, ownPrivate, p.P))
}
