package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"streamchat/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a shared secret.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
// Both peers print it so operators can compare channels out of band.
func Fingerprint(secret domain.SharedSecret) domain.Fingerprint {
	sum := blake2b.Sum256(secret.Bytes())
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
