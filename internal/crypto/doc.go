// Package crypto holds the chat keystream cipher and its helpers.
//
// Contents
//
//   - Keystream, a 32-bit linear congruential generator used as a stream cipher
//     (NewKeystream, NextByte, XORKeyStream)
//   - Directional seed derivation from a shared secret (DeriveSeeds,
//     DeriveKeystreamPair)
//   - ApplyKeystream, the XOR combinator used for both encryption and decryption
//   - Short secret fingerprints for display (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// The generator is x' = (1103515245*x + 12345) mod 2^32 and each output byte is
// the low 8 bits of the new state. This is a teaching cipher: it is predictable
// and must not be mistaken for a secure channel. Its exact recurrence is part of
// the wire format, so it cannot be swapped for a stronger generator without
// breaking compatibility with existing peers.
package crypto
