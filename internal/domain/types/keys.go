package types

import (
	"encoding/binary"
	"fmt"
)

// KeyPair is a Diffie-Hellman key pair over the 64-bit group.
// Private never leaves the process; Public is sent in the clear.
type KeyPair struct {
	Private uint64
	Public  uint64
}

// SharedSecret is the value both parties derive independently from the exchange.
type SharedSecret uint64

// String renders the secret as 16 upper-case hex digits.
func (s SharedSecret) String() string { return fmt.Sprintf("%016X", uint64(s)) }

// Bytes returns the big-endian encoding of the secret.
func (s SharedSecret) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(s))
	return b[:]
}
