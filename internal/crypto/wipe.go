package crypto

import (
	"runtime"

	"streamchat/internal/domain"
)

// Wipe zeroes b in place, best effort.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}

// WipeKeyPair drops the private half of kp once the shared secret is known.
//
//go:noinline
func WipeKeyPair(kp *domain.KeyPair) {
	kp.Private = 0
	runtime.KeepAlive(kp)
}
