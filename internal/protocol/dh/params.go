package dh

import (
	"errors"

	"github.com/samber/oops"
)

// ErrInvalidParams reports group parameters that cannot produce a usable exchange.
var ErrInvalidParams = errors.New("invalid Diffie-Hellman parameters")

const (
	defaultPrime     uint64 = 0xD87F_A3E2_91B4_C7F3
	defaultGenerator uint64 = 2
)

// Params are the public group parameters. Both peers must use the same values;
// they are never negotiated on the wire.
type Params struct {
	P uint64 `yaml:"p"`
	G uint64 `yaml:"g"`
}

// DefaultParams returns the protocol's standard group.
func DefaultParams() Params {
	return Params{P: defaultPrime, G: defaultGenerator}
}

// Validate checks that P and G can form a group.
func (p Params) Validate() error {
	if p.P < 3 {
		return oops.Wrapf(ErrInvalidParams, "modulus %d too small", p.P)
	}
	if p.G <= 1 || p.G >= p.P {
		return oops.Wrapf(ErrInvalidParams, "generator %d outside (1, %d)", p.G, p.P)
	}
	return nil
}
