package dh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"streamchat/internal/crypto"
	"streamchat/internal/domain"
	"streamchat/internal/transport"
	"streamchat/internal/util/logger"
)

// PublicKeySize is the size of a public value on the wire.
const PublicKeySize = 8

// ErrHandshake wraps every failure of the key exchange.
var ErrHandshake = errors.New("handshake failed")

var log = logger.GetLogger()

// Handshake runs the key exchange over rw as role and returns the shared
// secret. The responder writes its public value first; the initiator reads
// first. The private key is discarded before returning.
func Handshake(rw io.ReadWriter, p Params, role domain.Role, rand io.Reader) (domain.SharedSecret, error) {
	if err := p.Validate(); err != nil {
		return 0, oops.Wrapf(errors.Join(ErrHandshake, err), "%s handshake", role)
	}
	entry := log.WithField("role", role.String())
	entry.Debug("starting key exchange")

	kp, err := GenerateKeyPair(p, rand)
	if err != nil {
		return 0, oops.Wrapf(errors.Join(ErrHandshake, err), "%s handshake", role)
	}
	defer crypto.WipeKeyPair(&kp)

	var peer uint64
	if role == domain.RoleResponder {
		if err := sendPublic(rw, kp.Public, entry); err != nil {
			return 0, oops.Wrapf(errors.Join(ErrHandshake, err), "%s handshake: send public key", role)
		}
		if peer, err = recvPublic(rw, entry); err != nil {
			return 0, oops.Wrapf(errors.Join(ErrHandshake, err), "%s handshake: receive public key", role)
		}
	} else {
		if peer, err = recvPublic(rw, entry); err != nil {
			return 0, oops.Wrapf(errors.Join(ErrHandshake, err), "%s handshake: receive public key", role)
		}
		if err := sendPublic(rw, kp.Public, entry); err != nil {
			return 0, oops.Wrapf(errors.Join(ErrHandshake, err), "%s handshake: send public key", role)
		}
	}

	secret := ComputeSharedSecret(p, kp.Private, peer)
	entry.WithField("secret", secret.String()).Debug("shared secret established")
	return secret, nil
}

func sendPublic(w io.Writer, pub uint64, entry *logrus.Entry) error {
	buf := make([]byte, PublicKeySize)
	binary.BigEndian.PutUint64(buf, pub)
	entry.WithField("public", formatHex(pub)).Debug("sending public key")
	return transport.SendExact(w, buf)
}

func recvPublic(r io.Reader, entry *logrus.Entry) (uint64, error) {
	buf, err := transport.RecvExact(r, PublicKeySize)
	if err != nil {
		return 0, err
	}
	pub := binary.BigEndian.Uint64(buf)
	entry.WithField("public", formatHex(pub)).Debug("received peer public key")
	return pub, nil
}

func formatHex(v uint64) string { return fmt.Sprintf("%016X", v) }
