package session

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"net"
	"time"

	"streamchat/internal/chat"
	"streamchat/internal/crypto"
	"streamchat/internal/domain"
	"streamchat/internal/protocol/dh"
	"streamchat/internal/transport"
	"streamchat/internal/util/logger"
)

var log = logger.GetLogger()

// Options configure the Service.
type Options struct {
	Params       dh.Params
	DialTimeout  time.Duration
	MaxFrameSize uint32
	// Rand feeds key generation; nil means crypto/rand.
	Rand io.Reader
}

// Service performs connection setup, the key exchange and the chat.
//
// A session represents one keyed connection to a single peer. This service handles:
//   - Accepting or dialing the TCP connection.
//   - Running the Diffie-Hellman handshake in the matching role.
//   - Running the duplex chat until both directions have ended.
//   - Closing the connection.
type Service struct {
	opts    Options
	input   domain.LineSource
	display domain.Display
}

// New constructs a Service that talks to the operator through input and display.
func New(opts Options, input domain.LineSource, display domain.Display) *Service {
	if opts.Rand == nil {
		opts.Rand = rand.Reader
	}
	return &Service{opts: opts, input: input, display: display}
}

// Serve waits for one peer on ln, then runs the session as responder.
// Accept and handshake failures are returned; how the chat itself ended is
// reported to the operator and the call returns the chat outcome.
func (s *Service) Serve(ctx context.Context, ln net.Listener) (chat.Outcome, error) {
	p := s.opts.Params
	log.WithField("p", fmt.Sprintf("%016X", p.P)).WithField("g", p.G).Info("using Diffie-Hellman parameters")
	s.display.Notice(fmt.Sprintf("Waiting for a peer on %s...", ln.Addr()))

	conn, err := transport.AcceptOne(ctx, ln)
	if err != nil {
		return chat.Outcome{}, err
	}
	s.display.Notice(fmt.Sprintf("Peer connected from %s", conn.RemoteAddr()))
	return s.run(conn, domain.RoleResponder)
}

// Connect dials addr and runs the session as initiator.
func (s *Service) Connect(ctx context.Context, addr string) (chat.Outcome, error) {
	conn, err := transport.Dial(ctx, addr, s.opts.DialTimeout)
	if err != nil {
		return chat.Outcome{}, err
	}
	s.display.Notice(fmt.Sprintf("Connected to %s", addr))
	return s.run(conn, domain.RoleInitiator)
}

func (s *Service) run(conn net.Conn, role domain.Role) (chat.Outcome, error) {
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Debug("close connection")
		}
	}()
	entry := log.WithField("role", role.String()).WithField("peer", conn.RemoteAddr().String())

	secret, err := dh.Handshake(conn, s.opts.Params, role, s.opts.Rand)
	if err != nil {
		entry.WithError(err).Error("key exchange failed")
		return chat.Outcome{}, err
	}
	fp := crypto.Fingerprint(secret)
	entry.WithField("fingerprint", fp.String()).Info("shared secret established")
	s.display.Notice("Shared secret established, fingerprint " + fp.String())

	sess := chat.New(conn, secret, role, s.input, s.display, chat.Options{MaxFrameSize: s.opts.MaxFrameSize})
	out := sess.Run()
	entry.WithField("quit", out.Quit).Info("session finished")
	return out, nil
}
