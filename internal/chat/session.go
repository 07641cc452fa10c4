package chat

import (
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"streamchat/internal/crypto"
	"streamchat/internal/domain"
	"streamchat/internal/transport"
	"streamchat/internal/util/logger"
)

// QuitCommand ends the outbound loop without sending anything.
const QuitCommand = "/quit"

var log = logger.GetLogger()

// Options tune a Session.
type Options struct {
	// MaxFrameSize bounds inbound frames; 0 accepts any length.
	MaxFrameSize uint32
}

// Outcome records why each loop ended.
type Outcome struct {
	// Inbound is the error that stopped the inbound loop. A peer that hangs up
	// shows up as transport.ErrConnectionClosed.
	Inbound error
	// Outbound is nil when the loop ended on /quit or end of input.
	Outbound error
	// Quit is set when the operator typed /quit.
	Quit bool
}

// Session is a keyed duplex chat over one stream.
type Session struct {
	r          io.Reader
	w          io.Writer
	closeWrite func() error

	send *crypto.Keystream
	recv *crypto.Keystream

	in   domain.LineSource
	out  domain.Display
	opts Options

	role  domain.Role
	state atomic.Int32
	log   *logrus.Entry

	runOnce sync.Once
}

// New prepares a session over rw for role, keyed from secret. The session is
// Active from construction. If rw supports CloseWrite, the outbound loop
// half-closes it on exit.
func New(rw io.ReadWriter, secret domain.SharedSecret, role domain.Role, in domain.LineSource, out domain.Display, opts Options) *Session {
	send, recv := crypto.DeriveKeystreamPair(secret, role)
	s := &Session{
		r:    rw,
		w:    rw,
		send: send,
		recv: recv,
		in:   in,
		out:  out,
		opts: opts,
		role: role,
		log:  log.WithField("role", role.String()),
	}
	s.closeWrite = func() error {
		_, err := transport.CloseWrite(rw)
		return err
	}
	s.state.Store(int32(domain.SessionActive))
	return s
}

// State reports whether the session is still Active.
func (s *Session) State() domain.SessionState {
	return domain.SessionState(s.state.Load())
}

// Run starts both loops and blocks until both have exited. It runs at most
// once; later calls return a zero Outcome.
func (s *Session) Run() Outcome {
	var out Outcome
	s.runOnce.Do(func() {
		s.out.Notice("Secure channel established! Type messages (or " + QuitCommand + "):")
		s.out.Prompt()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			out.Inbound = s.inbound()
			s.state.Store(int32(domain.SessionClosed))
		}()
		go func() {
			defer wg.Done()
			out.Quit, out.Outbound = s.outbound()
			s.state.Store(int32(domain.SessionClosed))
		}()
		wg.Wait()

		s.out.Notice("Connection closed.")
	})
	return out
}

func (s *Session) inbound() error {
	for {
		ct, err := transport.ReadFrame(s.r, s.opts.MaxFrameSize)
		if err != nil {
			s.reportInbound(err)
			return err
		}
		if len(ct) == 0 {
			continue
		}
		pt := crypto.ApplyKeystream(ct, s.recv)
		s.log.WithField("bytes", len(ct)).Debug("frame received")
		s.out.Message(string(pt))
		crypto.Wipe(pt)
		s.out.Prompt()
	}
}

func (s *Session) reportInbound(err error) {
	if errors.Is(err, transport.ErrConnectionClosed) {
		s.log.WithError(err).Info("peer closed the connection")
		s.out.Notice("Peer closed the connection.")
		return
	}
	s.log.WithError(err).Warn("inbound loop stopped")
	s.out.Notice("Receive error: " + err.Error())
}

// outbound returns quit=true when the operator typed /quit, and a non-nil
// error only for failures (input errors other than EOF, write errors).
func (s *Session) outbound() (quit bool, err error) {
	defer func() {
		if cerr := s.closeWrite(); cerr != nil {
			s.log.WithError(cerr).Debug("close write half")
		}
	}()

	for {
		line, rerr := s.in.ReadLine()
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				s.log.Debug("input exhausted")
				return false, nil
			}
			err = oops.Wrapf(rerr, "read operator input")
			s.log.WithError(err).Warn("outbound loop stopped")
			s.out.Notice("Input error: " + err.Error())
			return false, err
		}

		text := strings.TrimRight(line, "\r\n")
		switch text {
		case "":
			s.out.Prompt()
			continue
		case QuitCommand:
			s.out.Notice("Closing connection...")
			return true, nil
		}

		pt := []byte(text)
		ct := crypto.ApplyKeystream(pt, s.send)
		crypto.Wipe(pt)
		if werr := transport.WriteFrame(s.w, ct); werr != nil {
			s.log.WithError(werr).Warn("outbound loop stopped")
			s.out.Notice("Send error: " + werr.Error())
			return false, werr
		}
		s.log.WithField("bytes", len(ct)).Debug("frame sent")
		s.out.Prompt()
	}
}
