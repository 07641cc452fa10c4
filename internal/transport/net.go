package transport

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/samber/oops"

	"streamchat/internal/util/logger"
)

var log = logger.GetLogger()

// Listen binds a TCP listener on host:port.
func Listen(ctx context.Context, host string, port uint16) (net.Listener, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(int(port)))
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, oops.Wrapf(errors.Join(ErrBind, err), "listen on %s", addr)
	}
	log.WithField("addr", ln.Addr().String()).Info("listening")
	return ln, nil
}

// AcceptOne waits for a single inbound connection. Cancelling ctx closes ln
// to unblock the wait.
func AcceptOne(ctx context.Context, ln net.Listener) (net.Conn, error) {
	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	conn, err := ln.Accept()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, oops.Wrapf(errors.Join(ErrAccept, err), "accept on %s", ln.Addr())
	}
	log.WithField("peer", conn.RemoteAddr().String()).Info("peer connected")
	return conn, nil
}

// Dial connects to addr. A zero timeout leaves the limit to the OS.
func Dial(ctx context.Context, addr string, timeout time.Duration) (net.Conn, error) {
	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, oops.Wrapf(errors.Join(ErrConnect, err), "dial %s", addr)
	}
	log.WithField("peer", conn.RemoteAddr().String()).Info("connected")
	return conn, nil
}

// CloseWrite shuts down the sending direction of c when the stream supports
// half-close (TCP does). It reports whether anything was closed.
func CloseWrite(c any) (bool, error) {
	hc, ok := c.(interface{ CloseWrite() error })
	if !ok {
		return false, nil
	}
	return true, hc.CloseWrite()
}
