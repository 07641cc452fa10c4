package session

import (
	"context"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamchat/internal/chat"
	"streamchat/internal/protocol/dh"
	"streamchat/internal/transport"
)

type lines chan string

func (l lines) ReadLine() (string, error) {
	s, ok := <-l
	if !ok {
		return "", io.EOF
	}
	return s, nil
}

type display struct {
	messages chan string
	mu       sync.Mutex
	notices  []string
}

func newDisplay() *display { return &display{messages: make(chan string, 8)} }

func (d *display) Message(text string) { d.messages <- text }
func (d *display) Prompt()             {}
func (d *display) Notice(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices = append(d.notices, text)
}

func (d *display) hasNotice(prefix string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, n := range d.notices {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	return false
}

type result struct {
	out chat.Outcome
	err error
}

func TestServeAndConnect(t *testing.T) {
	ctx := context.Background()
	ln, err := transport.Listen(ctx, "127.0.0.1", 0)
	require.NoError(t, err)
	defer ln.Close()

	opts := Options{Params: dh.DefaultParams(), DialTimeout: time.Second, MaxFrameSize: 1 << 20}

	srvIn, srvOut := make(lines, 4), newDisplay()
	cliIn, cliOut := make(lines, 4), newDisplay()
	server := New(opts, srvIn, srvOut)
	client := New(opts, cliIn, cliOut)

	srvDone := make(chan result, 1)
	go func() {
		o, err := server.Serve(ctx, ln)
		srvDone <- result{o, err}
	}()
	cliDone := make(chan result, 1)
	go func() {
		o, err := client.Connect(ctx, ln.Addr().String())
		cliDone <- result{o, err}
	}()

	srvIn <- "hello\n"
	select {
	case m := <-cliOut.messages:
		assert.Equal(t, "hello", m)
	case <-time.After(5 * time.Second):
		t.Fatal("client never received hello")
	}

	cliIn <- "hi!\n"
	select {
	case m := <-srvOut.messages:
		assert.Equal(t, "hi!", m)
	case <-time.After(5 * time.Second):
		t.Fatal("server never received reply")
	}

	cliIn <- "/quit\n"
	srvIn <- "/quit\n"

	for _, ch := range []chan result{srvDone, cliDone} {
		select {
		case r := <-ch:
			require.NoError(t, r.err)
			assert.True(t, r.out.Quit)
		case <-time.After(5 * time.Second):
			t.Fatal("session did not finish")
		}
	}
	assert.True(t, srvOut.hasNotice("Shared secret established, fingerprint "))
	assert.True(t, cliOut.hasNotice("Shared secret established, fingerprint "))
}

func TestConnect_Refused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	svc := New(Options{Params: dh.DefaultParams(), DialTimeout: time.Second}, make(lines), newDisplay())
	_, err = svc.Connect(context.Background(), addr)
	assert.ErrorIs(t, err, transport.ErrConnect)
}

func TestServe_HandshakeFailure(t *testing.T) {
	ctx := context.Background()
	ln, err := transport.Listen(ctx, "127.0.0.1", 0)
	require.NoError(t, err)
	defer ln.Close()

	svc := New(Options{Params: dh.DefaultParams()}, make(lines), newDisplay())
	done := make(chan error, 1)
	go func() {
		_, err := svc.Serve(ctx, ln)
		done <- err
	}()

	// Connect, swallow the responder's public key, then hang up.
	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	_, err = transport.RecvExact(conn, dh.PublicKeySize)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, dh.ErrHandshake)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return")
	}
}

func TestServe_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ln, err := transport.Listen(ctx, "127.0.0.1", 0)
	require.NoError(t, err)

	svc := New(Options{Params: dh.DefaultParams()}, make(lines), newDisplay())
	cancel()
	_, err = svc.Serve(ctx, ln)
	assert.ErrorIs(t, err, transport.ErrAccept)
}
