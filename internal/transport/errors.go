package transport

import "errors"

// Match these with errors.Is; call sites wrap them with oops for context.
var (
	ErrConnectionClosed = errors.New("connection closed before receiving enough data")
	ErrIO               = errors.New("stream I/O failure")
	ErrFrameTooLarge    = errors.New("frame length exceeds limit")
	ErrBind             = errors.New("bind failed")
	ErrAccept           = errors.New("accept failed")
	ErrConnect          = errors.New("connect failed")
)
