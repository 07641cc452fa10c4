// Package transport moves bytes between the two chat peers.
//
// It provides the exact-length primitives every other layer is built on
// (SendExact, RecvExact), the chat frame codec, and the collaborators that
// establish the underlying TCP stream.
//
// # Frames
//
// A frame is a 4-byte big-endian length followed by exactly that many payload
// bytes:
//
//	+----------------+----------------------+
//	| length (u32BE) | payload (length B)   |
//	+----------------+----------------------+
//
// A zero length is legal and carries no payload.
//
// # Errors
//
// ErrConnectionClosed is returned when the peer closes before a requested
// length has been read. Other read and write failures wrap ErrIO. Connection
// establishment failures wrap ErrBind, ErrAccept or ErrConnect.
package transport
