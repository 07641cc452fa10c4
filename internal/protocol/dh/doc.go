// Package dh implements the 64-bit Diffie-Hellman exchange that opens every
// chat session.
//
// # Overview
//
// Both parties share public parameters (a 64-bit prime P and generator G,
// see Params). Each side draws a uniformly random 64-bit private value x,
// publishes G^x mod P, and raises the peer's public value to its own private
// value to reach the same shared secret.
//
// # Flow
//
// Responder (listening side):
//  1. Generate a key pair.
//  2. Send the public value as 8 big-endian bytes.
//  3. Receive the initiator's 8-byte public value.
//  4. Compute the shared secret.
//
// Initiator (connecting side):
//  1. Generate a key pair.
//  2. Receive the responder's 8-byte public value.
//  3. Send its own public value.
//  4. Compute the shared secret.
//
// The messages are independent, so the order only matters in that both sides
// must not block reading at the same time on a synchronous stream.
//
// # Errors
//
// Any I/O failure during the exchange is returned wrapped in ErrHandshake;
// there is no retry. ErrInvalidParams reports unusable group parameters.
//
// # Security notes
//
// The exchange is unauthenticated and the group is tiny. It offers no
// protection against an active man-in-the-middle, replay, or offline
// discrete-log attacks, and it has no forward secrecy.
package dh
