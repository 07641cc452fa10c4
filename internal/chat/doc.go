// Package chat runs an established, keyed connection as a duplex chat.
//
// A Session owns the stream after the handshake. Run starts two goroutines:
//
//   - inbound reads frames, drops zero-length ones, decrypts with the receive
//     keystream and shows the plaintext;
//   - outbound reads operator lines, skips empty ones, stops on "/quit" or end
//     of input, and otherwise encrypts with the send keystream and writes a
//     frame.
//
// The inbound goroutine is the only reader of the stream and the outbound
// goroutine the only writer; each owns its keystream outright, so nothing is
// shared between them and no locks are taken. The keystreams must stay
// aligned with the peer's, which holds as long as every frame is consumed in
// order. Neither loop can cancel the other: when one ends, the other carries
// on until it hits its own error or end of input, and Run returns after both.
package chat
