// Package session establishes chat sessions and runs them to completion.
//
// Serve accepts one peer on a listener and takes the responder role; Connect
// dials a peer and takes the initiator role. Both then run the key exchange,
// print the secret's fingerprint so the operators can compare it, and hand
// the connection to a chat.Session until both of its loops end.
package session
