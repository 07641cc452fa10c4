package types

// SessionState is the lifecycle of a duplex session.
type SessionState int32

const (
	// SessionActive is entered right after the handshake.
	SessionActive SessionState = iota
	// SessionClosed is entered when either loop terminates.
	SessionClosed
)

// String returns the state name.
func (s SessionState) String() string {
	if s == SessionActive {
		return "active"
	}
	return "closed"
}
