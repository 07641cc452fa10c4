package types

// Role selects which of the two derived keystreams a party sends with.
// It is fixed for the lifetime of a session.
type Role int

const (
	// RoleInitiator is the connecting side (CLI "client").
	RoleInitiator Role = iota
	// RoleResponder is the listening side (CLI "server").
	RoleResponder
)

// String returns the lower-case role name used in logs.
func (r Role) String() string {
	switch r {
	case RoleInitiator:
		return "initiator"
	case RoleResponder:
		return "responder"
	default:
		return "unknown"
	}
}

// Fingerprint is a short identifier for a shared secret presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
