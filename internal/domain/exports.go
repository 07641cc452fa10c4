package domain

import (
	interfaces "streamchat/internal/domain/interfaces"
	types "streamchat/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Role         = types.Role
	Fingerprint  = types.Fingerprint
	KeyPair      = types.KeyPair
	SharedSecret = types.SharedSecret
	SessionState = types.SessionState
)

const (
	RoleInitiator = types.RoleInitiator
	RoleResponder = types.RoleResponder

	SessionActive = types.SessionActive
	SessionClosed = types.SessionClosed
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	LineSource = interfaces.LineSource
	Display    = interfaces.Display
)
