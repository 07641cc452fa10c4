package interfaces

// LineSource yields operator input one line at a time. The returned line may
// still carry its terminator. io.EOF signals that no more input will arrive.
type LineSource interface {
	ReadLine() (string, error)
}

// Display receives everything the session shows to the operator. Both session
// loops call it concurrently, so implementations must be safe for that.
type Display interface {
	// Message shows a decrypted message from the peer.
	Message(text string)
	// Notice shows a status line (connection events, diagnostics).
	Notice(text string)
	// Prompt shows the input prompt.
	Prompt()
}
