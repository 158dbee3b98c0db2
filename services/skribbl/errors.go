package skribbl

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when room state is read before the
// lobbyConnected event has been received.
var ErrNotConnected = errors.New("not connected to a lobby")

// AuthenticationError means the login gateway rejected the join attempt.
// It is fatal to the attempt and never retried internally.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Reason
}

// ProtocolError means an inbound payload did not match the contract for
// its event. Outside of lobbyConnected these are logged and the session
// keeps processing later events.
type ProtocolError struct {
	Event string
	Err   error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error on %q: %v", e.Event, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
