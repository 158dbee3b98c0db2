package transport

import "context"

// Handler receives the decoded arguments of one named event.
type Handler func(args ...interface{})

// CatchAllHandler receives events that were delivered with any name,
// including ones no Handler is registered for.
type CatchAllHandler func(event string, args ...interface{})

// Conn is a bidirectional named-event connection. Framing, heartbeats and
// socket-level reconnection belong to the implementation behind it; callers
// only see decoded event payloads.
//
// Handlers may be registered before Connect. Wait blocks until the
// connection is closed, whether locally via Disconnect or by the remote
// side, and must return promptly in both cases.
type Conn interface {
	Connect(ctx context.Context) error
	Emit(event string, payload interface{}) error
	On(event string, h Handler)
	OnAny(h CatchAllHandler)
	Wait()
	Disconnect()
}

// Dialer builds an unconnected Conn for a host URL.
type Dialer func(url string) Conn
