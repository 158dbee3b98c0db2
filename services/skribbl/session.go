package skribbl

import (
	"context"
	"fmt"
	"log"
	"sync"

	"skribbl/constants/events"
	"skribbl/models"
	"skribbl/services/transport"
)

// State is the session lifecycle position.
type State int32

const (
	StateAuthenticating State = iota
	StateConnecting
	StateInRoom
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateConnecting:
		return "connecting"
	case StateInRoom:
		return "in_room"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Session owns one long-lived room connection and the Game mirror fed by
// its event stream. A Session is not reusable after Close; reconnecting
// means a fresh Join.
//
// The mutex serializes event handlers against each other and against read
// accessors, so every state transition in handlers.go is atomic.
type Session struct {
	conn transport.Conn
	log  *log.Logger

	mu    sync.RWMutex
	state State
	game  *Game
}

// Join authenticates against the login gateway, connects to the room host
// it returns, sends the canonical profile and starts consuming the event
// stream. The returned Session is Connecting until the room pushes its
// lobbyConnected snapshot.
func Join(ctx context.Context, player models.Player, opts Options) (*Session, error) {
	logger := opts.logger()

	host, profile, err := login(ctx, player, opts)
	if err != nil {
		return nil, err
	}

	s := &Session{
		conn:  opts.dial()(host),
		log:   logger,
		state: StateConnecting,
	}
	s.registerHandlers()

	if err := s.conn.Connect(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("room connect: %w", err)
	}
	if err := s.conn.Emit(events.UserData, profile); err != nil {
		s.Close()
		return nil, fmt.Errorf("room emit userData: %w", err)
	}

	// Remote disconnects also end the lifecycle.
	go func() {
		s.conn.Wait()
		s.setClosed()
	}()

	return s, nil
}

// Wait blocks until the room connection ends, locally or remotely.
func (s *Session) Wait() {
	s.conn.Wait()
}

// Close tears the session down. Safe to call more than once; any pending
// Wait returns.
func (s *Session) Close() {
	s.setClosed()
	s.conn.Disconnect()
}

// Say sends a chat message (a guess, from the server's point of view).
func (s *Session) Say(message string) error {
	if s.State() == StateClosed {
		return fmt.Errorf("say: session closed")
	}
	return s.conn.Emit(events.Chat, message)
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Game returns a snapshot of the room state, or ErrNotConnected before
// the lobbyConnected event has arrived.
func (s *Session) Game() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.game == nil {
		return Snapshot{}, ErrNotConnected
	}
	return s.game.snapshot(), nil
}

// Owner returns the room owner's entry. ok is false in public rooms,
// where the owner id references no present player.
func (s *Session) Owner() (entry models.Entry, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.game == nil {
		return models.Entry{}, false, ErrNotConnected
	}
	entry, ok = s.game.Owner()
	return entry, ok, nil
}

// Me returns the bot's own roster entry.
func (s *Session) Me() (models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.game == nil {
		return models.Entry{}, ErrNotConnected
	}
	return s.game.Me(), nil
}

// setClosed is terminal: no transition leaves StateClosed.
func (s *Session) setClosed() {
	s.mu.Lock()
	s.state = StateClosed
	s.mu.Unlock()
}
