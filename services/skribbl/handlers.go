package skribbl

import (
	"strconv"

	"skribbl/constants/events"
	"skribbl/models"
	"skribbl/services/transport"
)

// knownEvents keeps the catch-all diagnostic handler from double-reporting
// events that already have a real handler.
var knownEvents = map[string]struct{}{
	events.Result:                  {},
	events.Chat:                    {},
	events.LobbyConnected:          {},
	events.LobbyCurrentWord:        {},
	events.LobbyLanguage:           {},
	events.LobbyPlayerConnected:    {},
	events.LobbyPlayerDisconnected: {},
	events.LobbyPlayerGuessedWord:  {},
	events.DrawCommands:            {},
	events.CanvasClear:             {},
}

func (s *Session) registerHandlers() {
	s.conn.On(events.LobbyConnected, s.handleLobbyConnected())
	s.conn.On(events.Chat, s.handleChat())
	s.conn.On(events.LobbyCurrentWord, s.handleCurrentWord())
	s.conn.On(events.LobbyLanguage, s.handleLanguage())
	s.conn.On(events.LobbyPlayerConnected, s.handlePlayerJoined())
	s.conn.On(events.LobbyPlayerDisconnected, s.handlePlayerDisconnected())
	s.conn.On(events.LobbyPlayerGuessedWord, s.handlePlayerGuessedWord())
	s.conn.On(events.DrawCommands, s.handleDrawCommands())
	s.conn.On(events.CanvasClear, s.handleCanvasClear())
	s.conn.OnAny(s.handleUnknown())
}

// handleLobbyConnected replaces the Game wholesale. A malformed payload
// here is fatal to the join: there is no state to fall back on.
func (s *Session) handleLobbyConnected() transport.Handler {
	return func(args ...interface{}) {
		if len(args) < 1 {
			s.log.Printf("[LOBBY-ERROR] lobbyConnected without payload, closing")
			s.Close()
			return
		}
		var p lobbyConnectedPayload
		if err := decodePayload(events.LobbyConnected, args[0], &p); err != nil {
			s.log.Printf("[LOBBY-ERROR] %v, closing", err)
			s.Close()
			return
		}
		language, err := models.ParseLanguage(p.Language)
		if err != nil {
			s.log.Printf("[LOBBY-ERROR] %v, closing", &ProtocolError{Event: events.LobbyConnected, Err: err})
			s.Close()
			return
		}

		game := newGame(p.MyID, p.OwnerID, language)
		game.appendCanvas(p.DrawCommands...)
		for _, entry := range p.Players {
			game.upsertPlayer(entry.ID, entry.entry())
		}
		if _, ok := game.players[game.botID]; !ok {
			s.log.Printf("[LOBBY-ERROR] roster does not contain own id %d, closing", game.botID)
			s.Close()
			return
		}

		s.mu.Lock()
		if s.state != StateConnecting {
			state := s.state
			s.mu.Unlock()
			s.log.Printf("[LOBBY] ignoring lobbyConnected in state %s", state)
			return
		}
		s.game = game
		s.state = StateInRoom
		s.mu.Unlock()

		s.log.Printf("[LOBBY] connected: %d players, owner %d, me %d, language %s",
			len(game.players), game.ownerID, game.botID, game.language)
	}
}

func (s *Session) handleChat() transport.Handler {
	return func(args ...interface{}) {
		if len(args) < 1 {
			s.log.Printf("[CHAT-ERROR] chat without payload")
			return
		}
		var p chatPayload
		if err := decodePayload(events.Chat, args[0], &p); err != nil {
			s.log.Printf("[CHAT-ERROR] %v", err)
			return
		}
		game, ok := s.lockGame(events.Chat)
		if !ok {
			return
		}
		defer s.mu.Unlock()
		// Chat from an id we don't know (already left, or not yet in the
		// roster) falls back to the raw id instead of failing.
		name := strconv.Itoa(p.ID)
		if entry, present := game.players[p.ID]; present {
			name = entry.Player.Name
		}
		s.log.Printf("[CHAT] %s: %s", name, p.Message)
	}
}

func (s *Session) handleCurrentWord() transport.Handler {
	return func(args ...interface{}) {
		word, err := stringArg(events.LobbyCurrentWord, args)
		if err != nil {
			s.log.Printf("[WORD-ERROR] %v", err)
			return
		}
		game, ok := s.lockGame(events.LobbyCurrentWord)
		if !ok {
			return
		}
		defer s.mu.Unlock()
		game.setWord(word)
		s.log.Printf("[WORD] current word: %s", word)
	}
}

// handleLanguage normalizes the wire casing before matching; an
// unrecognized language is a ProtocolError and leaves state untouched.
func (s *Session) handleLanguage() transport.Handler {
	return func(args ...interface{}) {
		wire, err := stringArg(events.LobbyLanguage, args)
		if err != nil {
			s.log.Printf("[LANGUAGE-ERROR] %v", err)
			return
		}
		language, err := models.ParseLanguage(wire)
		if err != nil {
			s.log.Printf("[LANGUAGE-ERROR] %v", &ProtocolError{Event: events.LobbyLanguage, Err: err})
			return
		}
		game, ok := s.lockGame(events.LobbyLanguage)
		if !ok {
			return
		}
		defer s.mu.Unlock()
		game.setLanguage(language)
		s.log.Printf("[LANGUAGE] set to %s", language)
	}
}

func (s *Session) handlePlayerJoined() transport.Handler {
	return func(args ...interface{}) {
		if len(args) < 1 {
			s.log.Printf("[JOIN-ERROR] lobbyPlayerConnected without payload")
			return
		}
		var p rosterEntryPayload
		if err := decodePayload(events.LobbyPlayerConnected, args[0], &p); err != nil {
			s.log.Printf("[JOIN-ERROR] %v", err)
			return
		}
		game, ok := s.lockGame(events.LobbyPlayerConnected)
		if !ok {
			return
		}
		defer s.mu.Unlock()
		// Same id again is a rejoin: replace the entry, never duplicate.
		game.upsertPlayer(p.ID, p.entry())
		s.log.Printf("[JOIN] player %d (%s) joined", p.ID, p.Name)
	}
}

func (s *Session) handlePlayerDisconnected() transport.Handler {
	return func(args ...interface{}) {
		id, err := intArg(events.LobbyPlayerDisconnected, args)
		if err != nil {
			s.log.Printf("[DISCONNECT-ERROR] %v", err)
			return
		}
		game, ok := s.lockGame(events.LobbyPlayerDisconnected)
		if !ok {
			return
		}
		defer s.mu.Unlock()
		// Idempotent: a disconnect for an id already gone is a no-op.
		game.removePlayer(id)
		s.log.Printf("[DISCONNECT] player %d left", id)
	}
}

func (s *Session) handlePlayerGuessedWord() transport.Handler {
	return func(args ...interface{}) {
		id, err := intArg(events.LobbyPlayerGuessedWord, args)
		if err != nil {
			s.log.Printf("[GUESS-ERROR] %v", err)
			return
		}
		game, ok := s.lockGame(events.LobbyPlayerGuessedWord)
		if !ok {
			return
		}
		defer s.mu.Unlock()
		if !game.markGuessed(id) {
			s.log.Printf("[GUESS] unknown player id %d, ignoring", id)
			return
		}
		s.log.Printf("[GUESS] player %d guessed the word", id)
	}
}

func (s *Session) handleDrawCommands() transport.Handler {
	return func(args ...interface{}) {
		if len(args) < 1 {
			return
		}
		game, ok := s.lockGame(events.DrawCommands)
		if !ok {
			return
		}
		defer s.mu.Unlock()
		// The payload is either one batch of commands or a single command.
		if batch, isBatch := args[0].([]interface{}); isBatch {
			game.appendCanvas(batch...)
		} else {
			game.appendCanvas(args...)
		}
	}
}

func (s *Session) handleCanvasClear() transport.Handler {
	return func(args ...interface{}) {
		game, ok := s.lockGame(events.CanvasClear)
		if !ok {
			return
		}
		defer s.mu.Unlock()
		game.clearCanvas()
		s.log.Printf("[CANVAS] cleared")
	}
}

// handleUnknown observes events without a registered handler so protocol
// additions show up in logs instead of disappearing. Never fatal.
func (s *Session) handleUnknown() transport.CatchAllHandler {
	return func(event string, args ...interface{}) {
		if _, known := knownEvents[event]; known {
			return
		}
		s.log.Printf("[EVENT] unhandled %q: %v", event, args)
	}
}

// lockGame takes the write lock and returns the Game, or logs an ordering
// violation and releases the lock when no Game exists yet. On ok the
// caller must unlock.
func (s *Session) lockGame(event string) (*Game, bool) {
	s.mu.Lock()
	if s.game == nil {
		s.mu.Unlock()
		s.log.Printf("[ORDER-ERROR] %q received before lobbyConnected", event)
		return nil, false
	}
	return s.game, true
}
