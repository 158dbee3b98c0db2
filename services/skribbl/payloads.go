package skribbl

import (
	"encoding/json"
	"fmt"

	"skribbl/models"
)

// Typed payload schemas, one per inbound event. Events arrive as generic
// decoded JSON; decodePayload re-marshals into the schema so a mismatch
// surfaces as a ProtocolError instead of a bad type assertion later on.

type resultPayload struct {
	Code int    `json:"code"`
	Host string `json:"host"`
}

type chatPayload struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

type rosterEntryPayload struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Avatar      models.Avatar `json:"avatar"`
	Score       int           `json:"score"`
	GuessedWord bool          `json:"guessedWord"`
}

func (p rosterEntryPayload) entry() models.Entry {
	return models.Entry{
		Player:      models.Player{Name: p.Name, Avatar: p.Avatar},
		Score:       p.Score,
		GuessedWord: p.GuessedWord,
	}
}

type lobbyConnectedPayload struct {
	MyID         int                  `json:"myID"`
	OwnerID      int                  `json:"ownerID"`
	Language     string               `json:"language"`
	DrawCommands []interface{}        `json:"drawCommands"`
	Players      []rosterEntryPayload `json:"players"`
}

func decodePayload(event string, arg interface{}, dst interface{}) error {
	raw, err := json.Marshal(arg)
	if err != nil {
		return &ProtocolError{Event: event, Err: err}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &ProtocolError{Event: event, Err: err}
	}
	return nil
}

// stringArg reads a bare string argument (lobbyCurrentWord, lobbyLanguage).
func stringArg(event string, args []interface{}) (string, error) {
	if len(args) < 1 {
		return "", &ProtocolError{Event: event, Err: fmt.Errorf("missing argument")}
	}
	s, ok := args[0].(string)
	if !ok {
		return "", &ProtocolError{Event: event, Err: fmt.Errorf("expected string, got %T", args[0])}
	}
	return s, nil
}

// intArg reads a bare player-id argument. JSON numbers decode as float64,
// but some transports hand through ints or json.Number.
func intArg(event string, args []interface{}) (int, error) {
	if len(args) < 1 {
		return 0, &ProtocolError{Event: event, Err: fmt.Errorf("missing argument")}
	}
	switch v := args[0].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, &ProtocolError{Event: event, Err: err}
		}
		return int(i), nil
	default:
		return 0, &ProtocolError{Event: event, Err: fmt.Errorf("expected number, got %T", args[0])}
	}
}
