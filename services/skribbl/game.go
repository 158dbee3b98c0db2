package skribbl

import "skribbl/models"

// Game mirrors the server-authoritative state of one room. It is created
// by the lobbyConnected event and mutated exclusively by event handlers;
// the Session's lock makes each mutation atomic, so Game itself carries no
// synchronization. External consumers get copies via Snapshot.
type Game struct {
	botID   int
	ownerID int

	language models.Language

	// Draw commands are opaque to the client: stored, never interpreted.
	canvas []interface{}

	currentWord string
	wordKnown   bool

	players map[int]models.Entry
}

func newGame(botID, ownerID int, language models.Language) *Game {
	return &Game{
		botID:    botID,
		ownerID:  ownerID,
		language: language,
		players:  make(map[int]models.Entry),
	}
}

// upsertPlayer inserts a roster entry, or replaces it on a rejoin of the
// same id. The roster never grows from the same id twice.
func (g *Game) upsertPlayer(id int, e models.Entry) {
	g.players[id] = e
}

// removePlayer is idempotent: removing an id that already left is a no-op.
func (g *Game) removePlayer(id int) {
	delete(g.players, id)
}

// markGuessed flags a player as having guessed the word. Returns false if
// the id is not in the roster.
func (g *Game) markGuessed(id int) bool {
	e, ok := g.players[id]
	if !ok {
		return false
	}
	e.GuessedWord = true
	g.players[id] = e
	return true
}

func (g *Game) setWord(word string) {
	g.currentWord = word
	g.wordKnown = true
}

func (g *Game) setLanguage(l models.Language) {
	g.language = l
}

func (g *Game) appendCanvas(commands ...interface{}) {
	g.canvas = append(g.canvas, commands...)
}

func (g *Game) clearCanvas() {
	g.canvas = nil
}

// Owner returns the owner's roster entry. In public rooms the owner id
// does not reference a player; that reports absent, not an error.
func (g *Game) Owner() (models.Entry, bool) {
	e, ok := g.players[g.ownerID]
	return e, ok
}

// Me returns the bot's own roster entry. The bot is always a member of
// its own room.
func (g *Game) Me() models.Entry {
	return g.players[g.botID]
}

// Snapshot is a point-in-time copy of a Game, safe to hand to consumers.
type Snapshot struct {
	BotID       int                  `json:"botId"`
	OwnerID     int                  `json:"ownerId"`
	Language    models.Language      `json:"language"`
	CurrentWord string               `json:"currentWord,omitempty"`
	Canvas      []interface{}        `json:"canvas,omitempty"`
	Players     map[int]models.Entry `json:"players"`
}

func (g *Game) snapshot() Snapshot {
	players := make(map[int]models.Entry, len(g.players))
	for id, e := range g.players {
		players[id] = e
	}
	canvas := make([]interface{}, len(g.canvas))
	copy(canvas, g.canvas)
	return Snapshot{
		BotID:       g.botID,
		OwnerID:     g.ownerID,
		Language:    g.language,
		CurrentWord: g.currentWord,
		Canvas:      canvas,
		Players:     players,
	}
}
