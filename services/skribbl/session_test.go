package skribbl

import (
	"context"
	"testing"
	"time"

	"skribbl/constants/events"
	"skribbl/models"
	"skribbl/services/transport"

	"github.com/stretchr/testify/assert"
)

// joinWithFakes runs the full Join flow against scripted connections and
// returns the session plus the room-side connection for firing events.
func joinWithFakes(t *testing.T, opts Options) (*Session, *fakeConn) {
	t.Helper()

	loginConn := newFakeConn()
	loginConn.onEmit = func(event string, payload interface{}) {
		if event == events.Login {
			loginConn.fire(events.Result, map[string]interface{}{
				"code": float64(1),
				"host": "wss://game1.skribbl.io:5001",
			})
		}
	}
	roomConn := newFakeConn()

	conns := []*fakeConn{loginConn, roomConn}
	opts.Dial = func(string) transport.Conn {
		c := conns[0]
		conns = conns[1:]
		return c
	}
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}

	session, err := Join(context.Background(), testPlayer(), opts)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	t.Cleanup(session.Close)
	return session, roomConn
}

func rosterEntry(id int, name string, score int, guessed bool) map[string]interface{} {
	return map[string]interface{}{
		"id":          float64(id),
		"name":        name,
		"avatar":      []interface{}{float64(2), float64(9), float64(16), float64(-1)},
		"score":       float64(score),
		"guessedWord": guessed,
	}
}

func lobbyPayload(myID, ownerID int, language string, players ...interface{}) map[string]interface{} {
	return map[string]interface{}{
		"myID":         float64(myID),
		"ownerID":      float64(ownerID),
		"language":     language,
		"drawCommands": []interface{}{},
		"players":      players,
	}
}

func TestJoinSendsUserData(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	assert.Equal(t, StateConnecting, session.State())

	sent := roomConn.emittedEvents()
	if assert.Len(t, sent, 1) {
		assert.Equal(t, events.UserData, sent[0].event)
		profile, ok := sent[0].payload.(models.UserProfile)
		if assert.True(t, ok) {
			assert.Equal(t, "test", profile.Name)
		}
	}
}

func TestReadsBeforeLobbyConnected(t *testing.T) {
	session, _ := joinWithFakes(t, Options{})

	_, err := session.Game()
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = session.Me()
	assert.ErrorIs(t, err, ErrNotConnected)
	_, _, err = session.Owner()
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestLobbyConnected(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(3, 1, "English",
		rosterEntry(1, "alice", 120, false),
		rosterEntry(3, "test", 0, false),
	))

	assert.Equal(t, StateInRoom, session.State())

	me, err := session.Me()
	assert.NoError(t, err)
	assert.Equal(t, "test", me.Player.Name)

	owner, ok, err := session.Owner()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", owner.Player.Name)
	assert.Equal(t, 120, owner.Score)

	snapshot, err := session.Game()
	assert.NoError(t, err)
	assert.Equal(t, 3, snapshot.BotID)
	assert.Equal(t, models.LanguageEnglish, snapshot.Language)
	assert.Len(t, snapshot.Players, 2)
}

func TestOwnerAbsentInPublicRoom(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(3, 999, "English",
		rosterEntry(3, "test", 0, false),
	))

	_, ok, err := session.Owner()
	assert.NoError(t, err)
	assert.False(t, ok, "owner id outside the roster means a public room, not an error")
}

func TestRoundSequence(t *testing.T) {
	// lobbyConnected -> player 2 joins -> player 2 guesses.
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "English",
		rosterEntry(1, "test", 0, false),
	))
	roomConn.fire(events.LobbyPlayerConnected, rosterEntry(2, "bob", 0, false))
	roomConn.fire(events.LobbyPlayerGuessedWord, float64(2))

	snapshot, err := session.Game()
	assert.NoError(t, err)
	assert.True(t, snapshot.Players[2].GuessedWord)
	assert.False(t, snapshot.Players[1].GuessedWord)
}

func TestPlayerDisconnectIsIdempotent(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "English",
		rosterEntry(1, "test", 0, false),
		rosterEntry(2, "bob", 50, false),
	))

	roomConn.fire(events.LobbyPlayerDisconnected, float64(2))
	after, err := session.Game()
	assert.NoError(t, err)

	roomConn.fire(events.LobbyPlayerDisconnected, float64(2))
	again, err := session.Game()
	assert.NoError(t, err)

	assert.Equal(t, after.Players, again.Players)
	assert.Len(t, again.Players, 1)
}

func TestPlayerRejoinUpdatesInsteadOfDuplicating(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "English",
		rosterEntry(1, "test", 0, false),
		rosterEntry(2, "bob", 50, false),
	))
	roomConn.fire(events.LobbyPlayerConnected, rosterEntry(2, "bob", 75, true))

	snapshot, err := session.Game()
	assert.NoError(t, err)
	assert.Len(t, snapshot.Players, 2)
	assert.Equal(t, 75, snapshot.Players[2].Score)
	assert.True(t, snapshot.Players[2].GuessedWord)
}

func TestGuessedWordUnknownIdIsIgnored(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "English",
		rosterEntry(1, "test", 0, false),
	))
	roomConn.fire(events.LobbyPlayerGuessedWord, float64(42))

	snapshot, err := session.Game()
	assert.NoError(t, err)
	assert.Len(t, snapshot.Players, 1)
}

func TestCurrentWordRevealed(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "English",
		rosterEntry(1, "test", 0, false),
	))
	roomConn.fire(events.LobbyCurrentWord, "crocodile")

	snapshot, err := session.Game()
	assert.NoError(t, err)
	assert.Equal(t, "crocodile", snapshot.CurrentWord)
}

func TestLanguageChange(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "English",
		rosterEntry(1, "test", 0, false),
	))

	t.Run("lowercase wire value is normalized", func(t *testing.T) {
		roomConn.fire(events.LobbyLanguage, "german")
		snapshot, err := session.Game()
		assert.NoError(t, err)
		assert.Equal(t, models.LanguageGerman, snapshot.Language)
	})

	t.Run("unknown language leaves state untouched", func(t *testing.T) {
		roomConn.fire(events.LobbyLanguage, "not-a-language")
		snapshot, err := session.Game()
		assert.NoError(t, err)
		assert.Equal(t, models.LanguageGerman, snapshot.Language)
	})
}

func TestChatFromUnknownIdDoesNotCrash(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "English",
		rosterEntry(1, "test", 0, false),
	))
	roomConn.fire(events.Chat, map[string]interface{}{"id": float64(77), "message": "hi"})

	assert.Equal(t, StateInRoom, session.State())
}

func TestEventsBeforeLobbyConnectedAreReportedNotFatal(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyPlayerGuessedWord, float64(1))
	roomConn.fire(events.LobbyLanguage, "german")

	assert.Equal(t, StateConnecting, session.State())
	_, err := session.Game()
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestUnknownEventIsObservedNotFatal(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire("somethingNew", map[string]interface{}{"x": float64(1)})
	assert.Equal(t, StateConnecting, session.State())
}

func TestCanvasEvents(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "English",
		rosterEntry(1, "test", 0, false),
	))
	roomConn.fire(events.DrawCommands, []interface{}{
		[]interface{}{float64(0), float64(1), float64(2)},
		[]interface{}{float64(3), float64(4), float64(5)},
	})

	snapshot, err := session.Game()
	assert.NoError(t, err)
	assert.Len(t, snapshot.Canvas, 2)

	roomConn.fire(events.CanvasClear)
	snapshot, err = session.Game()
	assert.NoError(t, err)
	assert.Empty(t, snapshot.Canvas)
}

func TestMalformedLobbyConnectedIsFatal(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "not-a-language",
		rosterEntry(1, "test", 0, false),
	))

	assert.Equal(t, StateClosed, session.State())
}

func TestLobbyConnectedWithoutOwnEntryIsFatal(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 2, "English",
		rosterEntry(2, "someone-else", 0, false),
	))

	assert.Equal(t, StateClosed, session.State())
}

func TestLobbyConnectedAfterCloseIsIgnored(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})
	session.Close()

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "English",
		rosterEntry(1, "test", 0, false),
	))

	assert.Equal(t, StateClosed, session.State(), "Closed is terminal")
	_, err := session.Game()
	assert.ErrorIs(t, err, ErrNotConnected, "no Game may be installed on a closed session")
	_, err = session.Me()
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestCloseUnblocksWait(t *testing.T) {
	session, _ := joinWithFakes(t, Options{})

	waited := make(chan struct{})
	go func() {
		session.Wait()
		close(waited)
	}()

	session.Close()

	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Close")
	}
	assert.Equal(t, StateClosed, session.State())
}

func TestRemoteDisconnectClosesSession(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.Disconnect()

	assert.Eventually(t, func() bool {
		return session.State() == StateClosed
	}, time.Second, 10*time.Millisecond)
}

func TestSayAfterCloseFails(t *testing.T) {
	session, _ := joinWithFakes(t, Options{})
	session.Close()
	assert.Error(t, session.Say("hello"))
}

func TestSnapshotIsACopy(t *testing.T) {
	session, roomConn := joinWithFakes(t, Options{})

	roomConn.fire(events.LobbyConnected, lobbyPayload(1, 1, "English",
		rosterEntry(1, "test", 0, false),
	))

	snapshot, err := session.Game()
	assert.NoError(t, err)
	snapshot.Players[99] = models.Entry{}

	fresh, err := session.Game()
	assert.NoError(t, err)
	assert.Len(t, fresh.Players, 1, "mutating a snapshot must not touch live state")
}
