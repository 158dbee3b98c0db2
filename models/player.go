package models

// Player is the immutable identity of one person in a room.
type Player struct {
	Name   string `json:"name"`
	Avatar Avatar `json:"avatar"`
}

// Entry is one seat in the room roster: a player plus the per-round state
// the server tracks for them. Mutated only by inbound events.
type Entry struct {
	Player      Player `json:"player"`
	Score       int    `json:"score"`
	GuessedWord bool   `json:"guessedWord"`
}

// UserProfile is the canonical profile payload. The same shape is sent to
// the login endpoint ("login") and to the room host ("userData").
type UserProfile struct {
	Code          string   `json:"code"`
	Join          string   `json:"join"`
	Language      Language `json:"language"`
	CreatePrivate bool     `json:"createPrivate"`
	Name          string   `json:"name"`
	Avatar        Avatar   `json:"avatar"`
}
