package model

import "time"

// SessionID uniquely identifies a play session
type SessionID string

// Session is a recorded instance of playing a game on a date.
// A session belongs to exactly one game; players are shared across sessions.
type Session struct {
	ID        SessionID `json:"id"`
	Date      string    `json:"date"` // yyyy-mm-dd
	Notes     string    `json:"notes,omitempty"`
	GameID    GameID    `json:"gameId"`
	Players   []Player  `json:"players,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlayerNames returns the names of the session's players in order
func (s *Session) PlayerNames() []string {
	names := make([]string, 0, len(s.Players))
	for _, p := range s.Players {
		names = append(names, p.Name)
	}
	return names
}

// SessionInput is the payload for creating or updating a session.
// Players are referenced by identifier; name resolution happens before submit.
type SessionInput struct {
	Date      string     `json:"date"`
	Notes     string     `json:"notes,omitempty"`
	PlayerIDs []PlayerID `json:"playerIds"`
}
