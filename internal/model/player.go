package model

// PlayerID uniquely identifies a player
type PlayerID string

// Player is a named participant shared across sessions.
// Identity is by name when resolving user input, by ID once persisted.
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}
