// Package playlog implements the play-session form and the player
// reconciliation flow: mapping user-entered player names to durable player
// records before a session is submitted.
package playlog

import (
	"strings"

	"github.com/bgshelf/bgshelf/internal/model"
)

// Form holds the state of the add/edit session form: a date, optional
// notes, and an ordered set of distinct player names.
type Form struct {
	Date  string
	Notes string

	players []string
}

// NewForm returns an empty session form
func NewForm() *Form {
	return &Form{}
}

// FormFromSession pre-fills a form from an existing session for editing
func FormFromSession(s model.Session) *Form {
	f := &Form{
		Date:  s.Date,
		Notes: s.Notes,
	}
	for _, p := range s.Players {
		f.players = append(f.players, p.Name)
	}
	return f
}

// AddPlayer adds a player name to the selection. Names are trimmed;
// empty names and duplicates against the current set are rejected.
func (f *Form) AddPlayer(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ErrEmptyPlayerName
	}
	for _, p := range f.players {
		if p == name {
			return model.ErrDuplicatePlayer
		}
	}
	f.players = append(f.players, name)
	return nil
}

// RemovePlayer removes a player name from the selection
func (f *Form) RemovePlayer(name string) error {
	for i, p := range f.players {
		if p == name {
			f.players = append(f.players[:i], f.players[i+1:]...)
			return nil
		}
	}
	return model.ErrPlayerNotSelected
}

// Players returns the selected player names in selection order
func (f *Form) Players() []string {
	out := make([]string, len(f.players))
	copy(out, f.players)
	return out
}

// Validate is the submission guard: a session needs a date and at least
// one player. No network call is made for an invalid form.
func (f *Form) Validate() error {
	if f.Date == "" {
		return model.ErrEmptySessionDate
	}
	if len(f.players) == 0 {
		return model.ErrNoPlayersSelected
	}
	return nil
}

// Reset clears the form back to its empty state
func (f *Form) Reset() {
	f.Date = ""
	f.Notes = ""
	f.players = nil
}
