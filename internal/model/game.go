package model

import "time"

// GameID uniquely identifies a game on the backend
type GameID string

// Game is a board-game catalog entry as served by the backend.
// The client never mutates these locally; every change goes through the API.
type Game struct {
	ID          GameID    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Genre       string    `json:"genre"`
	MinPlayers  int       `json:"minPlayers"`
	MaxPlayers  int       `json:"maxPlayers"`
	PlayTime    int       `json:"playTime"` // minutes
	Publisher   string    `json:"publisher"`
	Age         string    `json:"age"`
	Rating      float64   `json:"rating"`
	MyRating    *float64  `json:"myRating,omitempty"`
	CoverImage  string    `json:"coverImage"`
	IsOwned     bool      `json:"isOwned"`
	Sessions    []Session `json:"sessions,omitempty"`
	Tags        []Tag     `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`

	// Present only on wishlist listings
	Wishlist *WishlistEntry `json:"wishlist,omitempty"`
}

// TagTitles returns the titles of the game's tags in order
func (g *Game) TagTitles() []string {
	titles := make([]string, 0, len(g.Tags))
	for _, t := range g.Tags {
		titles = append(titles, t.Title)
	}
	return titles
}

// HasTag reports whether the game carries a tag with the given title.
// Tag titles are compared exactly.
func (g *Game) HasTag(title string) bool {
	for _, t := range g.Tags {
		if t.Title == title {
			return true
		}
	}
	return false
}

// WishlistEntry records a game's membership in the owner's wishlist
type WishlistEntry struct {
	ID        string    `json:"id"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// GameInput is the payload for creating or updating a game
type GameInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Genre       string     `json:"genre"`
	MinPlayers  int        `json:"minPlayers"`
	MaxPlayers  int        `json:"maxPlayers"`
	PlayTime    int        `json:"playTime"`
	Publisher   string     `json:"publisher"`
	Age         string     `json:"age"`
	Rating      float64    `json:"rating"`
	MyRating    *float64   `json:"myRating,omitempty"`
	CoverImage  string     `json:"coverImage"`
	IsOwned     bool       `json:"isOwned"`
	Tags        []TagInput `json:"tags"`
}
