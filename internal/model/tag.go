package model

// TagID uniquely identifies a tag
type TagID string

// Tag is a free-form label used for categorisation and filtering.
// Tags are many-to-many with games and unique by title.
type Tag struct {
	ID    TagID  `json:"id"`
	Title string `json:"title"`
}

// TagInput references a tag by title when creating or updating a game.
// The backend resolves titles to existing tags or creates new ones.
type TagInput struct {
	Title string `json:"title"`
}
