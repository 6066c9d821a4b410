package model

// FileID uniquely identifies a file attachment
type FileID string

// File is a reference attachment belonging to one game.
// The link points at an externally hosted resource.
type File struct {
	ID    FileID `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// FileInput is the payload for attaching a file to a game
type FileInput struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}
