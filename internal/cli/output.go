package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bgshelf/bgshelf/internal/model"
)

// Output handles formatting based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintWarning outputs a warning to stderr in either format
func (o *Output) PrintWarning(msg string) {
	fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.Game:
		o.printGame(v)
	case []model.Game:
		o.printGameList(v)
	case model.Session:
		o.printSession(v)
	case []model.Session:
		o.printSessionList(v)
	case model.Player:
		fmt.Printf("Player: %s (%s)\n", v.Name, v.ID)
	case []model.Player:
		for _, p := range v {
			fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
		}
	case []model.Tag:
		for _, t := range v {
			fmt.Printf("  - %s\n", t.Title)
		}
	case model.File:
		fmt.Printf("File: %s (%s)\n", v.Title, v.ID)
		fmt.Printf("Link: %s\n", v.Link)
	case []model.File:
		for _, f := range v {
			fmt.Printf("  - %s (%s): %s\n", f.Title, f.ID, f.Link)
		}
	case model.User:
		o.printUser(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printUser(u model.User) {
	fmt.Printf("Email: %s\n", u.Email)
	if u.Username != "" {
		fmt.Printf("Username: %s\n", u.Username)
	}
	if u.ID != "" {
		fmt.Printf("ID: %s\n", u.ID)
	}
}

func (o *Output) printGame(g model.Game) {
	fmt.Printf("%s (%s)\n", g.Title, g.ID)
	if g.Genre != "" {
		fmt.Printf("Genre: %s\n", g.Genre)
	}
	if g.Publisher != "" {
		fmt.Printf("Publisher: %s\n", g.Publisher)
	}
	fmt.Printf("Players: %s\n", formatPlayerCount(g.MinPlayers, g.MaxPlayers))
	if g.PlayTime > 0 {
		fmt.Printf("Play Time: %d min\n", g.PlayTime)
	}
	if g.Age != "" {
		fmt.Printf("Age: %s\n", g.Age)
	}
	if g.Rating > 0 {
		fmt.Printf("Rating: %.1f\n", g.Rating)
	}
	if g.MyRating != nil {
		fmt.Printf("My Rating: %.1f\n", *g.MyRating)
	}
	fmt.Printf("Owned: %s\n", yesNo(g.IsOwned))
	if len(g.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(g.TagTitles(), ", "))
	}
	if g.CoverImage != "" {
		fmt.Printf("Cover: %s\n", g.CoverImage)
	}
	if g.Description != "" {
		fmt.Printf("\n%s\n", g.Description)
	}
	if len(g.Sessions) > 0 {
		fmt.Printf("\nSessions (%d):\n", len(g.Sessions))
		for _, s := range g.Sessions {
			o.printSessionRow(s)
		}
	}
	if g.Wishlist != nil && g.Wishlist.Reason != "" {
		fmt.Printf("Wishlist reason: %s\n", g.Wishlist.Reason)
	}
}

func (o *Output) printGameList(games []model.Game) {
	if len(games) == 0 {
		fmt.Println("No games found")
		return
	}
	for _, g := range games {
		line := fmt.Sprintf("  - %s (%s) - %s, %s", g.Title, g.ID, g.Genre, formatPlayerCount(g.MinPlayers, g.MaxPlayers))
		if len(g.Tags) > 0 {
			line += " [" + strings.Join(g.TagTitles(), ", ") + "]"
		}
		fmt.Println(line)
	}
	plural := "s"
	if len(games) == 1 {
		plural = ""
	}
	fmt.Printf("%d game%s\n", len(games), plural)
}

func (o *Output) printSession(s model.Session) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Date: %s\n", s.Date)
	if s.Notes != "" {
		fmt.Printf("Notes: %s\n", s.Notes)
	}
	if len(s.Players) > 0 {
		fmt.Printf("Players: %s\n", strings.Join(s.PlayerNames(), ", "))
	}
}

func (o *Output) printSessionList(sessions []model.Session) {
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded")
		return
	}
	for _, s := range sessions {
		o.printSessionRow(s)
	}
}

func (o *Output) printSessionRow(s model.Session) {
	line := fmt.Sprintf("  - %s (%s)", s.Date, s.ID)
	if len(s.Players) > 0 {
		line += ": " + strings.Join(s.PlayerNames(), ", ")
	}
	if s.Notes != "" {
		line += " - " + s.Notes
	}
	fmt.Println(line)
}

func formatPlayerCount(min, max int) string {
	if min == max {
		return fmt.Sprintf("%d", min)
	}
	return fmt.Sprintf("%d-%d", min, max)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
