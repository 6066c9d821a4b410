// Package collection implements the client-side filtering of the game list.
// Filtering is pure and synchronous; the source list is never mutated and
// the relative order of games is preserved.
package collection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bgshelf/bgshelf/internal/model"
)

// BucketEightPlus is the open-ended player-count bucket
const BucketEightPlus = "8+"

// Criteria is the filter tuple applied to the game list.
// Zero values impose no constraint for their predicate.
type Criteria struct {
	// Search is matched case-insensitively as a substring of title,
	// genre, or publisher (logical OR across the three fields).
	Search string
	// Genre is an exact-match filter
	Genre string
	// PlayerBucket is one of "1".."7", "8+", or empty for no constraint
	PlayerBucket string
	// Tags is the set of tag titles a game must carry all of
	Tags []string
}

// Validate checks the player-count bucket. Other fields accept any value.
func (c Criteria) Validate() error {
	if c.PlayerBucket == "" || c.PlayerBucket == BucketEightPlus {
		return nil
	}
	n, err := strconv.Atoi(c.PlayerBucket)
	if err != nil || n < 1 || n > 7 {
		return fmt.Errorf("invalid player-count bucket %q (want 1-7 or 8+)", c.PlayerBucket)
	}
	return nil
}

// Filter returns the games matching all criteria, in their original order.
// Empty criteria return the input unchanged.
func Filter(games []model.Game, c Criteria) []model.Game {
	out := make([]model.Game, 0, len(games))
	for _, g := range games {
		if matches(&g, c) {
			out = append(out, g)
		}
	}
	return out
}

func matches(g *model.Game, c Criteria) bool {
	return matchesSearch(g, c.Search) &&
		matchesGenre(g, c.Genre) &&
		matchesPlayerBucket(g, c.PlayerBucket) &&
		matchesTags(g, c.Tags)
}

func matchesSearch(g *model.Game, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(g.Title), term) ||
		strings.Contains(strings.ToLower(g.Genre), term) ||
		strings.Contains(strings.ToLower(g.Publisher), term)
}

func matchesGenre(g *model.Game, genre string) bool {
	return genre == "" || g.Genre == genre
}

func matchesPlayerBucket(g *model.Game, bucket string) bool {
	if bucket == "" {
		return true
	}
	if bucket == BucketEightPlus {
		return g.MaxPlayers >= 8
	}
	n, err := strconv.Atoi(bucket)
	if err != nil {
		return true
	}
	return g.MinPlayers <= n && n <= g.MaxPlayers
}

func matchesTags(g *model.Game, tags []string) bool {
	for _, title := range tags {
		if !g.HasTag(title) {
			return false
		}
	}
	return true
}
