package gateway_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgshelf/bgshelf/internal/gateway"
	"github.com/bgshelf/bgshelf/internal/gateway/gatewaytest"
	"github.com/bgshelf/bgshelf/internal/model"
	"github.com/bgshelf/bgshelf/internal/testutil"
)

type fixture struct {
	backend *gatewaytest.Server
	client  *gateway.Client
	token   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	backend := gatewaytest.New()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	_, token := backend.SeedUser("owner@example.com", "owner")
	client := gateway.NewClient(server.URL, token, testutil.NopLogger())

	return &fixture{backend: backend, client: client, token: token}
}

func TestGameCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.client.CreateGame(ctx, model.GameInput{
		Title:      "Brass",
		Genre:      "Strategy",
		MinPlayers: 2,
		MaxPlayers: 4,
		PlayTime:   120,
		Publisher:  "Roxley",
		IsOwned:    true,
		Tags:       []model.TagInput{{Title: "Euro"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.Len(t, created.Tags, 1)
	assert.Equal(t, "Euro", created.Tags[0].Title)

	got, err := f.client.GetGame(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brass", got.Title)

	created.Title = "Brass: Birmingham"
	updated, err := f.client.UpdateGame(ctx, created.ID, model.GameInput{
		Title:      "Brass: Birmingham",
		Genre:      created.Genre,
		MinPlayers: created.MinPlayers,
		MaxPlayers: created.MaxPlayers,
		IsOwned:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Brass: Birmingham", updated.Title)

	list, err := f.client.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.client.DeleteGame(ctx, created.ID))
	list, err = f.client.ListGames(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetGameNotFoundSurfacesAPIError(t *testing.T) {
	f := newFixture(t)

	_, err := f.client.GetGame(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "game not found")
}

func TestMutationRequiresToken(t *testing.T) {
	f := newFixture(t)
	f.client.SetToken("")

	_, err := f.client.CreateGame(context.Background(), model.GameInput{Title: "Brass"})
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	game := f.backend.SeedGame(model.Game{Title: "Codenames"})
	alice := f.backend.SeedPlayer("Alice")
	bob := f.backend.SeedPlayer("Bob")

	created, err := f.client.CreateSession(ctx, game.ID, model.SessionInput{
		Date:      "2024-06-01",
		Notes:     "party night",
		PlayerIDs: []model.PlayerID{alice.ID, bob.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, created.PlayerNames())

	sessions, err := f.client.ListSessions(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	updated, err := f.client.UpdateSession(ctx, created.ID, model.SessionInput{
		Date:      "2024-06-02",
		PlayerIDs: []model.PlayerID{alice.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", updated.Date)
	assert.Equal(t, []string{"Alice"}, updated.PlayerNames())

	require.NoError(t, f.client.DeleteSession(ctx, created.ID))
	sessions, err = f.client.ListSessions(ctx, game.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestPlayersAndTags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.backend.SeedPlayer("Alice")
	f.backend.SeedTag("Euro")

	players, err := f.client.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Alice", players[0].Name)

	created, err := f.client.CreatePlayer(ctx, "Bob")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	tags, err := f.client.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Euro", tags[0].Title)
}

func TestFileAttachments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	game := f.backend.SeedGame(model.Game{Title: "Brass"})

	created, err := f.client.CreateFile(ctx, game.ID, model.FileInput{
		Title: "Rulebook",
		Link:  "https://media.example.com/rules.pdf",
	})
	require.NoError(t, err)

	files, err := f.client.ListFiles(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Rulebook", files[0].Title)

	require.NoError(t, f.client.DeleteFile(ctx, created.ID))
	files, err = f.client.ListFiles(ctx, game.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestWishlistMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	game := f.backend.SeedGame(model.Game{Title: "Ark Nova"})

	require.NoError(t, f.client.AddToWishlist(ctx, game.ID, "heard great things"))

	wishlist, err := f.client.ListWishlist(ctx)
	require.NoError(t, err)
	require.Len(t, wishlist, 1)
	require.NotNil(t, wishlist[0].Wishlist)
	assert.Equal(t, "heard great things", wishlist[0].Wishlist.Reason)

	require.NoError(t, f.client.RemoveFromWishlist(ctx, game.ID))
	wishlist, err = f.client.ListWishlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, wishlist)
}

func TestTopGamesRankedByRating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.backend.SeedGame(model.Game{Title: "Mid", Rating: 7.0})
	f.backend.SeedGame(model.Game{Title: "Best", Rating: 9.1})
	f.backend.SeedGame(model.Game{Title: "Low", Rating: 5.5})

	top, err := f.client.TopGames(ctx)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "Best", top[0].Title)
	assert.Equal(t, "Low", top[2].Title)
}
