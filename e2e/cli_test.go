package e2e_test

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgshelf/bgshelf/internal/gateway/gatewaytest"
	"github.com/bgshelf/bgshelf/internal/model"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	dataDir    string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "bgshelf-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/bgshelf")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		dataDir:    t.TempDir(),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--data-dir", r.dataDir,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

func startBackend(t *testing.T) (*gatewaytest.Server, *httptest.Server) {
	t.Helper()

	backend := gatewaytest.New()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return backend, server
}

func signup(t *testing.T, cli *cliRunner, email string) model.User {
	t.Helper()

	output, err := cli.run("signup", "--email", email, "--username", "owner", "--password", "hunter2")
	require.NoError(t, err, "output: %s", output)

	var user model.User
	require.NoError(t, json.Unmarshal([]byte(output), &user))
	return user
}

// Tests

func TestCLI_AuthFlow(t *testing.T) {
	_, server := startBackend(t)
	cli := newCLIRunner(t, server.URL)

	user := signup(t, cli, "alice@example.com")
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "owner", user.Username)
	assert.NotEmpty(t, user.ID)

	// The login is persisted in the data dir, later invocations pick it up
	output, err := cli.run("whoami")
	require.NoError(t, err, "output: %s", output)

	var me model.User
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, user.ID, me.ID)

	// whoami --refresh round-trips through the backend
	output, err = cli.run("whoami", "--refresh")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, user.Email, me.Email)

	output, err = cli.run("logout")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Logged out")

	output, err = cli.run("whoami")
	assert.Error(t, err)
	assert.Contains(t, output, "not logged in")
}

func TestCLI_LoginAfterSignup(t *testing.T) {
	_, server := startBackend(t)
	cli := newCLIRunner(t, server.URL)

	signup(t, cli, "alice@example.com")
	_, err := cli.run("logout")
	require.NoError(t, err)

	output, err := cli.run("login", "--email", "alice@example.com", "--password", "hunter2")
	require.NoError(t, err, "output: %s", output)

	var user model.User
	require.NoError(t, json.Unmarshal([]byte(output), &user))
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestCLI_GameLifecycle(t *testing.T) {
	_, server := startBackend(t)
	cli := newCLIRunner(t, server.URL)
	signup(t, cli, "alice@example.com")

	// Add
	output, err := cli.run("game", "add",
		"--title", "Brass: Birmingham",
		"--genre", "Strategy",
		"--min-players", "2",
		"--max-players", "4",
		"--play-time", "120",
		"--publisher", "Roxley",
		"--rating", "8.6",
		"--tag", "Strategy",
	)
	require.NoError(t, err, "output: %s", output)

	var game model.Game
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "Brass: Birmingham", game.Title)
	assert.Equal(t, []string{"Strategy"}, game.TagTitles())
	require.NotEmpty(t, game.ID)

	// Show
	output, err = cli.run("game", "show", string(game.ID))
	require.NoError(t, err, "output: %s", output)

	var fetched model.Game
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Equal(t, game.ID, fetched.ID)
	assert.Equal(t, 2, fetched.MinPlayers)
	assert.Equal(t, 4, fetched.MaxPlayers)

	// Edit a single field, the rest stays intact
	output, err = cli.run("game", "edit", string(game.ID), "--my-rating", "9.5")
	require.NoError(t, err, "output: %s", output)

	var edited model.Game
	require.NoError(t, json.Unmarshal([]byte(output), &edited))
	assert.Equal(t, "Brass: Birmingham", edited.Title)
	assert.Equal(t, "Roxley", edited.Publisher)
	require.NotNil(t, edited.MyRating)
	assert.InDelta(t, 9.5, *edited.MyRating, 0.001)

	// Delete
	output, err = cli.run("game", "delete", string(game.ID), "--yes")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Game deleted")

	output, err = cli.run("game", "show", string(game.ID))
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_ListFilters(t *testing.T) {
	backend, server := startBackend(t)
	cli := newCLIRunner(t, server.URL)
	signup(t, cli, "alice@example.com")

	strategy := backend.SeedTag("Strategy")
	party := backend.SeedTag("Party Game")
	backend.SeedGame(model.Game{
		Title: "Brass: Birmingham", Genre: "Strategy", Publisher: "Roxley",
		MinPlayers: 2, MaxPlayers: 4, IsOwned: true,
		Tags: []model.Tag{*strategy},
	})
	backend.SeedGame(model.Game{
		Title: "Codenames", Genre: "Party", Publisher: "CGE",
		MinPlayers: 2, MaxPlayers: 8, IsOwned: true,
		Tags: []model.Tag{*party},
	})
	backend.SeedGame(model.Game{
		Title: "Twilight Imperium", Genre: "Strategy",
		MinPlayers: 3, MaxPlayers: 6, IsOwned: false,
	})

	// Unowned games are hidden by default
	output, err := cli.run("game", "list")
	require.NoError(t, err, "output: %s", output)
	var games []model.Game
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	assert.Len(t, games, 2)

	output, err = cli.run("game", "list", "--all")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	assert.Len(t, games, 3)

	// Substring search, case-insensitive
	output, err = cli.run("game", "list", "--search", "brass")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Brass: Birmingham", games[0].Title)

	// Player count bucket
	output, err = cli.run("game", "list", "--players", "8+")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Codenames", games[0].Title)

	// Tag membership
	output, err = cli.run("game", "list", "--tag", "Strategy")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Brass: Birmingham", games[0].Title)

	// Invalid bucket is rejected before any request is made
	output, err = cli.run("game", "list", "--players", "9")
	assert.Error(t, err)
	assert.Contains(t, output, "player-count bucket")
}

func TestCLI_SessionFlow(t *testing.T) {
	backend, server := startBackend(t)
	cli := newCLIRunner(t, server.URL)
	signup(t, cli, "alice@example.com")

	game := backend.SeedGame(model.Game{Title: "Brass: Birmingham", IsOwned: true})
	backend.SeedPlayer("Alice")

	// Bob does not exist yet and gets created during reconciliation
	output, err := cli.run("session", "add", string(game.ID),
		"--date", "2024-06-01",
		"--notes", "tense endgame",
		"--player", "Alice",
		"--player", "Bob",
	)
	require.NoError(t, err, "output: %s", output)

	var sessions []model.Session
	require.NoError(t, json.Unmarshal([]byte(output), &sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, "2024-06-01", sessions[0].Date)
	assert.Equal(t, []string{"Alice", "Bob"}, sessions[0].PlayerNames())
	sessionID := sessions[0].ID

	output, err = cli.run("player", "list")
	require.NoError(t, err, "output: %s", output)
	var players []model.Player
	require.NoError(t, json.Unmarshal([]byte(output), &players))
	assert.Len(t, players, 2)

	// Edit keeps unset fields
	output, err = cli.run("session", "edit", string(game.ID), string(sessionID),
		"--notes", "rematch soon")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, "2024-06-01", sessions[0].Date)
	assert.Equal(t, "rematch soon", sessions[0].Notes)
	assert.Equal(t, []string{"Alice", "Bob"}, sessions[0].PlayerNames())

	output, err = cli.run("session", "delete", string(game.ID), string(sessionID), "--yes")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &sessions))
	assert.Empty(t, sessions)
}

func TestCLI_SessionDroppedPlayerWarning(t *testing.T) {
	backend, server := startBackend(t)
	cli := newCLIRunner(t, server.URL)
	signup(t, cli, "alice@example.com")

	game := backend.SeedGame(model.Game{Title: "Brass: Birmingham", IsOwned: true})
	backend.SeedPlayer("Alice")
	backend.FailPlayerNames["Bob"] = true

	output, err := cli.run("session", "add", string(game.ID),
		"--date", "2024-06-01",
		"--player", "Alice",
		"--player", "Bob",
	)
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, `player "Bob" could not be resolved and was dropped`)
}

func TestCLI_Wishlist(t *testing.T) {
	backend, server := startBackend(t)
	cli := newCLIRunner(t, server.URL)
	signup(t, cli, "alice@example.com")

	game := backend.SeedGame(model.Game{Title: "Ark Nova", IsOwned: false})

	output, err := cli.run("wishlist", "add", string(game.ID), "--reason", "heard great things")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("wishlist", "list")
	require.NoError(t, err, "output: %s", output)
	var games []model.Game
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Ark Nova", games[0].Title)
	require.NotNil(t, games[0].Wishlist)
	assert.Equal(t, "heard great things", games[0].Wishlist.Reason)

	output, err = cli.run("wishlist", "remove", string(game.ID))
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("wishlist", "list")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	assert.Empty(t, games)
}

func TestCLI_Files(t *testing.T) {
	backend, server := startBackend(t)
	cli := newCLIRunner(t, server.URL)
	signup(t, cli, "alice@example.com")

	game := backend.SeedGame(model.Game{Title: "Brass: Birmingham", IsOwned: true})

	output, err := cli.run("file", "add", string(game.ID),
		"--title", "Rulebook",
		"--link", "https://example.com/brass-rules.pdf",
	)
	require.NoError(t, err, "output: %s", output)

	var file model.File
	require.NoError(t, json.Unmarshal([]byte(output), &file))
	assert.Equal(t, "Rulebook", file.Title)

	output, err = cli.run("file", "list", string(game.ID))
	require.NoError(t, err, "output: %s", output)
	var files []model.File
	require.NoError(t, json.Unmarshal([]byte(output), &files))
	require.Len(t, files, 1)
	assert.Equal(t, "https://example.com/brass-rules.pdf", files[0].Link)

	output, err = cli.run("file", "delete", string(file.ID), "--yes")
	require.NoError(t, err, "output: %s", output)
}

func TestCLI_ErrorHandling(t *testing.T) {
	backend, server := startBackend(t)
	cli := newCLIRunner(t, server.URL)

	game := backend.SeedGame(model.Game{Title: "Brass: Birmingham", IsOwned: true})

	// Mutations require a login
	output, err := cli.run("game", "add", "--title", "Root")
	assert.Error(t, err)
	assert.Contains(t, output, "not logged in")

	output, err = cli.run("session", "add", string(game.ID), "--date", "2024-06-01", "--player", "Alice")
	assert.Error(t, err)
	assert.Contains(t, output, "not logged in")

	// Reads work without one
	output, err = cli.run("game", "list")
	require.NoError(t, err, "output: %s", output)
	var games []model.Game
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	assert.Len(t, games, 1)

	// Backend errors surface the server message
	signup(t, cli, "alice@example.com")
	output, err = cli.run("game", "show", "missing")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}
