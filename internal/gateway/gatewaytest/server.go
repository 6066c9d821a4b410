// Package gatewaytest provides an in-memory fake of the remote shelf backend
// for exercising the gateway and CLI without a real server.
package gatewaytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/bgshelf/bgshelf/internal/model"
)

// Server is a fake backend holding all state in memory.
// It implements the REST surface the gateway consumes.
type Server struct {
	mu sync.Mutex

	games    []*model.Game
	sessions map[model.SessionID]*model.Session
	players  []*model.Player
	tags     []*model.Tag
	files    map[model.FileID]*model.File
	fileGame map[model.FileID]model.GameID
	users    map[string]*model.User // by email
	tokens   map[string]string      // token -> email

	nextID int

	// LoginTokenField selects which field name carries the token in
	// login/signup responses, so shape-probing clients can be exercised.
	LoginTokenField string
	// LoginUserField selects the field wrapping the user object. Empty
	// means the user is omitted from the response entirely.
	LoginUserField string
	// FailPlayerNames makes player creation fail for the named players
	FailPlayerNames map[string]bool
	// FailTags makes the tag listing endpoint fail
	FailTags bool

	router *mux.Router
}

// New creates an empty fake backend
func New() *Server {
	s := &Server{
		sessions:        make(map[model.SessionID]*model.Session),
		files:           make(map[model.FileID]*model.File),
		fileGame:        make(map[model.FileID]model.GameID),
		users:           make(map[string]*model.User),
		tokens:          make(map[string]string),
		FailPlayerNames: make(map[string]bool),
		LoginTokenField: "token",
		LoginUserField:  "user",
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/api/me", s.handleMe).Methods(http.MethodGet)

	r.HandleFunc("/api/games", s.handleListGames).Methods(http.MethodGet)
	r.HandleFunc("/api/games/", s.requireAuth(s.handleCreateGame)).Methods(http.MethodPost)
	r.HandleFunc("/api/games/top", s.handleTopGames).Methods(http.MethodGet)
	r.HandleFunc("/api/games/wishlist", s.handleListWishlist).Methods(http.MethodGet)
	r.HandleFunc("/api/games/{id}", s.handleGetGame).Methods(http.MethodGet)
	r.HandleFunc("/api/games/{id}", s.requireAuth(s.handleUpdateGame)).Methods(http.MethodPut)
	r.HandleFunc("/api/games/{id}", s.requireAuth(s.handleDeleteGame)).Methods(http.MethodDelete)
	r.HandleFunc("/api/games/{id}/addWishlist", s.requireAuth(s.handleAddWishlist)).Methods(http.MethodPost)
	r.HandleFunc("/api/games/{id}/removeWishlist", s.requireAuth(s.handleRemoveWishlist)).Methods(http.MethodPost)

	r.HandleFunc("/api/games/{id}/sessions", s.handleListSessions).Methods(http.MethodGet)
	r.HandleFunc("/api/games/{id}/sessions/", s.requireAuth(s.handleCreateSession)).Methods(http.MethodPost)
	r.HandleFunc("/api/sessions/{id}", s.requireAuth(s.handleUpdateSession)).Methods(http.MethodPut)
	r.HandleFunc("/api/sessions/{id}", s.requireAuth(s.handleDeleteSession)).Methods(http.MethodDelete)

	r.HandleFunc("/api/games/{id}/files", s.handleListFiles).Methods(http.MethodGet)
	r.HandleFunc("/api/games/{id}/files", s.requireAuth(s.handleCreateFile)).Methods(http.MethodPost)
	r.HandleFunc("/api/files/{id}", s.requireAuth(s.handleDeleteFile)).Methods(http.MethodDelete)

	r.HandleFunc("/api/players", s.handleListPlayers).Methods(http.MethodGet)
	r.HandleFunc("/api/players", s.handleCreatePlayer).Methods(http.MethodPost)
	r.HandleFunc("/api/tags", s.handleListTags).Methods(http.MethodGet)

	return r
}

func (s *Server) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s%d", prefix, s.nextID)
}

// SeedGame adds a game directly to the fake store and returns it
func (s *Server) SeedGame(game model.Game) *model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	if game.ID == "" {
		game.ID = model.GameID(s.newID("g"))
	}
	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now()
	}
	g := game
	s.games = append(s.games, &g)
	return &g
}

// SeedPlayer adds a player directly to the fake store and returns it
func (s *Server) SeedPlayer(name string) *model.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &model.Player{ID: model.PlayerID(s.newID("p")), Name: name}
	s.players = append(s.players, p)
	return p
}

// SeedTag adds a tag to the vocabulary
func (s *Server) SeedTag(title string) *model.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &model.Tag{ID: model.TagID(s.newID("t")), Title: title}
	s.tags = append(s.tags, t)
	return t
}

// SeedUser registers an account and returns a valid token for it
func (s *Server) SeedUser(email, username string) (user *model.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &model.User{
		ID:        model.UserID(s.newID("u")),
		Email:     email,
		Username:  username,
		CreatedAt: time.Now(),
	}
	s.users[email] = u
	tok := s.newID("tok-")
	s.tokens[tok] = email
	return u, tok
}

// Sessions returns the stored sessions for a game, oldest first
func (s *Server) Sessions(gameID model.GameID) []model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionsLocked(gameID)
}

func (s *Server) sessionsLocked(gameID model.GameID) []model.Session {
	var out []model.Session
	for _, sess := range s.sessions {
		if sess.GameID == gameID {
			out = append(out, *sess)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		s.mu.Lock()
		_, ok := s.tokens[token]
		s.mu.Unlock()
		if header == "" || !ok {
			writeError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		next(w, r)
	}
}

func (s *Server) findGame(id model.GameID) *model.Game {
	for _, g := range s.games {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// --- auth handlers ---

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[creds.Email]
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token := s.newID("tok-")
	s.tokens[token] = creds.Email

	resp := map[string]any{s.LoginTokenField: token}
	if s.LoginUserField != "" {
		resp[s.LoginUserField] = user
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var creds model.SignupCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[creds.Email]; exists {
		writeError(w, http.StatusConflict, "email already registered")
		return
	}

	user := &model.User{
		ID:        model.UserID(s.newID("u")),
		Email:     creds.Email,
		Username:  creds.Username,
		CreatedAt: time.Now(),
	}
	s.users[creds.Email] = user

	token := s.newID("tok-")
	s.tokens[token] = creds.Email

	resp := map[string]any{s.LoginTokenField: token}
	if s.LoginUserField != "" {
		resp[s.LoginUserField] = user
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.tokens[token]
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	writeJSON(w, http.StatusOK, s.users[email])
}

// --- game handlers ---

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Game, 0, len(s.games))
	for _, g := range s.games {
		game := *g
		game.Sessions = s.sessionsLocked(g.ID)
		out = append(out, game)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTopGames(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Game, 0, len(s.games))
	for _, g := range s.games {
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListWishlist(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Game, 0)
	for _, g := range s.games {
		if g.Wishlist != nil {
			out = append(out, *g)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.findGame(model.GameID(mux.Vars(r)["id"]))
	if g == nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	game := *g
	game.Sessions = s.sessionsLocked(g.ID)
	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var input model.GameInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game := &model.Game{
		ID:          model.GameID(s.newID("g")),
		Title:       input.Title,
		Description: input.Description,
		Genre:       input.Genre,
		MinPlayers:  input.MinPlayers,
		MaxPlayers:  input.MaxPlayers,
		PlayTime:    input.PlayTime,
		Publisher:   input.Publisher,
		Age:         input.Age,
		Rating:      input.Rating,
		MyRating:    input.MyRating,
		CoverImage:  input.CoverImage,
		IsOwned:     input.IsOwned,
		Tags:        s.resolveTags(input.Tags),
		CreatedAt:   time.Now(),
	}
	s.games = append(s.games, game)
	writeJSON(w, http.StatusCreated, game)
}

func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	var input model.GameInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.findGame(model.GameID(mux.Vars(r)["id"]))
	if g == nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}

	g.Title = input.Title
	g.Description = input.Description
	g.Genre = input.Genre
	g.MinPlayers = input.MinPlayers
	g.MaxPlayers = input.MaxPlayers
	g.PlayTime = input.PlayTime
	g.Publisher = input.Publisher
	g.Age = input.Age
	g.Rating = input.Rating
	g.MyRating = input.MyRating
	g.CoverImage = input.CoverImage
	g.IsOwned = input.IsOwned
	g.Tags = s.resolveTags(input.Tags)
	g.UpdatedAt = time.Now()
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := model.GameID(mux.Vars(r)["id"])
	for i, g := range s.games {
		if g.ID == id {
			s.games = append(s.games[:i], s.games[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "game not found")
}

func (s *Server) resolveTags(inputs []model.TagInput) []model.Tag {
	var out []model.Tag
	for _, in := range inputs {
		found := false
		for _, t := range s.tags {
			if t.Title == in.Title {
				out = append(out, *t)
				found = true
				break
			}
		}
		if !found {
			t := &model.Tag{ID: model.TagID(s.newID("t")), Title: in.Title}
			s.tags = append(s.tags, t)
			out = append(out, *t)
		}
	}
	return out
}

// --- wishlist handlers ---

func (s *Server) handleAddWishlist(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.findGame(model.GameID(mux.Vars(r)["id"]))
	if g == nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	g.Wishlist = &model.WishlistEntry{
		ID:        s.newID("w"),
		Reason:    body.Reason,
		CreatedAt: time.Now(),
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleRemoveWishlist(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.findGame(model.GameID(mux.Vars(r)["id"]))
	if g == nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	g.Wishlist = nil
	writeJSON(w, http.StatusOK, g)
}

// --- session handlers ---

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.sessionsLocked(model.GameID(mux.Vars(r)["id"])))
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var input model.SessionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gameID := model.GameID(mux.Vars(r)["id"])
	if s.findGame(gameID) == nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}

	session := &model.Session{
		ID:        model.SessionID(s.newID("s")),
		Date:      input.Date,
		Notes:     input.Notes,
		GameID:    gameID,
		Players:   s.resolvePlayers(input.PlayerIDs),
		CreatedAt: time.Now(),
	}
	s.sessions[session.ID] = session
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	var input model.SessionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[model.SessionID(mux.Vars(r)["id"])]
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	session.Date = input.Date
	session.Notes = input.Notes
	session.Players = s.resolvePlayers(input.PlayerIDs)
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := model.SessionID(mux.Vars(r)["id"])
	if _, ok := s.sessions[id]; !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	delete(s.sessions, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) resolvePlayers(ids []model.PlayerID) []model.Player {
	var out []model.Player
	for _, id := range ids {
		for _, p := range s.players {
			if p.ID == id {
				out = append(out, *p)
				break
			}
		}
	}
	return out
}

// --- file handlers ---

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gameID := model.GameID(mux.Vars(r)["id"])
	out := make([]model.File, 0)
	for id, f := range s.files {
		if s.fileGame[id] == gameID {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateFile(w http.ResponseWriter, r *http.Request) {
	var input model.FileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Title == "" || input.Link == "" {
		writeError(w, http.StatusBadRequest, "title and link are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gameID := model.GameID(mux.Vars(r)["id"])
	if s.findGame(gameID) == nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}

	file := &model.File{
		ID:    model.FileID(s.newID("f")),
		Title: input.Title,
		Link:  input.Link,
	}
	s.files[file.ID] = file
	s.fileGame[file.ID] = gameID
	writeJSON(w, http.StatusCreated, file)
}

func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := model.FileID(mux.Vars(r)["id"])
	if _, ok := s.files[id]; !ok {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	delete(s.files, id)
	delete(s.fileGame, id)
	w.WriteHeader(http.StatusNoContent)
}

// --- player and tag handlers ---

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, *p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailPlayerNames[body.Name] {
		writeError(w, http.StatusInternalServerError, "player creation failed")
		return
	}

	p := &model.Player{ID: model.PlayerID(s.newID("p")), Name: body.Name}
	s.players = append(s.players, p)
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailTags {
		writeError(w, http.StatusInternalServerError, "tags unavailable")
		return
	}

	out := make([]model.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, *t)
	}
	writeJSON(w, http.StatusOK, out)
}
