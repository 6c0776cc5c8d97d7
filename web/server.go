package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/traverse"
)

// Default playground configuration: a 10×9 board with the origin and target
// facing each other across the middle row.
const (
	DefaultWidth  = 10
	DefaultHeight = 9
)

var (
	// DefaultStart is the stamped origin of a fresh playground board.
	DefaultStart = board.Coord{X: 1, Y: 5}
	// DefaultEnd is the stamped target of a fresh playground board.
	DefaultEnd = board.Coord{X: 8, Y: 5}
)

// DefaultBoard returns a fresh board with the playground defaults.
func DefaultBoard() *board.Board {
	b, err := board.New(DefaultWidth, DefaultHeight, DefaultStart, DefaultEnd)
	if err != nil {
		// Defaults are constants; this cannot fail.
		panic(err)
	}
	return b
}

// Server exposes one in-memory board over a REST API plus a live event feed.
type Server struct {
	mu     sync.Mutex
	board  *board.Board
	status traverse.Status

	hub    *Hub
	router *mux.Router
	tmpl   *template.Template
	log    *slog.Logger
}

// NewServer wires a server around b (DefaultBoard when nil) and hub.
// The hub's Run loop must be started by the caller.
func NewServer(b *board.Board, hub *Hub, log *slog.Logger) *Server {
	if b == nil {
		b = DefaultBoard()
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		board:  b,
		status: traverse.Idle,
		hub:    hub,
		router: mux.NewRouter(),
		tmpl:   Templates(),
		log:    log,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all playground routes.
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/board", s.handleBoard).Methods("GET")
	api.HandleFunc("/cells", s.handlePaintCell).Methods("POST")
	api.HandleFunc("/run", s.handleRun).Methods("POST")
	api.HandleFunc("/reset", s.handleReset).Methods("POST")

	s.router.HandleFunc("/ws", s.handleWebSocket)
	s.router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(StaticFS())))
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// boardSnapshot is the JSON view of the board the page renders from.
// Cells holds one string per row, one rune per cell, in the same legend the
// board's ASCII render uses.
type boardSnapshot struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Start     board.Coord `json:"start"`
	End       board.Coord `json:"end"`
	Status    string      `json:"status"`
	Reachable bool        `json:"reachable"`
	Cells     []string    `json:"cells"`
}

// snapshot captures the board under s.mu.
func (s *Server) snapshot() boardSnapshot {
	b := s.board
	return boardSnapshot{
		Width:     b.Width,
		Height:    b.Height,
		Start:     b.Start(),
		End:       b.End(),
		Status:    s.status.String(),
		Reachable: b.CanReach(b.Start(), b.End()),
		Cells:     strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n"),
	}
}

// runResponse is the JSON outcome of POST /api/run.
type runResponse struct {
	Solved   bool          `json:"solved"`
	Status   string        `json:"status"`
	Path     []board.Coord `json:"path"`
	Explored int           `json:"explored"`
	Board    boardSnapshot `json:"board"`
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// handleIndex renders the playground page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.snapshot()
	s.mu.Unlock()

	if err := s.tmpl.ExecuteTemplate(w, "index.html.tmpl", snap); err != nil {
		s.log.Error("render index", "err", err)
	}
}

// handleBoard returns the current board snapshot.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.snapshot()
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, snap)
}

// handlePaintCell paints or erases a single obstacle. Painting is an editor
// action: it is rejected mid-run and never touches Start, End, or traversal
// markings. Body: {"x":1,"y":2,"kind":"obstacle"|"unvisited"}.
func (s *Server) handlePaintCell(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X    int    `json:"x"`
		Y    int    `json:"y"`
		Kind string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid body: %v", err))
		return
	}
	kind, err := board.ParseKind(req.Kind)
	if err != nil || (kind != board.Obstacle && kind != board.Unvisited) {
		respondError(w, http.StatusBadRequest, "kind must be obstacle or unvisited")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == traverse.Running {
		respondError(w, http.StatusConflict, "traversal in progress")
		return
	}
	current, err := s.board.Classify(req.X, req.Y)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if current != board.Unvisited && current != board.Obstacle {
		respondError(w, http.StatusConflict,
			fmt.Sprintf("cell (%d,%d) is %s; only empty cells can be painted", req.X, req.Y, current))
		return
	}
	if err = s.board.SetClassification(req.X, req.Y, kind); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap := s.snapshot()
	s.hub.Broadcast("board", snap)
	respondJSON(w, http.StatusOK, snap)
}

// handleRun executes one traversal to completion while holding the board
// lock, streaming explore and solution events to the live feed as the engine
// reports them.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == traverse.Running {
		respondError(w, http.StatusConflict, "traversal already in progress")
		return
	}
	s.status = traverse.Running

	res, err := traverse.Run(s.board,
		traverse.WithOnExplore(func(x, y int) {
			s.hub.Broadcast("explore", board.Coord{X: x, Y: y})
		}),
		traverse.WithOnSolution(func(path []board.Coord) {
			s.hub.Broadcast("solution", path)
		}),
	)
	s.status = res.Status
	if err != nil {
		s.log.Error("traversal failed", "err", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Info("traversal finished",
		"status", res.Status.String(), "explored", res.Explored, "path", len(res.Path))

	resp := runResponse{
		Solved:   res.Solved,
		Status:   res.Status.String(),
		Path:     res.Path,
		Explored: res.Explored,
		Board:    s.snapshot(),
	}
	s.hub.Broadcast("result", resp)
	respondJSON(w, http.StatusOK, resp)
}

// handleReset starts a new game: every cell back to Unvisited, Start and End
// restamped. Dimensions and endpoints may be changed in the same request;
// absent fields keep their current values.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Width  *int         `json:"width"`
		Height *int         `json:"height"`
		Start  *board.Coord `json:"start"`
		End    *board.Coord `json:"end"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid body: %v", err))
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == traverse.Running {
		respondError(w, http.StatusConflict, "traversal in progress")
		return
	}

	width, height := s.board.Width, s.board.Height
	start, end := s.board.Start(), s.board.End()
	if req.Width != nil {
		width = *req.Width
	}
	if req.Height != nil {
		height = *req.Height
	}
	if req.Start != nil {
		start = *req.Start
	}
	if req.End != nil {
		end = *req.End
	}
	if err := s.board.Reset(width, height, start, end); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.status = traverse.Idle

	snap := s.snapshot()
	s.hub.Broadcast("board", snap)
	respondJSON(w, http.StatusOK, snap)
}

// handleWebSocket subscribes the caller to the live event feed.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.hub.ServeWS(w, r)
}
