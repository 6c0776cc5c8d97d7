package web

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/board"
)

// newTestServer builds a server over a 3×3 board with a running hub.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	b, err := board.New(3, 3, board.Coord{X: 0, Y: 0}, board.Coord{X: 2, Y: 2})
	require.NoError(t, err)

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()

	return NewServer(b, hub, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// do issues a request against the server and decodes the JSON response into out.
func do(t *testing.T, s *Server, method, path string, body, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec.Code
}

func TestServer_BoardSnapshot(t *testing.T) {
	s := newTestServer(t)

	var snap boardSnapshot
	code := do(t, s, http.MethodGet, "/api/board", nil, &snap)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, 3, snap.Width)
	assert.Equal(t, 3, snap.Height)
	assert.Equal(t, "idle", snap.Status)
	assert.True(t, snap.Reachable)
	assert.Equal(t, []string{"S..", "...", "..E"}, snap.Cells)
}

func TestServer_PaintCell(t *testing.T) {
	s := newTestServer(t)

	var snap boardSnapshot
	code := do(t, s, http.MethodPost, "/api/cells",
		map[string]any{"x": 1, "y": 1, "kind": "obstacle"}, &snap)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "S..\n.#.\n..E", snap.Cells[0]+"\n"+snap.Cells[1]+"\n"+snap.Cells[2])

	// Erase it again.
	code = do(t, s, http.MethodPost, "/api/cells",
		map[string]any{"x": 1, "y": 1, "kind": "unvisited"}, &snap)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"S..", "...", "..E"}, snap.Cells)
}

func TestServer_PaintCell_Rejections(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name string
		body map[string]any
		code int
	}{
		{"BadKind", map[string]any{"x": 1, "y": 1, "kind": "lava"}, http.StatusBadRequest},
		{"ProtectedStart", map[string]any{"x": 0, "y": 0, "kind": "obstacle"}, http.StatusConflict},
		{"ProtectedEnd", map[string]any{"x": 2, "y": 2, "kind": "obstacle"}, http.StatusConflict},
		{"OutOfBounds", map[string]any{"x": 9, "y": 9, "kind": "obstacle"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code := do(t, s, http.MethodPost, "/api/cells", tc.body, nil)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestServer_RunAndReset(t *testing.T) {
	s := newTestServer(t)

	var run runResponse
	code := do(t, s, http.MethodPost, "/api/run", nil, &run)
	require.Equal(t, http.StatusOK, code)

	assert.True(t, run.Solved)
	assert.Equal(t, "solved", run.Status)
	require.NotEmpty(t, run.Path)
	assert.Equal(t, board.Coord{X: 0, Y: 0}, run.Path[0])
	assert.Equal(t, board.Coord{X: 2, Y: 2}, run.Path[len(run.Path)-1])
	assert.Equal(t, "solved", run.Board.Status)

	// Editing over traversal markings is rejected until a new game starts.
	code = do(t, s, http.MethodPost, "/api/cells",
		map[string]any{"x": 1, "y": 1, "kind": "obstacle"}, nil)
	assert.Equal(t, http.StatusConflict, code)

	var snap boardSnapshot
	code = do(t, s, http.MethodPost, "/api/reset", nil, &snap)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "idle", snap.Status)
	assert.Equal(t, []string{"S..", "...", "..E"}, snap.Cells)
}

func TestServer_RunExhausted(t *testing.T) {
	s := newTestServer(t)

	for x := 0; x < 3; x++ {
		code := do(t, s, http.MethodPost, "/api/cells",
			map[string]any{"x": x, "y": 1, "kind": "obstacle"}, nil)
		require.Equal(t, http.StatusOK, code)
	}

	var snap boardSnapshot
	code := do(t, s, http.MethodGet, "/api/board", nil, &snap)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, snap.Reachable, "preflight must flag the walled-off target")

	var run runResponse
	code = do(t, s, http.MethodPost, "/api/run", nil, &run)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, run.Solved)
	assert.Equal(t, "exhausted", run.Status)
	assert.Empty(t, run.Path)
}

func TestServer_ResetWithNewConfiguration(t *testing.T) {
	s := newTestServer(t)

	var snap boardSnapshot
	code := do(t, s, http.MethodPost, "/api/reset", map[string]any{
		"width": 4, "height": 2,
		"start": map[string]int{"x": 0, "y": 0},
		"end":   map[string]int{"x": 3, "y": 1},
	}, &snap)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 4, snap.Width)
	assert.Equal(t, 2, snap.Height)
	assert.Equal(t, []string{"S...", "...E"}, snap.Cells)

	// Invalid configurations surface the board's validation.
	code = do(t, s, http.MethodPost, "/api/reset", map[string]any{
		"start": map[string]int{"x": 3, "y": 1},
		"end":   map[string]int{"x": 3, "y": 1},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestServer_IndexPage(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gridpath")
}

func TestDefaultBoard(t *testing.T) {
	b := DefaultBoard()
	assert.Equal(t, DefaultWidth, b.Width)
	assert.Equal(t, DefaultHeight, b.Height)
	assert.Equal(t, DefaultStart, b.Start())
	assert.Equal(t, DefaultEnd, b.End())
	k, err := b.Classify(DefaultStart.X, DefaultStart.Y)
	require.NoError(t, err)
	assert.Equal(t, board.Start, k)
}
