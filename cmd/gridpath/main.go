// Command gridpath serves the browser playground: a rectangular board where
// obstacles are painted by clicking cells, and a depth-first traversal is
// animated live over a websocket feed.
//
// Flags control the listen address and the initial board configuration; a
// local .env file may provide the same settings via environment variables.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/web"
)

func main() {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cmd := &cli.Command{
		Name:  "gridpath",
		Usage: "serve the grid pathfinding playground",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   ":8080",
				Usage:   "listen address",
				Sources: cli.EnvVars("GRIDPATH_ADDR"),
			},
			&cli.IntFlag{
				Name:    "width",
				Value:   web.DefaultWidth,
				Usage:   "board width in cells",
				Sources: cli.EnvVars("GRIDPATH_WIDTH"),
			},
			&cli.IntFlag{
				Name:    "height",
				Value:   web.DefaultHeight,
				Usage:   "board height in cells",
				Sources: cli.EnvVars("GRIDPATH_HEIGHT"),
			},
			&cli.StringFlag{
				Name:    "start",
				Value:   formatCoord(web.DefaultStart),
				Usage:   "start cell as x,y",
				Sources: cli.EnvVars("GRIDPATH_START"),
			},
			&cli.StringFlag{
				Name:    "end",
				Value:   formatCoord(web.DefaultEnd),
				Usage:   "end cell as x,y",
				Sources: cli.EnvVars("GRIDPATH_END"),
			},
		},
		Action: serve(logger),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("gridpath failed", "err", err)
		os.Exit(1)
	}
}

// serve builds the board from flags and runs the HTTP server until it fails.
func serve(logger *slog.Logger) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		start, err := parseCoord(cmd.String("start"))
		if err != nil {
			return fmt.Errorf("flag --start: %w", err)
		}
		end, err := parseCoord(cmd.String("end"))
		if err != nil {
			return fmt.Errorf("flag --end: %w", err)
		}

		b, err := board.New(int(cmd.Int("width")), int(cmd.Int("height")), start, end)
		if err != nil {
			return fmt.Errorf("configure board: %w", err)
		}

		hub := web.NewHub(logger)
		go hub.Run()
		srv := web.NewServer(b, hub, logger)

		addr := cmd.String("addr")
		logger.Info("serving playground",
			"addr", addr, "width", b.Width, "height", b.Height,
			"start", b.Start().String(), "end", b.End().String())

		httpSrv := &http.Server{
			Addr:              addr,
			Handler:           requestLogger(logger, srv),
			ReadHeaderTimeout: 5 * time.Second,
		}
		return httpSrv.ListenAndServe()
	}
}

// formatCoord renders a coordinate as the "x,y" flag syntax.
func formatCoord(c board.Coord) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// parseCoord parses the "x,y" flag syntax.
func parseCoord(s string) (board.Coord, error) {
	var c board.Coord
	if _, err := fmt.Sscanf(s, "%d,%d", &c.X, &c.Y); err != nil {
		return board.Coord{}, fmt.Errorf("want x,y, got %q", s)
	}
	return c, nil
}

// statusWriter captures the HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Websocket upgrades hijack the connection; wrapping the writer
		// would break them.
		if r.URL.Path == "/ws" {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("request",
			"method", r.Method, "path", r.URL.Path,
			"status", sw.status, "bytes", sw.bytes,
			"duration", time.Since(start))
	})
}
