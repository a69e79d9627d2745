package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/five82/tailview/internal/viewer"
	"github.com/five82/tailview/internal/watch"
)

//go:embed all:web
var webFS embed.FS

const shutdownTimeout = 5 * time.Second

// Options configure the web surface.
type Options struct {
	Listen  string
	Refresh time.Duration
	// Watcher, when set, triggers extra refreshes on file changes.
	Watcher *watch.Watcher
}

// Server holds the Gin engine and dependencies for the log viewer page.
type Server struct {
	engine  *gin.Engine
	viewer  *viewer.Viewer
	watcher *watch.Watcher
	listen  string
	refresh time.Duration
	started time.Time
}

// New creates a web server for the given viewer.
func New(v *viewer.Viewer, opts Options) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = 5 * time.Second
	}

	s := &Server{
		engine:  engine,
		viewer:  v,
		watcher: opts.Watcher,
		listen:  opts.Listen,
		refresh: refresh,
		started: time.Now(),
	}
	s.setupRoutes()
	return s
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// serveEmbedded reads a file from the embedded FS and writes it with the given content type.
func serveEmbedded(webContent fs.FS, name string, contentType string) gin.HandlerFunc {
	data, err := fs.ReadFile(webContent, name)
	return func(c *gin.Context) {
		if err != nil {
			c.String(http.StatusNotFound, "file not found: %s", name)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}

func (s *Server) setupRoutes() {
	webContent, _ := fs.Sub(webFS, "web")

	s.engine.GET("/", serveEmbedded(webContent, "index.html", "text/html; charset=utf-8"))
	s.engine.GET("/style.css", serveEmbedded(webContent, "style.css", "text/css; charset=utf-8"))
	s.engine.GET("/app.js", serveEmbedded(webContent, "app.js", "application/javascript; charset=utf-8"))

	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	api.GET("/sources", s.handleSources)
	api.GET("/view", s.handleView)

	s.engine.GET("/ws", s.handleWebSocket)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.listen, err)
	}
	return s.serve(ctx, ln)
}

// serve runs the HTTP server on ln. Requests inherit ctx, so websocket
// sessions, which Shutdown does not track, end with it too.
func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("component", "server").Str("listen", ln.Addr().String()).Msg("serving log viewer")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", ln.Addr(), err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Str("component", "server").Msg("server stopped")
	return nil
}
