package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/five82/tailview/internal/filter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 16 * 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const (
	writeTimeout = 10 * time.Second
	// fileSettle coalesces bursts of file events into one refresh.
	fileSettle = 200 * time.Millisecond
)

// viewRequest is sent by the page whenever a filter control changes.
type viewRequest struct {
	Source string        `json:"source"`
	Params filter.Params `json:"params"`
}

// handleWebSocket runs one viewer session. All refreshes for the session
// happen on this goroutine, so they never overlap.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("component", "ws").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	requests := make(chan viewRequest, 1)
	go readRequests(conn, requests, done)

	var files <-chan string
	if s.watcher != nil {
		ch, cancel := s.watcher.Subscribe()
		defer cancel()
		files = ch
	}

	ticker := time.NewTicker(s.refresh)
	defer ticker.Stop()

	var current viewRequest
	ready := false
	var settle <-chan time.Time
	for {
		select {
		case req, ok := <-requests:
			if !ok {
				return
			}
			current = req
			ready = true
		case <-ticker.C:
			if !ready {
				continue
			}
		case path, ok := <-files:
			if !ok {
				files = nil
				continue
			}
			if ready && settle == nil && s.isSourcePath(current.Source, path) {
				settle = time.After(fileSettle)
			}
			continue
		case <-settle:
		case <-c.Request.Context().Done():
			return
		}
		settle = nil

		source := current.Source
		if source == "" {
			source = s.viewer.Default().Label
		}
		view := s.viewer.Refresh(source, current.Params)
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(newViewResponse(source, view)); err != nil {
			log.Debug().Err(err).Str("component", "ws").Msg("websocket write failed")
			return
		}
	}
}

func readRequests(conn *websocket.Conn, out chan<- viewRequest, done <-chan struct{}) {
	defer close(out)
	for {
		var req viewRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		select {
		case out <- req:
		case <-done:
			return
		}
	}
}

func (s *Server) isSourcePath(label, path string) bool {
	src, ok := s.viewer.Lookup(label)
	return ok && src.Path == path
}
