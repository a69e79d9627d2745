package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/five82/tailview/internal/filter"
	"github.com/five82/tailview/internal/viewer"
)

type sourceInfo struct {
	Label  string `json:"label"`
	Format string `json:"format"`
	// TimeOfDay reports whether start/end time fields apply to the source.
	TimeOfDay bool `json:"time_of_day"`
}

type sourcesResponse struct {
	Sources   []sourceInfo `json:"sources"`
	RefreshMS int64        `json:"refresh_ms"`
}

type viewResponse struct {
	Source    string `json:"source"`
	Text      string `json:"text"`
	Status    string `json:"status"`
	Lines     int    `json:"lines"`
	Matched   int    `json:"matched"`
	ErrorKind string `json:"error_kind,omitempty"`
}

func newViewResponse(source string, v viewer.View) viewResponse {
	resp := viewResponse{
		Source:  source,
		Text:    v.Text,
		Status:  v.Status,
		Lines:   v.Lines,
		Matched: v.Matched,
	}
	if v.Err != nil {
		resp.ErrorKind = v.Err.Kind.String()
	}
	return resp
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"sources": len(s.viewer.Sources()),
		"uptime":  time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleSources(c *gin.Context) {
	sources := s.viewer.Sources()
	resp := sourcesResponse{
		Sources:   make([]sourceInfo, 0, len(sources)),
		RefreshMS: s.refresh.Milliseconds(),
	}
	for _, src := range sources {
		resp.Sources = append(resp.Sources, sourceInfo{
			Label:     src.Label,
			Format:    src.Format.String(),
			TimeOfDay: src.Format == filter.FormatPipe,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// handleView runs one refresh. Read failures are display content and are
// returned with 200, like any other view.
func (s *Server) handleView(c *gin.Context) {
	var params filter.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	source := c.Query("source")
	if source == "" {
		source = s.viewer.Default().Label
	}
	view := s.viewer.Refresh(source, params)
	c.JSON(http.StatusOK, newViewResponse(source, view))
}
