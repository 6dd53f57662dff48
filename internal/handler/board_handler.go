package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"kanbanflow/internal/reorder"
	"kanbanflow/internal/repository"
	"kanbanflow/internal/session"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	sessions *session.Manager
}

func NewBoardHandler(sessions *session.Manager) *BoardHandler {
	return &BoardHandler{sessions: sessions}
}

type SnapshotResponse struct {
	Columns []ColumnResponse `json:"columns"`
	Issues  []IssueResponse  `json:"issues"`
}

// DropResponse carries the notification of the drop and the board as
// re-read from the store afterwards.
type DropResponse struct {
	OK      bool   `json:"ok"`
	Noop    bool   `json:"noop"`
	Message string `json:"message,omitempty"`
	SnapshotResponse
}

func toSnapshotResponse(snap reorder.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Columns: toColumnResponses(snap.Columns),
		Issues:  toIssueResponses(snap.Issues),
	}
}

func (h *BoardHandler) openSession(c *gin.Context) (*session.Session, bool) {
	boardID, ok := idParam(c, "board")
	if !ok {
		return nil, false
	}

	s, err := h.sessions.Session(c.Request.Context(), boardID)
	if err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return nil, false
		}
		slog.Error("open board session", "board_id", boardID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load board"})
		return nil, false
	}
	return s, true
}

func (h *BoardHandler) Snapshot(c *gin.Context) {
	if _, ok := authenticatedUser(c); !ok {
		return
	}

	s, ok := h.openSession(c)
	if !ok {
		return
	}

	if err := s.Refresh(c.Request.Context()); err != nil {
		slog.Error("refresh board snapshot", "board_id", s.Board().ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load board"})
		return
	}

	c.JSON(http.StatusOK, toSnapshotResponse(s.Snapshot()))
}

func (h *BoardHandler) Drop(c *gin.Context) {
	if _, ok := authenticatedUser(c); !ok {
		return
	}

	var ev reorder.DropEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	s, ok := h.openSession(c)
	if !ok {
		return
	}

	report := s.Handle(c.Request.Context(), ev)

	resp := DropResponse{
		OK:               report.OK(),
		Noop:             report.Noop,
		SnapshotResponse: toSnapshotResponse(report.Snapshot),
	}
	if report.Notification != nil {
		resp.Message = report.Notification.Message
	}

	statusCode := http.StatusOK
	if !report.OK() {
		statusCode = http.StatusConflict
		if resp.Message == "" {
			resp.Message = report.Err.Error()
		}
	}
	c.JSON(statusCode, resp)
}
