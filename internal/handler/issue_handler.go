package handler

import (
	"context"
	"errors"
	"net/http"

	"kanbanflow/internal/model"
	"kanbanflow/internal/repository"
	"kanbanflow/internal/status"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IssueStore is the issue side of the persistence API.
type IssueStore interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Issue, error)
	SetPlacement(ctx context.Context, id uuid.UUID, p model.Placement) (*model.Issue, error)
}

// ColumnLookup resolves the column an issue is being placed on.
type ColumnLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error)
}

type IssueHandler struct {
	issueRepo  IssueStore
	columnRepo ColumnLookup
}

func NewIssueHandler(issueRepo IssueStore, columnRepo ColumnLookup) *IssueHandler {
	return &IssueHandler{issueRepo: issueRepo, columnRepo: columnRepo}
}

// SetPlacementRequest sets an issue's order and optionally its column and
// status. A column without a status gives the issue the column's status.
type SetPlacementRequest struct {
	Order    *int    `json:"order" binding:"required,min=0"`
	ColumnID *string `json:"column_id" binding:"omitempty,uuid"`
	Status   *string `json:"status" binding:"omitempty,min=1"`
}

func (h *IssueHandler) GetByProject(c *gin.Context) {
	if _, ok := authenticatedUser(c); !ok {
		return
	}

	projectID, ok := idParam(c, "project")
	if !ok {
		return
	}

	issues, err := h.issueRepo.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	c.JSON(http.StatusOK, toIssueResponses(issues))
}

func (h *IssueHandler) SetPlacement(c *gin.Context) {
	if _, ok := authenticatedUser(c); !ok {
		return
	}

	issueID, ok := idParam(c, "issue")
	if !ok {
		return
	}

	var req SetPlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	placement := model.Placement{Order: *req.Order}
	if req.Status != nil {
		st := model.Status(*req.Status)
		placement.Status = &st
	}
	if req.ColumnID != nil {
		columnID, err := uuid.Parse(*req.ColumnID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
			return
		}
		column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
		if err != nil {
			if errors.Is(err, repository.ErrColumnNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
			return
		}
		placement.ColumnID = &column.ID
		if placement.Status == nil {
			st := status.ForColumn(*column)
			placement.Status = &st
		}
	}

	issue, err := h.issueRepo.SetPlacement(c.Request.Context(), issueID, placement)
	if err != nil {
		if errors.Is(err, repository.ErrIssueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue placement"})
		return
	}

	c.JSON(http.StatusOK, toIssueResponse(*issue))
}
