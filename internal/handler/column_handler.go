package handler

import (
	"context"
	"errors"
	"net/http"

	"kanbanflow/internal/model"
	"kanbanflow/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ColumnStore is the column side of the persistence API.
type ColumnStore interface {
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Column, error)
	SetOrder(ctx context.Context, id uuid.UUID, order int) (*model.Column, error)
}

type ColumnHandler struct {
	columnRepo ColumnStore
}

func NewColumnHandler(columnRepo ColumnStore) *ColumnHandler {
	return &ColumnHandler{columnRepo: columnRepo}
}

type SetColumnOrderRequest struct {
	Order *int `json:"order" binding:"required,min=0"`
}

func (h *ColumnHandler) GetAll(c *gin.Context) {
	if _, ok := authenticatedUser(c); !ok {
		return
	}

	boardID, ok := idParam(c, "board")
	if !ok {
		return
	}

	columns, err := h.columnRepo.ListByBoard(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	c.JSON(http.StatusOK, toColumnResponses(columns))
}

func (h *ColumnHandler) SetOrder(c *gin.Context) {
	if _, ok := authenticatedUser(c); !ok {
		return
	}

	columnID, ok := idParam(c, "column")
	if !ok {
		return
	}

	var req SetColumnOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, err := h.columnRepo.SetOrder(c.Request.Context(), columnID, *req.Order)
	if err != nil {
		if errors.Is(err, repository.ErrColumnNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update column order"})
		return
	}

	c.JSON(http.StatusOK, toColumnResponse(*column))
}
