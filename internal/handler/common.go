package handler

import (
	"net/http"

	"kanbanflow/internal/middleware"
	"kanbanflow/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authenticatedUser writes the error response itself and returns false when
// the request carries no usable user id.
func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}

	authenticatedUserID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}
	return authenticatedUserID, true
}

// idParam parses the :id path parameter; what names the entity in the 400 message.
func idParam(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

type ColumnResponse struct {
	ID       string  `json:"id"`
	BoardID  string  `json:"board_id"`
	Name     string  `json:"name"`
	Order    int     `json:"order"`
	WIPLimit *int    `json:"wip_limit,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type IssueResponse struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	ColumnID    *string `json:"column_id"`
	Order       int     `json:"order"`
	Status      string  `json:"status"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

func toColumnResponse(column model.Column) ColumnResponse {
	resp := ColumnResponse{
		ID:       column.ID.String(),
		BoardID:  column.BoardID.String(),
		Name:     column.Name,
		Order:    column.Order,
		WIPLimit: column.WIPLimit,
	}
	if column.Status != nil {
		s := string(*column.Status)
		resp.Status = &s
	}
	return resp
}

func toColumnResponses(columns []model.Column) []ColumnResponse {
	response := make([]ColumnResponse, len(columns))
	for i, column := range columns {
		response[i] = toColumnResponse(column)
	}
	return response
}

func toIssueResponse(issue model.Issue) IssueResponse {
	resp := IssueResponse{
		ID:          issue.ID.String(),
		ProjectID:   issue.ProjectID.String(),
		Order:       issue.Order,
		Status:      string(issue.Status),
		Title:       issue.Title,
		Description: issue.Description,
	}
	if issue.ColumnID != nil {
		columnID := issue.ColumnID.String()
		resp.ColumnID = &columnID
	}
	if issue.AssigneeID != nil {
		assigneeID := issue.AssigneeID.String()
		resp.AssigneeID = &assigneeID
	}
	return resp
}

func toIssueResponses(issues []model.Issue) []IssueResponse {
	response := make([]IssueResponse, len(issues))
	for i, issue := range issues {
		response[i] = toIssueResponse(issue)
	}
	return response
}
