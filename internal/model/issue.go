package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is a workflow status code. Any string is accepted; the constants
// below are the ones derived from column names.
type Status string

const (
	StatusToDo       Status = "TO_DO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusReview     Status = "REVIEW"
	StatusDone       Status = "DONE"
)

type Issue struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	ColumnID    *uuid.UUID `gorm:"type:uuid;index" json:"column_id"`
	Order       int        `gorm:"column:sort_order;not null" json:"order"`
	Status      Status     `gorm:"not null;default:TO_DO" json:"status"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description,omitempty"`
	AssigneeID  *uuid.UUID `gorm:"type:uuid" json:"assignee_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// InColumn reports whether the issue is placed on the given column.
func (i Issue) InColumn(columnID uuid.UUID) bool {
	return i.ColumnID != nil && *i.ColumnID == columnID
}

// Placement is a partial update of an issue's position. Nil fields are left
// untouched.
type Placement struct {
	Order    int
	ColumnID *uuid.UUID
	Status   *Status
}
