package model

import (
	"time"

	"github.com/google/uuid"
)

// Board types seen in the wild. The field is free-form.
const (
	BoardTypeKanban = "KANBAN"
	BoardTypeScrum  = "SCRUM"
)

type Board struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `gorm:"not null;default:KANBAN" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
