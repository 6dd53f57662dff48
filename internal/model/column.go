package model

import (
	"github.com/google/uuid"
)

type Column struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BoardID uuid.UUID `gorm:"type:uuid;not null;index" json:"board_id"`
	Name    string    `gorm:"not null" json:"name"`
	Order   int       `gorm:"column:sort_order;not null" json:"order"`

	// WIPLimit is advisory only.
	WIPLimit *int `gorm:"column:wip_limit" json:"wip_limit,omitempty"`

	// Status is an explicit workflow mapping. When nil the status of issues
	// dropped here is derived from Name.
	Status *Status `gorm:"column:workflow_status" json:"status,omitempty"`

	Collapsed bool `gorm:"-" json:"collapsed,omitempty"`
}
