package reorder

import (
	"slices"

	"github.com/google/uuid"

	"kanbanflow/internal/model"
)

// DragType discriminates column drags from issue drags.
type DragType string

const (
	DragColumn DragType = "COLUMN"
	DragIssue  DragType = "ISSUE"
)

// Position locates a drag endpoint. For issue drags DroppableID is the column
// id; for column drags it names the board lane and only Index matters.
type Position struct {
	DroppableID string `json:"droppableId"`
	Index       int    `json:"index"`
}

// DropEvent is one completed drag gesture. A nil Destination means the item
// was dropped outside any list.
type DropEvent struct {
	Type        DragType  `json:"type" binding:"required,oneof=COLUMN ISSUE"`
	DraggableID string    `json:"draggableId"`
	Source      Position  `json:"source"`
	Destination *Position `json:"destination"`
}

// Noop reports whether the gesture leaves everything where it was.
func (e DropEvent) Noop() bool {
	if e.Destination == nil {
		return true
	}
	if e.Type == DragColumn {
		return e.Source.Index == e.Destination.Index
	}
	return e.Source.DroppableID == e.Destination.DroppableID && e.Source.Index == e.Destination.Index
}

// Snapshot is the state of one board as last read from the store.
type Snapshot struct {
	Columns []model.Column `json:"columns"`
	Issues  []model.Issue  `json:"issues"`
}

// Clone returns a deep enough copy that plans can be applied to it freely.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Columns: slices.Clone(s.Columns),
		Issues:  slices.Clone(s.Issues),
	}
}

// Column looks up a column by id.
func (s Snapshot) Column(id uuid.UUID) (model.Column, bool) {
	for _, c := range s.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return model.Column{}, false
}

// IssuesIn returns the issues placed on a column, in no particular order.
func (s Snapshot) IssuesIn(columnID uuid.UUID) []model.Issue {
	var out []model.Issue
	for _, i := range s.Issues {
		if i.InColumn(columnID) {
			out = append(out, i)
		}
	}
	return out
}
