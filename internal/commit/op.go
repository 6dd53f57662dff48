package commit

import (
	"fmt"

	"github.com/google/uuid"

	"kanbanflow/internal/model"
)

// Kind names the entity an Op targets.
type Kind string

const (
	KindColumn Kind = "column"
	KindIssue  Kind = "issue"
)

// Op is one per-item persistence call: set the order of one entity and, for
// an issue moved across columns, its column and status.
type Op struct {
	Kind     Kind
	ID       uuid.UUID
	Order    int
	ColumnID *uuid.UUID
	Status   *model.Status
}

// SetColumnOrder builds the op for a column whose order changes.
func SetColumnOrder(id uuid.UUID, order int) Op {
	return Op{Kind: KindColumn, ID: id, Order: order}
}

// SetIssueOrder builds the op for an issue staying in its column.
func SetIssueOrder(id uuid.UUID, order int) Op {
	return Op{Kind: KindIssue, ID: id, Order: order}
}

// PlaceIssue builds the op for an issue landing in a different column.
func PlaceIssue(id uuid.UUID, order int, columnID uuid.UUID, status model.Status) Op {
	return Op{Kind: KindIssue, ID: id, Order: order, ColumnID: &columnID, Status: &status}
}

// Placement returns the partial issue update carried by the op.
func (o Op) Placement() model.Placement {
	return model.Placement{Order: o.Order, ColumnID: o.ColumnID, Status: o.Status}
}

func (o Op) String() string {
	s := fmt.Sprintf("%s %s order=%d", o.Kind, o.ID, o.Order)
	if o.ColumnID != nil {
		s += fmt.Sprintf(" column=%s", *o.ColumnID)
	}
	if o.Status != nil {
		s += fmt.Sprintf(" status=%s", *o.Status)
	}
	return s
}
