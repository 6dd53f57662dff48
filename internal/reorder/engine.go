// Package reorder computes the result of a drag on a board: the target
// arrangement and the ordered list of per-item writes that persist it.
//
// Affected lists are always renumbered in full to 0..n-1. For a cross-column
// move that means both the source and the destination column.
package reorder

import (
	"fmt"

	"github.com/google/uuid"

	"kanbanflow/internal/commit"
	"kanbanflow/internal/model"
	"kanbanflow/internal/ordering"
	"kanbanflow/internal/status"
)

// PlanKind tells what a plan does, mainly for reporting.
type PlanKind string

const (
	PlanNone          PlanKind = ""
	PlanColumnReorder PlanKind = "column_reorder"
	PlanIssueReorder  PlanKind = "issue_reorder"
	PlanIssueMove     PlanKind = "issue_move"
)

// Plan is the full target arrangement plus the ops that persist it, in the
// order they must be applied.
type Plan struct {
	Kind     PlanKind
	Snapshot Snapshot
	Ops      []commit.Op
}

// Empty reports whether there is nothing to persist.
func (p Plan) Empty() bool {
	return len(p.Ops) == 0
}

// StatusFunc derives the status of an issue dropped on a column.
type StatusFunc func(model.Column) model.Status

// IssueDrag identifies an issue drag by column ids and indexes into each
// column's issues sorted by order. IssueID is optional; when set it must
// match the issue found at FromIndex.
type IssueDrag struct {
	IssueID   uuid.UUID
	From      uuid.UUID
	FromIndex int
	To        uuid.UUID
	ToIndex   int
}

type Engine struct {
	statusFor StatusFunc
}

// NewEngine returns an engine using statusFor to derive the status of moved
// issues. A nil statusFor means status.ForColumn.
func NewEngine(statusFor StatusFunc) *Engine {
	if statusFor == nil {
		statusFor = status.ForColumn
	}
	return &Engine{statusFor: statusFor}
}

// Plan dispatches a drop event to the matching algorithm.
func (e *Engine) Plan(snap Snapshot, ev DropEvent) (Plan, error) {
	if ev.Noop() {
		return Plan{Snapshot: snap.Clone()}, nil
	}

	switch ev.Type {
	case DragColumn:
		return e.Columns(snap, ev.Source.Index, ev.Destination.Index)
	case DragIssue:
		drag, err := issueDrag(ev)
		if err != nil {
			return Plan{}, err
		}
		return e.Issues(snap, drag)
	default:
		return Plan{}, fmt.Errorf("%w: %q", ErrUnknownDragType, ev.Type)
	}
}

func issueDrag(ev DropEvent) (IssueDrag, error) {
	from, err := uuid.Parse(ev.Source.DroppableID)
	if err != nil {
		return IssueDrag{}, fmt.Errorf("%w: source %q", ErrInvalidColumnID, ev.Source.DroppableID)
	}
	to, err := uuid.Parse(ev.Destination.DroppableID)
	if err != nil {
		return IssueDrag{}, fmt.Errorf("%w: destination %q", ErrInvalidColumnID, ev.Destination.DroppableID)
	}

	var issueID uuid.UUID
	if ev.DraggableID != "" {
		if issueID, err = uuid.Parse(ev.DraggableID); err != nil {
			return IssueDrag{}, fmt.Errorf("%w: draggable %q", ErrStaleSnapshot, ev.DraggableID)
		}
	}

	return IssueDrag{
		IssueID:   issueID,
		From:      from,
		FromIndex: ev.Source.Index,
		To:        to,
		ToIndex:   ev.Destination.Index,
	}, nil
}

// Columns moves the column at from to to, indexes being positions in the
// board's columns sorted by order, and renumbers every column.
func (e *Engine) Columns(snap Snapshot, from, to int) (Plan, error) {
	target := snap.Clone()
	if from == to {
		return Plan{Snapshot: target}, nil
	}

	sorted := ordering.Sorted(snap.Columns, columnOrder)
	if from < 0 || from >= len(sorted) {
		return Plan{}, fmt.Errorf("%w: column index %d of %d", ErrIndexOutOfRange, from, len(sorted))
	}
	to = ordering.Clamp(to, len(sorted)-1)

	renumbered := ordering.Renumber(ordering.Move(sorted, from, to), setColumnOrder)

	ops := make([]commit.Op, 0, len(renumbered))
	for _, c := range renumbered {
		ops = append(ops, commit.SetColumnOrder(c.ID, c.Order))
	}
	target.Columns = renumbered

	return Plan{Kind: PlanColumnReorder, Snapshot: target, Ops: ops}, nil
}

// Issues reorders an issue within its column or moves it to another one.
func (e *Engine) Issues(snap Snapshot, d IssueDrag) (Plan, error) {
	if d.From == d.To && d.FromIndex == d.ToIndex {
		return Plan{Snapshot: snap.Clone()}, nil
	}

	if _, ok := snap.Column(d.From); !ok {
		return Plan{}, fmt.Errorf("%w: %s", ErrColumnNotFound, d.From)
	}
	dest, ok := snap.Column(d.To)
	if !ok {
		return Plan{}, fmt.Errorf("%w: %s", ErrColumnNotFound, d.To)
	}

	source := ordering.Sorted(snap.IssuesIn(d.From), issueOrder)
	if d.FromIndex < 0 || d.FromIndex >= len(source) {
		return Plan{}, fmt.Errorf("%w: issue index %d of %d", ErrIndexOutOfRange, d.FromIndex, len(source))
	}
	if d.IssueID != uuid.Nil && source[d.FromIndex].ID != d.IssueID {
		return Plan{}, fmt.Errorf("%w: expected issue %s at index %d, found %s",
			ErrStaleSnapshot, d.IssueID, d.FromIndex, source[d.FromIndex].ID)
	}

	if d.From == d.To {
		return e.reorderIssues(snap, source, d), nil
	}
	return e.moveIssue(snap, source, dest, d), nil
}

func (e *Engine) reorderIssues(snap Snapshot, list []model.Issue, d IssueDrag) Plan {
	to := ordering.Clamp(d.ToIndex, len(list)-1)
	renumbered := ordering.Renumber(ordering.Move(list, d.FromIndex, to), setIssueOrder)

	ops := make([]commit.Op, 0, len(renumbered))
	for _, i := range renumbered {
		ops = append(ops, commit.SetIssueOrder(i.ID, i.Order))
	}

	return Plan{Kind: PlanIssueReorder, Snapshot: applyIssues(snap, renumbered), Ops: ops}
}

func (e *Engine) moveIssue(snap Snapshot, source []model.Issue, dest model.Column, d IssueDrag) Plan {
	rest, moved := ordering.Remove(source, d.FromIndex)
	rest = ordering.Renumber(rest, setIssueOrder)

	destID := dest.ID
	moved.ColumnID = &destID
	moved.Status = e.statusFor(dest)

	destList := ordering.Sorted(snap.IssuesIn(d.To), issueOrder)
	to := ordering.Clamp(d.ToIndex, len(destList))
	destList = ordering.Renumber(ordering.Insert(destList, to, moved), setIssueOrder)

	ops := make([]commit.Op, 0, len(rest)+len(destList))
	for _, i := range rest {
		ops = append(ops, commit.SetIssueOrder(i.ID, i.Order))
	}
	for _, i := range destList {
		if i.ID == moved.ID {
			ops = append(ops, commit.PlaceIssue(i.ID, i.Order, destID, i.Status))
			continue
		}
		ops = append(ops, commit.SetIssueOrder(i.ID, i.Order))
	}

	changed := append(rest, destList...)
	return Plan{Kind: PlanIssueMove, Snapshot: applyIssues(snap, changed), Ops: ops}
}

// applyIssues returns a copy of snap with the given issues replaced by id.
func applyIssues(snap Snapshot, changed []model.Issue) Snapshot {
	byID := make(map[uuid.UUID]model.Issue, len(changed))
	for _, i := range changed {
		byID[i.ID] = i
	}

	target := snap.Clone()
	for idx, i := range target.Issues {
		if updated, ok := byID[i.ID]; ok {
			target.Issues[idx] = updated
		}
	}
	return target
}

func columnOrder(c model.Column) int { return c.Order }

func setColumnOrder(c *model.Column, order int) { c.Order = order }

func issueOrder(i model.Issue) int { return i.Order }

func setIssueOrder(i *model.Issue, order int) { i.Order = order }
