package reorder_test

import (
	"testing"

	"kanbanflow/internal/commit"
	"kanbanflow/internal/model"
	"kanbanflow/internal/ordering"
	"kanbanflow/internal/reorder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func column(name string, order int) model.Column {
	return model.Column{ID: uuid.New(), BoardID: uuid.Nil, Name: name, Order: order}
}

func issue(title string, columnID uuid.UUID, order int) model.Issue {
	id := columnID
	return model.Issue{ID: uuid.New(), ColumnID: &id, Title: title, Order: order, Status: model.StatusToDo}
}

func find(t *testing.T, issues []model.Issue, id uuid.UUID) model.Issue {
	t.Helper()
	for _, i := range issues {
		if i.ID == id {
			return i
		}
	}
	t.Fatalf("issue %s not in snapshot", id)
	return model.Issue{}
}

func titlesIn(snap reorder.Snapshot, columnID uuid.UUID) []string {
	sorted := ordering.Sorted(snap.IssuesIn(columnID), func(i model.Issue) int { return i.Order })
	out := make([]string, len(sorted))
	for i, is := range sorted {
		out[i] = is.Title
	}
	return out
}

func denseIn(snap reorder.Snapshot, columnID uuid.UUID) bool {
	return ordering.Dense(snap.IssuesIn(columnID), func(i model.Issue) int { return i.Order })
}

func TestColumns_MoveFirstToLast(t *testing.T) {
	a, b, c := column("A", 0), column("B", 1), column("C", 2)
	snap := reorder.Snapshot{Columns: []model.Column{a, b, c}}

	plan, err := reorder.NewEngine(nil).Columns(snap, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, reorder.PlanColumnReorder, plan.Kind)
	require.Len(t, plan.Ops, 3)
	assert.Equal(t, []commit.Op{
		commit.SetColumnOrder(b.ID, 0),
		commit.SetColumnOrder(c.ID, 1),
		commit.SetColumnOrder(a.ID, 2),
	}, plan.Ops)

	names := []string{}
	for _, col := range plan.Snapshot.Columns {
		names = append(names, col.Name)
	}
	assert.Equal(t, []string{"B", "C", "A"}, names)
	// the input snapshot is not touched
	assert.Equal(t, 0, snap.Columns[0].Order)
}

func TestColumns_SparseOrdersAreCompacted(t *testing.T) {
	a, b, c := column("A", 10), column("B", 20), column("C", 30)
	snap := reorder.Snapshot{Columns: []model.Column{c, a, b}}

	plan, err := reorder.NewEngine(nil).Columns(snap, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, []commit.Op{
		commit.SetColumnOrder(c.ID, 0),
		commit.SetColumnOrder(a.ID, 1),
		commit.SetColumnOrder(b.ID, 2),
	}, plan.Ops)
}

func TestColumns_SameIndexIsNoop(t *testing.T) {
	snap := reorder.Snapshot{Columns: []model.Column{column("A", 0), column("B", 1)}}

	plan, err := reorder.NewEngine(nil).Columns(snap, 1, 1)
	require.NoError(t, err)

	assert.True(t, plan.Empty())
	assert.Equal(t, snap, plan.Snapshot)
}

func TestColumns_IndexOutOfRange(t *testing.T) {
	snap := reorder.Snapshot{Columns: []model.Column{column("A", 0)}}

	_, err := reorder.NewEngine(nil).Columns(snap, 3, 0)

	assert.ErrorIs(t, err, reorder.ErrIndexOutOfRange)
}

func TestColumns_DestinationIsClamped(t *testing.T) {
	a, b := column("A", 0), column("B", 1)
	snap := reorder.Snapshot{Columns: []model.Column{a, b}}

	plan, err := reorder.NewEngine(nil).Columns(snap, 0, 99)
	require.NoError(t, err)

	assert.Equal(t, []commit.Op{commit.SetColumnOrder(b.ID, 0), commit.SetColumnOrder(a.ID, 1)}, plan.Ops)
}

func TestColumns_AlwaysDense(t *testing.T) {
	for n := 1; n <= 6; n++ {
		cols := make([]model.Column, n)
		for i := range cols {
			cols[i] = column(string(rune('A'+i)), i*3)
		}
		snap := reorder.Snapshot{Columns: cols}

		for from := 0; from < n; from++ {
			for to := 0; to < n; to++ {
				plan, err := reorder.NewEngine(nil).Columns(snap, from, to)
				require.NoError(t, err)
				if from == to {
					assert.True(t, plan.Empty())
					continue
				}
				assert.True(t, ordering.Dense(plan.Snapshot.Columns, func(c model.Column) int { return c.Order }),
					"n=%d from=%d to=%d", n, from, to)
				assert.Equal(t, cols[from].ID, plan.Snapshot.Columns[to].ID)
			}
		}
	}
}

func TestIssues_SameColumnReorder(t *testing.T) {
	col := column("To Do", 0)
	x, y, z := issue("X", col.ID, 0), issue("Y", col.ID, 1), issue("Z", col.ID, 2)
	snap := reorder.Snapshot{Columns: []model.Column{col}, Issues: []model.Issue{x, y, z}}

	plan, err := reorder.NewEngine(nil).Issues(snap, reorder.IssueDrag{
		IssueID: z.ID, From: col.ID, FromIndex: 2, To: col.ID, ToIndex: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, reorder.PlanIssueReorder, plan.Kind)
	assert.Equal(t, []string{"Z", "X", "Y"}, titlesIn(plan.Snapshot, col.ID))
	assert.Equal(t, []commit.Op{
		commit.SetIssueOrder(z.ID, 0),
		commit.SetIssueOrder(x.ID, 1),
		commit.SetIssueOrder(y.ID, 2),
	}, plan.Ops)
	assert.Equal(t, model.StatusToDo, find(t, plan.Snapshot.Issues, z.ID).Status)
}

func TestIssues_CrossColumnMove(t *testing.T) {
	todo, doing := column("To Do", 0), column("In Progress", 1)
	p, q := issue("P", todo.ID, 0), issue("Q", todo.ID, 1)
	r := issue("R", doing.ID, 0)
	snap := reorder.Snapshot{
		Columns: []model.Column{todo, doing},
		Issues:  []model.Issue{p, q, r},
	}

	plan, err := reorder.NewEngine(nil).Issues(snap, reorder.IssueDrag{
		IssueID: p.ID, From: todo.ID, FromIndex: 0, To: doing.ID, ToIndex: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, reorder.PlanIssueMove, plan.Kind)
	assert.Equal(t, []string{"Q"}, titlesIn(plan.Snapshot, todo.ID))
	assert.Equal(t, []string{"R", "P"}, titlesIn(plan.Snapshot, doing.ID))

	moved := find(t, plan.Snapshot.Issues, p.ID)
	assert.Equal(t, doing.ID, *moved.ColumnID)
	assert.Equal(t, 1, moved.Order)
	assert.Equal(t, model.StatusInProgress, moved.Status)

	// source renumbering first, then the destination list
	assert.Equal(t, []commit.Op{
		commit.SetIssueOrder(q.ID, 0),
		commit.SetIssueOrder(r.ID, 0),
		commit.PlaceIssue(p.ID, 1, doing.ID, model.StatusInProgress),
	}, plan.Ops)
}

func TestIssues_MoveIntoEmptyColumnUsesExplicitStatus(t *testing.T) {
	review := model.StatusReview
	todo := column("To Do", 0)
	qa := column("QA", 1)
	qa.Status = &review
	p := issue("P", todo.ID, 0)
	snap := reorder.Snapshot{Columns: []model.Column{todo, qa}, Issues: []model.Issue{p}}

	plan, err := reorder.NewEngine(nil).Issues(snap, reorder.IssueDrag{From: todo.ID, FromIndex: 0, To: qa.ID, ToIndex: 5})
	require.NoError(t, err)

	assert.Equal(t, []commit.Op{commit.PlaceIssue(p.ID, 0, qa.ID, model.StatusReview)}, plan.Ops)
	assert.Empty(t, plan.Snapshot.IssuesIn(todo.ID))
}

func TestIssues_UnplacedIssuesAreIgnored(t *testing.T) {
	col := column("To Do", 0)
	a, b := issue("A", col.ID, 0), issue("B", col.ID, 1)
	loose := model.Issue{ID: uuid.New(), Title: "loose", Order: 0}
	snap := reorder.Snapshot{Columns: []model.Column{col}, Issues: []model.Issue{loose, a, b}}

	plan, err := reorder.NewEngine(nil).Issues(snap, reorder.IssueDrag{From: col.ID, FromIndex: 0, To: col.ID, ToIndex: 1})
	require.NoError(t, err)

	assert.Len(t, plan.Ops, 2)
	assert.Equal(t, loose, find(t, plan.Snapshot.Issues, loose.ID))
}

func TestIssues_Errors(t *testing.T) {
	col := column("To Do", 0)
	a := issue("A", col.ID, 0)
	snap := reorder.Snapshot{Columns: []model.Column{col}, Issues: []model.Issue{a}}
	engine := reorder.NewEngine(nil)

	_, err := engine.Issues(snap, reorder.IssueDrag{From: uuid.New(), To: col.ID, ToIndex: 1})
	assert.ErrorIs(t, err, reorder.ErrColumnNotFound)

	_, err = engine.Issues(snap, reorder.IssueDrag{From: col.ID, To: uuid.New()})
	assert.ErrorIs(t, err, reorder.ErrColumnNotFound)

	_, err = engine.Issues(snap, reorder.IssueDrag{From: col.ID, FromIndex: 4, To: col.ID, ToIndex: 0})
	assert.ErrorIs(t, err, reorder.ErrIndexOutOfRange)

	_, err = engine.Issues(snap, reorder.IssueDrag{IssueID: uuid.New(), From: col.ID, FromIndex: 0, To: col.ID, ToIndex: 1})
	assert.ErrorIs(t, err, reorder.ErrStaleSnapshot)
}

func TestIssues_CrossColumnAlwaysDense(t *testing.T) {
	for srcN := 1; srcN <= 4; srcN++ {
		for dstN := 0; dstN <= 4; dstN++ {
			src, dst := column("To Do", 0), column("Done", 1)
			var issues []model.Issue
			for i := 0; i < srcN; i++ {
				issues = append(issues, issue("s", src.ID, i*2+1))
			}
			for i := 0; i < dstN; i++ {
				issues = append(issues, issue("d", dst.ID, i))
			}
			snap := reorder.Snapshot{Columns: []model.Column{src, dst}, Issues: issues}

			for from := 0; from < srcN; from++ {
				for to := 0; to <= dstN; to++ {
					plan, err := reorder.NewEngine(nil).Issues(snap, reorder.IssueDrag{
						From: src.ID, FromIndex: from, To: dst.ID, ToIndex: to,
					})
					require.NoError(t, err)

					assert.True(t, denseIn(plan.Snapshot, src.ID))
					assert.True(t, denseIn(plan.Snapshot, dst.ID))
					assert.Len(t, plan.Snapshot.IssuesIn(src.ID), srcN-1)
					assert.Len(t, plan.Snapshot.IssuesIn(dst.ID), dstN+1)
					assert.Len(t, plan.Ops, srcN+dstN)
				}
			}
		}
	}
}

func TestPlan_Dispatch(t *testing.T) {
	todo, done := column("To Do", 0), column("Done", 1)
	p := issue("P", todo.ID, 0)
	snap := reorder.Snapshot{Columns: []model.Column{todo, done}, Issues: []model.Issue{p}}
	engine := reorder.NewEngine(nil)

	plan, err := engine.Plan(snap, reorder.DropEvent{
		Type:        reorder.DragIssue,
		DraggableID: p.ID.String(),
		Source:      reorder.Position{DroppableID: todo.ID.String(), Index: 0},
		Destination: &reorder.Position{DroppableID: done.ID.String(), Index: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []commit.Op{commit.PlaceIssue(p.ID, 0, done.ID, model.StatusDone)}, plan.Ops)

	plan, err = engine.Plan(snap, reorder.DropEvent{
		Type:        reorder.DragColumn,
		DraggableID: todo.ID.String(),
		Source:      reorder.Position{DroppableID: "board", Index: 0},
		Destination: &reorder.Position{DroppableID: "board", Index: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, reorder.PlanColumnReorder, plan.Kind)

	plan, err = engine.Plan(snap, reorder.DropEvent{Type: reorder.DragIssue, Source: reorder.Position{DroppableID: todo.ID.String()}})
	require.NoError(t, err)
	assert.True(t, plan.Empty(), "dropped outside any list")

	_, err = engine.Plan(snap, reorder.DropEvent{
		Type:        reorder.DragIssue,
		Source:      reorder.Position{DroppableID: "nope"},
		Destination: &reorder.Position{DroppableID: done.ID.String()},
	})
	assert.ErrorIs(t, err, reorder.ErrInvalidColumnID)

	_, err = engine.Plan(snap, reorder.DropEvent{
		Type:        "LABEL",
		Destination: &reorder.Position{Index: 1},
	})
	assert.ErrorIs(t, err, reorder.ErrUnknownDragType)
}

func TestDropEvent_Noop(t *testing.T) {
	col := uuid.New().String()

	assert.True(t, reorder.DropEvent{Type: reorder.DragIssue}.Noop())
	assert.True(t, reorder.DropEvent{
		Type: reorder.DragIssue, Source: reorder.Position{DroppableID: col, Index: 2},
		Destination: &reorder.Position{DroppableID: col, Index: 2},
	}.Noop())
	assert.False(t, reorder.DropEvent{
		Type: reorder.DragIssue, Source: reorder.Position{DroppableID: col, Index: 2},
		Destination: &reorder.Position{DroppableID: uuid.New().String(), Index: 2},
	}.Noop())
	assert.True(t, reorder.DropEvent{
		Type: reorder.DragColumn, Source: reorder.Position{Index: 1},
		Destination: &reorder.Position{DroppableID: "board", Index: 1},
	}.Noop())
}
