// Package session runs drag-and-drop pipelines for a board: compute the new
// order, persist it item by item, then rebuild the snapshot from the store.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"

	"kanbanflow/internal/commit"
	"kanbanflow/internal/model"
	"kanbanflow/internal/reorder"
)

// State of a session's pipeline.
type State int32

const (
	Idle State = iota
	Computing
	Committing
	Refetching
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Computing:
		return "computing"
	case Committing:
		return "committing"
	case Refetching:
		return "refetching"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Store is everything a session needs from persistence.
type Store interface {
	commit.Store
	ListColumns(ctx context.Context, boardID uuid.UUID) ([]model.Column, error)
	ListIssues(ctx context.Context, projectID uuid.UUID) ([]model.Issue, error)
}

// Report is the result of one Handle call.
type Report struct {
	Noop         bool
	Kind         reorder.PlanKind
	Outcome      commit.Outcome
	Err          error
	Notification *Notification
	Snapshot     reorder.Snapshot
}

// OK reports whether the drop was persisted and the board refreshed.
func (r Report) OK() bool {
	return r.Err == nil
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func WithEngine(e *reorder.Engine) Option {
	return func(s *Session) { s.engine = e }
}

// Session owns the snapshot of one board. Drops are processed one at a time
// in arrival order; a drop waits for the previous pipeline to reach Idle.
type Session struct {
	board    model.Board
	store    Store
	notifier Notifier
	engine   *reorder.Engine
	logger   *slog.Logger

	seq   *commit.Sequencer
	lock  *semaphore.Weighted
	state atomic.Int32

	mu       sync.RWMutex
	snapshot reorder.Snapshot
}

func New(board model.Board, store Store, notifier Notifier, opts ...Option) *Session {
	s := &Session{
		board:    board,
		store:    store,
		notifier: notifier,
		lock:     semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("board_id", board.ID)
	if s.engine == nil {
		s.engine = reorder.NewEngine(nil)
	}
	if s.notifier == nil {
		s.notifier = LogNotifier{Logger: s.logger}
	}
	s.seq = commit.NewSequencer(store, s.logger)
	return s
}

func (s *Session) Board() model.Board {
	return s.board
}

func (s *Session) State() State {
	return State(s.state.Load())
}

// Snapshot returns a copy of the current snapshot.
func (s *Session) Snapshot() reorder.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Refresh replaces the snapshot with the store's current state. On error
// the previous snapshot is kept.
func (s *Session) Refresh(ctx context.Context) error {
	columns, err := s.store.ListColumns(ctx, s.board.ID)
	if err != nil {
		return fmt.Errorf("list columns: %w", err)
	}
	issues, err := s.store.ListIssues(ctx, s.board.ProjectID)
	if err != nil {
		return fmt.Errorf("list issues: %w", err)
	}

	s.mu.Lock()
	s.snapshot = reorder.Snapshot{Columns: columns, Issues: issues}
	s.mu.Unlock()
	return nil
}

// Handle runs the full pipeline for one drop event. Failures are reported
// through the notifier and the returned Report, never as a panic or error.
//
// Waiting for a previous drop honours ctx. Once the drop is being
// committed it runs to completion or first failure regardless of ctx.
func (s *Session) Handle(ctx context.Context, ev reorder.DropEvent) Report {
	if ev.Noop() {
		return Report{Noop: true, Snapshot: s.Snapshot()}
	}

	if err := s.lock.Acquire(ctx, 1); err != nil {
		return Report{Err: fmt.Errorf("waiting for board: %w", err), Snapshot: s.Snapshot()}
	}
	defer s.lock.Release(1)
	defer s.setState(Idle)

	work := context.WithoutCancel(ctx)

	// The plan is computed from the board as stored at drop time.
	s.setState(Computing)
	if err := s.Refresh(work); err != nil {
		s.logger.Error("refresh before drop failed", "error", err)
		return s.notify(work, Report{Snapshot: s.Snapshot()}, failures{refreshFailure(err)})
	}
	plan, err := s.engine.Plan(s.Snapshot(), ev)
	if err != nil {
		s.logger.Warn("drop rejected", "type", ev.Type, "error", err)
		return s.finish(work, Report{}, failures{{message: err.Error(), err: err}})
	}
	if plan.Empty() {
		return Report{Noop: true, Snapshot: s.Snapshot()}
	}

	s.setState(Committing)
	outcome := s.seq.Run(work, plan.Ops)
	s.logger.Info("drop committed",
		"kind", plan.Kind, "completed", outcome.Completed, "total", len(plan.Ops), "ok", outcome.Committed())

	var fails failures
	if f := outcome.Failure; f != nil {
		fails = append(fails, failure{message: f.Err.Error(), err: f})
	}
	return s.finish(work, Report{Kind: plan.Kind, Outcome: outcome}, fails)
}

// finish always refetches, then notifies.
func (s *Session) finish(ctx context.Context, r Report, fails failures) Report {
	s.setState(Refetching)
	if err := s.Refresh(ctx); err != nil {
		s.logger.Error("refresh after drop failed", "error", err)
		fails = append(fails, refreshFailure(err))
	}

	r.Snapshot = s.Snapshot()
	return s.notify(ctx, r, fails)
}

// notify emits the single notification for the drop.
func (s *Session) notify(ctx context.Context, r Report, fails failures) Report {
	r.Err = fails.err()

	n := Notification{BoardID: s.board.ID, Level: LevelSuccess, Message: successMessage(r.Kind)}
	if r.Err != nil {
		n.Level = LevelError
		n.Message = fails.message()
	}
	r.Notification = &n
	s.notifier.Notify(ctx, n)
	return r
}

func (s *Session) setState(st State) {
	s.state.Store(int32(st))
}

func successMessage(kind reorder.PlanKind) string {
	switch kind {
	case reorder.PlanColumnReorder:
		return "Column order updated"
	case reorder.PlanIssueMove:
		return "Issue moved to new column"
	default:
		return "Issue reordered"
	}
}

type failure struct {
	message string
	err     error
}

func refreshFailure(err error) failure {
	return failure{message: "could not refresh board: " + err.Error(), err: err}
}

type failures []failure

func (fs failures) err() error {
	var result *multierror.Error
	for _, f := range fs {
		result = multierror.Append(result, f.err)
	}
	if result != nil {
		result.ErrorFormat = joinErrors
	}
	return result.ErrorOrNil()
}

func (fs failures) message() string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.message
	}
	return strings.Join(parts, "; ")
}

func joinErrors(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}
