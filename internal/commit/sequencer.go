// Package commit pushes a computed reorder to the persistence collaborator
// one item at a time.
package commit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"kanbanflow/internal/model"
)

// Store is the persistence collaborator the sequencer writes through.
type Store interface {
	SetColumnOrder(ctx context.Context, id uuid.UUID, order int) (*model.Column, error)
	SetIssuePlacement(ctx context.Context, id uuid.UUID, p model.Placement) (*model.Issue, error)
}

// Failure describes the op that stopped a run.
type Failure struct {
	Op    Op
	Index int
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("commit %d (%s) failed: %v", f.Index+1, f.Op, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Outcome of a run. Completed counts the ops that were persisted before the
// failure, or all of them when Failure is nil.
type Outcome struct {
	Completed int
	Failure   *Failure
}

// Committed reports whether every op succeeded.
func (o Outcome) Committed() bool {
	return o.Failure == nil
}

// Err returns the failure as an error, or nil.
func (o Outcome) Err() error {
	if o.Failure == nil {
		return nil
	}
	return o.Failure
}

type Sequencer struct {
	store  Store
	logger *slog.Logger
}

func NewSequencer(store Store, logger *slog.Logger) *Sequencer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sequencer{store: store, logger: logger}
}

// Run applies ops in order, waiting for each call to return before issuing
// the next. It stops at the first failure. Nothing is retried and ops that
// already succeeded are not undone.
func (s *Sequencer) Run(ctx context.Context, ops []Op) Outcome {
	for i, op := range ops {
		if err := s.apply(ctx, op); err != nil {
			s.logger.Warn("commit failed",
				"index", i, "total", len(ops), "op", op.String(), "error", err)
			return Outcome{Completed: i, Failure: &Failure{Op: op, Index: i, Err: err}}
		}
	}
	s.logger.Debug("commits applied", "total", len(ops))
	return Outcome{Completed: len(ops)}
}

func (s *Sequencer) apply(ctx context.Context, op Op) error {
	switch op.Kind {
	case KindColumn:
		_, err := s.store.SetColumnOrder(ctx, op.ID, op.Order)
		return err
	case KindIssue:
		_, err := s.store.SetIssuePlacement(ctx, op.ID, op.Placement())
		return err
	default:
		return fmt.Errorf("unknown op kind %q", op.Kind)
	}
}
