package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanbanflow/internal/model"
)

// Store is the persistence collaborator of board sessions: per-item writes
// plus the reads used to rebuild a snapshot. Each write is its own statement;
// there is no transaction spanning a drop.
type Store struct {
	Columns *ColumnRepository
	Issues  *IssueRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Columns: NewColumnRepository(db),
		Issues:  NewIssueRepository(db),
	}
}

func (s *Store) SetColumnOrder(ctx context.Context, id uuid.UUID, order int) (*model.Column, error) {
	return s.Columns.SetOrder(ctx, id, order)
}

func (s *Store) SetIssuePlacement(ctx context.Context, id uuid.UUID, p model.Placement) (*model.Issue, error) {
	return s.Issues.SetPlacement(ctx, id, p)
}

func (s *Store) ListColumns(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	return s.Columns.ListByBoard(ctx, boardID)
}

func (s *Store) ListIssues(ctx context.Context, projectID uuid.UUID) ([]model.Issue, error) {
	return s.Issues.ListByProject(ctx, projectID)
}
