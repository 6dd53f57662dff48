package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kanbanflow/internal/model"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// ListByProject retrieves every issue of a project, placed or not
func (r *IssueRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Issue, error) {
	var issues []model.Issue
	result := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("sort_order").Find(&issues)
	if result.Error != nil {
		return nil, result.Error
	}
	return issues, nil
}

// SetPlacement updates the order of an issue and, when given, its column
// and status. Other fields are left alone.
func (r *IssueRepository) SetPlacement(ctx context.Context, id uuid.UUID, p model.Placement) (*model.Issue, error) {
	updates := map[string]interface{}{"sort_order": p.Order}
	if p.ColumnID != nil {
		updates["column_id"] = *p.ColumnID
	}
	if p.Status != nil {
		updates["status"] = string(*p.Status)
	}

	var issue model.Issue
	result := r.db.WithContext(ctx).Model(&issue).Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrIssueNotFound
	}
	return &issue, nil
}
