package repository

import (
	"context"
	"errors"

	"kanbanflow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	var column model.Column
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColumnNotFound
		}
		return nil, err
	}
	return &column, nil
}

// ListByBoard returns the board's columns, left to right.
func (r *ColumnRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("sort_order").Find(&columns).Error
	return columns, err
}

// SetOrder writes a single column's order and returns the stored row.
func (r *ColumnRepository) SetOrder(ctx context.Context, id uuid.UUID, order int) (*model.Column, error) {
	var column model.Column
	result := r.db.WithContext(ctx).Model(&column).Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("sort_order", order)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrColumnNotFound
	}
	return &column, nil
}
