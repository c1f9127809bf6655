package repository

import (
	"context"

	"gorm.io/gorm"

	"vespera/internal/model"
)

// DiaryRepository defines persistence operations for diary entries.
// Entries are append-only: there is no update or delete.
type DiaryRepository interface {
	Create(ctx context.Context, entry *model.DiaryEntry) error
	ListByDateDesc(ctx context.Context) ([]model.DiaryEntry, error)
}

type diaryRepository struct {
	db *gorm.DB
}

// NewDiaryRepository builds a GORM-backed repository.
func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

// Create inserts a new diary entry record.
func (r *diaryRepository) Create(ctx context.Context, entry *model.DiaryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByDateDesc returns every entry ordered by entry date descending,
// recomputed from the store on each call.
func (r *diaryRepository) ListByDateDesc(ctx context.Context) ([]model.DiaryEntry, error) {
	var entries []model.DiaryEntry
	if err := r.db.WithContext(ctx).Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
