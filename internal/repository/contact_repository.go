package repository

import (
	"context"

	"gorm.io/gorm"

	"vespera/internal/model"
)

// ContactRepository persists contact form submissions. Write-only.
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact message record.
func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
