// file: internals/features/finance/journal/repository/gorm_store.go
package repository

import (
	"context"

	"gorm.io/gorm"

	"lembagaku_backend/internals/features/finance/journal/model"
)

// GormStore persists transactions together with their entries.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Post(ctx context.Context, tx *model.Transaction) error {
	// One insert with the association so the entry set commits atomically.
	return s.DB.WithContext(ctx).Create(tx).Error
}
