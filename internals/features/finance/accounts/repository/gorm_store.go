// file: internals/features/finance/accounts/repository/gorm_store.go
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/finance/accounts/model"
)

// GormStore implements the resolver's Store over Postgres.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) GroupIDByName(ctx context.Context, schoolID uuid.UUID, name string) (uuid.UUID, error) {
	var row struct {
		ID uuid.UUID `gorm:"column:account_group_id"`
	}
	err := s.DB.WithContext(ctx).
		Table("account_groups").
		Select("account_group_id").
		Where("account_group_school_id = ? AND account_group_name = ?", schoolID, name).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (s *GormStore) FindInGroup(ctx context.Context, schoolID, groupID uuid.UUID, name, mobile string) (uuid.UUID, error) {
	var row struct {
		ID uuid.UUID `gorm:"column:account_id"`
	}
	err := s.DB.WithContext(ctx).
		Table("accounts").
		Select("account_id").
		Where("account_school_id = ? AND account_group_id = ?", schoolID, groupID).
		Where("LOWER(account_name) = ? AND account_mobile = ?", strings.ToLower(strings.TrimSpace(name)), mobile).
		Order("account_created_at ASC").
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (s *GormStore) FindByGroupAndName(ctx context.Context, schoolID uuid.UUID, groupName, accountName string) (uuid.UUID, error) {
	var row struct {
		ID uuid.UUID `gorm:"column:account_id"`
	}
	err := s.DB.WithContext(ctx).
		Table("accounts").
		Select("accounts.account_id").
		Joins("JOIN account_groups ON account_groups.account_group_id = accounts.account_group_id").
		Where("accounts.account_school_id = ? AND account_groups.account_group_name = ?", schoolID, groupName).
		Where("LOWER(accounts.account_name) = ?", strings.ToLower(accountName)).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (s *GormStore) Create(ctx context.Context, acc *model.Account) error {
	acc.AccountName = strings.TrimSpace(acc.AccountName)
	return s.DB.WithContext(ctx).Create(acc).Error
}
