// file: internals/features/finance/accounts/model/account_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ACCOUNT GROUP
// =========================================================

// AccountGroup partitions ledger accounts per school (student parties,
// payment channels, receivables).
type AccountGroup struct {
	AccountGroupID       uuid.UUID `gorm:"column:account_group_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"account_group_id"`
	AccountGroupSchoolID uuid.UUID `gorm:"column:account_group_school_id;type:uuid;not null;uniqueIndex:uq_account_group_school_name,priority:1" json:"account_group_school_id"`
	AccountGroupName     string    `gorm:"column:account_group_name;type:varchar(40);not null;uniqueIndex:uq_account_group_school_name,priority:2" json:"account_group_name"`

	AccountGroupCreatedAt time.Time `gorm:"column:account_group_created_at;not null;default:now()" json:"account_group_created_at"`
}

func (AccountGroup) TableName() string {
	return "account_groups"
}

// =========================================================
// ACCOUNT
// =========================================================

// Account is a named ledger identity (a student party or a payment channel).
// Accounts are never deleted by the enrollment workflow.
type Account struct {
	// PK
	AccountID uuid.UUID `gorm:"column:account_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"account_id"`

	// Scope + FK → account_groups(account_group_id)
	AccountSchoolID uuid.UUID `gorm:"column:account_school_id;type:uuid;not null;index:ix_account_school" json:"account_school_id"`
	AccountGroupID  uuid.UUID `gorm:"column:account_group_id;type:uuid;not null;index:ix_account_group" json:"account_group_id"`

	// Identity; lookups match name case-insensitively together with mobile
	AccountName   string  `gorm:"column:account_name;type:varchar(160);not null;index:ix_account_name" json:"account_name"`
	AccountMobile *string `gorm:"column:account_mobile;type:varchar(16);index:ix_account_mobile" json:"account_mobile,omitempty"`

	// Timestamps (explicit)
	AccountCreatedAt time.Time `gorm:"column:account_created_at;not null;default:now()" json:"account_created_at"`
	AccountUpdatedAt time.Time `gorm:"column:account_updated_at;not null;default:now()" json:"account_updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// =========================================================
// HOOKS: explicit timestamps
// =========================================================

func (m *AccountGroup) BeforeCreate(tx *gorm.DB) (err error) {
	if m.AccountGroupCreatedAt.IsZero() {
		m.AccountGroupCreatedAt = time.Now()
	}
	return nil
}

func (m *Account) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AccountCreatedAt.IsZero() {
		m.AccountCreatedAt = now
	}
	m.AccountUpdatedAt = now
	return nil
}

func (m *Account) BeforeUpdate(tx *gorm.DB) (err error) {
	m.AccountUpdatedAt = time.Now()
	return nil
}
