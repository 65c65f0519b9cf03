// file: internals/features/finance/fees/model/fee_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// =========================================================

// FeeRecord holds the installment plan of one admission. There is exactly one
// live record per admission; an edit soft-deletes the old record and inserts
// a fresh one (the plan is re-derived, never patched).
type FeeRecord struct {
	// PK
	FeeRecordID uuid.UUID `gorm:"column:fee_record_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_record_id"`

	// Scope + FK → admissions(admission_id)
	FeeRecordSchoolID    uuid.UUID `gorm:"column:fee_record_school_id;type:uuid;not null;index:ix_fee_record_school" json:"fee_record_school_id"`
	FeeRecordAdmissionID uuid.UUID `gorm:"column:fee_record_admission_id;type:uuid;not null;index:ix_fee_record_admission" json:"fee_record_admission_id"`

	// EMI of the plan (zero when nothing is scheduled)
	FeeRecordEMI decimal.Decimal `gorm:"column:fee_record_emi;type:numeric(14,2);not null" json:"fee_record_emi"`

	// Plan as JSONB: [{installment_no, due_date, amount}]
	FeeRecordPlan datatypes.JSON `gorm:"column:fee_record_plan;type:jsonb;not null;default:'[]'" json:"fee_record_plan"`

	// Timestamps (explicit)
	FeeRecordCreatedAt time.Time      `gorm:"column:fee_record_created_at;not null;default:now()" json:"fee_record_created_at"`
	FeeRecordUpdatedAt time.Time      `gorm:"column:fee_record_updated_at;not null;default:now()" json:"fee_record_updated_at"`
	FeeRecordDeletedAt gorm.DeletedAt `gorm:"column:fee_record_deleted_at;index" json:"-"`
}

func (FeeRecord) TableName() string {
	return "fee_records"
}

// =========================================================
// HOOKS: explicit timestamps
// =========================================================

func (m *FeeRecord) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeeRecordCreatedAt.IsZero() {
		m.FeeRecordCreatedAt = now
	}
	m.FeeRecordUpdatedAt = now
	return nil
}

func (m *FeeRecord) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeRecordUpdatedAt = time.Now()
	return nil
}
