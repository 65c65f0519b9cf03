// file: internals/features/school/admissions/model/admission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// =========================================================

// Admission is the billing record of one enrollment submission. The derived
// fields (total, balance) are always recomputed from fees/discount/fee_paid
// by the enrollment service, never accepted from the client.
type Admission struct {
	// PK
	AdmissionID uuid.UUID `gorm:"column:admission_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"admission_id"`

	// Scope + FK
	AdmissionSchoolID  uuid.UUID `gorm:"column:admission_school_id;type:uuid;not null;index:ix_admission_school" json:"admission_school_id"`
	AdmissionStudentID uuid.UUID `gorm:"column:admission_student_id;type:uuid;not null;index:ix_admission_student" json:"admission_student_id"`

	// Selection (catalog entities are managed elsewhere; only identities here)
	AdmissionCourseID uuid.UUID  `gorm:"column:admission_course_id;type:uuid;not null" json:"admission_course_id"`
	AdmissionBatchID  *uuid.UUID `gorm:"column:admission_batch_id;type:uuid" json:"admission_batch_id,omitempty"`
	AdmissionExamID   *uuid.UUID `gorm:"column:admission_exam_id;type:uuid" json:"admission_exam_id,omitempty"`

	AdmissionDate time.Time `gorm:"column:admission_date;type:date;not null" json:"admission_date"`

	// Financial summary
	AdmissionFees     decimal.Decimal `gorm:"column:admission_fees;type:numeric(14,2);not null" json:"admission_fees"`
	AdmissionDiscount decimal.Decimal `gorm:"column:admission_discount;type:numeric(14,2);not null" json:"admission_discount"`
	AdmissionTotal    decimal.Decimal `gorm:"column:admission_total;type:numeric(14,2);not null" json:"admission_total"`
	AdmissionFeePaid  decimal.Decimal `gorm:"column:admission_fee_paid;type:numeric(14,2);not null" json:"admission_fee_paid"`
	AdmissionBalance  decimal.Decimal `gorm:"column:admission_balance;type:numeric(14,2);not null" json:"admission_balance"`

	AdmissionInstallmentCount int     `gorm:"column:admission_installment_count;not null;default:0;check:admission_installment_count>=0" json:"admission_installment_count"`
	AdmissionPaymentMode      *string `gorm:"column:admission_payment_mode;type:varchar(10)" json:"admission_payment_mode,omitempty"` // cash|bank

	// Timestamps (explicit)
	AdmissionCreatedAt time.Time      `gorm:"column:admission_created_at;not null;default:now();index:ix_admission_created_at" json:"admission_created_at"`
	AdmissionUpdatedAt time.Time      `gorm:"column:admission_updated_at;not null;default:now()" json:"admission_updated_at"`
	AdmissionDeletedAt gorm.DeletedAt `gorm:"column:admission_deleted_at;index" json:"-"`
}

func (Admission) TableName() string {
	return "admissions"
}

// =========================================================
// HOOKS: explicit timestamps
// =========================================================

func (m *Admission) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AdmissionCreatedAt.IsZero() {
		m.AdmissionCreatedAt = now
	}
	m.AdmissionUpdatedAt = now
	return nil
}

func (m *Admission) BeforeUpdate(tx *gorm.DB) (err error) {
	m.AdmissionUpdatedAt = time.Now()
	return nil
}
