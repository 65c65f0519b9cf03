// file: internals/features/school/students/model/student_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// =========================================================

type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// Scope
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index:ix_student_school;uniqueIndex:uq_student_school_mobile,priority:1" json:"student_school_id"`

	// Identity
	StudentFirstName string     `gorm:"column:student_first_name;type:varchar(80);not null" json:"student_first_name"`
	StudentLastName  *string    `gorm:"column:student_last_name;type:varchar(80)" json:"student_last_name,omitempty"`
	StudentDOB       *time.Time `gorm:"column:student_dob;type:date" json:"student_dob,omitempty"`
	StudentGender    *string    `gorm:"column:student_gender;type:varchar(12)" json:"student_gender,omitempty"`

	// Contact. (school_id, mobile) is unique among live rows; this is the
	// store-side guard against the concurrent duplicate-enrollment race.
	StudentMobile       string  `gorm:"column:student_mobile;type:varchar(16);not null;uniqueIndex:uq_student_school_mobile,priority:2" json:"student_mobile"`
	StudentParentMobile *string `gorm:"column:student_parent_mobile;type:varchar(16)" json:"student_parent_mobile,omitempty"`
	StudentAddress      *string `gorm:"column:student_address;type:text" json:"student_address,omitempty"`

	// Timestamps (explicit)
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now();index:ix_student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// FullName joins the name parts for ledger-account display.
func (m *Student) FullName() string {
	name := strings.TrimSpace(m.StudentFirstName)
	if m.StudentLastName != nil && strings.TrimSpace(*m.StudentLastName) != "" {
		name += " " + strings.TrimSpace(*m.StudentLastName)
	}
	return name
}

// =========================================================
// HOOKS: explicit timestamps
// =========================================================

func (m *Student) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentUpdatedAt = time.Now()
	return nil
}
