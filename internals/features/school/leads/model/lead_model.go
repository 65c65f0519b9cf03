// file: internals/features/school/leads/model/lead_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUM: followup status
// =========================================================

type FollowupStatus string

const (
	FollowupStatusOpen      FollowupStatus = "open"
	FollowupStatusConverted FollowupStatus = "converted"
)

// Followup is one entry in the lead's status history, stored as JSONB.
type Followup struct {
	Status FollowupStatus `json:"status"`
	Note   *string        `json:"note,omitempty"`
	At     time.Time      `json:"at"`
}

// =========================================================
// MODEL
// =========================================================

type Lead struct {
	// PK
	LeadID uuid.UUID `gorm:"column:lead_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"lead_id"`

	// Scope + FK
	LeadSchoolID    uuid.UUID `gorm:"column:lead_school_id;type:uuid;not null;index:ix_lead_school" json:"lead_school_id"`
	LeadStudentID   uuid.UUID `gorm:"column:lead_student_id;type:uuid;not null;index:ix_lead_student" json:"lead_student_id"`
	LeadAdmissionID uuid.UUID `gorm:"column:lead_admission_id;type:uuid;not null;index:ix_lead_admission" json:"lead_admission_id"`

	// Status history, newest last
	LeadFollowups datatypes.JSON `gorm:"column:lead_followups;type:jsonb;not null;default:'[]'" json:"lead_followups"`

	// Timestamps (explicit)
	LeadCreatedAt time.Time      `gorm:"column:lead_created_at;not null;default:now();index:ix_lead_created_at" json:"lead_created_at"`
	LeadUpdatedAt time.Time      `gorm:"column:lead_updated_at;not null;default:now()" json:"lead_updated_at"`
	LeadDeletedAt gorm.DeletedAt `gorm:"column:lead_deleted_at;index" json:"-"`
}

func (Lead) TableName() string {
	return "leads"
}

// =========================================================
// HOOKS: explicit timestamps
// =========================================================

func (m *Lead) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.LeadCreatedAt.IsZero() {
		m.LeadCreatedAt = now
	}
	m.LeadUpdatedAt = now
	return nil
}

func (m *Lead) BeforeUpdate(tx *gorm.DB) (err error) {
	m.LeadUpdatedAt = time.Now()
	return nil
}
