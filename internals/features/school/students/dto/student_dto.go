// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/school/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENT DTO
////////////////////////////////////////////////////////////////////////////////

// Response
type StudentResponse struct {
	StudentID       uuid.UUID `json:"student_id"`
	StudentSchoolID uuid.UUID `json:"student_school_id"`

	StudentFirstName string     `json:"student_first_name"`
	StudentLastName  *string    `json:"student_last_name,omitempty"`
	StudentDOB       *time.Time `json:"student_dob,omitempty"`
	StudentGender    *string    `json:"student_gender,omitempty"`

	StudentMobile       string  `json:"student_mobile"`
	StudentParentMobile *string `json:"student_parent_mobile,omitempty"`
	StudentAddress      *string `json:"student_address,omitempty"`

	StudentCreatedAt time.Time  `json:"student_created_at"`
	StudentUpdatedAt time.Time  `json:"student_updated_at"`
	StudentDeletedAt *time.Time `json:"student_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS: Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

// Model -> Response
func ToStudentResponse(m model.Student) StudentResponse {
	return StudentResponse{
		StudentID:           m.StudentID,
		StudentSchoolID:     m.StudentSchoolID,
		StudentFirstName:    m.StudentFirstName,
		StudentLastName:     m.StudentLastName,
		StudentDOB:          m.StudentDOB,
		StudentGender:       m.StudentGender,
		StudentMobile:       m.StudentMobile,
		StudentParentMobile: m.StudentParentMobile,
		StudentAddress:      m.StudentAddress,
		StudentCreatedAt:    m.StudentCreatedAt,
		StudentUpdatedAt:    m.StudentUpdatedAt,
		StudentDeletedAt:    toPtrTimeFromDeletedAt(m.StudentDeletedAt),
	}
}

func ToStudentResponses(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v))
	}
	return out
}

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		return &d.Time
	}
	return nil
}
