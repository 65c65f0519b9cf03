// file: internals/features/enrollment/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lembagaku_backend/internals/features/enrollment/service"
	"lembagaku_backend/internals/helpers/errs"
	"lembagaku_backend/internals/helpers/scope"
)

const dateLayout = "2006-01-02"

////////////////////////////////////////////////////////////////////////////////
// ENROLLMENT DTO
////////////////////////////////////////////////////////////////////////////////

// EnrollmentSubmitDTO is the admission form payload. total/balance are never
// accepted here; they are derived server-side from fees/discount/fee_paid.
type EnrollmentSubmitDTO struct {
	StudentFirstName    string  `json:"student_first_name" validate:"required,max=80"`
	StudentLastName     *string `json:"student_last_name,omitempty" validate:"omitempty,max=80"`
	StudentDOB          *string `json:"student_dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StudentGender       *string `json:"student_gender,omitempty" validate:"omitempty,oneof=male female other"`
	StudentMobile       string  `json:"student_mobile" validate:"required,len=10,numeric"`
	StudentParentMobile *string `json:"student_parent_mobile,omitempty" validate:"omitempty,len=10,numeric"`
	StudentAddress      *string `json:"student_address,omitempty"`

	// Existing student when editing; never set on a fresh enrollment
	StudentID *uuid.UUID `json:"student_id,omitempty"`

	CourseID uuid.UUID  `json:"course_id" validate:"required"`
	BatchID  *uuid.UUID `json:"batch_id,omitempty"`
	ExamID   *uuid.UUID `json:"exam_id,omitempty"`

	AdmissionDate string `json:"admission_date" validate:"required,datetime=2006-01-02"`

	Fees             decimal.Decimal `json:"fees"`
	Discount         decimal.Decimal `json:"discount"`
	FeePaid          decimal.Decimal `json:"fee_paid"`
	InstallmentCount int             `json:"installment_count" validate:"min=0"`
	PaymentMode      string          `json:"payment_mode" validate:"omitempty,oneof=cash bank"`

	FromEnquiry bool    `json:"from_enquiry"`
	Note        *string `json:"note,omitempty"`
}

// ToInput normalizes the DTO into the orchestrator input. admissionID is
// uuid.Nil on the create path.
func (d *EnrollmentSubmitDTO) ToInput(sc scope.Scope, admissionID uuid.UUID) (service.Input, error) {
	in := service.Input{
		Scope:       sc,
		AdmissionID: admissionID,

		FirstName:    d.StudentFirstName,
		LastName:     d.StudentLastName,
		Gender:       d.StudentGender,
		Mobile:       d.StudentMobile,
		ParentMobile: d.StudentParentMobile,
		Address:      d.StudentAddress,

		CourseID: d.CourseID,
		BatchID:  d.BatchID,
		ExamID:   d.ExamID,

		Fees:             d.Fees,
		Discount:         d.Discount,
		FeePaid:          d.FeePaid,
		InstallmentCount: d.InstallmentCount,
		PaymentMode:      d.PaymentMode,

		FromEnquiry: d.FromEnquiry,
		Note:        d.Note,
	}

	if d.StudentID != nil {
		in.StudentID = *d.StudentID
	}

	admissionDate, err := time.Parse(dateLayout, d.AdmissionDate)
	if err != nil {
		return in, errs.NewValidation("admission_date", "must be a YYYY-MM-DD date")
	}
	in.AdmissionDate = admissionDate

	if d.StudentDOB != nil && *d.StudentDOB != "" {
		dob, err := time.Parse(dateLayout, *d.StudentDOB)
		if err != nil {
			return in, errs.NewValidation("student_dob", "must be a YYYY-MM-DD date")
		}
		in.DOB = &dob
	}

	return in, nil
}
