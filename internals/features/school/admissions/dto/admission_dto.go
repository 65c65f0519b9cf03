// file: internals/features/school/admissions/dto/admission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	feeDTO "lembagaku_backend/internals/features/finance/fees/dto"
	"lembagaku_backend/internals/features/school/admissions/model"
)

////////////////////////////////////////////////////////////////////////////////
// ADMISSION DTO
////////////////////////////////////////////////////////////////////////////////

type AdmissionResponse struct {
	AdmissionID        uuid.UUID `json:"admission_id"`
	AdmissionSchoolID  uuid.UUID `json:"admission_school_id"`
	AdmissionStudentID uuid.UUID `json:"admission_student_id"`

	AdmissionCourseID uuid.UUID  `json:"admission_course_id"`
	AdmissionBatchID  *uuid.UUID `json:"admission_batch_id,omitempty"`
	AdmissionExamID   *uuid.UUID `json:"admission_exam_id,omitempty"`

	AdmissionDate time.Time `json:"admission_date"`

	AdmissionFees     decimal.Decimal `json:"admission_fees"`
	AdmissionDiscount decimal.Decimal `json:"admission_discount"`
	AdmissionTotal    decimal.Decimal `json:"admission_total"`
	AdmissionFeePaid  decimal.Decimal `json:"admission_fee_paid"`
	AdmissionBalance  decimal.Decimal `json:"admission_balance"`

	AdmissionInstallmentCount int     `json:"admission_installment_count"`
	AdmissionPaymentMode      *string `json:"admission_payment_mode,omitempty"`

	AdmissionCreatedAt time.Time `json:"admission_created_at"`
	AdmissionUpdatedAt time.Time `json:"admission_updated_at"`

	// Live fee schedule, when requested
	FeeRecord *feeDTO.FeeRecordResponse `json:"fee_record,omitempty"`
}

// Model -> Response
func ToAdmissionResponse(m model.Admission) AdmissionResponse {
	return AdmissionResponse{
		AdmissionID:               m.AdmissionID,
		AdmissionSchoolID:         m.AdmissionSchoolID,
		AdmissionStudentID:        m.AdmissionStudentID,
		AdmissionCourseID:         m.AdmissionCourseID,
		AdmissionBatchID:          m.AdmissionBatchID,
		AdmissionExamID:           m.AdmissionExamID,
		AdmissionDate:             m.AdmissionDate,
		AdmissionFees:             m.AdmissionFees,
		AdmissionDiscount:         m.AdmissionDiscount,
		AdmissionTotal:            m.AdmissionTotal,
		AdmissionFeePaid:          m.AdmissionFeePaid,
		AdmissionBalance:          m.AdmissionBalance,
		AdmissionInstallmentCount: m.AdmissionInstallmentCount,
		AdmissionPaymentMode:      m.AdmissionPaymentMode,
		AdmissionCreatedAt:        m.AdmissionCreatedAt,
		AdmissionUpdatedAt:        m.AdmissionUpdatedAt,
	}
}
