// file: internals/features/finance/fees/dto/fee_record_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"lembagaku_backend/internals/features/finance/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE RECORD DTO
////////////////////////////////////////////////////////////////////////////////

type FeeRecordResponse struct {
	FeeRecordID          uuid.UUID       `json:"fee_record_id"`
	FeeRecordSchoolID    uuid.UUID       `json:"fee_record_school_id"`
	FeeRecordAdmissionID uuid.UUID       `json:"fee_record_admission_id"`
	FeeRecordEMI         decimal.Decimal `json:"fee_record_emi"`
	FeeRecordPlan        datatypes.JSON  `json:"fee_record_plan"`
	FeeRecordCreatedAt   time.Time       `json:"fee_record_created_at"`
	FeeRecordUpdatedAt   time.Time       `json:"fee_record_updated_at"`
}

// Model -> Response
func ToFeeRecordResponse(m model.FeeRecord) FeeRecordResponse {
	return FeeRecordResponse{
		FeeRecordID:          m.FeeRecordID,
		FeeRecordSchoolID:    m.FeeRecordSchoolID,
		FeeRecordAdmissionID: m.FeeRecordAdmissionID,
		FeeRecordEMI:         m.FeeRecordEMI,
		FeeRecordPlan:        m.FeeRecordPlan,
		FeeRecordCreatedAt:   m.FeeRecordCreatedAt,
		FeeRecordUpdatedAt:   m.FeeRecordUpdatedAt,
	}
}
