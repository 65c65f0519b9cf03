// file: internals/features/school/admissions/controller/admission_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeDTO "lembagaku_backend/internals/features/finance/fees/dto"
	feeModel "lembagaku_backend/internals/features/finance/fees/model"
	"lembagaku_backend/internals/features/school/admissions/dto"
	"lembagaku_backend/internals/features/school/admissions/model"
	helper "lembagaku_backend/internals/helpers"
	"lembagaku_backend/internals/helpers/scope"
)

type AdmissionHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// GetByID (GET /admissions/:id): admission + live fee schedule
// -----------------------------------------
func (h *AdmissionHandler) GetByID(c *fiber.Ctx) error {
	sc, err := scope.FromFiber(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Admission
	if err := h.DB.
		Where("admission_school_id = ? AND admission_id = ?", sc.SchoolID, id).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "admission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.ToAdmissionResponse(m)

	var fee feeModel.FeeRecord
	err = h.DB.
		Where("fee_record_school_id = ? AND fee_record_admission_id = ?", sc.SchoolID, id).
		Take(&fee).Error
	if err == nil {
		fr := feeDTO.ToFeeRecordResponse(fee)
		resp.FeeRecord = &fr
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", resp)
}
