// file: internals/features/enrollment/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	accountRepository "lembagaku_backend/internals/features/finance/accounts/repository"
	accountService "lembagaku_backend/internals/features/finance/accounts/service"
	journalRepository "lembagaku_backend/internals/features/finance/journal/repository"
	journalService "lembagaku_backend/internals/features/finance/journal/service"

	"lembagaku_backend/internals/features/enrollment/dto"
	"lembagaku_backend/internals/features/enrollment/repository"
	"lembagaku_backend/internals/features/enrollment/service"
	helper "lembagaku_backend/internals/helpers"
	"lembagaku_backend/internals/helpers/errs"
	"lembagaku_backend/internals/helpers/scope"
)

type EnrollmentHandler struct {
	DB *gorm.DB
}

func (h *EnrollmentHandler) orchestrator() *service.Orchestrator {
	return &service.Orchestrator{
		Students:   &repository.GormStudentStore{DB: h.DB},
		Admissions: &repository.GormAdmissionStore{DB: h.DB},
		Fees:       &repository.GormFeeStore{DB: h.DB},
		Leads:      &repository.GormLeadStore{DB: h.DB},
		Accounts:   &accountService.Resolver{Store: &accountRepository.GormStore{DB: h.DB}},
		Journal:    &journalService.Poster{Store: &journalRepository.GormStore{DB: h.DB}},
	}
}

// -----------------------------------------
// Submit (POST /enrollments)
// -----------------------------------------
func (h *EnrollmentHandler) Submit(c *fiber.Ctx) error {
	return h.run(c, uuid.Nil)
}

// -----------------------------------------
// Update (PUT /enrollments/:id); :id is the admission uuid
// -----------------------------------------
func (h *EnrollmentHandler) Update(c *fiber.Ctx) error {
	admissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid admission id")
	}
	return h.run(c, admissionID)
}

func (h *EnrollmentHandler) run(c *fiber.Ctx, admissionID uuid.UUID) error {
	sc, err := scope.FromFiber(c)
	if err != nil {
		return err
	}

	var in dto.EnrollmentSubmitDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate(&in); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	input, err := in.ToInput(sc, admissionID)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	res, err := h.orchestrator().Submit(c.UserContext(), input)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	if admissionID != uuid.Nil {
		return helper.JsonUpdated(c, "enrollment updated", res)
	}
	return helper.JsonCreatedWithWarnings(c, "enrollment saved", res, res.Warnings)
}

// mapWorkflowError translates the domain taxonomy onto HTTP. Failures after
// the first commit report the failing step; earlier writes stay in place and
// the client resubmits to retry.
func mapWorkflowError(c *fiber.Ctx, err error) error {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return helper.JsonValidationError(c, map[string][]string{ve.Field: {ve.Reason}})
	}

	var dup *errs.DuplicateMobileError
	if errors.As(err, &dup) {
		return helper.JsonError(c, fiber.StatusConflict, dup.Error())
	}

	var nf *errs.NotFoundError
	if errors.As(err, &nf) {
		return helper.JsonError(c, fiber.StatusNotFound, nf.Error())
	}

	var step *errs.StepError
	if errors.As(err, &step) {
		return helper.JsonError(c, fiber.StatusBadGateway, step.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
