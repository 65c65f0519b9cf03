// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/school/students/dto"
	"lembagaku_backend/internals/features/school/students/model"
	helper "lembagaku_backend/internals/helpers"
	"lembagaku_backend/internals/helpers/scope"
)

type StudentHandler struct {
	DB *gorm.DB
}

func buildOrderClause(p helper.Params) string {
	allowed := map[string]string{
		"created_at": "student_created_at",
		"updated_at": "student_updated_at",
		"first_name": "student_first_name",
		"mobile":     "student_mobile",
	}
	col, ok := allowed[strings.ToLower(p.SortBy)]
	if !ok {
		col = allowed["created_at"]
	}
	dir := "DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}

// -----------------------------------------
// List (GET /students)
// Query filters (optional):
// - q (name/mobile search), mobile
// - sort_by (created_at|updated_at|first_name|mobile), order (asc|desc)
// - page, per_page
// -----------------------------------------
func (h *StudentHandler) List(c *fiber.Ctx) error {
	sc, err := scope.FromFiber(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Student{}).
		Where("student_school_id = ?", sc.SchoolID)

	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where(
			"LOWER(student_first_name) LIKE ? OR LOWER(COALESCE(student_last_name,'')) LIKE ? OR student_mobile LIKE ?",
			like, like, like,
		)
	}
	if v := strings.TrimSpace(c.Query("mobile")); v != "" {
		q = q.Where("student_mobile = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Student
	if err := q.
		Order(buildOrderClause(p)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToStudentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// GetByID (GET /students/:id)
// -----------------------------------------
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	sc, err := scope.FromFiber(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Student
	if err := h.DB.
		Where("student_school_id = ? AND student_id = ?", sc.SchoolID, id).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToStudentResponse(m))
}
