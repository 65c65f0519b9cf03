// file: internals/features/finance/journal/controller/transaction_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/finance/journal/model"
	helper "lembagaku_backend/internals/helpers"
	"lembagaku_backend/internals/helpers/scope"
)

type TransactionHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /transactions)
// Query filters (optional):
// - account_id (matches any entry), date_from, date_to (transaction_date)
// - page, per_page
// The journal is append-only; there is no write surface here.
// -----------------------------------------
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	sc, err := scope.FromFiber(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Transaction{}).
		Where("transaction_school_id = ?", sc.SchoolID)

	if v := c.Query("account_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where(
				"transaction_id IN (SELECT journal_entry_transaction_id FROM journal_entries WHERE journal_entry_account_id = ?)",
				id,
			)
		}
	}
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("transaction_date >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("transaction_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order := "transaction_created_at DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		order = "transaction_created_at ASC"
	}

	var list []model.Transaction
	if err := q.
		Preload("TransactionEntries").
		Order(order).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list, helper.BuildMeta(total, p))
}
