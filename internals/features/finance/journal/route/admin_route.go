// file: internals/features/finance/journal/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/finance/journal/controller"
)

func JournalAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.TransactionHandler{DB: db}

	g := r.Group("/transactions")
	g.Get("/", h.List)
}
