// file: internals/features/school/admissions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/school/admissions/controller"
)

func AdmissionAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.AdmissionHandler{DB: db}

	g := r.Group("/admissions")
	g.Get("/:id", h.GetByID)
}
