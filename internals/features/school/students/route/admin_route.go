// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.StudentHandler{DB: db}

	g := r.Group("/students")
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
}
