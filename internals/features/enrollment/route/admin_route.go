// file: internals/features/enrollment/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/enrollment/controller"
	"lembagaku_backend/internals/middlewares"
)

// EnrollmentAdminRoutes mounts the enrollment workflow under the admin group.
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.EnrollmentHandler{DB: db}

	g := r.Group("/enrollments", middlewares.SubmitRateLimiter())
	g.Post("/", h.Submit)
	g.Put("/:id", h.Update)
}
