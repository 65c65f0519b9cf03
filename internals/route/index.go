// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentRoute "lembagaku_backend/internals/features/enrollment/route"
	journalRoute "lembagaku_backend/internals/features/finance/journal/route"
	admissionRoute "lembagaku_backend/internals/features/school/admissions/route"
	studentRoute "lembagaku_backend/internals/features/school/students/route"
	authMiddleware "lembagaku_backend/internals/middlewares/auth_institute"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + Scope)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Setting up EnrollmentRoutes...")
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoute.StudentAdminRoutes(admin, db)

	log.Println("[INFO] Setting up AdmissionRoutes...")
	admissionRoute.AdmissionAdminRoutes(admin, db)

	log.Println("[INFO] Setting up JournalRoutes...")
	journalRoute.JournalAdminRoutes(admin, db)
}
