// file: internals/route/details/assessment_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentRoute "sekolahku_backend/internals/features/assessments/route"
)

// UserRoutes: semua route /api/u.
func UserRoutes(user fiber.Router, db *gorm.DB) {
	userAcademicRoutes(user, db)
	assessmentRoute.AssessmentUserRoutes(user, db)
}

// AdminRoutes: semua route /api/a.
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	adminAcademicRoutes(admin, db)
	assessmentRoute.AssessmentAdminRoutes(admin, db)
}
