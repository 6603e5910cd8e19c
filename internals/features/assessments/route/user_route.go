// file: internals/features/assessments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentCtl "sekolahku_backend/internals/features/assessments/controller"
)

// Base: /api/u (login user)
func AssessmentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := assessmentCtl.NewAssessmentController(db, nil)

	api.Get("/assessments", ctl.List)
}
