// file: internals/features/assessments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentCtl "sekolahku_backend/internals/features/assessments/controller"
	featuresMiddleware "sekolahku_backend/internals/middlewares/features"
)

// Base: /api/a (sudah lewat AuthJWT di group)
func AssessmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := assessmentCtl.NewAssessmentController(db, nil)

	base := api.Group("", featuresMiddleware.IsTeacher())

	base.Post("/assessments", ctl.Create)
	base.Patch("/assessments/:id", ctl.Patch)
	base.Put("/assessments/:id/components", ctl.ReplaceComponents)
	base.Delete("/assessments/:id", ctl.Delete)
}
