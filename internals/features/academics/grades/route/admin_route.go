// file: internals/features/academics/grades/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeCtl "sekolahku_backend/internals/features/academics/grades/controller"
	featuresMiddleware "sekolahku_backend/internals/middlewares/features"
)

// Base: /api/a
func GradeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := gradeCtl.NewGradeController(db, nil)

	base := api.Group("", featuresMiddleware.IsRegistrar())

	base.Post("/grades", ctl.Create)
	base.Patch("/grades/:id", ctl.Patch)
	base.Delete("/grades/:id", ctl.Delete)
}
