// file: internals/features/academics/semesters/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	semesterCtl "sekolahku_backend/internals/features/academics/semesters/controller"
	"sekolahku_backend/internals/middlewares"
	featuresMiddleware "sekolahku_backend/internals/middlewares/features"
)

// Base: /api/a (sudah lewat AuthJWT di group)
func SemesterAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := semesterCtl.NewSemesterController(db, nil)

	base := api.Group("", featuresMiddleware.IsRegistrar())

	base.Get("/semester-statuses", ctl.ListStatuses)

	// Buka/tutup semester = aksi lifecycle, limiter ketat
	base.Put("/semester-statuses",
		middlewares.LifecycleRateLimiter(), ctl.SetStatus)
	base.Put("/semester-periods",
		middlewares.LifecycleRateLimiter(), ctl.SetPeriod)
	base.Post("/academic-years/:id/backfill-semester-statuses",
		middlewares.LifecycleRateLimiter(), ctl.Backfill)
}
