// file: internals/features/academics/academic_years/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicYearCtl "sekolahku_backend/internals/features/academics/academic_years/controller"
	"sekolahku_backend/internals/middlewares"
	featuresMiddleware "sekolahku_backend/internals/middlewares/features"
)

// Base: /api/a (sudah lewat AuthJWT di group)
func AcademicYearAdminRoutes(api fiber.Router, db *gorm.DB) {
	yearCtl := academicYearCtl.NewAcademicYearController(db, nil)

	base := api.Group("", featuresMiddleware.IsRegistrar())

	base.Post("/academic-years", yearCtl.Create)
	base.Patch("/academic-years/:id", yearCtl.Patch)
	base.Delete("/academic-years/:id", yearCtl.Delete)

	// Aktivasi = aksi lifecycle, pakai limiter lebih ketat
	base.Post("/academic-years/:id/activate",
		middlewares.LifecycleRateLimiter(), yearCtl.Activate)
}
