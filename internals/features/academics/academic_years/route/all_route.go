// file: internals/features/academics/academic_years/route/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicYearCtl "sekolahku_backend/internals/features/academics/academic_years/controller"
)

// ================================
// Public routes (read-only)
// Base: /api/public/academic-years
// ================================
func AllAcademicYearRoutes(public fiber.Router, db *gorm.DB) {
	yearCtl := academicYearCtl.NewAcademicYearController(db, nil)

	r := public.Group("/academic-years")
	r.Get("/", yearCtl.List)
	r.Get("/current", yearCtl.Current)
}
