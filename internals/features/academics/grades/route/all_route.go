// file: internals/features/academics/grades/route/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeCtl "sekolahku_backend/internals/features/academics/grades/controller"
)

// Base: /api/public
func AllGradeRoutes(public fiber.Router, db *gorm.DB) {
	ctl := gradeCtl.NewGradeController(db, nil)

	public.Get("/grades", ctl.List)
}
