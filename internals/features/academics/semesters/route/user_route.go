// file: internals/features/academics/semesters/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	semesterCtl "sekolahku_backend/internals/features/academics/semesters/controller"
)

// Base: /api/u (login user)
func SemesterUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := semesterCtl.NewSemesterController(db, nil)

	api.Get("/semester-statuses/is-open", ctl.IsOpen)
}
