// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicYearRoute "sekolahku_backend/internals/features/academics/academic_years/route"
	gradeRoute "sekolahku_backend/internals/features/academics/grades/route"
	semesterRoute "sekolahku_backend/internals/features/academics/semesters/route"
)

// PublicRoutes: katalog read-only tanpa login.
func PublicRoutes(public fiber.Router, db *gorm.DB) {
	academicYearRoute.AllAcademicYearRoutes(public, db)
	gradeRoute.AllGradeRoutes(public, db)
}

// userAcademicRoutes: baca status semester untuk user login.
func userAcademicRoutes(user fiber.Router, db *gorm.DB) {
	semesterRoute.SemesterUserRoutes(user, db)
}

// adminAcademicRoutes: mutasi lifecycle (registrar ke atas).
func adminAcademicRoutes(admin fiber.Router, db *gorm.DB) {
	academicYearRoute.AcademicYearAdminRoutes(admin, db)
	gradeRoute.GradeAdminRoutes(admin, db)
	semesterRoute.SemesterAdminRoutes(admin, db)
}
