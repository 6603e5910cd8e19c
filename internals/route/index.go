// file: internals/route/index.go
//
// Tiga lapis akses, sama seperti pembagian group di gateway:
//   /api/public → tanpa login (katalog tahun ajaran & grade)
//   /api/u      → login (baca data sesuai konteks user)
//   /api/a      → login + role guard per feature (mutasi)
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authMiddleware "sekolahku_backend/internals/middlewares/auth_school"
	routeDetails "sekolahku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	public := api.Group("/public")
	routeDetails.PublicRoutes(public, db)

	authed := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	user := api.Group("/u", authed)
	routeDetails.UserRoutes(user, db)

	admin := api.Group("/a", authed)
	routeDetails.AdminRoutes(admin, db)
}
