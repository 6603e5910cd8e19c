package features

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// IsRegistrar: guard untuk aksi lifecycle periode akademik.
func IsRegistrar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.HasAnyRole(c, constants.RegistrarAndAbove) {
			return fiber.NewError(fiber.StatusForbidden,
				constants.RoleErrorRegistrar("periode akademik"))
		}
		return c.Next()
	}
}

// IsTeacher: guard untuk fitur penilaian (guru dan di atasnya).
func IsTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.HasAnyRole(c, constants.TeacherAndAbove) {
			return fiber.NewError(fiber.StatusForbidden,
				constants.RoleErrorTeacher("penilaian"))
		}
		return c.Next()
	}
}
