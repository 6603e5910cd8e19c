// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Key locals yang dihidrasi oleh middleware AuthJWT.
const (
	LocUserID    = "user_id" // string | uuid
	LocRoles     = "roles"   // []string
	LocTeacherID = "teacher_id"
	LocStudentID = "student_id"
)

// GetUserID ambil user id dari locals (hasil hidrasi AuthJWT).
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak dikenal")
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak dikenal")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak dikenal")
	}
	return id, nil
}

// GetRoles ambil daftar role dari locals (robust untuk []string / []any).
func GetRoles(c *fiber.Ctx) []string {
	out := make([]string, 0)
	switch t := c.Locals(LocRoles).(type) {
	case []string:
		for _, s := range t {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// HasAnyRole true kalau salah satu role user ada di wanted.
func HasAnyRole(c *fiber.Ctx, wanted []string) bool {
	have := GetRoles(c)
	if len(have) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(have))
	for _, r := range have {
		set[r] = struct{}{}
	}
	for _, w := range wanted {
		if _, ok := set[strings.ToLower(w)]; ok {
			return true
		}
	}
	return false
}

// EnsureAnyRole guard di level handler (selain middleware group).
func EnsureAnyRole(c *fiber.Ctx, wanted []string, message string) error {
	if HasAnyRole(c, wanted) {
		return nil
	}
	if strings.TrimSpace(message) == "" {
		message = "Akses ditolak"
	}
	return fiber.NewError(fiber.StatusForbidden, message)
}
