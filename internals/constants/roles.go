package constants

import "fmt"

// Role yang dikenal di token (portal siswa/guru/orang tua/registrar/owner).
const (
	RoleStudent   = "student"
	RoleParent    = "parent"
	RoleTeacher   = "teacher"
	RoleRegistrar = "registrar"
	RoleAdmin     = "admin"
	RoleOwner     = "owner"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess   = "❌ Hanya teacher, registrar, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyRegistrarsCanAccess = "❌ Hanya registrar, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin atau owner yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorRegistrar(feature string) string {
	return fmt.Sprintf(ErrOnlyRegistrarsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleParent,
		RoleTeacher,
		RoleRegistrar,
		RoleAdmin,
		RoleOwner,
	}

	// boleh entri nilai / kelola penilaian
	TeacherAndAbove = []string{
		RoleTeacher,
		RoleRegistrar,
		RoleAdmin,
		RoleOwner,
	}

	// boleh operasi lifecycle periode akademik
	RegistrarAndAbove = []string{
		RoleRegistrar,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)
