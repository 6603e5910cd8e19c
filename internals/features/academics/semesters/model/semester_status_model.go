// file: internals/features/academics/semesters/model/semester_status_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SemesterState: status buka/tutup sebuah semester.
type SemesterState string

const (
	SemesterOpen   SemesterState = "open"
	SemesterClosed SemesterState = "closed"
)

// ParseSemesterState normalisasi input bebas jadi state valid.
func ParseSemesterState(raw string) (SemesterState, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SemesterOpen):
		return SemesterOpen, true
	case string(SemesterClosed):
		return SemesterClosed, true
	default:
		return "", false
	}
}

// SemesterStatusModel merepresentasikan tabel `semester_statuses`:
// status per (tahun ajaran, grade, semester). Baris dimaterialisasi lewat
// backfill; baris yang hilang diperlakukan CLOSED (kebijakan default-tutup,
// supaya entri nilai tidak pernah terbuka diam-diam).
//
// Satu baris per key (uq_semester_statuses_key); upsert lifecycle bersandar
// pada index ini lewat ON CONFLICT.
type SemesterStatusModel struct {
	SemesterStatusID             uuid.UUID `json:"semester_status_id"               gorm:"column:semester_status_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SemesterStatusAcademicYearID uuid.UUID `json:"semester_status_academic_year_id" gorm:"column:semester_status_academic_year_id;type:uuid;not null;uniqueIndex:uq_semester_statuses_key"`
	SemesterStatusGradeID        uuid.UUID `json:"semester_status_grade_id"         gorm:"column:semester_status_grade_id;type:uuid;not null;uniqueIndex:uq_semester_statuses_key"`
	// hanya 1 atau 2
	SemesterStatusSemester int `json:"semester_status_semester" gorm:"column:semester_status_semester;not null;uniqueIndex:uq_semester_statuses_key"`

	SemesterStatusStatus SemesterState `json:"semester_status_status" gorm:"column:semester_status_status;type:text;not null;default:'closed'"`

	// true kalau registrar pernah menyentuh baris ini secara eksplisit
	// (bukan hasil backfill)
	SemesterStatusIsDeclared bool       `json:"semester_status_is_declared" gorm:"column:semester_status_is_declared;not null;default:false"`
	SemesterStatusClosedAt   *time.Time `json:"semester_status_closed_at,omitempty" gorm:"column:semester_status_closed_at;type:timestamptz"`

	SemesterStatusCreatedAt time.Time `json:"semester_status_created_at" gorm:"column:semester_status_created_at;type:timestamptz;not null;autoCreateTime"`
	SemesterStatusUpdatedAt time.Time `json:"semester_status_updated_at" gorm:"column:semester_status_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (SemesterStatusModel) TableName() string { return "semester_statuses" }
