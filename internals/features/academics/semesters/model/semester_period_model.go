// file: internals/features/academics/semesters/model/semester_period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SemesterPeriodModel merepresentasikan tabel `semester_periods`:
// status default SATU tahun ajaran per semester (tanpa grade). Tidak
// meng-cascade apa pun; dipakai backfill sebagai nilai default baris
// per-grade yang belum ada.
//
// Satu baris per (tahun ajaran, semester) lewat uq_semester_periods_key.
type SemesterPeriodModel struct {
	SemesterPeriodID             uuid.UUID `json:"semester_period_id"               gorm:"column:semester_period_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SemesterPeriodAcademicYearID uuid.UUID `json:"semester_period_academic_year_id" gorm:"column:semester_period_academic_year_id;type:uuid;not null;uniqueIndex:uq_semester_periods_key"`
	// hanya 1 atau 2
	SemesterPeriodSemester int `json:"semester_period_semester" gorm:"column:semester_period_semester;not null;uniqueIndex:uq_semester_periods_key"`

	SemesterPeriodStatus   SemesterState `json:"semester_period_status" gorm:"column:semester_period_status;type:text;not null;default:'closed'"`
	SemesterPeriodClosedAt *time.Time    `json:"semester_period_closed_at,omitempty" gorm:"column:semester_period_closed_at;type:timestamptz"`

	SemesterPeriodCreatedAt time.Time `json:"semester_period_created_at" gorm:"column:semester_period_created_at;type:timestamptz;not null;autoCreateTime"`
	SemesterPeriodUpdatedAt time.Time `json:"semester_period_updated_at" gorm:"column:semester_period_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (SemesterPeriodModel) TableName() string { return "semester_periods" }
