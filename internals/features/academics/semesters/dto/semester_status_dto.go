// file: internals/features/academics/semesters/dto/semester_status_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	semModel "sekolahku_backend/internals/features/academics/semesters/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

// Body untuk PUT /semester-statuses (key lengkap di body biar satu
// endpoint bisa dipakai buka maupun tutup).
type SetSemesterStatusRequest struct {
	AcademicYearID uuid.UUID `json:"academic_year_id" validate:"required"`
	GradeID        uuid.UUID `json:"grade_id" validate:"required"`
	Semester       int       `json:"semester" validate:"required,oneof=1 2"`
	Status         string    `json:"status" validate:"required,oneof=open closed"`
}

func (r *SetSemesterStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

// Body untuk PUT /semester-periods (default tahun-lebar).
type SetSemesterPeriodRequest struct {
	AcademicYearID uuid.UUID `json:"academic_year_id" validate:"required"`
	Semester       int       `json:"semester" validate:"required,oneof=1 2"`
	Status         string    `json:"status" validate:"required,oneof=open closed"`
}

func (r *SetSemesterPeriodRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SemesterStatusResponse struct {
	SemesterStatusID             uuid.UUID  `json:"semester_status_id"`
	SemesterStatusAcademicYearID uuid.UUID  `json:"semester_status_academic_year_id"`
	SemesterStatusGradeID        uuid.UUID  `json:"semester_status_grade_id"`
	SemesterStatusSemester       int        `json:"semester_status_semester"`
	SemesterStatusStatus         string     `json:"semester_status_status"`
	SemesterStatusIsDeclared     bool       `json:"semester_status_is_declared"`
	SemesterStatusClosedAt       *time.Time `json:"semester_status_closed_at,omitempty"`
	SemesterStatusCreatedAt      time.Time  `json:"semester_status_created_at"`
	SemesterStatusUpdatedAt      time.Time  `json:"semester_status_updated_at"`
}

func FromSemesterStatusModel(m *semModel.SemesterStatusModel) *SemesterStatusResponse {
	if m == nil {
		return nil
	}
	return &SemesterStatusResponse{
		SemesterStatusID:             m.SemesterStatusID,
		SemesterStatusAcademicYearID: m.SemesterStatusAcademicYearID,
		SemesterStatusGradeID:        m.SemesterStatusGradeID,
		SemesterStatusSemester:       m.SemesterStatusSemester,
		SemesterStatusStatus:         string(m.SemesterStatusStatus),
		SemesterStatusIsDeclared:     m.SemesterStatusIsDeclared,
		SemesterStatusClosedAt:       m.SemesterStatusClosedAt,
		SemesterStatusCreatedAt:      m.SemesterStatusCreatedAt,
		SemesterStatusUpdatedAt:      m.SemesterStatusUpdatedAt,
	}
}

func FromSemesterStatusModels(ms []semModel.SemesterStatusModel) []SemesterStatusResponse {
	out := make([]SemesterStatusResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromSemesterStatusModel(&ms[i]))
	}
	return out
}

type SemesterPeriodResponse struct {
	SemesterPeriodID             uuid.UUID  `json:"semester_period_id"`
	SemesterPeriodAcademicYearID uuid.UUID  `json:"semester_period_academic_year_id"`
	SemesterPeriodSemester       int        `json:"semester_period_semester"`
	SemesterPeriodStatus         string     `json:"semester_period_status"`
	SemesterPeriodClosedAt       *time.Time `json:"semester_period_closed_at,omitempty"`
	SemesterPeriodCreatedAt      time.Time  `json:"semester_period_created_at"`
	SemesterPeriodUpdatedAt      time.Time  `json:"semester_period_updated_at"`
}

func FromSemesterPeriodModel(m *semModel.SemesterPeriodModel) *SemesterPeriodResponse {
	if m == nil {
		return nil
	}
	return &SemesterPeriodResponse{
		SemesterPeriodID:             m.SemesterPeriodID,
		SemesterPeriodAcademicYearID: m.SemesterPeriodAcademicYearID,
		SemesterPeriodSemester:       m.SemesterPeriodSemester,
		SemesterPeriodStatus:         string(m.SemesterPeriodStatus),
		SemesterPeriodClosedAt:       m.SemesterPeriodClosedAt,
		SemesterPeriodCreatedAt:      m.SemesterPeriodCreatedAt,
		SemesterPeriodUpdatedAt:      m.SemesterPeriodUpdatedAt,
	}
}

type IsOpenResponse struct {
	AcademicYearID uuid.UUID `json:"academic_year_id"`
	GradeID        uuid.UUID `json:"grade_id"`
	Semester       int       `json:"semester"`
	Open           bool      `json:"open"`
}

type BackfillResponse struct {
	AcademicYearID uuid.UUID `json:"academic_year_id"`
	CreatedRows    int64     `json:"created_rows"`
}
