// file: internals/features/assessments/model/assessment_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentStatus: siklus hidup sebuah penilaian.
//   - draft     → masih disusun guru, belum terlihat siswa
//   - published → terlihat & bisa diisi nilai
//   - locked    → semester ditutup, read-only (di-set oleh lifecycle semester)
type AssessmentStatus string

const (
	AssessmentDraft     AssessmentStatus = "draft"
	AssessmentPublished AssessmentStatus = "published"
	AssessmentLocked    AssessmentStatus = "locked"
)

func ParseAssessmentStatus(raw string) (AssessmentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(AssessmentDraft):
		return AssessmentDraft, true
	case string(AssessmentPublished):
		return AssessmentPublished, true
	case string(AssessmentLocked):
		return AssessmentLocked, true
	default:
		return "", false
	}
}

// AssessmentModel merepresentasikan tabel `assessments` (ujian, kuis, tugas).
// Status di-overwrite massal oleh lifecycle semester saat tutup/buka.
type AssessmentModel struct {
	AssessmentID             uuid.UUID `json:"assessment_id"               gorm:"column:assessment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AssessmentAcademicYearID uuid.UUID `json:"assessment_academic_year_id" gorm:"column:assessment_academic_year_id;type:uuid;not null;index"`
	AssessmentGradeID        uuid.UUID `json:"assessment_grade_id"         gorm:"column:assessment_grade_id;type:uuid;not null;index"`
	// hanya 1 atau 2
	AssessmentSemester int `json:"assessment_semester" gorm:"column:assessment_semester;not null"`

	AssessmentTitle  string           `json:"assessment_title"  gorm:"column:assessment_title;type:text;not null"`
	AssessmentStatus AssessmentStatus `json:"assessment_status" gorm:"column:assessment_status;type:text;not null;default:'draft'"`

	// guru pembuat (dari token)
	AssessmentCreatedBy *uuid.UUID `json:"assessment_created_by,omitempty" gorm:"column:assessment_created_by;type:uuid"`

	AssessmentCreatedAt time.Time      `json:"assessment_created_at" gorm:"column:assessment_created_at;type:timestamptz;not null;autoCreateTime"`
	AssessmentUpdatedAt time.Time      `json:"assessment_updated_at" gorm:"column:assessment_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AssessmentDeletedAt gorm.DeletedAt `json:"assessment_deleted_at,omitempty" gorm:"column:assessment_deleted_at;index"`

	// Relations
	AssessmentComponents []AssessmentComponentModel `json:"assessment_components,omitempty" gorm:"foreignKey:AssessmentComponentAssessmentID;references:AssessmentID"`
}

func (AssessmentModel) TableName() string { return "assessments" }

func (m *AssessmentModel) BeforeSave(tx *gorm.DB) error {
	m.AssessmentTitle = strings.TrimSpace(m.AssessmentTitle)
	return nil
}
