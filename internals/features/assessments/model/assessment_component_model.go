// file: internals/features/assessments/model/assessment_component_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentComponentModel merepresentasikan tabel `assessment_components`:
// rincian bobot sebuah penilaian (mis. Midterm 30, Final 40, Quizzes 30).
// Jumlah bobot per penilaian WAJIB 100, dicek server-side di DTO, bukan
// cuma hint di form.
type AssessmentComponentModel struct {
	AssessmentComponentID           uuid.UUID `json:"assessment_component_id"            gorm:"column:assessment_component_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AssessmentComponentAssessmentID uuid.UUID `json:"assessment_component_assessment_id" gorm:"column:assessment_component_assessment_id;type:uuid;not null;index"`

	AssessmentComponentName string `json:"assessment_component_name" gorm:"column:assessment_component_name;type:text;not null"`
	// persen bulat 0..100
	AssessmentComponentWeight int `json:"assessment_component_weight" gorm:"column:assessment_component_weight;not null"`
	// urutan tampil di form
	AssessmentComponentPosition int `json:"assessment_component_position" gorm:"column:assessment_component_position;not null;default:0"`

	AssessmentComponentCreatedAt time.Time `json:"assessment_component_created_at" gorm:"column:assessment_component_created_at;type:timestamptz;not null;autoCreateTime"`
	AssessmentComponentUpdatedAt time.Time `json:"assessment_component_updated_at" gorm:"column:assessment_component_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (AssessmentComponentModel) TableName() string { return "assessment_components" }

func (m *AssessmentComponentModel) BeforeSave(tx *gorm.DB) error {
	m.AssessmentComponentName = strings.TrimSpace(m.AssessmentComponentName)
	return nil
}
