// file: internals/features/academics/grades/model/grade_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeModel merepresentasikan tabel `grades` (jenjang/angkatan, mis. "Grade 10").
type GradeModel struct {
	GradeID   uuid.UUID `json:"grade_id"    gorm:"column:grade_id;type:uuid;default:gen_random_uuid();primaryKey"`
	GradeName string    `json:"grade_name"  gorm:"column:grade_name;type:text;not null"`
	// Urutan jenjang (10, 11, 12) untuk sorting
	GradeLevel    int  `json:"grade_level"     gorm:"column:grade_level;not null;default:0"`
	GradeIsActive bool `json:"grade_is_active" gorm:"column:grade_is_active;not null;default:true"`

	GradeCreatedAt time.Time      `json:"grade_created_at" gorm:"column:grade_created_at;type:timestamptz;not null;autoCreateTime"`
	GradeUpdatedAt time.Time      `json:"grade_updated_at" gorm:"column:grade_updated_at;type:timestamptz;not null;autoUpdateTime"`
	GradeDeletedAt gorm.DeletedAt `json:"grade_deleted_at,omitempty" gorm:"column:grade_deleted_at;index"`
}

func (GradeModel) TableName() string { return "grades" }

func (m *GradeModel) BeforeSave(tx *gorm.DB) error {
	m.GradeName = strings.TrimSpace(m.GradeName)
	return nil
}
