// file: internals/features/academics/academic_years/model/academic_year_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AcademicYearModel struct {
	// ============ PK ============
	AcademicYearID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_year_id" json:"academic_year_id"`

	// ============ Identitas ============
	// Example name: "2025/2026"
	AcademicYearName string `gorm:"type:text;not null;column:academic_year_name" json:"academic_year_name"`

	AcademicYearStartDate time.Time `gorm:"type:timestamptz;not null;column:academic_year_start_date" json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `gorm:"type:timestamptz;not null;column:academic_year_end_date" json:"academic_year_end_date"`

	// Status bebas (mis. "persiapan", "berjalan", "arsip")
	AcademicYearStatus *string `gorm:"type:text;column:academic_year_status" json:"academic_year_status,omitempty"`

	// Paling banyak SATU baris true. Dijaga dua lapis:
	//   1. aktivasi = clear-then-set di satu transaksi (service),
	//   2. partial unique index di DB:
	//      CREATE UNIQUE INDEX uq_academic_years_single_current
	//        ON academic_years (academic_year_is_current)
	//        WHERE academic_year_is_current AND academic_year_deleted_at IS NULL;
	AcademicYearIsCurrent bool `gorm:"not null;default:false;column:academic_year_is_current" json:"academic_year_is_current"`

	// JSONB extra stats (optional / flexible)
	AcademicYearStats datatypes.JSON `gorm:"type:jsonb;column:academic_year_stats" json:"academic_year_stats,omitempty"`

	// ============ Audit / Soft delete ============
	AcademicYearCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:academic_year_created_at" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:academic_year_updated_at" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"academic_year_deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

// ============ Hooks: validation & light normalization ============
func (m *AcademicYearModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: end >= start
	if m.AcademicYearEndDate.Before(m.AcademicYearStartDate) {
		return errors.New("academic_year_end_date must be >= academic_year_start_date")
	}

	m.AcademicYearName = strings.TrimSpace(m.AcademicYearName)

	if m.AcademicYearStatus != nil {
		s := strings.TrimSpace(*m.AcademicYearStatus)
		if s == "" {
			m.AcademicYearStatus = nil
		} else {
			m.AcademicYearStatus = &s
		}
	}

	return nil
}
