// file: internals/features/academics/academic_years/dto/academic_year_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/academics/academic_years/model"
)

// =======================
// Request DTO
// =======================

type AcademicYearCreateDTO struct {
	AcademicYearName      string    `json:"academic_year_name"       validate:"required,min=4"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date" validate:"required"`
	// gtefield agar sejalan dg DB CHECK (end >= start)
	AcademicYearEndDate time.Time `json:"academic_year_end_date"   validate:"required,gtefield=AcademicYearStartDate"`
	AcademicYearStatus  *string   `json:"academic_year_status,omitempty"`
}

type AcademicYearUpdateDTO struct {
	AcademicYearName      *string    `json:"academic_year_name,omitempty"       validate:"omitempty,min=4"`
	AcademicYearStartDate *time.Time `json:"academic_year_start_date,omitempty"`
	AcademicYearEndDate   *time.Time `json:"academic_year_end_date,omitempty"`
	AcademicYearStatus    *string    `json:"academic_year_status,omitempty"`
}

// (opsional) filter list
type AcademicYearFilterDTO struct {
	Name    *string `query:"name"     validate:"omitempty,min=4"`
	Current *bool   `query:"current"  validate:"omitempty"`
	SortBy  *string `query:"sort_by"  validate:"omitempty,oneof=created_at start_date end_date name"`
	SortDir *string `query:"sort_dir" validate:"omitempty,oneof=asc desc"`
}

// =======================
// Response DTO
// =======================

type AcademicYearResponseDTO struct {
	AcademicYearID        uuid.UUID `json:"academic_year_id"`
	AcademicYearName      string    `json:"academic_year_name"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date"`
	AcademicYearStatus    *string   `json:"academic_year_status,omitempty"`
	AcademicYearIsCurrent bool      `json:"academic_year_is_current"`

	AcademicYearCreatedAt time.Time  `json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time  `json:"academic_year_updated_at"`
	AcademicYearDeletedAt *time.Time `json:"academic_year_deleted_at,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *AcademicYearCreateDTO) Normalize() {
	p.AcademicYearName = strings.TrimSpace(p.AcademicYearName)
	if p.AcademicYearStatus != nil {
		s := strings.TrimSpace(*p.AcademicYearStatus)
		p.AcademicYearStatus = &s
	}
}

func (p *AcademicYearCreateDTO) ToModel() model.AcademicYearModel {
	return model.AcademicYearModel{
		AcademicYearName:      p.AcademicYearName,
		AcademicYearStartDate: p.AcademicYearStartDate,
		AcademicYearEndDate:   p.AcademicYearEndDate,
		AcademicYearStatus:    p.AcademicYearStatus,
		// tahun baru tidak pernah langsung current; aktivasi eksplisit
		AcademicYearIsCurrent: false,
	}
}

func (u *AcademicYearUpdateDTO) ApplyUpdates(ent *model.AcademicYearModel) {
	if u.AcademicYearName != nil {
		ent.AcademicYearName = strings.TrimSpace(*u.AcademicYearName)
	}
	if u.AcademicYearStartDate != nil {
		ent.AcademicYearStartDate = *u.AcademicYearStartDate
	}
	if u.AcademicYearEndDate != nil {
		ent.AcademicYearEndDate = *u.AcademicYearEndDate
	}
	if u.AcademicYearStatus != nil {
		s := strings.TrimSpace(*u.AcademicYearStatus)
		ent.AcademicYearStatus = &s
	}
}

// Mapper entity -> response
func FromModel(ent model.AcademicYearModel) AcademicYearResponseDTO {
	out := AcademicYearResponseDTO{
		AcademicYearID:        ent.AcademicYearID,
		AcademicYearName:      ent.AcademicYearName,
		AcademicYearStartDate: ent.AcademicYearStartDate,
		AcademicYearEndDate:   ent.AcademicYearEndDate,
		AcademicYearStatus:    ent.AcademicYearStatus,
		AcademicYearIsCurrent: ent.AcademicYearIsCurrent,
		AcademicYearCreatedAt: ent.AcademicYearCreatedAt,
		AcademicYearUpdatedAt: ent.AcademicYearUpdatedAt,
	}
	if ent.AcademicYearDeletedAt.Valid {
		t := ent.AcademicYearDeletedAt.Time
		out.AcademicYearDeletedAt = &t
	}
	return out
}

func FromModels(list []model.AcademicYearModel) []AcademicYearResponseDTO {
	out := make([]AcademicYearResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
