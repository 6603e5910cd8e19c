// file: internals/features/academics/grades/dto/grade_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/academics/grades/model"
)

// =======================
// Request DTO
// =======================

type GradeCreateDTO struct {
	GradeName  string `json:"grade_name"  validate:"required,min=1"`
	GradeLevel int    `json:"grade_level" validate:"required,min=1,max=12"`
	// pointer: bedakan "tidak dikirim" vs "false"
	GradeIsActive *bool `json:"grade_is_active,omitempty"`
}

type GradeUpdateDTO struct {
	GradeName     *string `json:"grade_name,omitempty"      validate:"omitempty,min=1"`
	GradeLevel    *int    `json:"grade_level,omitempty"     validate:"omitempty,min=1,max=12"`
	GradeIsActive *bool   `json:"grade_is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type GradeResponseDTO struct {
	GradeID       uuid.UUID `json:"grade_id"`
	GradeName     string    `json:"grade_name"`
	GradeLevel    int       `json:"grade_level"`
	GradeIsActive bool      `json:"grade_is_active"`
	GradeCreatedAt time.Time `json:"grade_created_at"`
	GradeUpdatedAt time.Time `json:"grade_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *GradeCreateDTO) Normalize() {
	p.GradeName = strings.TrimSpace(p.GradeName)
}

func (p *GradeCreateDTO) ToModel() model.GradeModel {
	isActive := true
	if p.GradeIsActive != nil {
		isActive = *p.GradeIsActive
	}
	return model.GradeModel{
		GradeName:     p.GradeName,
		GradeLevel:    p.GradeLevel,
		GradeIsActive: isActive,
	}
}

func (u *GradeUpdateDTO) ApplyUpdates(ent *model.GradeModel) {
	if u.GradeName != nil {
		ent.GradeName = strings.TrimSpace(*u.GradeName)
	}
	if u.GradeLevel != nil {
		ent.GradeLevel = *u.GradeLevel
	}
	if u.GradeIsActive != nil {
		ent.GradeIsActive = *u.GradeIsActive
	}
}

func FromModel(ent model.GradeModel) GradeResponseDTO {
	return GradeResponseDTO{
		GradeID:        ent.GradeID,
		GradeName:      ent.GradeName,
		GradeLevel:     ent.GradeLevel,
		GradeIsActive:  ent.GradeIsActive,
		GradeCreatedAt: ent.GradeCreatedAt,
		GradeUpdatedAt: ent.GradeUpdatedAt,
	}
}

func FromModels(list []model.GradeModel) []GradeResponseDTO {
	out := make([]GradeResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
