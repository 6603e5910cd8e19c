// file: internals/features/assessments/dto/assessment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/assessments/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type AssessmentComponentInput struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Weight int    `json:"weight" validate:"min=0,max=100"`
}

type AssessmentCreateDTO struct {
	AssessmentAcademicYearID uuid.UUID `json:"assessment_academic_year_id" validate:"required"`
	AssessmentGradeID        uuid.UUID `json:"assessment_grade_id" validate:"required"`
	AssessmentSemester       int       `json:"assessment_semester" validate:"required,oneof=1 2"`
	AssessmentTitle          string    `json:"assessment_title" validate:"required,min=1,max=200"`

	// minimal satu komponen, total bobot wajib 100
	Components []AssessmentComponentInput `json:"components" validate:"required,min=1,dive"`
}

func (d *AssessmentCreateDTO) Normalize() {
	d.AssessmentTitle = strings.TrimSpace(d.AssessmentTitle)
	for i := range d.Components {
		d.Components[i].Name = strings.TrimSpace(d.Components[i].Name)
	}
}

type AssessmentUpdateDTO struct {
	AssessmentTitle *string `json:"assessment_title" validate:"omitempty,min=1,max=200"`
	// Hanya draft <-> published lewat endpoint ini; locked di-set lifecycle
	AssessmentStatus *string `json:"assessment_status" validate:"omitempty,oneof=draft published"`
}

func (d *AssessmentUpdateDTO) ApplyUpdates(m *model.AssessmentModel) {
	if d.AssessmentTitle != nil {
		m.AssessmentTitle = strings.TrimSpace(*d.AssessmentTitle)
	}
	if d.AssessmentStatus != nil {
		if st, ok := model.ParseAssessmentStatus(*d.AssessmentStatus); ok {
			m.AssessmentStatus = st
		}
	}
}

type ReplaceComponentsDTO struct {
	Components []AssessmentComponentInput `json:"components" validate:"required,min=1,dive"`
}

func (d *ReplaceComponentsDTO) Normalize() {
	for i := range d.Components {
		d.Components[i].Name = strings.TrimSpace(d.Components[i].Name)
	}
}

// ValidateWeights cek server-side: semua nama terisi dan total bobot
// tepat 100. Dipanggil SETELAH Normalize.
func ValidateWeights(components []AssessmentComponentInput) error {
	sum := 0
	for _, comp := range components {
		if comp.Name == "" {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Nama komponen tidak boleh kosong")
		}
		if comp.Weight < 0 || comp.Weight > 100 {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Bobot komponen harus 0..100")
		}
		sum += comp.Weight
	}
	if sum != 100 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Total bobot komponen harus tepat 100")
	}
	return nil
}

// ToComponentModels bangun baris komponen terurut sesuai input.
func ToComponentModels(assessmentID uuid.UUID, components []AssessmentComponentInput) []model.AssessmentComponentModel {
	out := make([]model.AssessmentComponentModel, 0, len(components))
	for i, comp := range components {
		out = append(out, model.AssessmentComponentModel{
			AssessmentComponentAssessmentID: assessmentID,
			AssessmentComponentName:         comp.Name,
			AssessmentComponentWeight:       comp.Weight,
			AssessmentComponentPosition:     i,
		})
	}
	return out
}

/* =========================================================
   RESPONSE
   ========================================================= */

type AssessmentComponentResponse struct {
	AssessmentComponentID       uuid.UUID `json:"assessment_component_id"`
	AssessmentComponentName     string    `json:"assessment_component_name"`
	AssessmentComponentWeight   int       `json:"assessment_component_weight"`
	AssessmentComponentPosition int       `json:"assessment_component_position"`
}

type AssessmentResponse struct {
	AssessmentID             uuid.UUID  `json:"assessment_id"`
	AssessmentAcademicYearID uuid.UUID  `json:"assessment_academic_year_id"`
	AssessmentGradeID        uuid.UUID  `json:"assessment_grade_id"`
	AssessmentSemester       int        `json:"assessment_semester"`
	AssessmentTitle          string     `json:"assessment_title"`
	AssessmentStatus         string     `json:"assessment_status"`
	AssessmentCreatedBy      *uuid.UUID `json:"assessment_created_by,omitempty"`
	AssessmentCreatedAt      time.Time  `json:"assessment_created_at"`
	AssessmentUpdatedAt      time.Time  `json:"assessment_updated_at"`

	AssessmentComponents []AssessmentComponentResponse `json:"assessment_components,omitempty"`
}

func FromModel(m model.AssessmentModel) AssessmentResponse {
	comps := make([]AssessmentComponentResponse, 0, len(m.AssessmentComponents))
	for _, c := range m.AssessmentComponents {
		comps = append(comps, AssessmentComponentResponse{
			AssessmentComponentID:       c.AssessmentComponentID,
			AssessmentComponentName:     c.AssessmentComponentName,
			AssessmentComponentWeight:   c.AssessmentComponentWeight,
			AssessmentComponentPosition: c.AssessmentComponentPosition,
		})
	}
	return AssessmentResponse{
		AssessmentID:             m.AssessmentID,
		AssessmentAcademicYearID: m.AssessmentAcademicYearID,
		AssessmentGradeID:        m.AssessmentGradeID,
		AssessmentSemester:       m.AssessmentSemester,
		AssessmentTitle:          m.AssessmentTitle,
		AssessmentStatus:         string(m.AssessmentStatus),
		AssessmentCreatedBy:      m.AssessmentCreatedBy,
		AssessmentCreatedAt:      m.AssessmentCreatedAt,
		AssessmentUpdatedAt:      m.AssessmentUpdatedAt,
		AssessmentComponents:     comps,
	}
}

func FromModels(ms []model.AssessmentModel) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(ms[i]))
	}
	return out
}
