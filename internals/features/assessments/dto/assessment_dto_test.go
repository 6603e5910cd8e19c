// file: internals/features/assessments/dto/assessment_dto_test.go
package dto

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %T", err)
	return fe.Code
}

func TestValidateWeights(t *testing.T) {
	t.Run("total tepat 100 lolos", func(t *testing.T) {
		err := ValidateWeights([]AssessmentComponentInput{
			{Name: "Midterm", Weight: 30},
			{Name: "Final", Weight: 40},
			{Name: "Quizzes", Weight: 30},
		})
		assert.NoError(t, err)
	})

	t.Run("satu komponen 100 lolos", func(t *testing.T) {
		err := ValidateWeights([]AssessmentComponentInput{
			{Name: "Final", Weight: 100},
		})
		assert.NoError(t, err)
	})

	t.Run("total 99 ditolak", func(t *testing.T) {
		err := ValidateWeights([]AssessmentComponentInput{
			{Name: "Midterm", Weight: 49},
			{Name: "Final", Weight: 50},
		})
		require.Error(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
	})

	t.Run("total 101 ditolak", func(t *testing.T) {
		err := ValidateWeights([]AssessmentComponentInput{
			{Name: "Midterm", Weight: 51},
			{Name: "Final", Weight: 50},
		})
		require.Error(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
	})

	t.Run("bobot negatif ditolak", func(t *testing.T) {
		err := ValidateWeights([]AssessmentComponentInput{
			{Name: "A", Weight: -10},
			{Name: "B", Weight: 110},
		})
		require.Error(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
	})

	t.Run("nama kosong ditolak", func(t *testing.T) {
		err := ValidateWeights([]AssessmentComponentInput{
			{Name: "", Weight: 100},
		})
		require.Error(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
	})
}

func TestToComponentModels(t *testing.T) {
	assessmentID := uuid.New()
	rows := ToComponentModels(assessmentID, []AssessmentComponentInput{
		{Name: "Midterm", Weight: 30},
		{Name: "Final", Weight: 40},
		{Name: "Quizzes", Weight: 30},
	})

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, assessmentID, row.AssessmentComponentAssessmentID)
		assert.Equal(t, i, row.AssessmentComponentPosition)
	}
	assert.Equal(t, "Midterm", rows[0].AssessmentComponentName)
	assert.Equal(t, 40, rows[1].AssessmentComponentWeight)
}

func TestAssessmentCreateNormalize(t *testing.T) {
	d := AssessmentCreateDTO{
		AssessmentTitle: "  UTS Matematika  ",
		Components: []AssessmentComponentInput{
			{Name: "  Teori ", Weight: 60},
			{Name: " Praktik", Weight: 40},
		},
	}
	d.Normalize()
	assert.Equal(t, "UTS Matematika", d.AssessmentTitle)
	assert.Equal(t, "Teori", d.Components[0].Name)
	assert.Equal(t, "Praktik", d.Components[1].Name)
}
