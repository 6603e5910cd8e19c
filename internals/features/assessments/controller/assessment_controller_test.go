// file: internals/features/assessments/controller/assessment_controller_test.go
//
// Test handler lewat TEST_DATABASE_URL (Postgres). Tanpa env tsb semua
// test di file ini di-skip.
package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	yearModel "sekolahku_backend/internals/features/academics/academic_years/model"
	gradeModel "sekolahku_backend/internals/features/academics/grades/model"
	semModel "sekolahku_backend/internals/features/academics/semesters/model"
	semService "sekolahku_backend/internals/features/academics/semesters/service"
	model "sekolahku_backend/internals/features/assessments/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL tidak di-set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&yearModel.AcademicYearModel{},
		&gradeModel.GradeModel{},
		&semModel.SemesterStatusModel{},
		&semModel.SemesterPeriodModel{},
		&model.AssessmentModel{},
		&model.AssessmentComponentModel{},
	))
	require.NoError(t, db.Exec(
		"TRUNCATE academic_years, grades, semester_statuses, semester_periods, assessments, assessment_components CASCADE",
	).Error)
	return db
}

// app tanpa middleware auth: yang diuji perilaku handler, bukan guard
func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewAssessmentController(db, nil)
	app.Patch("/assessments/:id", ctl.Patch)
	app.Put("/assessments/:id/components", ctl.ReplaceComponents)
	app.Delete("/assessments/:id", ctl.Delete)
	return app
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

// Semester ditutup ⇒ assessment-nya locked ⇒ semua endpoint mutasi 409.
func TestMutationsRejectedWhenLocked(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)
	svc := semService.NewSemesterLifecycleService()
	ctx := context.Background()

	year := yearModel.AcademicYearModel{
		AcademicYearName:      "TA 2026/2027",
		AcademicYearStartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		AcademicYearEndDate:   time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&year).Error)
	grade := gradeModel.GradeModel{GradeName: "Grade 10", GradeLevel: 10, GradeIsActive: true}
	require.NoError(t, db.Create(&grade).Error)
	ass := model.AssessmentModel{
		AssessmentAcademicYearID: year.AcademicYearID,
		AssessmentGradeID:        grade.GradeID,
		AssessmentSemester:       1,
		AssessmentTitle:          "UTS Matematika",
		AssessmentStatus:         model.AssessmentPublished,
	}
	require.NoError(t, db.Create(&ass).Error)

	_, _, err := svc.SetSemesterStatus(ctx, db, semService.SetSemesterStatusInput{
		AcademicYearID: year.AcademicYearID,
		GradeID:        grade.GradeID,
		Semester:       1,
		Status:         semModel.SemesterClosed,
	})
	require.NoError(t, err)

	base := "/assessments/" + ass.AssessmentID.String()

	resp, err := app.Test(jsonReq(http.MethodPatch, base, `{"assessment_title":"Remedial"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, err = app.Test(jsonReq(http.MethodPut, base+"/components",
		`{"components":[{"name":"Teori","weight":60},{"name":"Praktik","weight":40}]}`), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, err = app.Test(jsonReq(http.MethodDelete, base, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// tidak ada mutasi yang lolos
	var reloaded model.AssessmentModel
	require.NoError(t, db.Where("assessment_id = ?", ass.AssessmentID).First(&reloaded).Error)
	assert.Equal(t, "UTS Matematika", reloaded.AssessmentTitle)
	assert.Equal(t, model.AssessmentLocked, reloaded.AssessmentStatus)

	// buka lagi semesternya ⇒ mutasi kembali diterima
	_, _, err = svc.SetSemesterStatus(ctx, db, semService.SetSemesterStatusInput{
		AcademicYearID: year.AcademicYearID,
		GradeID:        grade.GradeID,
		Semester:       1,
		Status:         semModel.SemesterOpen,
	})
	require.NoError(t, err)

	resp, err = app.Test(jsonReq(http.MethodPatch, base, `{"assessment_title":"Remedial"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.Where("assessment_id = ?", ass.AssessmentID).First(&reloaded).Error)
	assert.Equal(t, "Remedial", reloaded.AssessmentTitle)
}
