// file: internals/features/academics/semesters/service/semester_lifecycle_service_test.go
//
// Test integrasi lewat TEST_DATABASE_URL (Postgres). Tanpa env tsb semua
// test di file ini di-skip.
package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/cache"
	yearModel "sekolahku_backend/internals/features/academics/academic_years/model"
	gradeModel "sekolahku_backend/internals/features/academics/grades/model"
	semModel "sekolahku_backend/internals/features/academics/semesters/model"
	assessModel "sekolahku_backend/internals/features/assessments/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL tidak di-set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&yearModel.AcademicYearModel{},
		&gradeModel.GradeModel{},
		&semModel.SemesterStatusModel{},
		&semModel.SemesterPeriodModel{},
		&assessModel.AssessmentModel{},
		&assessModel.AssessmentComponentModel{},
	))
	require.NoError(t, db.Exec(
		"TRUNCATE academic_years, grades, semester_statuses, semester_periods, assessments, assessment_components CASCADE",
	).Error)
	// aktif hanya kalau REDIS_ADDR di-set; dengan redis hidup, test cache
	// invalidation benar-benar lewat redis
	cache.Init()
	if cache.Enabled() {
		t.Cleanup(cache.Close)
	}
	return db
}

type fixture struct {
	year  yearModel.AcademicYearModel
	grade gradeModel.GradeModel
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	y := yearModel.AcademicYearModel{
		AcademicYearName:      "TA 2026/2027",
		AcademicYearStartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		AcademicYearEndDate:   time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&y).Error)
	g := gradeModel.GradeModel{GradeName: "Grade 10", GradeLevel: 10, GradeIsActive: true}
	require.NoError(t, db.Create(&g).Error)
	return fixture{year: y, grade: g}
}

func seedAssessment(t *testing.T, db *gorm.DB, fx fixture, semester int, title string) assessModel.AssessmentModel {
	t.Helper()
	a := assessModel.AssessmentModel{
		AssessmentAcademicYearID: fx.year.AcademicYearID,
		AssessmentGradeID:        fx.grade.GradeID,
		AssessmentSemester:       semester,
		AssessmentTitle:          title,
		AssessmentStatus:         assessModel.AssessmentPublished,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %T", err)
	return fe.Code
}

func TestIsOpenDefaultClosed(t *testing.T) {
	db := openTestDB(t)
	svc := NewSemesterLifecycleService()
	fx := seedFixture(t, db)

	// tanpa baris status ⇒ closed
	open, err := svc.IsOpen(context.Background(), db, fx.grade.GradeID, 1, fx.year.AcademicYearID)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestSetSemesterStatusCascade(t *testing.T) {
	db := openTestDB(t)
	svc := NewSemesterLifecycleService()
	fx := seedFixture(t, db)

	seedAssessment(t, db, fx, 1, "UTS Matematika")
	seedAssessment(t, db, fx, 1, "UAS Matematika")
	seedAssessment(t, db, fx, 1, "Kuis Mingguan")
	outside := seedAssessment(t, db, fx, 2, "UTS Semester Genap")

	// tutup semester 1 ⇒ semua assessment sem 1 locked
	row, cascaded, err := svc.SetSemesterStatus(context.Background(), db, SetSemesterStatusInput{
		AcademicYearID: fx.year.AcademicYearID,
		GradeID:        fx.grade.GradeID,
		Semester:       1,
		Status:         semModel.SemesterClosed,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, cascaded)
	assert.Equal(t, semModel.SemesterClosed, row.SemesterStatusStatus)
	assert.True(t, row.SemesterStatusIsDeclared)
	require.NotNil(t, row.SemesterStatusClosedAt)

	var locked int64
	require.NoError(t, db.Model(&assessModel.AssessmentModel{}).
		Where("assessment_semester = 1 AND assessment_status = ?", assessModel.AssessmentLocked).
		Count(&locked).Error)
	assert.EqualValues(t, 3, locked)

	// semester lain tidak tersentuh
	var reloaded assessModel.AssessmentModel
	require.NoError(t, db.Where("assessment_id = ?", outside.AssessmentID).First(&reloaded).Error)
	assert.Equal(t, assessModel.AssessmentPublished, reloaded.AssessmentStatus)

	open, err := svc.IsOpen(context.Background(), db, fx.grade.GradeID, 1, fx.year.AcademicYearID)
	require.NoError(t, err)
	assert.False(t, open)

	// buka kembali ⇒ semua published lagi, closed_at bersih
	row, cascaded, err = svc.SetSemesterStatus(context.Background(), db, SetSemesterStatusInput{
		AcademicYearID: fx.year.AcademicYearID,
		GradeID:        fx.grade.GradeID,
		Semester:       1,
		Status:         semModel.SemesterOpen,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, cascaded)
	assert.Equal(t, semModel.SemesterOpen, row.SemesterStatusStatus)
	assert.Nil(t, row.SemesterStatusClosedAt)

	var published int64
	require.NoError(t, db.Model(&assessModel.AssessmentModel{}).
		Where("assessment_semester = 1 AND assessment_status = ?", assessModel.AssessmentPublished).
		Count(&published).Error)
	assert.EqualValues(t, 3, published)

	open, err = svc.IsOpen(context.Background(), db, fx.grade.GradeID, 1, fx.year.AcademicYearID)
	require.NoError(t, err)
	assert.True(t, open)
}

func TestSetSemesterStatusIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewSemesterLifecycleService()
	fx := seedFixture(t, db)

	in := SetSemesterStatusInput{
		AcademicYearID: fx.year.AcademicYearID,
		GradeID:        fx.grade.GradeID,
		Semester:       2,
		Status:         semModel.SemesterClosed,
	}

	first, _, err := svc.SetSemesterStatus(context.Background(), db, in)
	require.NoError(t, err)
	second, _, err := svc.SetSemesterStatus(context.Background(), db, in)
	require.NoError(t, err)

	assert.Equal(t, first.SemesterStatusID, second.SemesterStatusID)
	assert.Equal(t, semModel.SemesterClosed, second.SemesterStatusStatus)

	var rows int64
	require.NoError(t, db.Model(&semModel.SemesterStatusModel{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestSetSemesterStatusUnknownRefs(t *testing.T) {
	db := openTestDB(t)
	svc := NewSemesterLifecycleService()
	fx := seedFixture(t, db)

	_, _, err := svc.SetSemesterStatus(context.Background(), db, SetSemesterStatusInput{
		AcademicYearID: uuid.New(),
		GradeID:        fx.grade.GradeID,
		Semester:       1,
		Status:         semModel.SemesterClosed,
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))

	_, _, err = svc.SetSemesterStatus(context.Background(), db, SetSemesterStatusInput{
		AcademicYearID: fx.year.AcademicYearID,
		GradeID:        uuid.New(),
		Semester:       1,
		Status:         semModel.SemesterClosed,
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))

	_, _, err = svc.SetSemesterStatus(context.Background(), db, SetSemesterStatusInput{
		AcademicYearID: fx.year.AcademicYearID,
		GradeID:        fx.grade.GradeID,
		Semester:       3,
		Status:         semModel.SemesterClosed,
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

func TestBackfill(t *testing.T) {
	db := openTestDB(t)
	svc := NewSemesterLifecycleService()
	fx := seedFixture(t, db)

	g2 := gradeModel.GradeModel{GradeName: "Grade 11", GradeLevel: 11, GradeIsActive: true}
	require.NoError(t, db.Create(&g2).Error)
	inactive := gradeModel.GradeModel{GradeName: "Grade 12", GradeLevel: 12, GradeIsActive: false}
	require.NoError(t, db.Create(&inactive).Error)

	// default tahun-lebar: semester 1 open
	_, err := svc.SetSemesterPeriod(context.Background(), db, fx.year.AcademicYearID, 1, semModel.SemesterOpen)
	require.NoError(t, err)

	// grade pertama sudah mendeklarasikan semester 2 secara eksplisit
	_, _, err = svc.SetSemesterStatus(context.Background(), db, SetSemesterStatusInput{
		AcademicYearID: fx.year.AcademicYearID,
		GradeID:        fx.grade.GradeID,
		Semester:       2,
		Status:         semModel.SemesterOpen,
	})
	require.NoError(t, err)

	// 2 grade aktif × 2 semester = 4 slot, 1 sudah ada ⇒ 3 baris baru
	created, err := svc.Backfill(context.Background(), db, fx.year.AcademicYearID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, created)

	// grade non-aktif tidak dapat baris
	var rows []semModel.SemesterStatusModel
	require.NoError(t, db.Order("semester_status_semester ASC").Find(&rows).Error)
	assert.Len(t, rows, 4)
	for _, r := range rows {
		assert.NotEqual(t, inactive.GradeID, r.SemesterStatusGradeID)
	}

	// baris backfill: sem 1 ikut period (open), sem 2 default closed,
	// kecuali yang sudah dideklarasikan
	for _, r := range rows {
		switch {
		case r.SemesterStatusIsDeclared:
			assert.Equal(t, semModel.SemesterOpen, r.SemesterStatusStatus)
		case r.SemesterStatusSemester == 1:
			assert.Equal(t, semModel.SemesterOpen, r.SemesterStatusStatus)
		default:
			assert.Equal(t, semModel.SemesterClosed, r.SemesterStatusStatus)
		}
	}

	// idempoten: jalan kedua tidak membuat apa pun dan tidak menimpa
	created, err = svc.Backfill(context.Background(), db, fx.year.AcademicYearID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, created)
}

// Pembacaan IsOpen sebelum backfill boleh men-cache "closed" untuk slot yang
// belum punya baris; setelah backfill membuat baris open, pembacaan berikutnya
// harus langsung melihat open, bukan menunggu TTL.
func TestBackfillRefreshesIsOpen(t *testing.T) {
	db := openTestDB(t)
	svc := NewSemesterLifecycleService()
	fx := seedFixture(t, db)
	ctx := context.Background()

	open, err := svc.IsOpen(ctx, db, fx.grade.GradeID, 1, fx.year.AcademicYearID)
	require.NoError(t, err)
	assert.False(t, open)

	_, err = svc.SetSemesterPeriod(ctx, db, fx.year.AcademicYearID, 1, semModel.SemesterOpen)
	require.NoError(t, err)

	created, err := svc.Backfill(ctx, db, fx.year.AcademicYearID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, created)

	open, err = svc.IsOpen(ctx, db, fx.grade.GradeID, 1, fx.year.AcademicYearID)
	require.NoError(t, err)
	assert.True(t, open)

	open, err = svc.IsOpen(ctx, db, fx.grade.GradeID, 2, fx.year.AcademicYearID)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestBackfillUnknownYear(t *testing.T) {
	db := openTestDB(t)
	svc := NewSemesterLifecycleService()

	_, err := svc.Backfill(context.Background(), db, uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))
}
