// file: internals/features/academics/academic_years/service/academic_year_service_test.go
//
// Test integrasi lewat TEST_DATABASE_URL (Postgres). Tanpa env tsb semua
// test di file ini di-skip.
package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	yearModel "sekolahku_backend/internals/features/academics/academic_years/model"
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
	require.NoError(t, db.AutoMigrate(&yearModel.AcademicYearModel{}))
	// partial index tidak bisa lewat tag gorm
	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS uq_academic_years_single_current "+
			"ON academic_years (academic_year_is_current) "+
			"WHERE academic_year_is_current AND academic_year_deleted_at IS NULL",
	).Error)
	require.NoError(t, db.Exec("TRUNCATE academic_years CASCADE").Error)
	return db
}

func seedYear(t *testing.T, db *gorm.DB, name string) yearModel.AcademicYearModel {
	t.Helper()
	y := yearModel.AcademicYearModel{
		AcademicYearName:      name,
		AcademicYearStartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		AcademicYearEndDate:   time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&y).Error)
	return y
}

func countCurrent(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&yearModel.AcademicYearModel{}).
		Where("academic_year_is_current = TRUE").Count(&n).Error)
	return n
}

func TestActivateExclusive(t *testing.T) {
	db := openTestDB(t)
	svc := NewAcademicYearService()

	a := seedYear(t, db, "TA 2025/2026")
	b := seedYear(t, db, "TA 2026/2027")
	seedYear(t, db, "TA 2027/2028")

	got, err := svc.Activate(context.Background(), db, a.AcademicYearID)
	require.NoError(t, err)
	assert.True(t, got.AcademicYearIsCurrent)
	assert.EqualValues(t, 1, countCurrent(t, db))

	// pindah current ke B: A harus otomatis non-current
	got, err = svc.Activate(context.Background(), db, b.AcademicYearID)
	require.NoError(t, err)
	assert.Equal(t, b.AcademicYearID, got.AcademicYearID)
	assert.EqualValues(t, 1, countCurrent(t, db))

	var aReloaded yearModel.AcademicYearModel
	require.NoError(t, db.Where("academic_year_id = ?", a.AcademicYearID).First(&aReloaded).Error)
	assert.False(t, aReloaded.AcademicYearIsCurrent)
}

func TestActivateIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewAcademicYearService()

	a := seedYear(t, db, "TA 2026/2027")

	_, err := svc.Activate(context.Background(), db, a.AcademicYearID)
	require.NoError(t, err)
	got, err := svc.Activate(context.Background(), db, a.AcademicYearID)
	require.NoError(t, err)
	assert.True(t, got.AcademicYearIsCurrent)
	assert.EqualValues(t, 1, countCurrent(t, db))
}

func TestActivateNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewAcademicYearService()

	_, err := svc.Activate(context.Background(), db, uuid.New())
	require.Error(t, err)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

// Aktivasi paralel ke dua tahun berbeda tetap berakhir dengan tepat satu
// current (row lock + partial unique index).
func TestActivateConcurrent(t *testing.T) {
	db := openTestDB(t)
	svc := NewAcademicYearService()

	a := seedYear(t, db, "TA 2025/2026")
	b := seedYear(t, db, "TA 2026/2027")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		target := a.AcademicYearID
		if i%2 == 1 {
			target = b.AcademicYearID
		}
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, _ = svc.Activate(context.Background(), db, id)
		}(target)
	}
	wg.Wait()

	assert.EqualValues(t, 1, countCurrent(t, db))
}

func TestCurrent(t *testing.T) {
	db := openTestDB(t)
	svc := NewAcademicYearService()

	_, err := svc.Current(context.Background(), db)
	require.Error(t, err)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	a := seedYear(t, db, "TA 2026/2027")
	_, err = svc.Activate(context.Background(), db, a.AcademicYearID)
	require.NoError(t, err)

	got, err := svc.Current(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, a.AcademicYearID, got.AcademicYearID)
}
