// file: internals/features/academics/academic_years/service/academic_year_service.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/cache"
	yearModel "sekolahku_backend/internals/features/academics/academic_years/model"
)

const cacheKeyCurrentYear = "academic_year:current"

// Interface supaya gampang di-mock. ctx datang dari request (user context
// ber-timeout) dan diteruskan ke DB maupun redis.
type AcademicYearService interface {
	Activate(ctx context.Context, db *gorm.DB, yearID uuid.UUID) (*yearModel.AcademicYearModel, error)
	Current(ctx context.Context, db *gorm.DB) (*yearModel.AcademicYearModel, error)
}

type academicYearSvc struct{}

func NewAcademicYearService() AcademicYearService {
	return &academicYearSvc{}
}

// Activate menjadikan satu tahun ajaran sebagai current secara EKSKLUSIF.
//
// Dua statement di SATU transaksi: clear dulu baris current lain (row lock
// menserialkan aktivasi paralel), lalu set target. Partial unique index
// uq_academic_years_single_current jadi jaring pengaman terakhir: kalau tetap
// bentrok, transaksi rollback utuh ("action failed, no changes made").
func (s *academicYearSvc) Activate(ctx context.Context, db *gorm.DB, yearID uuid.UUID) (*yearModel.AcademicYearModel, error) {
	db = db.WithContext(ctx)

	var ent yearModel.AcademicYearModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("academic_year_id = ?", yearID).
			First(&ent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
			}
			log.Printf("[AcademicYear] ERROR Activate lookup yearID=%s err=%v", yearID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran")
		}

		// 1) clear current lain
		if err := tx.Model(&yearModel.AcademicYearModel{}).
			Where("academic_year_is_current = TRUE AND academic_year_id <> ?", yearID).
			Update("academic_year_is_current", false).Error; err != nil {
			log.Printf("[AcademicYear] ERROR Activate clear yearID=%s err=%v", yearID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Aktivasi gagal, tidak ada perubahan tersimpan")
		}

		// 2) set target (updated_at ikut tersentuh oleh hook autoUpdateTime)
		res := tx.Model(&yearModel.AcademicYearModel{}).
			Where("academic_year_id = ?", yearID).
			Update("academic_year_is_current", true)
		if res.Error != nil {
			log.Printf("[AcademicYear] ERROR Activate set yearID=%s err=%v", yearID, res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Aktivasi gagal, tidak ada perubahan tersimpan")
		}
		if res.RowsAffected == 0 {
			// soft-deleted di antara lookup dan update
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}

		return tx.Where("academic_year_id = ?", yearID).First(&ent).Error
	})
	if err != nil {
		return nil, err
	}

	cache.Del(ctx, cacheKeyCurrentYear)
	log.Printf("[AcademicYear] SUCCESS Activate yearID=%s name=%s", yearID, ent.AcademicYearName)
	return &ent, nil
}

// Current mengembalikan tahun ajaran dengan is_current = true (cache-backed).
func (s *academicYearSvc) Current(ctx context.Context, db *gorm.DB) (*yearModel.AcademicYearModel, error) {
	db = db.WithContext(ctx)

	var cached yearModel.AcademicYearModel
	if err := cache.GetJSON(ctx, cacheKeyCurrentYear, &cached); err == nil {
		return &cached, nil
	}

	var ent yearModel.AcademicYearModel
	if err := db.
		Where("academic_year_is_current = TRUE").
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Belum ada tahun ajaran aktif")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tahun ajaran aktif")
	}

	cache.SetJSON(ctx, cacheKeyCurrentYear, ent, cache.DefaultTTL)
	return &ent, nil
}
