// file: internals/features/academics/semesters/service/semester_lifecycle_service.go
//
// Lifecycle periode akademik: buka/tutup semester per grade + cascade ke
// status assessment. Semua mutasi jalan di SATU transaksi; gagal di tengah
// cascade ⇒ rollback utuh, tidak pernah ada state setengah-jadi.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/cache"
	yearModel "sekolahku_backend/internals/features/academics/academic_years/model"
	gradeModel "sekolahku_backend/internals/features/academics/grades/model"
	semModel "sekolahku_backend/internals/features/academics/semesters/model"
	assessModel "sekolahku_backend/internals/features/assessments/model"
)

type SetSemesterStatusInput struct {
	AcademicYearID uuid.UUID
	GradeID        uuid.UUID
	Semester       int
	Status         semModel.SemesterState
}

// Interface supaya gampang di-mock. ctx datang dari request (user context
// ber-timeout) dan diteruskan ke DB maupun redis.
type SemesterLifecycleService interface {
	// SetSemesterStatus upsert baris per-grade lalu cascade ke assessments.
	// Return: baris status, jumlah assessment yang tersentuh cascade.
	SetSemesterStatus(ctx context.Context, db *gorm.DB, in SetSemesterStatusInput) (*semModel.SemesterStatusModel, int64, error)

	// SetSemesterPeriod set default tahun-lebar (tanpa cascade).
	SetSemesterPeriod(ctx context.Context, db *gorm.DB, yearID uuid.UUID, semester int, status semModel.SemesterState) (*semModel.SemesterPeriodModel, error)

	// IsOpen true hanya kalau baris per-grade ada DAN berstatus open.
	// Baris hilang ⇒ closed (kebijakan default-tutup).
	IsOpen(ctx context.Context, db *gorm.DB, gradeID uuid.UUID, semester int, yearID uuid.UUID) (bool, error)

	// Backfill materialisasi baris status yang hilang untuk satu tahun
	// (grade aktif × semester 1..2); default mengikuti semester_periods,
	// kalau tidak ada ⇒ closed. Return: jumlah baris yang dibuat.
	Backfill(ctx context.Context, db *gorm.DB, yearID uuid.UUID) (int64, error)
}

type semesterLifecycleSvc struct{}

func NewSemesterLifecycleService() SemesterLifecycleService {
	return &semesterLifecycleSvc{}
}

func semStatusCacheKey(yearID, gradeID uuid.UUID, semester int) string {
	return fmt.Sprintf("semester_status:%s:%s:%d", yearID, gradeID, semester)
}

func validSemester(n int) bool { return n == 1 || n == 2 }

func (s *semesterLifecycleSvc) SetSemesterStatus(ctx context.Context, db *gorm.DB, in SetSemesterStatusInput) (*semModel.SemesterStatusModel, int64, error) {
	db = db.WithContext(ctx)
	if !validSemester(in.Semester) {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Semester harus 1 atau 2")
	}
	if in.Status != semModel.SemesterOpen && in.Status != semModel.SemesterClosed {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Status harus open atau closed")
	}

	var (
		ent      semModel.SemesterStatusModel
		cascaded int64
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		// Validasi key: FK saja tidak kasih pesan yang enak dibaca
		var cnt int64
		if err := tx.Model(&yearModel.AcademicYearModel{}).
			Where("academic_year_id = ?", in.AcademicYearID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal validasi tahun ajaran")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		if err := tx.Model(&gradeModel.GradeModel{}).
			Where("grade_id = ?", in.GradeID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal validasi grade")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Grade tidak ditemukan")
		}

		now := time.Now()
		var closedAt *time.Time
		if in.Status == semModel.SemesterClosed {
			closedAt = &now
		}

		// 1) Upsert baris per-grade (create kalau belum ada; prior state
		//    dianggap closed sesuai kebijakan default-tutup)
		row := semModel.SemesterStatusModel{
			SemesterStatusAcademicYearID: in.AcademicYearID,
			SemesterStatusGradeID:        in.GradeID,
			SemesterStatusSemester:       in.Semester,
			SemesterStatusStatus:         in.Status,
			SemesterStatusIsDeclared:     true,
			SemesterStatusClosedAt:       closedAt,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "semester_status_academic_year_id"},
				{Name: "semester_status_grade_id"},
				{Name: "semester_status_semester"},
			},
			DoUpdates: clause.Assignments(map[string]any{
				"semester_status_status":      in.Status,
				"semester_status_is_declared": true,
				"semester_status_closed_at":   closedAt,
				"semester_status_updated_at":  now,
			}),
		}).Create(&row).Error; err != nil {
			log.Printf("[SemesterLifecycle] ERROR upsert year=%s grade=%s sem=%d err=%v",
				in.AcademicYearID, in.GradeID, in.Semester, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan status semester")
		}

		// 2) Cascade ke assessments: closed ⇒ locked, open ⇒ published
		target := assessModel.AssessmentLocked
		if in.Status == semModel.SemesterOpen {
			target = assessModel.AssessmentPublished
		}
		res := tx.Model(&assessModel.AssessmentModel{}).
			Where("assessment_academic_year_id = ? AND assessment_grade_id = ? AND assessment_semester = ?",
				in.AcademicYearID, in.GradeID, in.Semester).
			Updates(map[string]any{
				"assessment_status":     target,
				"assessment_updated_at": now,
			})
		if res.Error != nil {
			log.Printf("[SemesterLifecycle] ERROR cascade year=%s grade=%s sem=%d err=%v",
				in.AcademicYearID, in.GradeID, in.Semester, res.Error)
			return fiber.NewError(fiber.StatusInternalServerError,
				"Gagal cascade status assessment, tidak ada perubahan tersimpan")
		}
		cascaded = res.RowsAffected

		// ambil baris final (OnConflict tidak refresh struct saat update)
		return tx.
			Where("semester_status_academic_year_id = ? AND semester_status_grade_id = ? AND semester_status_semester = ?",
				in.AcademicYearID, in.GradeID, in.Semester).
			First(&ent).Error
	})
	if err != nil {
		return nil, 0, err
	}

	cache.Del(ctx, semStatusCacheKey(in.AcademicYearID, in.GradeID, in.Semester))
	log.Printf("[SemesterLifecycle] SUCCESS SetSemesterStatus year=%s grade=%s sem=%d status=%s cascaded=%d",
		in.AcademicYearID, in.GradeID, in.Semester, in.Status, cascaded)
	return &ent, cascaded, nil
}

func (s *semesterLifecycleSvc) SetSemesterPeriod(ctx context.Context, db *gorm.DB, yearID uuid.UUID, semester int, status semModel.SemesterState) (*semModel.SemesterPeriodModel, error) {
	db = db.WithContext(ctx)
	if !validSemester(semester) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Semester harus 1 atau 2")
	}
	if status != semModel.SemesterOpen && status != semModel.SemesterClosed {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Status harus open atau closed")
	}

	var ent semModel.SemesterPeriodModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&yearModel.AcademicYearModel{}).
			Where("academic_year_id = ?", yearID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal validasi tahun ajaran")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}

		now := time.Now()
		var closedAt *time.Time
		if status == semModel.SemesterClosed {
			closedAt = &now
		}

		row := semModel.SemesterPeriodModel{
			SemesterPeriodAcademicYearID: yearID,
			SemesterPeriodSemester:       semester,
			SemesterPeriodStatus:         status,
			SemesterPeriodClosedAt:       closedAt,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "semester_period_academic_year_id"},
				{Name: "semester_period_semester"},
			},
			DoUpdates: clause.Assignments(map[string]any{
				"semester_period_status":     status,
				"semester_period_closed_at":  closedAt,
				"semester_period_updated_at": now,
			}),
		}).Create(&row).Error; err != nil {
			log.Printf("[SemesterLifecycle] ERROR period upsert year=%s sem=%d err=%v", yearID, semester, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan periode semester")
		}

		return tx.
			Where("semester_period_academic_year_id = ? AND semester_period_semester = ?", yearID, semester).
			First(&ent).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SemesterLifecycle] SUCCESS SetSemesterPeriod year=%s sem=%d status=%s", yearID, semester, status)
	return &ent, nil
}

func (s *semesterLifecycleSvc) IsOpen(ctx context.Context, db *gorm.DB, gradeID uuid.UUID, semester int, yearID uuid.UUID) (bool, error) {
	db = db.WithContext(ctx)
	if !validSemester(semester) {
		return false, fiber.NewError(fiber.StatusBadRequest, "Semester harus 1 atau 2")
	}

	key := semStatusCacheKey(yearID, gradeID, semester)

	var cached struct {
		Open bool `json:"open"`
	}
	if err := cache.GetJSON(ctx, key, &cached); err == nil {
		return cached.Open, nil
	}

	var row semModel.SemesterStatusModel
	err := db.
		Where("semester_status_academic_year_id = ? AND semester_status_grade_id = ? AND semester_status_semester = ?",
			yearID, gradeID, semester).
		First(&row).Error
	open := false
	switch {
	case err == nil:
		open = row.SemesterStatusStatus == semModel.SemesterOpen
	case errors.Is(err, gorm.ErrRecordNotFound):
		open = false // baris hilang ⇒ closed
	default:
		return false, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca status semester")
	}

	cached.Open = open
	cache.SetJSON(ctx, key, cached, cache.DefaultTTL)
	return open, nil
}

func (s *semesterLifecycleSvc) Backfill(ctx context.Context, db *gorm.DB, yearID uuid.UUID) (int64, error) {
	db = db.WithContext(ctx)

	var (
		created     int64
		touchedKeys []string
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&yearModel.AcademicYearModel{}).
			Where("academic_year_id = ?", yearID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal validasi tahun ajaran")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}

		// default per semester dari semester_periods (kalau ada)
		var periods []semModel.SemesterPeriodModel
		if err := tx.
			Where("semester_period_academic_year_id = ?", yearID).
			Find(&periods).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca periode semester")
		}
		defaults := map[int]semModel.SemesterState{
			1: semModel.SemesterClosed,
			2: semModel.SemesterClosed,
		}
		for _, p := range periods {
			defaults[p.SemesterPeriodSemester] = p.SemesterPeriodStatus
		}

		var grades []gradeModel.GradeModel
		if err := tx.
			Where("grade_is_active = TRUE").
			Find(&grades).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca daftar grade")
		}
		if len(grades) == 0 {
			return nil
		}

		rows := make([]semModel.SemesterStatusModel, 0, len(grades)*2)
		for _, g := range grades {
			for _, sem := range []int{1, 2} {
				touchedKeys = append(touchedKeys, semStatusCacheKey(yearID, g.GradeID, sem))
				rows = append(rows, semModel.SemesterStatusModel{
					SemesterStatusAcademicYearID: yearID,
					SemesterStatusGradeID:        g.GradeID,
					SemesterStatusSemester:       sem,
					SemesterStatusStatus:         defaults[sem],
					SemesterStatusIsDeclared:     false,
				})
			}
		}

		// DoNothing: baris yang sudah ada tidak disentuh (backfill idempoten)
		res := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "semester_status_academic_year_id"},
				{Name: "semester_status_grade_id"},
				{Name: "semester_status_semester"},
			},
			DoNothing: true,
		}).Create(&rows)
		if res.Error != nil {
			log.Printf("[SemesterLifecycle] ERROR backfill year=%s err=%v", yearID, res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal backfill status semester")
		}
		created = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Buang entri IsOpen yang sempat men-cache "closed" untuk slot yang
	// kini punya baris; tanpa ini pembaca bisa lihat status basi se-TTL.
	cache.Del(ctx, touchedKeys...)

	log.Printf("[SemesterLifecycle] SUCCESS Backfill year=%s created=%d", yearID, created)
	return created, nil
}
