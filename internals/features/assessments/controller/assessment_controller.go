// file: internals/features/assessments/controller/assessment_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	yearModel "sekolahku_backend/internals/features/academics/academic_years/model"
	gradeModel "sekolahku_backend/internals/features/academics/grades/model"
	dto "sekolahku_backend/internals/features/assessments/dto"
	model "sekolahku_backend/internals/features/assessments/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type AssessmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssessmentController(db *gorm.DB, v *validator.Validate) *AssessmentController {
	if v == nil {
		v = validator.New()
	}
	return &AssessmentController{DB: db, Validator: v}
}

/* ============================================
   RESP/ERR helpers
============================================ */

func httpErr(c *fiber.Ctx, code int, msg string) error {
	return helper.JsonError(c, code, msg)
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

func asFiberErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return httpErr(c, fe.Code, fe.Message)
	}
	return httpErr(c, fiber.StatusInternalServerError, err.Error())
}

func (ctl *AssessmentController) findAssessment(id uuid.UUID) (*model.AssessmentModel, error) {
	var ent model.AssessmentModel
	if err := ctl.DB.
		Preload("AssessmentComponents", func(db *gorm.DB) *gorm.DB {
			return db.Order("assessment_component_position ASC")
		}).
		Where("assessment_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &ent, nil
}

/* ============================================
   CREATE (teacher ke atas)
   POST /api/a/assessments
============================================ */

func (ctl *AssessmentController) Create(c *fiber.Ctx) error {
	var p dto.AssessmentCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	if err := dto.ValidateWeights(p.Components); err != nil {
		return asFiberErr(c, err)
	}

	// Validasi referensi
	var cnt int64
	if err := ctl.DB.Model(&yearModel.AcademicYearModel{}).
		Where("academic_year_id = ?", p.AssessmentAcademicYearID).
		Count(&cnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal validasi tahun ajaran")
	}
	if cnt == 0 {
		return httpErr(c, fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
	}
	if err := ctl.DB.Model(&gradeModel.GradeModel{}).
		Where("grade_id = ?", p.AssessmentGradeID).
		Count(&cnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal validasi grade")
	}
	if cnt == 0 {
		return httpErr(c, fiber.StatusNotFound, "Grade tidak ditemukan")
	}

	ent := model.AssessmentModel{
		AssessmentAcademicYearID: p.AssessmentAcademicYearID,
		AssessmentGradeID:        p.AssessmentGradeID,
		AssessmentSemester:       p.AssessmentSemester,
		AssessmentTitle:          p.AssessmentTitle,
		AssessmentStatus:         model.AssessmentDraft,
	}
	if uid, err := helperAuth.GetUserID(c); err == nil {
		ent.AssessmentCreatedBy = &uid
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ent).Error; err != nil {
			return err
		}
		comps := dto.ToComponentModels(ent.AssessmentID, p.Components)
		return tx.Create(&comps).Error
	})
	if err != nil {
		log.Printf("[Assessment] ERROR create title=%q err=%v", p.AssessmentTitle, err)
		return httpErr(c, fiber.StatusInternalServerError, "Gagal membuat penilaian")
	}

	created, err := ctl.findAssessment(ent.AssessmentID)
	if err != nil {
		return asFiberErr(c, err)
	}
	return helper.JsonCreated(c, "Berhasil membuat penilaian", dto.FromModel(*created))
}

/* ============================================
   LIST (login user)
   GET /api/u/assessments?academic_year_id=&grade_id=&semester=
============================================ */

func (ctl *AssessmentController) List(c *fiber.Ctx) error {
	yearID, err := helper.ParseUUIDQuery(c, "academic_year_id")
	if err != nil {
		return asFiberErr(c, err)
	}
	gradeID, err := helper.ParseUUIDQuery(c, "grade_id")
	if err != nil {
		return asFiberErr(c, err)
	}
	sem, err := helper.ParseSemesterQuery(c, "semester")
	if err != nil {
		return asFiberErr(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.AssessmentModel{}).
		Where("assessment_academic_year_id = ? AND assessment_grade_id = ? AND assessment_semester = ?",
			yearID, gradeID, sem)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.AssessmentModel
	if err := tx.
		Preload("AssessmentComponents", func(db *gorm.DB) *gorm.DB {
			return db.Order("assessment_component_position ASC")
		}).
		Order("assessment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar penilaian", dto.FromModels(list), &pg)
}

/* ============================================
   PATCH (teacher ke atas), locked menolak mutasi
   PATCH /api/a/assessments/:id
============================================ */

func (ctl *AssessmentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ent, err := ctl.findAssessment(id)
	if err != nil {
		return asFiberErr(c, err)
	}
	if ent.AssessmentStatus == model.AssessmentLocked {
		return httpErr(c, fiber.StatusConflict, "Penilaian terkunci, semester sudah ditutup")
	}

	var p dto.AssessmentUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	p.ApplyUpdates(ent)
	if err := ctl.DB.Save(ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui penilaian", dto.FromModel(*ent))
}

/* ============================================
   REPLACE COMPONENTS (teacher ke atas)
   PUT /api/a/assessments/:id/components
============================================ */

func (ctl *AssessmentController) ReplaceComponents(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ent, err := ctl.findAssessment(id)
	if err != nil {
		return asFiberErr(c, err)
	}
	if ent.AssessmentStatus == model.AssessmentLocked {
		return httpErr(c, fiber.StatusConflict, "Penilaian terkunci, semester sudah ditutup")
	}

	var p dto.ReplaceComponentsDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	if err := dto.ValidateWeights(p.Components); err != nil {
		return asFiberErr(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("assessment_component_assessment_id = ?", ent.AssessmentID).
			Delete(&model.AssessmentComponentModel{}).Error; err != nil {
			return err
		}
		comps := dto.ToComponentModels(ent.AssessmentID, p.Components)
		return tx.Create(&comps).Error
	})
	if err != nil {
		log.Printf("[Assessment] ERROR replace components id=%s err=%v", ent.AssessmentID, err)
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengganti komponen")
	}

	updated, err := ctl.findAssessment(ent.AssessmentID)
	if err != nil {
		return asFiberErr(c, err)
	}
	return helper.JsonUpdated(c, "Berhasil mengganti komponen penilaian", dto.FromModel(*updated))
}

/* ============================================
   DELETE (soft) (teacher ke atas)
   DELETE /api/a/assessments/:id
============================================ */

func (ctl *AssessmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ent, err := ctl.findAssessment(id)
	if err != nil {
		return asFiberErr(c, err)
	}
	if ent.AssessmentStatus == model.AssessmentLocked {
		return httpErr(c, fiber.StatusConflict, "Penilaian terkunci, semester sudah ditutup")
	}

	if err := ctl.DB.Delete(ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus penilaian", fiber.Map{"assessment_id": id})
}
