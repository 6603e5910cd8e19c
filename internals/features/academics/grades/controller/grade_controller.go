// file: internals/features/academics/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/grades/dto"
	model "sekolahku_backend/internals/features/academics/grades/model"
	helper "sekolahku_backend/internals/helpers"
)

type GradeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewGradeController(db *gorm.DB, v *validator.Validate) *GradeController {
	if v == nil {
		v = validator.New()
	}
	return &GradeController{DB: db, Validator: v}
}

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

/* ============================================
   CREATE (registrar only)
   POST /api/a/grades
============================================ */

func (ctl *GradeController) Create(c *fiber.Ctx) error {
	var p dto.GradeCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	var cnt int64
	if err := ctl.DB.Model(&model.GradeModel{}).
		Where("grade_name = ?", p.GradeName).
		Count(&cnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memeriksa nama")
	}
	if cnt > 0 {
		return httpErr(c, fiber.StatusConflict, "Nama grade sudah dipakai")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal membuat data")
	}
	return helper.JsonCreated(c, "Berhasil membuat grade", dto.FromModel(ent))
}

/* ============================================
   LIST (public)
   GET /api/public/grades
============================================ */

func (ctl *GradeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.GradeModel{})
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		tx = tx.Where("grade_name ILIKE ?", "%"+name+"%")
	}
	if c.Query("active") != "" {
		tx = tx.Where("grade_is_active = ?", c.QueryBool("active"))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.GradeModel
	if err := tx.Order("grade_level ASC, grade_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar grade", dto.FromModels(list), &pg)
}

/* ============================================
   PATCH (registrar only)
   PATCH /api/a/grades/:id
============================================ */

func (ctl *GradeController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.GradeModel
	if err := ctl.DB.
		Where("grade_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.GradeUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	if p.GradeName != nil {
		var cnt int64
		if err := ctl.DB.Model(&model.GradeModel{}).
			Where("grade_name = ? AND grade_id <> ?", strings.TrimSpace(*p.GradeName), ent.GradeID).
			Count(&cnt).Error; err != nil {
			return httpErr(c, fiber.StatusInternalServerError, "Gagal memeriksa nama")
		}
		if cnt > 0 {
			return httpErr(c, fiber.StatusConflict, "Nama grade sudah dipakai")
		}
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui grade", dto.FromModel(ent))
}

/* ============================================
   DELETE (soft) (registrar only)
   DELETE /api/a/grades/:id
============================================ */

func (ctl *GradeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.GradeModel
	if err := ctl.DB.
		Where("grade_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus grade", fiber.Map{"grade_id": id})
}
