// file: internals/features/academics/academic_years/controller/academic_year_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/academic_years/dto"
	model "sekolahku_backend/internals/features/academics/academic_years/model"
	service "sekolahku_backend/internals/features/academics/academic_years/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type AcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   service.AcademicYearService
}

func NewAcademicYearController(db *gorm.DB, v *validator.Validate) *AcademicYearController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicYearController{
		DB:        db,
		Validator: v,
		Service:   service.NewAcademicYearService(),
	}
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

/* ============================================
   CREATE (registrar only)
   POST /api/a/academic-years
============================================ */

func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	var p dto.AcademicYearCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	if p.AcademicYearEndDate.Before(p.AcademicYearStartDate) {
		return httpErr(c, fiber.StatusBadRequest, "Tanggal akhir harus >= tanggal mulai")
	}

	// Uniqueness check untuk nama tahun ajaran
	var cnt int64
	if err := ctl.DB.Model(&model.AcademicYearModel{}).
		Where("academic_year_name = ?", p.AcademicYearName).
		Count(&cnt).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memeriksa nama")
	}
	if cnt > 0 {
		return httpErr(c, fiber.StatusConflict, "Nama tahun ajaran sudah dipakai")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal membuat data")
	}
	return helper.JsonCreated(c, "Berhasil membuat tahun ajaran", dto.FromModel(ent))
}

/* ============================================
   LIST (public)
   GET /api/public/academic-years
============================================ */

func (ctl *AcademicYearController) List(c *fiber.Ctx) error {
	var q dto.AcademicYearFilterDTO
	if err := c.QueryParser(&q); err != nil {
		return httpErr(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return httpErr(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.AcademicYearModel{})
	if q.Name != nil && strings.TrimSpace(*q.Name) != "" {
		tx = tx.Where("academic_year_name ILIKE ?", "%"+strings.TrimSpace(*q.Name)+"%")
	}
	if q.Current != nil {
		tx = tx.Where("academic_year_is_current = ?", *q.Current)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	sortBy := "academic_year_start_date"
	if q.SortBy != nil {
		switch *q.SortBy {
		case "created_at":
			sortBy = "academic_year_created_at"
		case "start_date":
			sortBy = "academic_year_start_date"
		case "end_date":
			sortBy = "academic_year_end_date"
		case "name":
			sortBy = "academic_year_name"
		}
	}
	dir := "DESC"
	if q.SortDir != nil && strings.EqualFold(*q.SortDir, "asc") {
		dir = "ASC"
	}

	var list []model.AcademicYearModel
	if err := tx.Order(sortBy + " " + dir).
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar tahun ajaran", dto.FromModels(list), &pg)
}

/* ============================================
   CURRENT (public)
   GET /api/public/academic-years/current
============================================ */

func (ctl *AcademicYearController) Current(c *fiber.Ctx) error {
	ent, err := ctl.Service.Current(c.UserContext(), ctl.DB)
	if err != nil {
		return asFiberErr(c, err)
	}
	return helper.JsonOK(c, "Tahun ajaran aktif", dto.FromModel(*ent))
}

/* ============================================
   PATCH (registrar only)
   PATCH /api/a/academic-years/:id
============================================ */

func (ctl *AcademicYearController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.AcademicYearModel
	if err := ctl.DB.
		Where("academic_year_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.AcademicYearUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}

	// Validasi tanggal jika diubah
	if p.AcademicYearStartDate != nil || p.AcademicYearEndDate != nil {
		start := ent.AcademicYearStartDate
		end := ent.AcademicYearEndDate
		if p.AcademicYearStartDate != nil {
			start = *p.AcademicYearStartDate
		}
		if p.AcademicYearEndDate != nil {
			end = *p.AcademicYearEndDate
		}
		if end.Before(start) {
			return httpErr(c, fiber.StatusBadRequest, "Tanggal akhir harus >= tanggal mulai")
		}
	}

	// Uniqueness check jika nama berubah
	if p.AcademicYearName != nil {
		var cnt int64
		if err := ctl.DB.Model(&model.AcademicYearModel{}).
			Where("academic_year_name = ? AND academic_year_id <> ?",
				strings.TrimSpace(*p.AcademicYearName), ent.AcademicYearID).
			Count(&cnt).Error; err != nil {
			return httpErr(c, fiber.StatusInternalServerError, "Gagal memeriksa nama")
		}
		if cnt > 0 {
			return httpErr(c, fiber.StatusConflict, "Nama tahun ajaran sudah dipakai")
		}
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui tahun ajaran", dto.FromModel(ent))
}

/* ============================================
   DELETE (soft) (registrar only)
   DELETE /api/a/academic-years/:id
============================================ */

func (ctl *AcademicYearController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.AcademicYearModel
	if err := ctl.DB.
		Where("academic_year_id = ?", id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpErr(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if ent.AcademicYearIsCurrent {
		return httpErr(c, fiber.StatusConflict, "Tahun ajaran aktif tidak boleh dihapus")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus tahun ajaran", fiber.Map{"academic_year_id": id})
}

/* ============================================
   ACTIVATE (registrar only)
   POST /api/a/academic-years/:id/activate
============================================ */

func (ctl *AcademicYearController) Activate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ent, err := ctl.Service.Activate(c.UserContext(), ctl.DB, id)
	if err != nil {
		return asFiberErr(c, err)
	}
	return helper.JsonUpdated(c, "Berhasil mengaktifkan tahun ajaran", dto.FromModel(*ent))
}
