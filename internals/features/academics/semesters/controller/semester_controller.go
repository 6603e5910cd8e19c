// file: internals/features/academics/semesters/controller/semester_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/semesters/dto"
	semModel "sekolahku_backend/internals/features/academics/semesters/model"
	service "sekolahku_backend/internals/features/academics/semesters/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type SemesterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   service.SemesterLifecycleService
}

func NewSemesterController(db *gorm.DB, v *validator.Validate) *SemesterController {
	if v == nil {
		v = validator.New()
	}
	return &SemesterController{
		DB:        db,
		Validator: v,
		Service:   service.NewSemesterLifecycleService(),
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
   SET STATUS (registrar only)
   PUT /api/a/semester-statuses
============================================ */

func (ctl *SemesterController) SetStatus(c *fiber.Ctx) error {
	var p dto.SetSemesterStatusRequest
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	state, ok := semModel.ParseSemesterState(p.Status)
	if !ok {
		return httpErr(c, fiber.StatusBadRequest, "Status harus open atau closed")
	}

	ent, cascaded, err := ctl.Service.SetSemesterStatus(c.UserContext(), ctl.DB, service.SetSemesterStatusInput{
		AcademicYearID: p.AcademicYearID,
		GradeID:        p.GradeID,
		Semester:       p.Semester,
		Status:         state,
	})
	if err != nil {
		return asFiberErr(c, err)
	}

	return helper.JsonUpdated(c, "Berhasil menyimpan status semester", fiber.Map{
		"semester_status":     dto.FromSemesterStatusModel(ent),
		"assessments_updated": cascaded,
	})
}

/* ============================================
   LIST STATUS (registrar only)
   GET /api/a/semester-statuses?academic_year_id=&grade_id=
============================================ */

func (ctl *SemesterController) ListStatuses(c *fiber.Ctx) error {
	yearID, err := helper.ParseUUIDQuery(c, "academic_year_id")
	if err != nil {
		return asFiberErr(c, err)
	}

	tx := ctl.DB.Model(&semModel.SemesterStatusModel{}).
		Where("semester_status_academic_year_id = ?", yearID)

	if raw := c.Query("grade_id"); raw != "" {
		gradeID, err := helper.ParseUUIDQuery(c, "grade_id")
		if err != nil {
			return asFiberErr(c, err)
		}
		tx = tx.Where("semester_status_grade_id = ?", gradeID)
	}

	var list []semModel.SemesterStatusModel
	if err := tx.
		Order("semester_status_grade_id ASC, semester_status_semester ASC").
		Find(&list).Error; err != nil {
		return httpErr(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar status semester", dto.FromSemesterStatusModels(list), nil)
}

/* ============================================
   SET PERIOD (registrar only)
   PUT /api/a/semester-periods
============================================ */

func (ctl *SemesterController) SetPeriod(c *fiber.Ctx) error {
	var p dto.SetSemesterPeriodRequest
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return httpErr(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	state, ok := semModel.ParseSemesterState(p.Status)
	if !ok {
		return httpErr(c, fiber.StatusBadRequest, "Status harus open atau closed")
	}

	ent, err := ctl.Service.SetSemesterPeriod(c.UserContext(), ctl.DB, p.AcademicYearID, p.Semester, state)
	if err != nil {
		return asFiberErr(c, err)
	}
	return helper.JsonUpdated(c, "Berhasil menyimpan periode semester", dto.FromSemesterPeriodModel(ent))
}

/* ============================================
   IS OPEN (login user)
   GET /api/u/semester-statuses/is-open?academic_year_id=&grade_id=&semester=
============================================ */

func (ctl *SemesterController) IsOpen(c *fiber.Ctx) error {
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

	open, err := ctl.Service.IsOpen(c.UserContext(), ctl.DB, gradeID, sem, yearID)
	if err != nil {
		return asFiberErr(c, err)
	}

	return helper.JsonOK(c, "Status semester", dto.IsOpenResponse{
		AcademicYearID: yearID,
		GradeID:        gradeID,
		Semester:       sem,
		Open:           open,
	})
}

/* ============================================
   BACKFILL (registrar only)
   POST /api/a/academic-years/:id/backfill-semester-statuses
============================================ */

func (ctl *SemesterController) Backfill(c *fiber.Ctx) error {
	yearID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return httpErr(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	created, err := ctl.Service.Backfill(c.UserContext(), ctl.DB, yearID)
	if err != nil {
		return asFiberErr(c, err)
	}

	return helper.JsonOK(c, "Berhasil backfill status semester", dto.BackfillResponse{
		AcademicYearID: yearID,
		CreatedRows:    created,
	})
}
