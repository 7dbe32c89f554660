// file: internals/features/school/assessments/controller/grade_band_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukuu_backend/internals/features/school/assessments/dto"
	"sukuu_backend/internals/features/school/assessments/model"
	helper "sukuu_backend/internals/helpers"
)

type GradeBandController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewGradeBandController(db *gorm.DB, v *validator.Validate) *GradeBandController {
	if v == nil {
		v = validator.New()
	}
	return &GradeBandController{DB: db, Validator: v}
}

/* ============================================
   PUT /grade-bands - replace the band table for one scope
============================================ */

func (ctl *GradeBandController) Replace(c *fiber.Ctx) error {
	var req dto.GradeBandReplaceDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := req.ValidateBands(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	rows := req.ToModels()
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		del := tx.Where("grade_band_term = ? AND grade_band_academic_year = ?",
			rows[0].GradeBandTerm, rows[0].GradeBandAcademicYear)
		if req.DepartmentID != nil {
			del = del.Where("grade_band_department_id = ?", *req.DepartmentID)
		} else {
			del = del.Where("grade_band_department_id IS NULL")
		}
		if err := del.Delete(&model.GradeBandModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save grade bands")
	}
	return helper.JsonUpdated(c, "Grade bands saved", rows)
}

/* ============================================
   GET /grade-bands?term=&academic_year=&department_id=
============================================ */

func (ctl *GradeBandController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.GradeBandModel{})

	if term := strings.TrimSpace(c.Query("term")); term != "" {
		tx = tx.Where("grade_band_term = ?", term)
	}
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		tx = tx.Where("grade_band_academic_year = ?", year)
	}
	if raw := strings.TrimSpace(c.Query("department_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department_id")
		}
		tx = tx.Where("grade_band_department_id = ?", id)
	}

	var rows []model.GradeBandModel
	if err := tx.Order("grade_band_from DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grade bands")
	}
	return helper.JsonOK(c, "", rows)
}
