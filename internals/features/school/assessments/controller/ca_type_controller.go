// file: internals/features/school/assessments/controller/ca_type_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukuu_backend/internals/features/school/assessments/dto"
	"sukuu_backend/internals/features/school/assessments/model"
	helper "sukuu_backend/internals/helpers"
)

type CATypeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCATypeController(db *gorm.DB, v *validator.Validate) *CATypeController {
	if v == nil {
		v = validator.New()
	}
	return &CATypeController{DB: db, Validator: v}
}

/* ============================================
   POST /ca-types
============================================ */

func (ctl *CATypeController) Create(c *fiber.Ctx) error {
	var req dto.CATypeCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := req.ValidateWeights(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.CATypeModel{}).
		Where("LOWER(ca_type_name) = LOWER(?)", req.CATypeName).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check CA type name")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "CA type already exists")
	}

	ent := req.ToModel()
	ent.CATypeID = uuid.New()
	if err := ctl.DB.WithContext(c.UserContext()).Create(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create CA type")
	}
	return helper.JsonCreated(c, "CA type created", ent)
}

/* ============================================
   GET /ca-types
============================================ */

func (ctl *CATypeController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.CATypeModel{})
	if c.Query("include_inactive") != "true" {
		tx = tx.Where("ca_type_is_active = true")
	}

	var rows []model.CATypeModel
	if err := tx.Order("ca_type_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch CA types")
	}
	return helper.JsonOK(c, "", rows)
}

/* ============================================
   DELETE /ca-types/:id  (soft delete; imports fall back to unweighted)
============================================ */

func (ctl *CATypeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid CA type id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.CATypeModel{}, "ca_type_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete CA type")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "CA type not found")
	}
	return helper.JsonDeleted(c, "CA type deleted", fiber.Map{"ca_type_id": id})
}
