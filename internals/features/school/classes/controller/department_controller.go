// file: internals/features/school/classes/controller/department_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukuu_backend/internals/features/school/classes/dto"
	"sukuu_backend/internals/features/school/classes/model"
	helper "sukuu_backend/internals/helpers"
)

type DepartmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDepartmentController(db *gorm.DB, v *validator.Validate) *DepartmentController {
	if v == nil {
		v = validator.New()
	}
	return &DepartmentController{DB: db, Validator: v}
}

/* ============================================
   POST /departments
============================================ */

func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var req dto.DepartmentCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	name := strings.Join(strings.Fields(req.DepartmentName), " ")

	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.DepartmentModel{}).
		Where("LOWER(department_name) = LOWER(?)", name).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check department name")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Department already exists")
	}

	ent := &model.DepartmentModel{DepartmentID: uuid.New(), DepartmentName: name}
	if err := ctl.DB.WithContext(c.UserContext()).Create(ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create department")
	}
	return helper.JsonCreated(c, "Department created", ent)
}

/* ============================================
   GET /departments
============================================ */

func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	var rows []model.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("department_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch departments")
	}
	return helper.JsonOK(c, "", rows)
}

/* ============================================
   DELETE /departments/:id
============================================ */

func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete department")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
	}
	return helper.JsonDeleted(c, "Department deleted", fiber.Map{"department_id": id})
}
