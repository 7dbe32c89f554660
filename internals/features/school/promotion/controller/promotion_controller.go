// file: internals/features/school/promotion/controller/promotion_controller.go
package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sukuu_backend/internals/features/school/promotion/dto"
	"sukuu_backend/internals/features/school/promotion/service"
	helper "sukuu_backend/internals/helpers"
)

type PromotionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPromotionController(db *gorm.DB, v *validator.Validate) *PromotionController {
	if v == nil {
		v = validator.New()
	}
	return &PromotionController{DB: db, Validator: v}
}

/* ============================================
   POST /promotions/bulk
============================================ */

func (ctl *PromotionController) BulkPromote(c *fiber.Ctx) error {
	var req dto.BulkPromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	promoter := &service.Promoter{Store: service.NewGormPromotionStore(ctl.DB)}
	report := promoter.PromoteAll(c.UserContext(), req)

	msg := fmt.Sprintf("Promoted %d, graduated %d of %d students",
		report.PromotedCount, report.GraduatedCount, report.TotalProcessed)
	if report.FailedCount > 0 {
		msg += fmt.Sprintf("; %d failed", report.FailedCount)
	}
	return helper.JsonOK(c, msg, report)
}

/* ============================================
   GET /promotions/preview/:class  - what the ladder says for one class name
============================================ */

func (ctl *PromotionController) Preview(c *fiber.Ctx) error {
	name := c.Params("class")
	next := service.NextClassName(name)
	return helper.JsonOK(c, "", fiber.Map{
		"class":             name,
		"normalized":        service.NormalizeClassName(name),
		"progression_index": service.ProgressionIndex(name),
		"next_class":        next,
		"should_graduate":   service.ShouldGraduate(name),
	})
}
