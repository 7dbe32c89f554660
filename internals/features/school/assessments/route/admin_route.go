// file: internals/features/school/assessments/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sukuu_backend/internals/features/school/assessments/controller"
)

func AssessmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()

	caCtl := controller.NewCATypeController(db, v)
	ca := r.Group("/ca-types")
	ca.Post("/", caCtl.Create)
	ca.Get("/", caCtl.List)
	ca.Delete("/:id", caCtl.Delete)

	gbCtl := controller.NewGradeBandController(db, v)
	gb := r.Group("/grade-bands")
	gb.Put("/", gbCtl.Replace)
	gb.Get("/", gbCtl.List)
}
