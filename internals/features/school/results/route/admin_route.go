// file: internals/features/school/results/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sukuu_backend/internals/features/school/results/controller"
)

func ResultAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewResultController(db, validator.New())

	g := r.Group("/results")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/report", ctl.Report)
}
