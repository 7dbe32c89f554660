// file: internals/features/school/classes/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sukuu_backend/internals/features/school/classes/controller"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()

	classCtl := controller.NewClassController(db, v)
	g := r.Group("/classes")
	g.Post("/", classCtl.Create)
	g.Get("/", classCtl.List)
	g.Patch("/:id", classCtl.Update)
	g.Delete("/:id", classCtl.Delete)

	depCtl := controller.NewDepartmentController(db, v)
	d := r.Group("/departments")
	d.Post("/", depCtl.Create)
	d.Get("/", depCtl.List)
	d.Delete("/:id", depCtl.Delete)
}
