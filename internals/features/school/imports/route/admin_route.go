// file: internals/features/school/imports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	importCtl "sukuu_backend/internals/features/school/imports/controller"
	"sukuu_backend/internals/middlewares"
)

func ImportAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := importCtl.NewImportController(db, nil)

	grp := api.Group("/imports", middlewares.ImportRateLimiter())
	grp.Post("/students", ctl.ImportStudents)
	grp.Post("/results", ctl.ImportResults)
	grp.Get("/logs", ctl.ListLogs)
}
