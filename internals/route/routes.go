// file: internals/route/routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentRoute "sukuu_backend/internals/features/school/assessments/route"
	classRoute "sukuu_backend/internals/features/school/classes/route"
	importRoute "sukuu_backend/internals/features/school/imports/route"
	promotionRoute "sukuu_backend/internals/features/school/promotion/route"
	resultRoute "sukuu_backend/internals/features/school/results/route"
	studentRoute "sukuu_backend/internals/features/school/students/route"
	subjectRoute "sukuu_backend/internals/features/school/subjects/route"
	userRoute "sukuu_backend/internals/features/school/users/route"
	"sukuu_backend/internals/middlewares/auth"
)

// SetupRoutes wires the whole API surface.
//
//	/api/auth/*  - public (login)
//	/api/a/*     - admin: full CRUD, imports, promotions
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// =======================
	// Public
	// =======================
	userRoute.AuthRoutes(api, db)

	// =======================
	// Admin (JWT + admin role)
	// =======================
	admin := api.Group("/a", auth.AuthMiddleware(), auth.OnlyAdmin())

	userRoute.UserAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	assessmentRoute.AssessmentAdminRoutes(admin, db)
	resultRoute.ResultAdminRoutes(admin, db)
	importRoute.ImportAdminRoutes(admin, db)
	promotionRoute.PromotionAdminRoutes(admin, db)
}
