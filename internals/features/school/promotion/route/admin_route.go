// file: internals/features/school/promotion/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	promotionCtl "sukuu_backend/internals/features/school/promotion/controller"
)

func PromotionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := promotionCtl.NewPromotionController(db, nil)

	api.Post("/promotions/bulk", ctl.BulkPromote)
	api.Get("/promotions/preview/:class", ctl.Preview)
}
