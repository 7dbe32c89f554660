// file: internals/features/school/users/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sukuu_backend/internals/features/school/users/controller"
	"sukuu_backend/internals/middlewares"
)

// AuthRoutes is the public surface: login only, rate limited.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db, validator.New())

	g := r.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// UserAdminRoutes mounts account management behind the admin guard.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db, validator.New())

	g := r.Group("/users")
	g.Post("/", ctl.Register)
}
