package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/auth")
	authController := controllers.NewAuthController(db)

	api.Post("/register", authController.Register)
	api.Post("/login", authController.Login)
}
