package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware)
	dashboardController := controllers.NewDashboardController(db)

	api.Get("/stats", dashboardController.GetStats)
}
