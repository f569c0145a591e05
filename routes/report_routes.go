package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/reports", middleware.AuthMiddleware)
	reportController := controllers.NewReportController(db)

	api.Get("/production", reportController.ExportProduction)
}
