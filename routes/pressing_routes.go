package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPressingRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/pressing", middleware.AuthMiddleware)
	pressingController := controllers.NewPressingController(db)

	api.Get("/", pressingController.GetAllPressingJobs)
	api.Post("/", pressingController.CreatePressingJob)
	api.Get("/:id", pressingController.GetPressingJobByID)
}
