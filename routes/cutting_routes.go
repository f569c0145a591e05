package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCuttingRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/cutting", middleware.AuthMiddleware)
	cuttingController := controllers.NewCuttingController(db)

	api.Get("/", cuttingController.GetAllCuttingJobs)
	api.Post("/", cuttingController.CreateCuttingJob)
	api.Get("/:id", cuttingController.GetCuttingJobByID)
}
