package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPackingRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/packing", middleware.AuthMiddleware)
	packingController := controllers.NewPackingController(db)

	api.Get("/", packingController.GetAllPackingJobs)
	api.Post("/", packingController.CreatePackingJob)
	api.Get("/:id", packingController.GetPackingJobByID)
}
