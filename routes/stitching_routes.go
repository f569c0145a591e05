package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStitchingRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/stitching", middleware.AuthMiddleware)
	stitchingController := controllers.NewStitchingController(db)

	api.Get("/", stitchingController.GetAllStitchingJobs)
	api.Post("/", stitchingController.CreateStitchingJob)
	api.Get("/:id", stitchingController.GetStitchingJobByID)
}
