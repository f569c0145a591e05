package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKnittingRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/knitting", middleware.AuthMiddleware)
	knittingController := controllers.NewKnittingController(db)

	api.Get("/", knittingController.GetAllKnittingJobs)
	api.Post("/", knittingController.CreateKnittingJob)
	api.Get("/:id", knittingController.GetKnittingJobByID)
}
