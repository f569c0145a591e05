package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDyeingRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/dyeing", middleware.AuthMiddleware)
	dyeingController := controllers.NewDyeingController(db)

	api.Get("/", dyeingController.GetAllDyeingJobs)
	api.Post("/", dyeingController.CreateDyeingJob)
	api.Get("/:id", dyeingController.GetDyeingJobByID)
}
