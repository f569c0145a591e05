package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupYarnRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/yarn", middleware.AuthMiddleware)
	yarnController := controllers.NewYarnController(db)

	api.Post("/upload-excel", yarnController.CreateYarnBatchFromExcel)
	api.Get("/", yarnController.GetAllYarnBatches)
	api.Post("/", yarnController.CreateYarnBatch)
	api.Get("/:id", yarnController.GetYarnBatchByID)
	api.Delete("/:id", yarnController.DeleteYarnBatch)
}
