package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupContainerRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/containers", middleware.AuthMiddleware)
	containerController := controllers.NewContainerController(db)

	api.Get("/", containerController.GetAllContainers)
	api.Post("/", containerController.CreateContainer)
	api.Get("/:id", containerController.GetContainerByID)
}
