package routes

import (
	"garment-flow/config"
	"garment-flow/controllers"
	"garment-flow/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCostRoutes(app *fiber.App, db *gorm.DB) {
	costController := controllers.NewCostController(db)

	purchases := app.Group(config.MAIN_ROUTES+"/raw-materials", middleware.AuthMiddleware)
	purchases.Get("/", costController.GetAllPurchases)
	purchases.Post("/", costController.CreatePurchase)
	purchases.Get("/:id", costController.GetPurchaseByID)
	purchases.Delete("/:id", costController.DeletePurchase)

	costs := app.Group(config.MAIN_ROUTES+"/factory-costs", middleware.AuthMiddleware)
	costs.Get("/", costController.GetAllFactoryCosts)
	costs.Post("/", costController.CreateFactoryCost)
	costs.Get("/:id", costController.GetFactoryCostByID)
	costs.Delete("/:id", costController.DeleteFactoryCost)
}
