package main

import (
	"fmt"
	"log"

	"garment-flow/config"
	"garment-flow/database"
	"garment-flow/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupYarnRoutes(app, db)
	routes.SetupKnittingRoutes(app, db)
	routes.SetupDyeingRoutes(app, db)
	routes.SetupCuttingRoutes(app, db)
	routes.SetupStitchingRoutes(app, db)
	routes.SetupPressingRoutes(app, db)
	routes.SetupPackingRoutes(app, db)
	routes.SetupContainerRoutes(app, db)
	routes.SetupCostRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupReportRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("Server listening on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
