package controllers

import (
	"garment-flow/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	repo *repositories.DashboardRepository
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{repo: repositories.NewDashboardRepository(db)}
}

// GetStats never fails: a degraded store yields zero totals so the
// dashboard keeps rendering.
func (c *DashboardController) GetStats(ctx *fiber.Ctx) error {
	return ctx.JSON(c.repo.GetStats())
}
