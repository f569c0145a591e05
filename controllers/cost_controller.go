package controllers

import (
	"garment-flow/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CostController serves both bookkeeping surfaces: raw material purchases
// and factory operating costs.
type CostController struct {
	repo *repositories.CostRepository
}

func NewCostController(db *gorm.DB) *CostController {
	return &CostController{repo: repositories.NewCostRepository(db)}
}

func (c *CostController) GetAllPurchases(ctx *fiber.Ctx) error {
	purchases, err := c.repo.GetAllPurchases()
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(purchases)
}

func (c *CostController) GetPurchaseByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	purchase, err := c.repo.GetPurchaseByID(id)
	if err != nil {
		return sendError(ctx, err)
	}
	if purchase == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Raw material purchase not found"})
	}
	return ctx.JSON(purchase)
}

func (c *CostController) CreatePurchase(ctx *fiber.Ctx) error {
	var input repositories.InsertRawMaterialPurchase
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	purchase, err := c.repo.CreatePurchase(input)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(purchase)
}

func (c *CostController) DeletePurchase(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	if err := c.repo.DeletePurchase(id); err != nil {
		return sendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *CostController) GetAllFactoryCosts(ctx *fiber.Ctx) error {
	costs, err := c.repo.GetAllFactoryCosts()
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(costs)
}

func (c *CostController) GetFactoryCostByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	cost, err := c.repo.GetFactoryCostByID(id)
	if err != nil {
		return sendError(ctx, err)
	}
	if cost == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Factory cost not found"})
	}
	return ctx.JSON(cost)
}

func (c *CostController) CreateFactoryCost(ctx *fiber.Ctx) error {
	var input repositories.InsertFactoryCost
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	cost, err := c.repo.CreateFactoryCost(input)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(cost)
}

func (c *CostController) DeleteFactoryCost(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	if err := c.repo.DeleteFactoryCost(id); err != nil {
		return sendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
