package controllers

import (
	"garment-flow/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ContainerController struct {
	repo *repositories.ContainerRepository
}

func NewContainerController(db *gorm.DB) *ContainerController {
	return &ContainerController{repo: repositories.NewContainerRepository(db)}
}

func (c *ContainerController) GetAllContainers(ctx *fiber.Ctx) error {
	containers, err := c.repo.GetAll()
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(containers)
}

func (c *ContainerController) GetContainerByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	container, err := c.repo.GetByID(id)
	if err != nil {
		return sendError(ctx, err)
	}
	if container == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Container not found"})
	}
	return ctx.JSON(container)
}

func (c *ContainerController) CreateContainer(ctx *fiber.Ctx) error {
	var input repositories.InsertContainer
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	container, err := c.repo.Create(input)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(container)
}
