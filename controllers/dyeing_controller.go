package controllers

import (
	"garment-flow/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DyeingController struct {
	repo *repositories.DyeingRepository
}

func NewDyeingController(db *gorm.DB) *DyeingController {
	return &DyeingController{repo: repositories.NewDyeingRepository(db)}
}

func (c *DyeingController) GetAllDyeingJobs(ctx *fiber.Ctx) error {
	jobs, err := c.repo.GetAll()
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(jobs)
}

func (c *DyeingController) GetDyeingJobByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	job, err := c.repo.GetByID(id)
	if err != nil {
		return sendError(ctx, err)
	}
	if job == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Dyeing job not found"})
	}
	return ctx.JSON(job)
}

func (c *DyeingController) CreateDyeingJob(ctx *fiber.Ctx) error {
	var input repositories.InsertDyeingJob
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	job, err := c.repo.Create(input)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(job)
}
