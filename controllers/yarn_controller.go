package controllers

import (
	"strconv"

	"garment-flow/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type YarnController struct {
	repo *repositories.YarnRepository
}

func NewYarnController(db *gorm.DB) *YarnController {
	return &YarnController{repo: repositories.NewYarnRepository(db)}
}

func (c *YarnController) GetAllYarnBatches(ctx *fiber.Ctx) error {
	batches, err := c.repo.GetAll()
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.JSON(batches)
}

func (c *YarnController) GetYarnBatchByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	batch, err := c.repo.GetByID(id)
	if err != nil {
		return sendError(ctx, err)
	}
	if batch == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Yarn batch not found"})
	}
	return ctx.JSON(batch)
}

func (c *YarnController) CreateYarnBatch(ctx *fiber.Ctx) error {
	var input repositories.InsertYarnBatch
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	batch, err := c.repo.Create(input)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(batch)
}

func (c *YarnController) DeleteYarnBatch(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	if err := c.repo.Delete(id); err != nil {
		return sendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// CreateYarnBatchFromExcel bulk-imports batches from an uploaded workbook.
// Expected columns: Batch Code, Color, Weight (kg), Supplier.
func (c *YarnController) CreateYarnBatchFromExcel(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Excel file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to open uploaded file"})
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to read Excel file"})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No sheets found in Excel file"})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to read Excel rows"})
	}

	created := 0
	for i, row := range rows {
		if i == 0 || len(row) < 3 { // header row
			continue
		}
		weightKg, parseErr := strconv.ParseFloat(row[2], 64)
		if parseErr != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Weight (kg) must be a valid number on row " + strconv.Itoa(i+1),
			})
		}
		input := repositories.InsertYarnBatch{
			BatchCode: row[0],
			Color:     row[1],
			WeightKg:  weightKg,
		}
		if len(row) > 3 {
			input.Supplier = row[3]
		}
		if _, err := c.repo.Create(input); err != nil {
			return sendError(ctx, err)
		}
		created++
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"created": created})
}
