package controllers

import (
	"fmt"
	"net/http"

	"garment-flow/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	yarn      *repositories.YarnRepository
	dashboard *repositories.DashboardRepository
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		yarn:      repositories.NewYarnRepository(db),
		dashboard: repositories.NewDashboardRepository(db),
	}
}

// ExportProduction writes an xlsx workbook with the stage totals and the
// yarn batch register.
func (c *ReportController) ExportProduction(ctx *fiber.Ctx) error {
	batches, err := c.yarn.GetAll()
	if err != nil {
		return sendError(ctx, err)
	}
	stats := c.dashboard.GetStats()

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Metric")
	f.SetCellValue(sheet, "B1", "Total")
	rows := []struct {
		label string
		value interface{}
	}{
		{"Yarn Received (kg)", stats.TotalYarnKg},
		{"Fabric Produced (kg)", stats.TotalFabricKg},
		{"Fabric Dyed (kg)", stats.TotalDyedKg},
		{"Pieces Cut", stats.TotalCutPieces},
		{"Pieces Stitched", stats.TotalStitchedPieces},
		{"Pieces Packed", stats.TotalPackedPieces},
		{"Bales Shipped", stats.TotalBalesShipped},
	}
	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.value)
	}

	yarnSheet := "Yarn Batches"
	f.NewSheet(yarnSheet)
	f.SetCellValue(yarnSheet, "A1", "Batch Code")
	f.SetCellValue(yarnSheet, "B1", "Color")
	f.SetCellValue(yarnSheet, "C1", "Weight (kg)")
	f.SetCellValue(yarnSheet, "D1", "Supplier")
	f.SetCellValue(yarnSheet, "E1", "Received At")
	for i, batch := range batches {
		f.SetCellValue(yarnSheet, fmt.Sprintf("A%d", i+2), batch.BatchCode)
		f.SetCellValue(yarnSheet, fmt.Sprintf("B%d", i+2), batch.Color)
		f.SetCellValue(yarnSheet, fmt.Sprintf("C%d", i+2), batch.WeightKg)
		f.SetCellValue(yarnSheet, fmt.Sprintf("D%d", i+2), batch.Supplier)
		f.SetCellValue(yarnSheet, fmt.Sprintf("E%d", i+2), batch.ReceivedAt.Format("2006-01-02 15:04:05"))
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="production-report.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate report"})
	}
	return nil
}
