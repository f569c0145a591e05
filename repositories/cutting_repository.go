package repositories

import (
	"errors"
	"log"
	"time"

	"garment-flow/apperr"
	"garment-flow/models"
	"garment-flow/validation"

	"gorm.io/gorm"
)

type CuttingRepository struct {
	db *gorm.DB
}

func NewCuttingRepository(db *gorm.DB) *CuttingRepository {
	return &CuttingRepository{db}
}

// Count fields are declared float64 so a fractional submission reaches the
// whole-number check instead of dying inside the JSON decoder.
type InsertCuttingJob struct {
	DyeingJobID    uint       `json:"dyeingJobId"`
	StyleCode      string     `json:"styleCode"`
	Size           string     `json:"size"`
	QuantityPieces float64    `json:"quantityPieces"`
	WasteKg        float64    `json:"wasteKg"`
	CompletedAt    *time.Time `json:"completedAt"`
}

func (r *CuttingRepository) GetAll() ([]models.CuttingJob, error) {
	var jobs []models.CuttingJob
	if err := r.db.Order("completed_at ASC").Find(&jobs).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching cutting jobs")
	}
	return jobs, nil
}

func (r *CuttingRepository) GetByID(id int) (*models.CuttingJob, error) {
	if id <= 0 {
		return nil, apperr.Validationf("Cutting job ID must be a positive number")
	}
	var job models.CuttingJob
	if err := r.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching cutting job")
	}
	return &job, nil
}

func (r *CuttingRepository) Create(input InsertCuttingJob) (*models.CuttingJob, error) {
	styleCode, err := validation.RequireString(input.StyleCode, "Style Code", 1)
	if err != nil {
		return nil, err
	}
	size, err := validation.RequireString(input.Size, "Size", 1)
	if err != nil {
		return nil, err
	}
	quantityPieces, err := validation.RequireInteger(input.QuantityPieces, "Quantity Pieces")
	if err != nil {
		return nil, err
	}
	wasteKg, err := validation.RequireNumber(input.WasteKg, "Waste (kg)")
	if err != nil {
		return nil, err
	}
	if input.DyeingJobID == 0 {
		return nil, apperr.Validationf("Dyeing Job is required")
	}

	job := models.CuttingJob{
		DyeingJobID:    input.DyeingJobID,
		StyleCode:      styleCode,
		Size:           size,
		QuantityPieces: quantityPieces,
		WasteKg:        wasteKg,
		CompletedAt:    timestampOrNow(input.CompletedAt),
	}

	log.Printf("creating cutting job: style %s, qty %d", job.StyleCode, job.QuantityPieces)
	if err := r.db.Create(&job).Error; err != nil {
		return nil, apperr.FromDB(err, "creating cutting job")
	}
	return &job, nil
}
