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

type PackingRepository struct {
	db *gorm.DB
}

func NewPackingRepository(db *gorm.DB) *PackingRepository {
	return &PackingRepository{db}
}

type InsertPackingJob struct {
	PressingJobID  uint       `json:"pressingJobId"`
	Size           string     `json:"size"`
	BoxCount       float64    `json:"boxCount"`
	QuantityPacked float64    `json:"quantityPacked"`
	CompletedAt    *time.Time `json:"completedAt"`
}

func (r *PackingRepository) GetAll() ([]models.PackingJob, error) {
	var jobs []models.PackingJob
	if err := r.db.Order("completed_at ASC").Find(&jobs).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching packing jobs")
	}
	return jobs, nil
}

func (r *PackingRepository) GetByID(id int) (*models.PackingJob, error) {
	if id <= 0 {
		return nil, apperr.Validationf("Packing job ID must be a positive number")
	}
	var job models.PackingJob
	if err := r.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching packing job")
	}
	return &job, nil
}

func (r *PackingRepository) Create(input InsertPackingJob) (*models.PackingJob, error) {
	size, err := validation.RequireString(input.Size, "Size", 1)
	if err != nil {
		return nil, err
	}
	boxCount, err := validation.RequireInteger(input.BoxCount, "Box Count")
	if err != nil {
		return nil, err
	}
	quantityPacked, err := validation.RequireInteger(input.QuantityPacked, "Quantity Packed")
	if err != nil {
		return nil, err
	}
	if input.PressingJobID == 0 {
		return nil, apperr.Validationf("Pressing Job is required")
	}

	job := models.PackingJob{
		PressingJobID:  input.PressingJobID,
		Size:           size,
		BoxCount:       boxCount,
		QuantityPacked: quantityPacked,
		CompletedAt:    timestampOrNow(input.CompletedAt),
	}

	log.Printf("creating packing job: %d boxes, qty %d", job.BoxCount, job.QuantityPacked)
	if err := r.db.Create(&job).Error; err != nil {
		return nil, apperr.FromDB(err, "creating packing job")
	}
	return &job, nil
}
