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

type StitchingRepository struct {
	db *gorm.DB
}

func NewStitchingRepository(db *gorm.DB) *StitchingRepository {
	return &StitchingRepository{db}
}

type InsertStitchingJob struct {
	CuttingJobID     uint       `json:"cuttingJobId"`
	Size             string     `json:"size"`
	QuantityStitched float64    `json:"quantityStitched"`
	RejectedCount    float64    `json:"rejectedCount"`
	CompletedAt      *time.Time `json:"completedAt"`
}

func (r *StitchingRepository) GetAll() ([]models.StitchingJob, error) {
	var jobs []models.StitchingJob
	if err := r.db.Order("completed_at ASC").Find(&jobs).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching stitching jobs")
	}
	return jobs, nil
}

func (r *StitchingRepository) GetByID(id int) (*models.StitchingJob, error) {
	if id <= 0 {
		return nil, apperr.Validationf("Stitching job ID must be a positive number")
	}
	var job models.StitchingJob
	if err := r.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching stitching job")
	}
	return &job, nil
}

func (r *StitchingRepository) Create(input InsertStitchingJob) (*models.StitchingJob, error) {
	size, err := validation.RequireString(input.Size, "Size", 1)
	if err != nil {
		return nil, err
	}
	quantityStitched, err := validation.RequireInteger(input.QuantityStitched, "Quantity Stitched")
	if err != nil {
		return nil, err
	}
	rejectedCount, err := validation.RequireInteger(input.RejectedCount, "Rejected Count")
	if err != nil {
		return nil, err
	}
	if input.CuttingJobID == 0 {
		return nil, apperr.Validationf("Cutting Job is required")
	}

	job := models.StitchingJob{
		CuttingJobID:     input.CuttingJobID,
		Size:             size,
		QuantityStitched: quantityStitched,
		RejectedCount:    rejectedCount,
		CompletedAt:      timestampOrNow(input.CompletedAt),
	}

	log.Printf("creating stitching job: qty %d", job.QuantityStitched)
	if err := r.db.Create(&job).Error; err != nil {
		return nil, apperr.FromDB(err, "creating stitching job")
	}
	return &job, nil
}
