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

type PressingRepository struct {
	db *gorm.DB
}

func NewPressingRepository(db *gorm.DB) *PressingRepository {
	return &PressingRepository{db}
}

type InsertPressingJob struct {
	StitchingJobID  uint       `json:"stitchingJobId"`
	Size            string     `json:"size"`
	QuantityPressed float64    `json:"quantityPressed"`
	CompletedAt     *time.Time `json:"completedAt"`
}

func (r *PressingRepository) GetAll() ([]models.PressingJob, error) {
	var jobs []models.PressingJob
	if err := r.db.Order("completed_at ASC").Find(&jobs).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching pressing jobs")
	}
	return jobs, nil
}

func (r *PressingRepository) GetByID(id int) (*models.PressingJob, error) {
	if id <= 0 {
		return nil, apperr.Validationf("Pressing job ID must be a positive number")
	}
	var job models.PressingJob
	if err := r.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching pressing job")
	}
	return &job, nil
}

func (r *PressingRepository) Create(input InsertPressingJob) (*models.PressingJob, error) {
	size, err := validation.RequireString(input.Size, "Size", 1)
	if err != nil {
		return nil, err
	}
	quantityPressed, err := validation.RequireInteger(input.QuantityPressed, "Quantity Pressed")
	if err != nil {
		return nil, err
	}
	if input.StitchingJobID == 0 {
		return nil, apperr.Validationf("Stitching Job is required")
	}

	job := models.PressingJob{
		StitchingJobID:  input.StitchingJobID,
		Size:            size,
		QuantityPressed: quantityPressed,
		CompletedAt:     timestampOrNow(input.CompletedAt),
	}

	log.Printf("creating pressing job: qty %d", job.QuantityPressed)
	if err := r.db.Create(&job).Error; err != nil {
		return nil, apperr.FromDB(err, "creating pressing job")
	}
	return &job, nil
}
