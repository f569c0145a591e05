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

type DyeingRepository struct {
	db *gorm.DB
}

func NewDyeingRepository(db *gorm.DB) *DyeingRepository {
	return &DyeingRepository{db}
}

type InsertDyeingJob struct {
	KnittingJobID uint       `json:"knittingJobId"`
	WeightKgDyed  float64    `json:"weightKgDyed"`
	RollsPerBatch float64    `json:"rollsPerBatch"`
	DyeColor      string     `json:"dyeColor"`
	CompletedAt   *time.Time `json:"completedAt"`
}

func (r *DyeingRepository) GetAll() ([]models.DyeingJob, error) {
	var jobs []models.DyeingJob
	if err := r.db.Order("completed_at ASC").Find(&jobs).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching dyeing jobs")
	}
	return jobs, nil
}

func (r *DyeingRepository) GetByID(id int) (*models.DyeingJob, error) {
	if id <= 0 {
		return nil, apperr.Validationf("Dyeing job ID must be a positive number")
	}
	var job models.DyeingJob
	if err := r.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching dyeing job")
	}
	return &job, nil
}

func (r *DyeingRepository) Create(input InsertDyeingJob) (*models.DyeingJob, error) {
	weightKgDyed, err := validation.RequireNumber(input.WeightKgDyed, "Weight Dyed (kg)")
	if err != nil {
		return nil, err
	}
	rollsPerBatch, err := validation.RequireInteger(input.RollsPerBatch, "Rolls Per Batch")
	if err != nil {
		return nil, err
	}
	if input.KnittingJobID == 0 {
		return nil, apperr.Validationf("Knitting Job is required")
	}

	job := models.DyeingJob{
		KnittingJobID: input.KnittingJobID,
		WeightKgDyed:  weightKgDyed,
		RollsPerBatch: rollsPerBatch,
		DyeColor:      input.DyeColor,
		CompletedAt:   timestampOrNow(input.CompletedAt),
	}

	log.Printf("creating dyeing job %s", job.DyeColor)
	if err := r.db.Create(&job).Error; err != nil {
		return nil, apperr.FromDB(err, "creating dyeing job")
	}
	return &job, nil
}
