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

type KnittingRepository struct {
	db *gorm.DB
}

func NewKnittingRepository(db *gorm.DB) *KnittingRepository {
	return &KnittingRepository{db}
}

type InsertKnittingJob struct {
	YarnBatchID    uint       `json:"yarnBatchId"`
	FabricType     string     `json:"fabricType"`
	Size           string     `json:"size"`
	WeightUsed     float64    `json:"weightUsed"`
	FabricProduced float64    `json:"fabricProduced"`
	Status         string     `json:"status"`
	CompletedAt    *time.Time `json:"completedAt"`
}

func (r *KnittingRepository) GetAll() ([]models.KnittingJob, error) {
	var jobs []models.KnittingJob
	if err := r.db.Order("completed_at ASC").Find(&jobs).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching knitting jobs")
	}
	return jobs, nil
}

func (r *KnittingRepository) GetByID(id int) (*models.KnittingJob, error) {
	if id <= 0 {
		return nil, apperr.Validationf("Knitting job ID must be a positive number")
	}
	var job models.KnittingJob
	if err := r.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching knitting job")
	}
	return &job, nil
}

func (r *KnittingRepository) Create(input InsertKnittingJob) (*models.KnittingJob, error) {
	fabricType, err := validation.RequireString(input.FabricType, "Fabric Type", 1)
	if err != nil {
		return nil, err
	}
	weightUsed, err := validation.RequireNumber(input.WeightUsed, "Weight Used (kg)")
	if err != nil {
		return nil, err
	}
	fabricProduced, err := validation.RequireNumber(input.FabricProduced, "Fabric Produced (kg)")
	if err != nil {
		return nil, err
	}
	if input.YarnBatchID == 0 {
		return nil, apperr.Validationf("Yarn Batch is required")
	}

	job := models.KnittingJob{
		YarnBatchID:    input.YarnBatchID,
		FabricType:     fabricType,
		Size:           defaultString(input.Size, "Mixed"),
		WeightUsed:     weightUsed,
		FabricProduced: fabricProduced,
		Status:         defaultString(input.Status, "completed"),
		CompletedAt:    timestampOrNow(input.CompletedAt),
	}

	log.Printf("creating knitting job for %s", job.FabricType)
	if err := r.db.Create(&job).Error; err != nil {
		return nil, apperr.FromDB(err, "creating knitting job")
	}
	return &job, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
