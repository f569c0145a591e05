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

type YarnRepository struct {
	db *gorm.DB
}

func NewYarnRepository(db *gorm.DB) *YarnRepository {
	return &YarnRepository{db}
}

type InsertYarnBatch struct {
	BatchCode  string     `json:"batchCode"`
	Color      string     `json:"color"`
	WeightKg   float64    `json:"weightKg"`
	Supplier   string     `json:"supplier"`
	ReceivedAt *time.Time `json:"receivedAt"`
}

func (r *YarnRepository) GetAll() ([]models.YarnBatch, error) {
	var batches []models.YarnBatch
	if err := r.db.Order("received_at ASC").Find(&batches).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching yarn batches")
	}
	return batches, nil
}

// GetByID returns nil without error when no batch matches; only a
// malformed id is an error.
func (r *YarnRepository) GetByID(id int) (*models.YarnBatch, error) {
	if id <= 0 {
		return nil, apperr.Validationf("Yarn batch ID must be a positive number")
	}
	var batch models.YarnBatch
	if err := r.db.First(&batch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching yarn batch")
	}
	return &batch, nil
}

func (r *YarnRepository) Create(input InsertYarnBatch) (*models.YarnBatch, error) {
	batchCode, err := validation.RequireString(input.BatchCode, "Batch Code", 1)
	if err != nil {
		return nil, err
	}
	color, err := validation.RequireString(input.Color, "Color", 1)
	if err != nil {
		return nil, err
	}
	weightKg, err := validation.RequireNumber(input.WeightKg, "Weight (kg)")
	if err != nil {
		return nil, err
	}

	batch := models.YarnBatch{
		BatchCode:  batchCode,
		Color:      color,
		WeightKg:   weightKg,
		Supplier:   input.Supplier,
		ReceivedAt: timestampOrNow(input.ReceivedAt),
	}

	log.Printf("creating yarn batch %s", batch.BatchCode)
	if err := r.db.Create(&batch).Error; err != nil {
		return nil, apperr.FromDB(err, "creating yarn batch")
	}
	return &batch, nil
}

// Delete is idempotent. The FK constraints cascade the delete down the
// whole production chain; a batch recall removes every descendant job.
func (r *YarnRepository) Delete(id int) error {
	if id <= 0 {
		return apperr.Validationf("Yarn batch ID must be a positive number")
	}
	log.Printf("deleting yarn batch %d", id)
	if err := r.db.Delete(&models.YarnBatch{}, id).Error; err != nil {
		return apperr.FromDB(err, "deleting yarn batch")
	}
	return nil
}

// timestampOrNow keeps supplied completion times and stamps the rest
// server-side.
func timestampOrNow(t *time.Time) time.Time {
	if t != nil && !t.IsZero() {
		return *t
	}
	return time.Now()
}
