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

type ContainerRepository struct {
	db *gorm.DB
}

func NewContainerRepository(db *gorm.DB) *ContainerRepository {
	return &ContainerRepository{db}
}

type InsertContainer struct {
	PackingJobID    uint       `json:"packingJobId"`
	NumberofBales   float64    `json:"numberofBales"`
	QuantityPerBale float64    `json:"quantityPerBale"`
	ContainerType   string     `json:"containerType"`
	ContainerNumber string     `json:"containerNumber"`
	CompletedAt     *time.Time `json:"completedAt"`
}

func (r *ContainerRepository) GetAll() ([]models.Container, error) {
	var containers []models.Container
	if err := r.db.Order("completed_at ASC").Find(&containers).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching containers")
	}
	return containers, nil
}

func (r *ContainerRepository) GetByID(id int) (*models.Container, error) {
	if id <= 0 {
		return nil, apperr.Validationf("Container ID must be a positive number")
	}
	var container models.Container
	if err := r.db.First(&container, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching container")
	}
	return &container, nil
}

func (r *ContainerRepository) Create(input InsertContainer) (*models.Container, error) {
	numberofBales, err := validation.RequireInteger(input.NumberofBales, "Number of Bales")
	if err != nil {
		return nil, err
	}
	quantityPerBale, err := validation.RequireNumber(input.QuantityPerBale, "Quantity Per Bale")
	if err != nil {
		return nil, err
	}
	containerType, err := validation.RequireString(input.ContainerType, "Container Type", 1)
	if err != nil {
		return nil, err
	}
	if input.PackingJobID == 0 {
		return nil, apperr.Validationf("Packing Job is required")
	}

	container := models.Container{
		PackingJobID:    input.PackingJobID,
		NumberofBales:   numberofBales,
		QuantityPerBale: quantityPerBale,
		ContainerType:   containerType,
		ContainerNumber: input.ContainerNumber,
		CompletedAt:     timestampOrNow(input.CompletedAt),
	}

	log.Printf("creating container: %d bales", container.NumberofBales)
	if err := r.db.Create(&container).Error; err != nil {
		return nil, apperr.FromDB(err, "creating container")
	}
	return &container, nil
}
