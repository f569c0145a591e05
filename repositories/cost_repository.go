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

// CostRepository covers the two bookkeeping tables outside the production
// chain: raw material purchases and factory operating costs.
type CostRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) *CostRepository {
	return &CostRepository{db}
}

type InsertRawMaterialPurchase struct {
	Vendor        string     `json:"vendor"`
	MaterialType  string     `json:"materialType"`
	Quantity      float64    `json:"quantity"`
	Unit          string     `json:"unit"`
	CostPerUnit   float64    `json:"costPerUnit"`
	TotalCost     float64    `json:"totalCost"`
	PaymentStatus string     `json:"paymentStatus"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
}

type InsertFactoryCost struct {
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	DueDate     string     `json:"dueDate"`
	RecordedAt  *time.Time `json:"recordedAt"`
}

func (r *CostRepository) GetAllPurchases() ([]models.RawMaterialPurchase, error) {
	var purchases []models.RawMaterialPurchase
	if err := r.db.Order("purchase_date ASC").Find(&purchases).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching raw material purchases")
	}
	return purchases, nil
}

func (r *CostRepository) GetPurchaseByID(id int) (*models.RawMaterialPurchase, error) {
	if id <= 0 {
		return nil, apperr.Validationf("Purchase ID must be a positive number")
	}
	var purchase models.RawMaterialPurchase
	if err := r.db.First(&purchase, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching raw material purchase")
	}
	return &purchase, nil
}

func (r *CostRepository) CreatePurchase(input InsertRawMaterialPurchase) (*models.RawMaterialPurchase, error) {
	vendor, err := validation.RequireString(input.Vendor, "Vendor", 1)
	if err != nil {
		return nil, err
	}
	materialType, err := validation.RequireString(input.MaterialType, "Material Type", 1)
	if err != nil {
		return nil, err
	}
	quantity, err := validation.RequireNumber(input.Quantity, "Quantity")
	if err != nil {
		return nil, err
	}
	unit, err := validation.RequireString(input.Unit, "Unit", 1)
	if err != nil {
		return nil, err
	}
	costPerUnit, err := validation.RequireNumber(input.CostPerUnit, "Cost Per Unit")
	if err != nil {
		return nil, err
	}
	totalCost, err := validation.RequireNumber(input.TotalCost, "Total Cost")
	if err != nil {
		return nil, err
	}

	purchase := models.RawMaterialPurchase{
		Vendor:        vendor,
		MaterialType:  materialType,
		Quantity:      quantity,
		Unit:          unit,
		CostPerUnit:   costPerUnit,
		TotalCost:     totalCost,
		PaymentStatus: defaultString(input.PaymentStatus, "pending"),
		PurchaseDate:  timestampOrNow(input.PurchaseDate),
	}

	log.Printf("creating raw material purchase: %s from %s", purchase.MaterialType, purchase.Vendor)
	if err := r.db.Create(&purchase).Error; err != nil {
		return nil, apperr.FromDB(err, "creating raw material purchase")
	}
	return &purchase, nil
}

func (r *CostRepository) DeletePurchase(id int) error {
	if id <= 0 {
		return apperr.Validationf("Purchase ID must be a positive number")
	}
	if err := r.db.Delete(&models.RawMaterialPurchase{}, id).Error; err != nil {
		return apperr.FromDB(err, "deleting raw material purchase")
	}
	return nil
}

func (r *CostRepository) GetAllFactoryCosts() ([]models.FactoryCost, error) {
	var costs []models.FactoryCost
	if err := r.db.Order("recorded_at ASC").Find(&costs).Error; err != nil {
		return nil, apperr.FromDB(err, "fetching factory costs")
	}
	return costs, nil
}

func (r *CostRepository) GetFactoryCostByID(id int) (*models.FactoryCost, error) {
	if id <= 0 {
		return nil, apperr.Validationf("Factory cost ID must be a positive number")
	}
	var cost models.FactoryCost
	if err := r.db.First(&cost, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.FromDB(err, "fetching factory cost")
	}
	return &cost, nil
}

func (r *CostRepository) CreateFactoryCost(input InsertFactoryCost) (*models.FactoryCost, error) {
	category, err := validation.RequireString(input.Category, "Category", 1)
	if err != nil {
		return nil, err
	}
	description, err := validation.RequireString(input.Description, "Description", 1)
	if err != nil {
		return nil, err
	}
	amount, err := validation.RequireNumber(input.Amount, "Amount")
	if err != nil {
		return nil, err
	}

	cost := models.FactoryCost{
		Category:    category,
		Description: description,
		Amount:      amount,
		Status:      defaultString(input.Status, "pending"),
		DueDate:     input.DueDate,
		RecordedAt:  timestampOrNow(input.RecordedAt),
	}

	log.Printf("creating factory cost: %s - %s", cost.Category, cost.Description)
	if err := r.db.Create(&cost).Error; err != nil {
		return nil, apperr.FromDB(err, "creating factory cost")
	}
	return &cost, nil
}

func (r *CostRepository) DeleteFactoryCost(id int) error {
	if id <= 0 {
		return apperr.Validationf("Factory cost ID must be a positive number")
	}
	if err := r.db.Delete(&models.FactoryCost{}, id).Error; err != nil {
		return apperr.FromDB(err, "deleting factory cost")
	}
	return nil
}
