package models

import "time"

// RawMaterialPurchase records dyes, chemicals and packaging bought from a
// vendor. Not part of the production chain, no upstream reference.
type RawMaterialPurchase struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Vendor        string    `json:"vendor" gorm:"not null"`
	MaterialType  string    `json:"materialType" gorm:"not null"`
	Quantity      float64   `json:"quantity" gorm:"not null"`
	Unit          string    `json:"unit" gorm:"not null"`
	CostPerUnit   float64   `json:"costPerUnit" gorm:"not null"`
	TotalCost     float64   `json:"totalCost" gorm:"not null"`
	PaymentStatus string    `json:"paymentStatus" gorm:"default:pending"`
	PurchaseDate  time.Time `json:"purchaseDate"`
}

// FactoryCost records operating expenses: electricity, salaries, rent.
type FactoryCost struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Category    string    `json:"category" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Status      string    `json:"status" gorm:"default:pending"`
	DueDate     string    `json:"dueDate"`
	RecordedAt  time.Time `json:"recordedAt"`
}
