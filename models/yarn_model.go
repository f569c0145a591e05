package models

import "time"

// YarnBatch is the root of the production chain. Deleting a batch removes
// every downstream job transitively (batch recall semantics).
type YarnBatch struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BatchCode  string    `json:"batchCode" gorm:"uniqueIndex;not null"`
	Color      string    `json:"color" gorm:"not null"`
	WeightKg   float64   `json:"weightKg" gorm:"not null"`
	Supplier   string    `json:"supplier"`
	ReceivedAt time.Time `json:"receivedAt"`
}
