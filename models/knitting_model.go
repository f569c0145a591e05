package models

import "time"

type KnittingJob struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	YarnBatchID    uint      `json:"yarnBatchId" gorm:"not null;index"`
	YarnBatch      YarnBatch `json:"-" gorm:"foreignKey:YarnBatchID;constraint:OnDelete:CASCADE"`
	FabricType     string    `json:"fabricType" gorm:"not null"`
	Size           string    `json:"size" gorm:"not null;default:Mixed"`
	WeightUsed     float64   `json:"weightUsed" gorm:"not null"`
	FabricProduced float64   `json:"fabricProduced" gorm:"not null"`
	Status         string    `json:"status" gorm:"default:completed"`
	CompletedAt    time.Time `json:"completedAt"`
}
