package models

import "time"

type CuttingJob struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	DyeingJobID    uint      `json:"dyeingJobId" gorm:"not null;index"`
	DyeingJob      DyeingJob `json:"-" gorm:"foreignKey:DyeingJobID;constraint:OnDelete:CASCADE"`
	StyleCode      string    `json:"styleCode" gorm:"not null"`
	Size           string    `json:"size" gorm:"not null"`
	QuantityPieces int       `json:"quantityPieces" gorm:"not null"`
	WasteKg        float64   `json:"wasteKg" gorm:"default:0"`
	CompletedAt    time.Time `json:"completedAt"`
}
