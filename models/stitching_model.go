package models

import "time"

type StitchingJob struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	CuttingJobID     uint       `json:"cuttingJobId" gorm:"not null;index"`
	CuttingJob       CuttingJob `json:"-" gorm:"foreignKey:CuttingJobID;constraint:OnDelete:CASCADE"`
	Size             string     `json:"size" gorm:"not null"`
	QuantityStitched int        `json:"quantityStitched" gorm:"not null"`
	RejectedCount    int        `json:"rejectedCount" gorm:"default:0"`
	CompletedAt      time.Time  `json:"completedAt"`
}
