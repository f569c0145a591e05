package models

import "time"

type DyeingJob struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	KnittingJobID uint        `json:"knittingJobId" gorm:"not null;index"`
	KnittingJob   KnittingJob `json:"-" gorm:"foreignKey:KnittingJobID;constraint:OnDelete:CASCADE"`
	WeightKgDyed  float64     `json:"weightKgDyed" gorm:"not null"`
	RollsPerBatch int         `json:"rollsPerBatch" gorm:"not null"`
	DyeColor      string      `json:"dyeColor"`
	CompletedAt   time.Time   `json:"completedAt"`
}
