package models

import "time"

type PressingJob struct {
	ID              uint         `json:"id" gorm:"primaryKey"`
	StitchingJobID  uint         `json:"stitchingJobId" gorm:"not null;index"`
	StitchingJob    StitchingJob `json:"-" gorm:"foreignKey:StitchingJobID;constraint:OnDelete:CASCADE"`
	Size            string       `json:"size" gorm:"not null"`
	QuantityPressed int          `json:"quantityPressed" gorm:"not null"`
	CompletedAt     time.Time    `json:"completedAt"`
}
