package models

import "time"

type PackingJob struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	PressingJobID  uint        `json:"pressingJobId" gorm:"not null;index"`
	PressingJob    PressingJob `json:"-" gorm:"foreignKey:PressingJobID;constraint:OnDelete:CASCADE"`
	Size           string      `json:"size" gorm:"not null"`
	BoxCount       int         `json:"boxCount" gorm:"not null"`
	QuantityPacked int         `json:"quantityPacked" gorm:"not null"`
	CompletedAt    time.Time   `json:"completedAt"`
}
