package models

import "time"

// Container is the terminal entity in the chain: bales of packed goods
// loaded for shipment. The NumberofBales spelling matches the wire format
// the client already consumes.
type Container struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	PackingJobID    uint       `json:"packingJobId" gorm:"not null;index"`
	PackingJob      PackingJob `json:"-" gorm:"foreignKey:PackingJobID;constraint:OnDelete:CASCADE"`
	NumberofBales   int        `json:"numberofBales" gorm:"not null"`
	QuantityPerBale float64    `json:"quantityPerBale" gorm:"not null"`
	ContainerType   string     `json:"containerType" gorm:"not null"`
	ContainerNumber string     `json:"containerNumber"`
	CompletedAt     time.Time  `json:"completedAt"`
}
