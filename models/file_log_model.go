package models

import "time"

// FileLog tracks intake files the processor has already imported so a
// restart never double-inserts a batch.
type FileLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Filename     string    `json:"filename" gorm:"uniqueIndex;not null"`
	DateModified time.Time `json:"dateModified"`
}
