package models

import "time"

type User struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Username   string     `json:"username" gorm:"uniqueIndex;not null"`
	Email      *string    `json:"email" gorm:"uniqueIndex"`
	Password   string     `json:"-" gorm:"not null"`
	Role       string     `json:"role" gorm:"default:user"`
	Department string     `json:"department"`
	Status     string     `json:"status" gorm:"default:active"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastLogin  *time.Time `json:"lastLogin"`
}
