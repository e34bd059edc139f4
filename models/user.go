package models

import (
	"time"
)

// StaffRole defines who may work the lead pipeline
type StaffRole string

const (
	RoleCoordinator StaffRole = "coordinator"
	RoleAdmin       StaffRole = "admin"
)

// Staff is a back-office account. Only staff can read leads.
type Staff struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         StaffRole `json:"role" gorm:"not null;default:'coordinator'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
