package models

import (
	"time"
)

// Donor extends exactly one User with donation capability. The unique index
// on user_id is the only guard against a second profile per user.
type Donor struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	User           User       `gorm:"foreignKey:UserID" json:"-"`
	MedicalHistory *string    `gorm:"type:text" json:"medical_history"`
	IsAvailable    bool       `json:"is_available"`
	LastDonation   *time.Time `json:"last_donation"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
