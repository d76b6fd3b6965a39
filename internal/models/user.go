package models

import (
	"time"
)

// User is the root identity record. Donor, BloodDonation and BloodRequest all
// reference it by foreign key.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:80;not null" json:"name"`
	Email        string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:256;not null" json:"-"`
	BloodType    string    `gorm:"size:3;not null" json:"blood_type"`
	Location     *string   `gorm:"size:120" json:"location"`
	Gender       *string   `gorm:"size:10" json:"gender"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
