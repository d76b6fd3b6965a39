package models

import (
	"time"
)

// Conventional BloodRequest statuses. The store accepts arbitrary strings;
// no transition graph is enforced.
const (
	RequestStatusPending   = "Pending"
	RequestStatusFulfilled = "Fulfilled"
	RequestStatusCancelled = "Cancelled"
)

// BloodRequest asks for a quantity of a blood type at a location. donor_id is
// a weak reference to any User acting as fulfiller, not to a Donor row.
type BloodRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequesterID uint      `gorm:"not null;index" json:"requester_id"`
	Requester   User      `gorm:"foreignKey:RequesterID" json:"-"`
	BloodType   string    `gorm:"size:3;not null" json:"blood_type"`
	Quantity    float64   `gorm:"not null" json:"quantity"`
	Location    string    `gorm:"size:120;not null" json:"location"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Phone       *string   `gorm:"size:20" json:"phone"`
	Status      string    `gorm:"size:20;not null;default:'Pending'" json:"status"`
	DonorID     *uint     `gorm:"index" json:"donor_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
