package models

import (
	"time"
)

// BloodDonation is an immutable ledger entry. Creating one overwrites the
// parent Donor's last_donation with its donation_date.
type BloodDonation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DonorID      uint      `gorm:"not null;index" json:"donor_id"`
	Donor        Donor     `gorm:"foreignKey:DonorID" json:"-"`
	BloodGroup   string    `gorm:"size:3;not null" json:"blood_group"`
	DonationDate time.Time `gorm:"not null" json:"donation_date"`
	Quantity     float64   `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
}
