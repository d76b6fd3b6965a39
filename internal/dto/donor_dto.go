package dto

import "time"

type CreateDonorRequest struct {
	MedicalHistory *string    `json:"medical_history"`
	IsAvailable    *bool      `json:"is_available"`
	LastDonation   *time.Time `json:"last_donation"`
}

// UpdateDonorRequest carries a partial update: nil fields keep their stored
// values.
type UpdateDonorRequest struct {
	MedicalHistory *string    `json:"medical_history"`
	IsAvailable    *bool      `json:"is_available"`
	LastDonation   *time.Time `json:"last_donation"`
}

// DonorFilter holds optional list filters combined with AND semantics.
// BloodGroup matches exactly; Location and Name are case-insensitive
// substring matches against the owning user.
type DonorFilter struct {
	BloodGroup string
	Location   string
	Name       string
}

type DonorResponse struct {
	ID             uint         `json:"id"`
	User           UserResponse `json:"user"`
	MedicalHistory *string      `json:"medical_history"`
	IsAvailable    bool         `json:"is_available"`
	LastDonation   *time.Time   `json:"last_donation"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
