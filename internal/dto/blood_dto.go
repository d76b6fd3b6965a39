package dto

type CreateDonationRequest struct {
	BloodGroup   string  `json:"blood_group"`
	DonationDate string  `json:"donation_date"`
	Quantity     float64 `json:"quantity"`
}

type CreateBloodRequestRequest struct {
	BloodType string  `json:"blood_type"`
	Quantity  float64 `json:"quantity"`
	Location  string  `json:"location"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone"`
	DonorID   *uint   `json:"donor_id"`
}

// UpdateBloodRequestRequest carries a partial update over the two mutable
// fields; nil keeps the stored value.
type UpdateBloodRequestRequest struct {
	DonorID *uint   `json:"donor_id"`
	Status  *string `json:"status"`
}

// BloodRequestFilter holds optional exact-match list filters combined with
// AND semantics.
type BloodRequestFilter struct {
	DonorID     string
	RequesterID string
	BloodType   string
}
