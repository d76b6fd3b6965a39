package dto

import "time"

// UserResponse is the external user representation. The password hash is
// never serialized; donation and request counts are computed per read.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	BloodType string    `json:"blood_type"`
	Location  *string   `json:"location"`
	Gender    *string   `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Donations int64     `json:"donations"`
	Requests  int64     `json:"requests"`
}
