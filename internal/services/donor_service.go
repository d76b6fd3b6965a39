package services

import (
	"errors"
	"strings"

	"github.com/bloodit-app/bloodit-backend/internal/dto"
	"github.com/bloodit-app/bloodit-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDonorNotFound = errors.New("donor not found")
	ErrNotOwner      = errors.New("unauthorized")
)

type DonorService struct {
	db *gorm.DB
}

func NewDonorService(db *gorm.DB) *DonorService {
	return &DonorService{db: db}
}

// Create opens a donor profile for the authenticated user. The owning user
// comes from the token identity, never from the request body. A second
// profile for the same user is rejected by the store's unique index on
// user_id, nothing pre-checks it here.
func (s *DonorService) Create(userID uint, req *dto.CreateDonorRequest) (*dto.DonorResponse, error) {
	donor := models.Donor{
		UserID:         userID,
		MedicalHistory: req.MedicalHistory,
		IsAvailable:    true,
		LastDonation:   req.LastDonation,
	}
	if req.IsAvailable != nil {
		donor.IsAvailable = *req.IsAvailable
	}

	if err := s.db.Create(&donor).Error; err != nil {
		return nil, err
	}
	return s.serialize(&donor)
}

// List returns donors matching the filter. Filters join through the owning
// user and combine with AND semantics.
func (s *DonorService) List(filter dto.DonorFilter) ([]dto.DonorResponse, error) {
	query := s.db.Model(&models.Donor{}).
		Select("donors.*").
		Joins("JOIN users ON users.id = donors.user_id")

	if filter.BloodGroup != "" {
		query = query.Where("users.blood_type = ?", filter.BloodGroup)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(users.location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Name != "" {
		query = query.Where("LOWER(users.name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}

	var donors []models.Donor
	if err := query.Order("donors.id").Find(&donors).Error; err != nil {
		return nil, err
	}

	out := make([]dto.DonorResponse, 0, len(donors))
	for i := range donors {
		resp, err := s.serialize(&donors[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *DonorService) Get(id uint) (*dto.DonorResponse, error) {
	donor, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return s.serialize(donor)
}

// Update applies a partial update after the ownership check. Only
// medical_history, is_available and last_donation are mutable.
func (s *DonorService) Update(id uint, userID uint, req *dto.UpdateDonorRequest) (*dto.DonorResponse, error) {
	donor, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if donor.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.MedicalHistory != nil {
		donor.MedicalHistory = req.MedicalHistory
	}
	if req.IsAvailable != nil {
		donor.IsAvailable = *req.IsAvailable
	}
	if req.LastDonation != nil {
		donor.LastDonation = req.LastDonation
	}

	if err := s.db.Save(donor).Error; err != nil {
		return nil, err
	}
	return s.serialize(donor)
}

func (s *DonorService) find(id uint) (*models.Donor, error) {
	var donor models.Donor
	if err := s.db.First(&donor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}
	return &donor, nil
}

func (s *DonorService) serialize(donor *models.Donor) (*dto.DonorResponse, error) {
	var user models.User
	if err := s.db.First(&user, donor.UserID).Error; err != nil {
		return nil, err
	}
	userResp, err := buildUserResponse(s.db, &user)
	if err != nil {
		return nil, err
	}

	return &dto.DonorResponse{
		ID:             donor.ID,
		User:           userResp,
		MedicalHistory: donor.MedicalHistory,
		IsAvailable:    donor.IsAvailable,
		LastDonation:   donor.LastDonation,
		CreatedAt:      donor.CreatedAt,
		UpdatedAt:      donor.UpdatedAt,
	}, nil
}
