package services

import (
	"errors"
	"fmt"

	"github.com/bloodit-app/bloodit-backend/internal/dto"
	"github.com/bloodit-app/bloodit-backend/internal/models"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create registers a user without pre-checking the email: a duplicate
// surfaces as the store's uniqueness violation at commit.
func (s *UserService) Create(req *dto.RegisterRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.BloodType == "" {
		return ErrInvalidInput
	}

	user, err := newUser(req)
	if err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	if err := s.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

func (s *UserService) List() ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp, err := buildUserResponse(s.db, &users[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *UserService) Get(id uint) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp, err := buildUserResponse(s.db, &user)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// buildUserResponse serializes a user with its derived counts. Counts are
// explicit aggregate queries, not lazy-loaded collections.
func buildUserResponse(db *gorm.DB, u *models.User) (dto.UserResponse, error) {
	var donations int64
	err := db.Model(&models.BloodDonation{}).
		Joins("JOIN donors ON donors.id = blood_donations.donor_id").
		Where("donors.user_id = ?", u.ID).
		Count(&donations).Error
	if err != nil {
		return dto.UserResponse{}, err
	}

	var requests int64
	err = db.Model(&models.BloodRequest{}).
		Where("requester_id = ?", u.ID).
		Count(&requests).Error
	if err != nil {
		return dto.UserResponse{}, err
	}

	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		BloodType: u.BloodType,
		Location:  u.Location,
		Gender:    u.Gender,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Donations: donations,
		Requests:  requests,
	}, nil
}
