package services

import (
	"errors"
	"time"

	"github.com/bloodit-app/bloodit-backend/internal/dto"
	"github.com/bloodit-app/bloodit-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotDonor         = errors.New("user is not a registered donor")
	ErrDonationNotFound = errors.New("blood donation not found")
	ErrInvalidDate      = errors.New("invalid donation date")
)

type DonationService struct {
	db *gorm.DB
}

func NewDonationService(db *gorm.DB) *DonationService {
	return &DonationService{db: db}
}

// Create records a completed donation for the caller's donor profile and
// overwrites the profile's last_donation with the donation date. The
// overwrite is unconditional: a back-dated entry still wins.
func (s *DonationService) Create(userID uint, req *dto.CreateDonationRequest) (*models.BloodDonation, error) {
	if req.BloodGroup == "" || req.DonationDate == "" {
		return nil, ErrInvalidInput
	}

	var donor models.Donor
	if err := s.db.Where("user_id = ?", userID).First(&donor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotDonor
		}
		return nil, err
	}

	date, err := parseDonationDate(req.DonationDate)
	if err != nil {
		return nil, err
	}

	donation := models.BloodDonation{
		DonorID:      donor.ID,
		BloodGroup:   req.BloodGroup,
		DonationDate: date,
		Quantity:     req.Quantity,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}
		return tx.Model(&donor).Update("last_donation", date).Error
	})
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

func (s *DonationService) List() ([]models.BloodDonation, error) {
	var donations []models.BloodDonation
	if err := s.db.Order("id").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (s *DonationService) Get(id uint) (*models.BloodDonation, error) {
	var donation models.BloodDonation
	if err := s.db.First(&donation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return &donation, nil
}

// parseDonationDate accepts a plain ISO date and, as a convenience, a full
// RFC 3339 timestamp.
func parseDonationDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
