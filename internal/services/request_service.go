package services

import (
	"errors"

	"github.com/bloodit-app/bloodit-backend/internal/dto"
	"github.com/bloodit-app/bloodit-backend/internal/models"
	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("blood request not found")

type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

// Create opens a request on behalf of the authenticated requester. Status
// always starts at Pending regardless of input; donor_id is stored as
// supplied without checking that the referenced user exists or donates.
func (s *RequestService) Create(requesterID uint, req *dto.CreateBloodRequestRequest) (*models.BloodRequest, error) {
	request := models.BloodRequest{
		RequesterID: requesterID,
		BloodType:   req.BloodType,
		Quantity:    req.Quantity,
		Location:    req.Location,
		Name:        req.Name,
		Phone:       req.Phone,
		DonorID:     req.DonorID,
		Status:      models.RequestStatusPending,
	}

	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *RequestService) List(filter dto.BloodRequestFilter) ([]models.BloodRequest, error) {
	query := s.db.Model(&models.BloodRequest{})

	if filter.DonorID != "" {
		query = query.Where("donor_id = ?", filter.DonorID)
	}
	if filter.RequesterID != "" {
		query = query.Where("requester_id = ?", filter.RequesterID)
	}
	if filter.BloodType != "" {
		query = query.Where("blood_type = ?", filter.BloodType)
	}

	var requests []models.BloodRequest
	if err := query.Order("id").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *RequestService) Get(id uint) (*models.BloodRequest, error) {
	var request models.BloodRequest
	if err := s.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// Update mutates donor_id and status after the ownership check; nothing is
// written when the caller is not the requester. Status strings are stored
// as-is, no transition graph is enforced.
func (s *RequestService) Update(id uint, userID uint, req *dto.UpdateBloodRequestRequest) (*models.BloodRequest, error) {
	request, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if request.RequesterID != userID {
		return nil, ErrNotOwner
	}

	if req.DonorID != nil {
		request.DonorID = req.DonorID
	}
	if req.Status != nil {
		request.Status = *req.Status
	}

	if err := s.db.Save(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}
