package services_test

import (
	"errors"
	"testing"

	"github.com/bloodit-app/bloodit-backend/internal/dto"
	"github.com/bloodit-app/bloodit-backend/internal/services"
)

func TestUserService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)

	err := svc.Create(&dto.RegisterRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123", BloodType: "O+",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "john@example.com" || got.BloodType != "O+" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

// No email pre-check here: the duplicate is a store-level uniqueness
// violation surfaced as a plain write failure.
func TestUserService_Create_DuplicateIsWriteFailure(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)

	req := &dto.RegisterRequest{
		Name: "John", Email: "dup@example.com", Password: "password123", BloodType: "A+",
	}
	if err := svc.Create(req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := svc.Create(req)
	if err == nil {
		t.Fatal("expected write failure on duplicate email")
	}
	if errors.Is(err, services.ErrEmailTaken) {
		t.Fatal("duplicate should not be pre-checked on this path")
	}
}

func TestUserService_Create_MissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)

	err := svc.Create(&dto.RegisterRequest{Name: "No Email", Password: "password123"})
	if !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)

	_, err := svc.Get(42)
	if !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ResponseCounts(t *testing.T) {
	db := newTestDB(t)
	userSvc := services.NewUserService(db)
	donorSvc := services.NewDonorService(db)
	donationSvc := services.NewDonationService(db)
	requestSvc := services.NewRequestService(db)

	user := createUser(t, db, "Donor One", "donor1@test.com", "O+")

	if _, err := donorSvc.Create(user.ID, &dto.CreateDonorRequest{}); err != nil {
		t.Fatalf("create donor: %v", err)
	}
	for _, date := range []string{"2024-01-01", "2024-02-01"} {
		_, err := donationSvc.Create(user.ID, &dto.CreateDonationRequest{
			BloodGroup: "O+", DonationDate: date, Quantity: 1,
		})
		if err != nil {
			t.Fatalf("create donation: %v", err)
		}
	}
	_, err := requestSvc.Create(user.ID, &dto.CreateBloodRequestRequest{
		BloodType: "B-", Quantity: 2, Location: "Austin", Name: "Donor One",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	got, err := userSvc.Get(user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Donations != 2 {
		t.Fatalf("expected 2 donations, got %d", got.Donations)
	}
	if got.Requests != 1 {
		t.Fatalf("expected 1 request, got %d", got.Requests)
	}
}

func TestUserService_List(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewUserService(db)

	createUser(t, db, "User One", "user1@test.com", "A+")
	createUser(t, db, "User Two", "user2@test.com", "B-")

	users, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Email != "user1@test.com" || users[1].Email != "user2@test.com" {
		t.Fatalf("unexpected order: %+v", users)
	}
}
