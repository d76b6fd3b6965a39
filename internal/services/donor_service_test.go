package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bloodit-app/bloodit-backend/internal/dto"
	"github.com/bloodit-app/bloodit-backend/internal/services"
)

func TestDonorService_Create_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDonorService(db)

	user := createUser(t, db, "User One", "user1@test.com", "A+")

	donor, err := svc.Create(user.ID, &dto.CreateDonorRequest{
		MedicalHistory: strPtr("Healthy"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !donor.IsAvailable {
		t.Fatal("is_available should default to true")
	}
	if donor.User.ID != user.ID {
		t.Fatalf("owner mismatch: %d", donor.User.ID)
	}
	if donor.LastDonation != nil {
		t.Fatal("last_donation should start empty")
	}
}

func TestDonorService_Create_ExplicitAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDonorService(db)

	user := createUser(t, db, "User One", "user1@test.com", "A+")

	donor, err := svc.Create(user.ID, &dto.CreateDonorRequest{IsAvailable: boolPtr(false)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if donor.IsAvailable {
		t.Fatal("expected is_available=false")
	}
}

// The unique index on user_id is the only duplicate-profile guard.
func TestDonorService_Create_SecondProfileFails(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDonorService(db)

	user := createUser(t, db, "User One", "user1@test.com", "A+")

	if _, err := svc.Create(user.ID, &dto.CreateDonorRequest{}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(user.ID, &dto.CreateDonorRequest{}); err == nil {
		t.Fatal("expected store failure on second profile")
	}
}

func TestDonorService_List_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDonorService(db)

	alice := createUser(t, db, "Alice Smith", "alice@test.com", "O+")
	alice.Location = strPtr("New York")
	db.Save(alice)
	bob := createUser(t, db, "Bob Jones", "bob@test.com", "A-")
	bob.Location = strPtr("Newark")
	db.Save(bob)
	carol := createUser(t, db, "Carol Smith", "carol@test.com", "O+")
	carol.Location = strPtr("Boston")
	db.Save(carol)

	for _, u := range []uint{alice.ID, bob.ID, carol.ID} {
		if _, err := svc.Create(u, &dto.CreateDonorRequest{}); err != nil {
			t.Fatalf("create donor: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter dto.DonorFilter
		want   int
	}{
		{"no filter", dto.DonorFilter{}, 3},
		{"blood group exact", dto.DonorFilter{BloodGroup: "O+"}, 2},
		{"blood group no partial match", dto.DonorFilter{BloodGroup: "O"}, 0},
		{"location substring ci", dto.DonorFilter{Location: "new"}, 2},
		{"name substring ci", dto.DonorFilter{Name: "smith"}, 2},
		{"combined is intersection", dto.DonorFilter{BloodGroup: "O+", Location: "new"}, 1},
		{"all three", dto.DonorFilter{BloodGroup: "O+", Location: "boston", Name: "carol"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donors, err := svc.List(tt.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(donors) != tt.want {
				t.Fatalf("expected %d donors, got %d", tt.want, len(donors))
			}
		})
	}
}

func TestDonorService_Update_PartialMerge(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDonorService(db)

	user := createUser(t, db, "User One", "user1@test.com", "A+")
	donor, err := svc.Create(user.ID, &dto.CreateDonorRequest{
		MedicalHistory: strPtr("Original history"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	when := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(donor.ID, user.ID, &dto.UpdateDonorRequest{
		IsAvailable:  boolPtr(false),
		LastDonation: &when,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.MedicalHistory == nil || *updated.MedicalHistory != "Original history" {
		t.Fatal("absent field should keep its stored value")
	}
	if updated.IsAvailable {
		t.Fatal("is_available not updated")
	}
	if updated.LastDonation == nil || !updated.LastDonation.Equal(when) {
		t.Fatal("last_donation not updated")
	}
}

func TestDonorService_Update_NotOwner(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDonorService(db)

	owner := createUser(t, db, "Owner", "owner@test.com", "A+")
	other := createUser(t, db, "Other", "other@test.com", "B-")

	donor, err := svc.Create(owner.ID, &dto.CreateDonorRequest{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(donor.ID, other.ID, &dto.UpdateDonorRequest{IsAvailable: boolPtr(false)})
	if !errors.Is(err, services.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	got, err := svc.Get(donor.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.IsAvailable {
		t.Fatal("rejected update must not mutate the row")
	}
}

func TestDonorService_Get_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewDonorService(db)

	_, err := svc.Get(99)
	if !errors.Is(err, services.ErrDonorNotFound) {
		t.Fatalf("expected ErrDonorNotFound, got %v", err)
	}
	_, err = svc.Update(99, 1, &dto.UpdateDonorRequest{})
	if !errors.Is(err, services.ErrDonorNotFound) {
		t.Fatalf("expected ErrDonorNotFound, got %v", err)
	}
}
