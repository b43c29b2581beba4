package village_test

import (
	"testing"

	"gramgrid/internal/model"
	"gramgrid/internal/testutil"
	"gramgrid/internal/village"
)

func TestRepository_CreateAndGetVillage(t *testing.T) {
	f := testutil.NewFixture(t)

	created, err := f.Repo.CreateVillage(model.Village{Name: "Rampur", Population: 3240})
	if err != nil {
		t.Fatalf("CreateVillage() error: %v", err)
	}
	if created.ID == "" {
		t.Error("CreateVillage() did not assign an ID")
	}
	if created.CreatedAt == "" {
		t.Error("CreateVillage() did not stamp created_at")
	}

	got, err := f.Repo.GetVillageByID(created.ID)
	if err != nil {
		t.Fatalf("GetVillageByID() error: %v", err)
	}
	if got == nil || got.Name != "Rampur" {
		t.Errorf("GetVillageByID() = %+v, want the created village", got)
	}

	absent, err := f.Repo.GetVillageByID("no-such-id")
	if err != nil {
		t.Fatalf("GetVillageByID() error: %v", err)
	}
	if absent != nil {
		t.Errorf("GetVillageByID() for unknown ID = %+v, want nil", absent)
	}
}

func TestRepository_FirstVillageID(t *testing.T) {
	f := testutil.NewFixture(t)

	id, err := f.Repo.FirstVillageID()
	if err != nil {
		t.Fatalf("FirstVillageID() error: %v", err)
	}
	if id != village.DefaultVillageID {
		t.Errorf("FirstVillageID() with no villages = %q, want sentinel %q", id, village.DefaultVillageID)
	}

	v1, err := f.Repo.CreateVillage(model.Village{Name: "Rampur"})
	if err != nil {
		t.Fatalf("CreateVillage() error: %v", err)
	}
	if _, err := f.Repo.CreateVillage(model.Village{Name: "Sundarpur"}); err != nil {
		t.Fatalf("CreateVillage() error: %v", err)
	}

	id, err = f.Repo.FirstVillageID()
	if err != nil {
		t.Fatalf("FirstVillageID() error: %v", err)
	}
	if id != v1.ID {
		t.Errorf("FirstVillageID() = %q, want earliest village %q", id, v1.ID)
	}
}

func TestRepository_CreateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     model.User
		wantRole model.Role
		wantErr  bool
	}{
		{
			name:     "explicit role",
			user:     model.User{Email: "a@b.c", Role: model.RoleAdmin},
			wantRole: model.RoleAdmin,
		},
		{
			name:     "role defaults to user",
			user:     model.User{Email: "d@e.f"},
			wantRole: model.RoleUser,
		},
		{
			name:    "unknown role rejected",
			user:    model.User{Email: "g@h.i", Role: "superuser"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testutil.NewFixture(t)
			got, err := f.Repo.CreateUser(tt.user)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateUser() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", got.Role, tt.wantRole)
			}
			if got.CreatedAt == "" || got.UpdatedAt == "" {
				t.Error("CreateUser() did not stamp timestamps")
			}
		})
	}
}

func TestRepository_UserRoundTrip(t *testing.T) {
	f := testutil.NewFixture(t)

	in := model.User{
		FullName:     "Rajesh Kumar",
		Email:        "rajesh@village.com",
		PasswordHash: f.Hasher.Hash("rajesh123"),
		Role:         model.RoleUser,
		VillageID:    "v1",
	}
	created, err := f.Repo.CreateUser(in)
	if err != nil {
		t.Fatalf("CreateUser() error: %v", err)
	}

	got, err := f.Repo.GetUserByID(created.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error: %v", err)
	}
	if got == nil {
		t.Fatal("GetUserByID() = nil for a just-created user")
	}

	// The stored record is the input plus generated id and timestamps.
	in.ID = created.ID
	in.CreatedAt = created.CreatedAt
	in.UpdatedAt = created.UpdatedAt
	if *got != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, in)
	}
}

func TestRepository_GetUserByEmail(t *testing.T) {
	f := testutil.NewFixture(t)
	f.Seed(t)

	got, err := f.Repo.GetUserByEmail(village.SeedAdminEmail)
	if err != nil {
		t.Fatalf("GetUserByEmail() error: %v", err)
	}
	if got == nil || got.Role != model.RoleAdmin {
		t.Errorf("GetUserByEmail() = %+v, want the seeded admin", got)
	}

	absent, err := f.Repo.GetUserByEmail("nobody@nowhere")
	if err != nil {
		t.Fatalf("GetUserByEmail() error: %v", err)
	}
	if absent != nil {
		t.Errorf("GetUserByEmail() for unknown email = %+v, want nil", absent)
	}
}

func TestRepository_GetUsersByVillage(t *testing.T) {
	f := testutil.NewFixture(t)
	f.Seed(t)

	first, err := f.Repo.FirstVillageID()
	if err != nil {
		t.Fatalf("FirstVillageID() error: %v", err)
	}

	users, err := f.Repo.GetUsersByVillage(first)
	if err != nil {
		t.Fatalf("GetUsersByVillage() error: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("GetUsersByVillage() = %d users, want the 2 seeded ones", len(users))
	}

	none, err := f.Repo.GetUsersByVillage("no-such-village")
	if err != nil {
		t.Fatalf("GetUsersByVillage() error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("GetUsersByVillage() for unknown village = %d users, want 0", len(none))
	}
}
