package repository_test

import (
	"testing"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
)

func TestProfilesGetOrCreateReturnsExisting(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	profiles := repository.Profiles{DB: conn}

	user := seedUser(t, conn, "alice", "")

	profile, err := profiles.GetOrCreate(user)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	if profile.ID != user.Profile.ID {
		t.Fatalf("expected the existing profile, got %+v", profile)
	}
}

func TestProfilesGetOrCreateProvisionsMissingProfile(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	profiles := repository.Profiles{DB: conn}

	// An account predating the profile table.
	user := database.User{
		UUID:         "e1b3f1b2-0000-4000-8000-000000000001",
		Username:     "legacy",
		Email:        "legacy@example.test",
		PasswordHash: "hash",
	}

	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	profile, err := profiles.GetOrCreate(user)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	if profile.Role != database.RoleUser || profile.IsBlogAdmin {
		t.Fatalf("expected a default profile, got %+v", profile)
	}

	again, err := profiles.GetOrCreate(user)
	if err != nil {
		t.Fatalf("get or create twice: %v", err)
	}

	if again.ID != profile.ID {
		t.Fatalf("expected the same profile on the second call")
	}
}

func TestProfilesPromote(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	profiles := repository.Profiles{DB: conn}

	user := seedUser(t, conn, "walter", "")

	profile, err := profiles.Promote(user)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}

	if profile.Role != database.RoleAdmin || !profile.IsBlogAdmin {
		t.Fatalf("expected an admin profile, got %+v", profile)
	}

	stored, err := profiles.GetOrCreate(user)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	if !stored.IsBlogAdmin {
		t.Fatalf("expected the promotion to be persisted")
	}
}
