package repository

import (
	"fmt"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/pkg/gorm"
)

type Profiles struct {
	DB *database.Connection
}

// GetOrCreate returns the profile attached to the given user, provisioning a
// default one (role=user, no admin flag) when none exists yet. Accounts
// predating the profile table pick theirs up on their first permission check.
func (r Profiles) GetOrCreate(user database.User) (*database.UserProfile, error) {
	profile := &database.UserProfile{}

	result := r.DB.Sql().
		Where("user_id = ?", user.ID).
		First(&profile)

	if result.Error == nil {
		return profile, nil
	}

	if !gorm.IsNotFound(result.Error) {
		return nil, fmt.Errorf("issue reading profile for user [%d]: %w", user.ID, result.Error)
	}

	fresh := database.UserProfile{
		UserID:      user.ID,
		Role:        database.RoleUser,
		IsBlogAdmin: false,
	}

	if result := r.DB.Sql().Create(&fresh); gorm.HasDbIssues(result.Error) {
		// A concurrent check may have provisioned it first.
		if gorm.IsDuplicated(result.Error) {
			return r.find(user.ID)
		}

		return nil, fmt.Errorf("issue creating profile for user [%d]: %w", user.ID, result.Error)
	}

	return &fresh, nil
}

// Promote grants the blog-admin role to the given user's profile.
func (r Profiles) Promote(user database.User) (*database.UserProfile, error) {
	profile, err := r.GetOrCreate(user)

	if err != nil {
		return nil, err
	}

	profile.Role = database.RoleAdmin
	profile.IsBlogAdmin = true

	if result := r.DB.Sql().Save(&profile); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue promoting user [%d]: %w", user.ID, result.Error)
	}

	return profile, nil
}

func (r Profiles) find(userID uint64) (*database.UserProfile, error) {
	profile := &database.UserProfile{}

	result := r.DB.Sql().
		Where("user_id = ?", userID).
		First(&profile)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue reading profile for user [%d]: %w", userID, result.Error)
	}

	return profile, nil
}
