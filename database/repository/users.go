package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/pkg/gorm"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

type Users struct {
	DB *database.Connection
}

// Create registers a new account together with its profile as one unit. The
// given plain password is hashed before it touches the database.
func (r Users) Create(attrs database.UsersAttrs) (*database.User, error) {
	password, err := portal.NewPassword(attrs.Password)

	if err != nil {
		return nil, fmt.Errorf("issue hashing the given password: %w", err)
	}

	role := strings.TrimSpace(attrs.Role)
	if role == "" {
		role = database.RoleUser
	}

	user := database.User{
		UUID:         uuid.NewString(),
		Username:     strings.TrimSpace(attrs.Username),
		Email:        portal.NewStringable(attrs.Email).ToLower(),
		FirstName:    strings.TrimSpace(attrs.FirstName),
		LastName:     strings.TrimSpace(attrs.LastName),
		PasswordHash: password.GetHash(),
	}

	err = r.DB.Transaction(func(db *stdgorm.DB) error {
		if result := db.Create(&user); gorm.HasDbIssues(result.Error) {
			return result.Error
		}

		profile := database.UserProfile{
			UserID:      user.ID,
			Role:        role,
			IsBlogAdmin: role == database.RoleAdmin,
		}

		if result := db.Create(&profile); gorm.HasDbIssues(result.Error) {
			return result.Error
		}

		user.Profile = &profile

		return nil
	})

	if err != nil {
		if gorm.IsDuplicated(err) {
			return nil, ErrConflict
		}

		return nil, fmt.Errorf("issue creating users: %w", err)
	}

	return &user, nil
}

func (r Users) FindBy(username string) *database.User {
	user := &database.User{}

	result := r.DB.Sql().
		Preload("Profile").
		Where("username = ?", strings.TrimSpace(username)).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return user
}

func (r Users) FindByEmail(email string) *database.User {
	user := &database.User{}

	result := r.DB.Sql().
		Preload("Profile").
		Where("LOWER(email) = ?", portal.NewStringable(email).ToLower()).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return user
}

func (r Users) FindByID(id uint64) *database.User {
	user := &database.User{}

	result := r.DB.Sql().
		Preload("Profile").
		Where("id = ?", id).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return user
}
