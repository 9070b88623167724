package seeds

import (
	"fmt"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
)

type UsersSeed struct {
	users repository.Users
}

func NewUsersSeed(db *database.Connection) *UsersSeed {
	return &UsersSeed{
		users: repository.Users{DB: db},
	}
}

func (s UsersSeed) Create(attrs database.UsersAttrs) (database.User, error) {
	user, err := s.users.Create(attrs)

	if err != nil {
		return database.User{}, fmt.Errorf("issues seeding users: %w", err)
	}

	return *user, nil
}
