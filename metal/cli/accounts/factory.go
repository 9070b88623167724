package accounts

import (
	"errors"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
	"github.com/ehihameneromosele/fullblog2c/metal/env"
)

type Handler struct {
	Env      *env.Environment
	Users    *repository.Users
	Profiles *repository.Profiles
}

func MakeHandler(db *database.Connection, environment *env.Environment) (*Handler, error) {
	if db == nil {
		return nil, errors.New("accounts: the database connection cannot be nil")
	}

	if environment == nil {
		return nil, errors.New("accounts: the environment cannot be nil")
	}

	return &Handler{
		Env:      environment,
		Users:    &repository.Users{DB: db},
		Profiles: &repository.Profiles{DB: db},
	}, nil
}
