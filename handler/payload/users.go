package payload

import (
	"time"

	"github.com/ehihameneromosele/fullblog2c/database"
)

type UserResponse struct {
	UUID        string    `json:"uuid"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Role        string    `json:"role"`
	IsBlogAdmin bool      `json:"is_blog_admin"`
	CreatedAt   time.Time `json:"created_at"`
}

func GetUserResponse(user database.User) UserResponse {
	resp := UserResponse{
		UUID:      user.UUID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      database.RoleUser,
		CreatedAt: user.CreatedAt,
	}

	if user.Profile != nil {
		resp.Role = user.Profile.Role
		resp.IsBlogAdmin = user.Profile.IsBlogAdmin
	}

	return resp
}
