package accounts

import (
	"fmt"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/metal/cli/panel"
	"github.com/ehihameneromosele/fullblog2c/pkg/cli"
)

// CreateAdmin provisions a blog admin account. Registration over HTTP always
// creates regular users, so this is the only path that mints admins directly.
func (h Handler) CreateAdmin(input panel.AdminInput) error {
	user, err := h.Users.Create(database.UsersAttrs{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      database.RoleAdmin,
	})

	if err != nil {
		return fmt.Errorf("failed to create the given admin account [%s]: %w", input.Username, err)
	}

	h.print(user)

	return nil
}

// PromoteUser grants the blog-admin role to an existing account.
func (h Handler) PromoteUser(username string) error {
	user := h.Users.FindBy(username)

	if user == nil {
		return fmt.Errorf("the given account [%s] was not found", username)
	}

	profile, err := h.Profiles.Promote(*user)

	if err != nil {
		return fmt.Errorf("failed to promote the given account [%s]: %w", username, err)
	}

	user.Profile = profile
	h.print(user)

	return nil
}

// ShowAccount prints the stored details of an account.
func (h Handler) ShowAccount(username string) error {
	user := h.Users.FindBy(username)

	if user == nil {
		return fmt.Errorf("the given account [%s] was not found", username)
	}

	h.print(user)

	return nil
}

func (h Handler) print(user *database.User) {
	role := database.RoleUser
	isBlogAdmin := false

	if user.Profile != nil {
		role = user.Profile.Role
		isBlogAdmin = user.Profile.IsBlogAdmin
	}

	cli.Successln("\nThe given account has been found successfully!\n")
	cli.Blueln("   > " + fmt.Sprintf("Username: %s", user.Username))
	cli.Blueln("   > " + fmt.Sprintf("Email: %s", user.Email))
	cli.Blueln("   > " + fmt.Sprintf("UUID: %s", user.UUID))
	cli.Warningln("----- Profile -----")
	cli.Magentaln("   > " + fmt.Sprintf("Role: %s", role))
	cli.Magentaln("   > " + fmt.Sprintf("Blog admin: %t", isBlogAdmin))
	fmt.Println(" ")
}
