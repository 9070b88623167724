package auth

import (
	"github.com/ehihameneromosele/fullblog2c/database"
)

// ProfileResolver get-or-creates the profile attached to an account. The
// repository implementation provisions a default (role=user) profile when the
// account has none yet.
type ProfileResolver interface {
	GetOrCreate(user database.User) (*database.UserProfile, error)
}

// Policy holds the authorization predicates. Every predicate is total: a nil
// actor, a missing profile or a resolver failure all decide to deny, they
// never error out. Reads are not guarded at all, anonymous callers may list
// and fetch everything published.
type Policy struct {
	Profiles ProfileResolver
}

func MakePolicy(profiles ProfileResolver) Policy {
	return Policy{Profiles: profiles}
}

// CanCreatePost allows only blog admins to author new posts.
func (p Policy) CanCreatePost(actor *database.User) bool {
	return p.isBlogAdmin(actor)
}

// CanModifyPost allows the post's author regardless of role, and any blog
// admin regardless of authorship.
func (p Policy) CanModifyPost(actor *database.User, post database.Post) bool {
	if actor == nil {
		return false
	}

	if post.AuthorID == actor.ID {
		return true
	}

	return p.isBlogAdmin(actor)
}

// CanModifyComment mirrors CanModifyPost for comments.
func (p Policy) CanModifyComment(actor *database.User, comment database.Comment) bool {
	if actor == nil {
		return false
	}

	if comment.AuthorID == actor.ID {
		return true
	}

	return p.isBlogAdmin(actor)
}

// CanAdministerCategory allows only blog admins to create, edit or delete
// categories.
func (p Policy) CanAdministerCategory(actor *database.User) bool {
	return p.isBlogAdmin(actor)
}

func (p Policy) isBlogAdmin(actor *database.User) bool {
	if actor == nil {
		return false
	}

	if actor.Profile != nil {
		return actor.Profile.IsBlogAdmin
	}

	if p.Profiles == nil {
		return false
	}

	// First check on a profile-less account provisions the default profile
	// as a side effect; the default never carries the admin flag.
	profile, err := p.Profiles.GetOrCreate(*actor)

	if err != nil || profile == nil {
		return false
	}

	actor.Profile = profile

	return profile.IsBlogAdmin
}
