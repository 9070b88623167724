package seeds

import (
	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/metal/env"
)

type Seeder struct {
	db  *database.Connection
	env *env.Environment

	Users      *UsersSeed
	Categories *CategoriesSeed
	Posts      *PostsSeed
	Comments   *CommentsSeed
	Likes      *LikesSeed
}

func MakeSeeder(db *database.Connection, e *env.Environment) *Seeder {
	return &Seeder{
		db:         db,
		env:        e,
		Users:      NewUsersSeed(db),
		Categories: MakeCategoriesSeed(db),
		Posts:      MakePostsSeed(db),
		Comments:   MakeCommentsSeed(db),
		Likes:      MakeLikesSeed(db),
	}
}

func (s *Seeder) TruncateDB() error {
	return database.NewTruncate(s.db, s.env).Execute()
}

// SeedUsers provisions the first blog admin and a plain reader account.
func (s *Seeder) SeedUsers() (database.User, database.User) {
	admin, err := s.Users.Create(database.UsersAttrs{
		Username:  "admin",
		Email:     "admin@example.com",
		FirstName: "Ada",
		LastName:  "Admin",
		Password:  "password",
		Role:      database.RoleAdmin,
	})

	if err != nil {
		panic(err)
	}

	reader, err := s.Users.Create(database.UsersAttrs{
		Username:  "reader",
		Email:     "reader@example.com",
		FirstName: "Rita",
		LastName:  "Reader",
		Password:  "password",
		Role:      database.RoleUser,
	})

	if err != nil {
		panic(err)
	}

	return admin, reader
}

func (s *Seeder) SeedCategories() []database.Category {
	categories, err := s.Categories.Create()

	if err != nil {
		panic(err)
	}

	return categories
}

func (s *Seeder) SeedPosts(author database.User, categories []database.Category) []database.Post {
	posts, err := s.Posts.Create(author, categories)

	if err != nil {
		panic(err)
	}

	return posts
}

func (s *Seeder) SeedComments(commenter database.User, posts ...database.Post) []database.Comment {
	comments, err := s.Comments.Create(commenter, posts)

	if err != nil {
		panic(err)
	}

	return comments
}

func (s *Seeder) SeedLikes(liker database.User, posts ...database.Post) []database.Like {
	likes, err := s.Likes.Create(liker, posts)

	if err != nil {
		panic(err)
	}

	return likes
}
