package seeds

import (
	"fmt"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
)

type PostsSeed struct {
	posts repository.Posts
}

func MakePostsSeed(db *database.Connection) *PostsSeed {
	return &PostsSeed{
		posts: repository.Posts{DB: db},
	}
}

func (s PostsSeed) Create(author database.User, categories []database.Category) ([]database.Post, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("error seeding posts: no categories to attach to")
	}

	titles := []string{
		"Welcome to the blog",
		"Shipping a CRUD API",
		"On writing maintainable handlers",
		"Indexes you actually need",
		"Why soft deletes",
	}

	var posts []database.Post

	for i, title := range titles {
		category := categories[i%len(categories)]

		post, err := s.posts.Create(database.PostsAttrs{
			AuthorID:   author.ID,
			Title:      title,
			Content:    title + ". Seeded content.",
			CategoryID: category.ID,
			Published:  true,
		})

		if err != nil {
			return nil, fmt.Errorf("error seeding posts: %w", err)
		}

		posts = append(posts, *post)
	}

	return posts, nil
}
