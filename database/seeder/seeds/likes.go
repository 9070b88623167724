package seeds

import (
	"fmt"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
)

type LikesSeed struct {
	likes repository.Likes
}

func MakeLikesSeed(db *database.Connection) *LikesSeed {
	return &LikesSeed{
		likes: repository.Likes{DB: db},
	}
}

func (s LikesSeed) Create(liker database.User, posts []database.Post) ([]database.Like, error) {
	var likes []database.Like

	for _, post := range posts {
		if _, err := s.likes.Toggle(post.ID, liker.ID); err != nil {
			return nil, fmt.Errorf("error seeding likes: %w", err)
		}

		var like database.Like

		err := s.likes.DB.Sql().
			Where("post_id = ? AND user_id = ?", post.ID, liker.ID).
			First(&like).Error

		if err != nil {
			return nil, fmt.Errorf("error seeding likes: %w", err)
		}

		likes = append(likes, like)
	}

	return likes, nil
}
