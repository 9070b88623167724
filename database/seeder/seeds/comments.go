package seeds

import (
	"fmt"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
)

type CommentsSeed struct {
	comments repository.Comments
}

func MakeCommentsSeed(db *database.Connection) *CommentsSeed {
	return &CommentsSeed{
		comments: repository.Comments{DB: db},
	}
}

func (s CommentsSeed) Create(commenter database.User, posts []database.Post) ([]database.Comment, error) {
	var comments []database.Comment

	for _, post := range posts {
		comment, err := s.comments.Create(database.CommentsAttrs{
			PostID:   post.ID,
			AuthorID: commenter.ID,
			Body:     "Great read on " + post.Title,
		})

		if err != nil {
			return nil, fmt.Errorf("error seeding comments: %w", err)
		}

		comments = append(comments, *comment)
	}

	return comments, nil
}
