package repository

import (
	"fmt"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/pkg/gorm"
)

type Likes struct {
	DB *database.Connection
}

// Toggle flips the like state for the given (post, user) pair and reports
// whether the post ended up liked. The check-and-flip runs in one transaction
// under a row lock so concurrent toggles from the same user serialize instead
// of racing; the unique (post, user) index backstops whatever slips through.
func (r Likes) Toggle(postID uint64, userID uint64) (bool, error) {
	var liked bool

	err := r.DB.Transaction(func(db *stdgorm.DB) error {
		var existing database.Like

		result := db.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			First(&existing)

		if result.Error == nil {
			if del := db.Delete(&existing); gorm.HasDbIssues(del.Error) {
				return fmt.Errorf("issue removing like [%d]: %w", existing.ID, del.Error)
			}

			liked = false

			return nil
		}

		if !gorm.IsNotFound(result.Error) {
			return fmt.Errorf("issue reading like for post [%d]: %w", postID, result.Error)
		}

		fresh := database.Like{
			UUID:   uuid.NewString(),
			PostID: postID,
			UserID: userID,
		}

		if create := db.Create(&fresh); gorm.HasDbIssues(create.Error) {
			if gorm.IsDuplicated(create.Error) {
				return ErrConflict
			}

			return fmt.Errorf("issue creating likes: %w", create.Error)
		}

		liked = true

		return nil
	})

	if err != nil {
		return false, err
	}

	return liked, nil
}

func (r Likes) CountForPost(postID uint64) int64 {
	var count int64

	r.DB.Sql().
		Model(&database.Like{}).
		Where("post_id = ?", postID).
		Count(&count)

	return count
}
