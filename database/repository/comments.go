package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/pkg/gorm"
)

type Comments struct {
	DB *database.Connection
}

// ListForPost returns the active comments of a post, oldest first.
func (r Comments) ListForPost(postID uint64) ([]database.Comment, error) {
	var comments []database.Comment

	err := r.DB.Sql().
		Preload("Author.Profile").
		Where("post_id = ? AND active = ?", postID, true).
		Order("created_at asc").
		Find(&comments).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing comments for post [%d]: %w", postID, err)
	}

	return comments, nil
}

func (r Comments) FindByID(id uint64) *database.Comment {
	comment := &database.Comment{}

	result := r.DB.Sql().
		Preload("Author.Profile").
		Where("id = ?", id).
		First(&comment)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return comment
}

func (r Comments) Create(attrs database.CommentsAttrs) (*database.Comment, error) {
	body := strings.TrimSpace(attrs.Body)

	if body == "" {
		return nil, NewValidationError("body", "This field is required")
	}

	comment := database.Comment{
		UUID:     uuid.NewString(),
		PostID:   attrs.PostID,
		AuthorID: attrs.AuthorID,
		Body:     body,
		Active:   true,
	}

	if result := r.DB.Sql().Create(&comment); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating comments: %w", result.Error)
	}

	return r.FindByID(comment.ID), nil
}

func (r Comments) Update(comment *database.Comment, body string) (*database.Comment, error) {
	body = strings.TrimSpace(body)

	if body == "" {
		return nil, NewValidationError("body", "This field is required")
	}

	comment.Body = body

	if result := r.DB.Sql().Save(comment); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue updating comment [%d]: %w", comment.ID, result.Error)
	}

	return comment, nil
}

// Deactivate soft-deletes the comment: the row survives but stops surfacing
// in listings and counters.
func (r Comments) Deactivate(comment *database.Comment) error {
	comment.Active = false

	if result := r.DB.Sql().Save(comment); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deactivating comment [%d]: %w", comment.ID, result.Error)
	}

	return nil
}
