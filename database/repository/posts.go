package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/pkg/gorm"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

const latestPostsLimit = 5

type PostFilters struct {
	Search   string
	Ordering string
}

var postOrderings = map[string]string{
	"created_at":  "posts.created_at asc",
	"-created_at": "posts.created_at desc",
	"updated_at":  "posts.updated_at asc",
	"-updated_at": "posts.updated_at desc",
}

type Posts struct {
	DB *database.Connection
}

func (r Posts) GetAll(filters PostFilters) ([]database.Post, error) {
	var posts []database.Post

	query := r.DB.Sql().
		Model(&database.Post{}).
		Preload("Author.Profile").
		Preload("Category").
		Joins("LEFT JOIN categories ON categories.id = posts.category_id").
		Joins("JOIN users ON users.id = posts.author_id")

	if search := strings.TrimSpace(filters.Search); search != "" {
		needle := "%" + strings.ToLower(search) + "%"

		query = query.Where(
			"LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ? OR LOWER(categories.name) LIKE ? OR LOWER(users.username) LIKE ?",
			needle, needle, needle, needle,
		)
	}

	order, ok := postOrderings[strings.TrimSpace(filters.Ordering)]
	if !ok {
		order = "posts.created_at desc"
	}

	if err := query.Order(order).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("issue listing posts: %w", err)
	}

	return posts, nil
}

func (r Posts) Latest() ([]database.Post, error) {
	var posts []database.Post

	err := r.DB.Sql().
		Preload("Author.Profile").
		Preload("Category").
		Where("published = ?", true).
		Order("created_at desc").
		Limit(latestPostsLimit).
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing latest posts: %w", err)
	}

	return posts, nil
}

func (r Posts) ByAuthor(authorID uint64) ([]database.Post, error) {
	var posts []database.Post

	err := r.DB.Sql().
		Preload("Author.Profile").
		Preload("Category").
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing posts for author [%d]: %w", authorID, err)
	}

	return posts, nil
}

func (r Posts) FindByID(id uint64) *database.Post {
	post := &database.Post{}

	result := r.DB.Sql().
		Preload("Author.Profile").
		Preload("Category").
		Preload("Comments", "active = ?", true).
		Preload("Comments.Author").
		Where("posts.id = ?", id).
		First(&post)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return post
}

func (r Posts) SlugExists(slug string) bool {
	var count int64

	r.DB.Sql().
		Model(&database.Post{}).
		Where("slug = ?", slug).
		Count(&count)

	return count > 0
}

func (r Posts) LikesCount(postID uint64) int64 {
	var count int64

	r.DB.Sql().
		Model(&database.Like{}).
		Where("post_id = ?", postID).
		Count(&count)

	return count
}

func (r Posts) CommentsCount(postID uint64) int64 {
	var count int64

	r.DB.Sql().
		Model(&database.Comment{}).
		Where("post_id = ? AND active = ?", postID, true).
		Count(&count)

	return count
}

// Create persists a new post. The category must resolve, the author comes
// from the authenticated actor, and the slug is allocated from the title
// against the live post table. Allocation and insert run in one transaction;
// losing a slug race against a concurrent insert re-allocates once before
// surfacing ErrConflict.
func (r Posts) Create(attrs database.PostsAttrs) (*database.Post, error) {
	title := strings.TrimSpace(attrs.Title)

	if title == "" {
		return nil, NewValidationError("title", "This field is required")
	}

	var category database.Category

	result := r.DB.Sql().Where("id = ?", attrs.CategoryID).First(&category)
	if gorm.HasDbIssues(result.Error) {
		return nil, NewValidationError("category_id", "category required")
	}

	var post *database.Post

	for attempt := 0; ; attempt++ {
		candidate := database.Post{
			UUID:          uuid.NewString(),
			Title:         title,
			AuthorID:      attrs.AuthorID,
			CategoryID:    &category.ID,
			Content:       attrs.Content,
			CoverImageURL: attrs.ImageURL,
			Published:     attrs.Published,
		}

		err := r.DB.Transaction(func(db *stdgorm.DB) error {
			candidate.Slug = portal.AllocateSlug(title, r.SlugExists)

			if result := db.Create(&candidate); gorm.HasDbIssues(result.Error) {
				return result.Error
			}

			return nil
		})

		if err == nil {
			post = &candidate
			break
		}

		if gorm.IsDuplicated(err) {
			if attempt == 0 {
				continue
			}

			return nil, ErrConflict
		}

		return nil, fmt.Errorf("issue creating posts: %w", err)
	}

	return r.FindByID(post.ID), nil
}

// Update mutates title, content, category, image and published flag. The slug
// is immutable once allocated and is never recomputed here.
func (r Posts) Update(post *database.Post, attrs database.PostsAttrs) (*database.Post, error) {
	if title := strings.TrimSpace(attrs.Title); title != "" {
		post.Title = title
	}

	if content := strings.TrimSpace(attrs.Content); content != "" {
		post.Content = content
	}

	if attrs.ImageURL != "" {
		post.CoverImageURL = attrs.ImageURL
	}

	if attrs.CategoryID > 0 {
		var category database.Category

		result := r.DB.Sql().Where("id = ?", attrs.CategoryID).First(&category)
		if gorm.HasDbIssues(result.Error) {
			return nil, NewValidationError("category_id", "category required")
		}

		// Drop the preloaded association, Save would otherwise reset
		// CategoryID from the stale Category.ID.
		post.CategoryID = &category.ID
		post.Category = nil
	}

	post.Published = attrs.Published

	if result := r.DB.Sql().Omit(clause.Associations).Save(post); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue updating post [%d]: %w", post.ID, result.Error)
	}

	return r.FindByID(post.ID), nil
}

// Delete removes the post together with its comments and likes. The schema
// cascades already; the explicit deletes keep the behavior identical on
// drivers migrated without referential actions.
func (r Posts) Delete(id uint64) error {
	post := r.FindByID(id)

	if post == nil {
		return ErrNotFound
	}

	return r.DB.Transaction(func(db *stdgorm.DB) error {
		if result := db.Where("post_id = ?", id).Delete(&database.Like{}); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("issue deleting likes for post [%d]: %w", id, result.Error)
		}

		if result := db.Where("post_id = ?", id).Delete(&database.Comment{}); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("issue deleting comments for post [%d]: %w", id, result.Error)
		}

		if result := db.Delete(&database.Post{}, id); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("issue deleting post [%d]: %w", id, result.Error)
		}

		return nil
	})
}
