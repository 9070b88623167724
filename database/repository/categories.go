package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/pkg/gorm"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

type Categories struct {
	DB *database.Connection
}

func (r Categories) GetAll() ([]database.Category, error) {
	var categories []database.Category

	err := r.DB.Sql().
		Order("categories.name asc").
		Find(&categories).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing categories: %w", err)
	}

	return categories, nil
}

func (r Categories) FindByID(id uint64) *database.Category {
	category := &database.Category{}

	result := r.DB.Sql().
		Preload("Posts").
		Where("id = ?", id).
		First(&category)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return category
}

func (r Categories) FindBy(slug string) *database.Category {
	category := &database.Category{}

	result := r.DB.Sql().
		Where("LOWER(slug) = ?", strings.ToLower(slug)).
		First(&category)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return category
}

func (r Categories) SlugExists(slug string) bool {
	var count int64

	r.DB.Sql().
		Model(&database.Category{}).
		Where("slug = ?", slug).
		Count(&count)

	return count > 0
}

// Create allocates a collision-free slug for the category name and persists
// the row. A concurrent insert racing for the same slug loses against the
// unique constraint; allocation is retried once before giving up.
func (r Categories) Create(attrs database.CategoriesAttrs) (*database.Category, error) {
	name := strings.TrimSpace(attrs.Name)

	if name == "" {
		return nil, NewValidationError("name", "This field is required")
	}

	for attempt := 0; ; attempt++ {
		slug := attrs.Slug
		if slug == "" {
			slug = portal.AllocateSlug(name, r.SlugExists)
		}

		category := database.Category{
			UUID: uuid.NewString(),
			Name: name,
			Slug: slug,
		}

		result := r.DB.Sql().Create(&category)

		if result.Error == nil {
			return &category, nil
		}

		if gorm.IsDuplicated(result.Error) {
			if attrs.Slug == "" && attempt == 0 {
				continue
			}

			return nil, ErrConflict
		}

		return nil, fmt.Errorf("issue creating category [%s]: %w", name, result.Error)
	}
}

func (r Categories) Update(id uint64, attrs database.CategoriesAttrs) (*database.Category, error) {
	category := r.FindByID(id)

	if category == nil {
		return nil, ErrNotFound
	}

	if name := strings.TrimSpace(attrs.Name); name != "" {
		category.Name = name
	}

	if result := r.DB.Sql().Save(&category); gorm.HasDbIssues(result.Error) {
		if gorm.IsDuplicated(result.Error) {
			return nil, ErrConflict
		}

		return nil, fmt.Errorf("issue updating category [%d]: %w", id, result.Error)
	}

	return category, nil
}

// Delete removes the category; posts referencing it keep existing with a null
// category, enforced by the SET NULL constraint and mirrored here for
// drivers without referential actions on migration.
func (r Categories) Delete(id uint64) error {
	category := r.FindByID(id)

	if category == nil {
		return ErrNotFound
	}

	return r.DB.Transaction(func(db *stdgorm.DB) error {
		err := db.Model(&database.Post{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error

		if err != nil {
			return fmt.Errorf("issue detaching posts from category [%d]: %w", id, err)
		}

		if result := db.Delete(&database.Category{}, id); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("issue deleting category [%d]: %w", id, result.Error)
		}

		return nil
	})
}

// CountersFor aggregates post, comment and like totals for a category detail
// response.
func (r Categories) CountersFor(category database.Category) (posts int64, comments int64, likes int64) {
	db := r.DB.Sql()

	db.Model(&database.Post{}).
		Where("category_id = ?", category.ID).
		Count(&posts)

	db.Model(&database.Comment{}).
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("posts.category_id = ?", category.ID).
		Count(&comments)

	db.Model(&database.Like{}).
		Joins("JOIN posts ON posts.id = likes.post_id").
		Where("posts.category_id = ?", category.ID).
		Count(&likes)

	return posts, comments, likes
}
