package seeds

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/pkg/gorm"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

type CategoriesSeed struct {
	db *database.Connection
}

func MakeCategoriesSeed(db *database.Connection) *CategoriesSeed {
	return &CategoriesSeed{
		db: db,
	}
}

func (s CategoriesSeed) Create() ([]database.Category, error) {
	var categories []database.Category

	seeds := []string{
		"Tech", "AI", "Leadership", "Innovation",
		"Cloud", "Data", "DevOps", "Engineering",
	}

	for _, seed := range seeds {
		categories = append(categories, database.Category{
			UUID: uuid.NewString(),
			Name: seed,
			Slug: portal.Slugify(seed),
		})
	}

	result := s.db.Sql().Create(&categories)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding categories: %w", result.Error)
	}

	return categories, nil
}
