package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
)

func newSQLiteConnection(t *testing.T) (*database.Connection, *gorm.DB) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return database.NewConnectionFromGorm(db), db
}

func seedUser(t *testing.T, conn *database.Connection, username, role string) database.User {
	t.Helper()

	users := repository.Users{DB: conn}

	user, err := users.Create(database.UsersAttrs{
		Username:  username,
		Email:     username + "@example.test",
		FirstName: "Test",
		LastName:  "User",
		Password:  "super-secret",
		Role:      role,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	return *user
}

func seedCategory(t *testing.T, conn *database.Connection, name string) database.Category {
	t.Helper()

	categories := repository.Categories{DB: conn}

	category, err := categories.Create(database.CategoriesAttrs{Name: name})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	return *category
}

func seedPost(t *testing.T, conn *database.Connection, author database.User, category database.Category, title string) database.Post {
	t.Helper()

	posts := repository.Posts{DB: conn}

	post, err := posts.Create(database.PostsAttrs{
		AuthorID:   author.ID,
		Title:      title,
		Content:    title + " content",
		CategoryID: category.ID,
		Published:  true,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}
