package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	baseHttp "net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
	"github.com/ehihameneromosele/fullblog2c/pkg/auth"
	"github.com/ehihameneromosele/fullblog2c/pkg/middleware"
)

func newSQLiteConnection(t *testing.T) *database.Connection {
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

	return database.NewConnectionFromGorm(db)
}

func seedUser(t *testing.T, conn *database.Connection, username, role string) database.User {
	t.Helper()

	users := repository.Users{DB: conn}

	user, err := users.Create(database.UsersAttrs{
		Username: username,
		Email:    username + "@example.test",
		Password: "super-secret",
		Role:     role,
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

func makePolicy(conn *database.Connection) auth.Policy {
	return auth.MakePolicy(repository.Profiles{DB: conn})
}

// newRequest builds a JSON request; pass nil for body-less calls.
func newRequest(t *testing.T, method, target string, body any) *baseHttp.Request {
	t.Helper()

	var reader *bytes.Reader

	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}

		reader = bytes.NewReader(data)
	}

	request, err := baseHttp.NewRequest(method, target, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}

	request.Header.Set("Content-Type", "application/json")

	return request
}

// asUser stamps the request context with the claims the JWT middleware would
// have injected for the given account.
func asUser(r *baseHttp.Request, user database.User) *baseHttp.Request {
	claims := &auth.Claims{UserID: user.ID, Username: user.Username}
	ctx := context.WithValue(r.Context(), middleware.JWTClaimsKey, claims)

	return r.WithContext(ctx)
}

// withPathID binds the {id} path parameter the mux would have matched.
func withPathID(r *baseHttp.Request, id string) *baseHttp.Request {
	r.SetPathValue("id", id)

	return r
}

func decodeBody[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()

	var out T

	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	return out
}

func rawRequest(t *testing.T, method, target, body string) *baseHttp.Request {
	t.Helper()

	request, err := baseHttp.NewRequest(method, target, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}

	request.Header.Set("Content-Type", "application/json")

	return request
}
