package repository_test

import (
	"testing"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
)

func TestCommentsCreateAndList(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	comments := repository.Comments{DB: conn}

	author := seedUser(t, conn, "alice", "")
	reader := seedUser(t, conn, "bob", "")
	category := seedCategory(t, conn, "Tech")
	post := seedPost(t, conn, author, category, "Hello World")

	created, err := comments.Create(database.CommentsAttrs{
		PostID:   post.ID,
		AuthorID: reader.ID,
		Body:     "  first!  ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Body != "first!" {
		t.Fatalf("expected the body to be trimmed, got %q", created.Body)
	}

	if !created.Active {
		t.Fatalf("expected a fresh comment to be active")
	}

	if created.Author.ID != reader.ID {
		t.Fatalf("expected the author to be preloaded")
	}

	listed, err := comments.ListForPost(post.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("unexpected listing: %+v", listed)
	}
}

func TestCommentsCreateRejectsBlankBody(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	comments := repository.Comments{DB: conn}

	author := seedUser(t, conn, "alice", "")
	category := seedCategory(t, conn, "Tech")
	post := seedPost(t, conn, author, category, "Hello World")

	_, err := comments.Create(database.CommentsAttrs{
		PostID:   post.ID,
		AuthorID: author.ID,
		Body:     "   ",
	})

	if !repository.IsValidationError(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestCommentsUpdate(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	comments := repository.Comments{DB: conn}

	author := seedUser(t, conn, "alice", "")
	category := seedCategory(t, conn, "Tech")
	post := seedPost(t, conn, author, category, "Hello World")

	created, err := comments.Create(database.CommentsAttrs{
		PostID:   post.ID,
		AuthorID: author.ID,
		Body:     "typo",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := comments.Update(created, "fixed")
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Body != "fixed" {
		t.Fatalf("unexpected body: %q", updated.Body)
	}

	if _, err := comments.Update(created, "  "); !repository.IsValidationError(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestCommentsDeactivateHidesWithoutDeleting(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	comments := repository.Comments{DB: conn}

	author := seedUser(t, conn, "alice", "")
	category := seedCategory(t, conn, "Tech")
	post := seedPost(t, conn, author, category, "Hello World")

	created, err := comments.Create(database.CommentsAttrs{
		PostID:   post.ID,
		AuthorID: author.ID,
		Body:     "soon gone",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := comments.Deactivate(created); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	listed, err := comments.ListForPost(post.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(listed) != 0 {
		t.Fatalf("expected the comment to be hidden, got %+v", listed)
	}

	// The row itself survives.
	var count int64
	conn.Sql().Model(&database.Comment{}).Where("id = ?", created.ID).Count(&count)

	if count != 1 {
		t.Fatalf("expected the row to be kept")
	}

	if found := comments.FindByID(created.ID); found == nil || found.Active {
		t.Fatalf("expected an inactive comment, got %+v", found)
	}
}
