//go:build integration

package blog

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/blogicum/blogicum/internal/db"
	"github.com/go-pg/pg/v10"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *Manager, *Admin) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := db.New(tx)
	manager := NewManager(repo, noOpLogger())
	manager.now = func() time.Time { return db.BaseTime }

	return ctx, manager, NewAdmin(repo, noOpLogger())
}

func TestManager_Index_Integration(t *testing.T) {
	ctx, manager, _ := withTx(t)

	posts, err := manager.Index(ctx)
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if len(posts) != PostsOnIndexPage {
		t.Fatalf("expected %d posts, got %d", PostsOnIndexPage, len(posts))
	}
	for i := range posts {
		if !posts[i].VisibleAt(db.BaseTime) {
			t.Errorf("post %d is not visible", posts[i].ID)
		}
		if i > 0 && posts[i].PubDate.After(posts[i-1].PubDate) {
			t.Errorf("posts not sorted by pub date at %d", i)
		}
	}
}

func TestManager_PostByID_Integration(t *testing.T) {
	ctx, manager, admin := withTx(t)

	t.Run("VisiblePost", func(t *testing.T) {
		post, err := manager.PostByID(ctx, 1)
		if err != nil {
			t.Fatalf("PostByID failed: %v", err)
		}
		if post.Category == nil || post.Author == nil {
			t.Fatalf("relations not loaded: %+v", post)
		}
	})

	t.Run("UnpublishedPostIsNotFound", func(t *testing.T) {
		post, err := admin.CreatePost(ctx, PostInput{
			Title:       "Draft",
			Text:        "x",
			PubDate:     db.BaseTime.Add(-time.Hour),
			AuthorID:    1,
			CategoryID:  intPtr(1),
			IsPublished: boolPtr(false),
		})
		if err != nil {
			t.Fatalf("CreatePost failed: %v", err)
		}

		if _, err := manager.PostByID(ctx, post.ID); err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("PostInHiddenCategoryIsNotFound", func(t *testing.T) {
		post, err := admin.CreatePost(ctx, PostInput{
			Title:      "Hidden",
			Text:       "x",
			PubDate:    db.BaseTime.Add(-time.Hour),
			AuthorID:   1,
			CategoryID: intPtr(4),
		})
		if err != nil {
			t.Fatalf("CreatePost failed: %v", err)
		}

		if _, err := manager.PostByID(ctx, post.ID); err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestManager_CategoryPosts_Integration(t *testing.T) {
	ctx, manager, admin := withTx(t)

	t.Run("PublishedCategory", func(t *testing.T) {
		category, posts, err := manager.CategoryPosts(ctx, "travel")
		if err != nil {
			t.Fatalf("CategoryPosts failed: %v", err)
		}
		if category.Slug != "travel" {
			t.Fatalf("unexpected category %+v", category)
		}
		if len(posts) != 3 {
			t.Fatalf("expected 3 posts, got %d", len(posts))
		}
	})

	t.Run("UnpublishedCategoryIsNotFound", func(t *testing.T) {
		if _, _, err := manager.CategoryPosts(ctx, "drafts"); err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UnpublishingCategoryHidesIt", func(t *testing.T) {
		current, err := admin.CategoryByID(ctx, 3)
		if err != nil {
			t.Fatalf("CategoryByID failed: %v", err)
		}

		_, err = admin.UpdateCategory(ctx, current.ID, CategoryInput{
			Title:       current.Title,
			Description: current.Description,
			IsPublished: boolPtr(false),
		})
		if err != nil {
			t.Fatalf("UpdateCategory failed: %v", err)
		}

		if _, _, err := manager.CategoryPosts(ctx, current.Slug); err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAdmin_CreateCategory_Integration(t *testing.T) {
	ctx, _, admin := withTx(t)

	category, err := admin.CreateCategory(ctx, CategoryInput{Title: "Sea life", Description: "Fish"})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if category.Slug != "sea-life" || !category.IsPublished || category.CreatedAt.IsZero() {
		t.Fatalf("unexpected category %+v", category)
	}

	_, err = admin.CreateCategory(ctx, CategoryInput{Title: "Sea life", Description: "Again"})
	verr, ok := err.(*ValidationError)
	if !ok || verr.Field != "slug" {
		t.Fatalf("expected slug validation error, got %v", err)
	}
}
