//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
)

func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
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

	repo := New(tx)
	return tx, ctx, repo
}

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func insertPost(t *testing.T, ctx context.Context, tx *pg.Tx, post Post) Post {
	t.Helper()
	if post.AuthorID == 0 {
		post.AuthorID = 1
	}
	if post.Text == "" {
		post.Text = "text of " + post.Title
	}
	if _, err := tx.ModelContext(ctx, &post).Insert(); err != nil {
		t.Fatalf("insert post %q: %v", post.Title, err)
	}
	return post
}

func assertSortedByPubDate(t *testing.T, posts []Post) {
	t.Helper()
	for i := 0; i < len(posts)-1; i++ {
		if posts[i].PubDate.Before(posts[i+1].PubDate) {
			t.Fatalf("posts not sorted by pub_date desc at %d", i)
		}
	}
}

func containsPost(posts []Post, id int) bool {
	for _, p := range posts {
		if p.ID == id {
			return true
		}
	}
	return false
}
