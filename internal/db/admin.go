package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

// CategorySearch filters the admin category list.
type CategorySearch struct {
	Search      string
	IsPublished *bool
}

// LocationSearch filters the admin location list.
type LocationSearch struct {
	Search      string
	IsPublished *bool
}

// PostSearch filters the admin post list.
type PostSearch struct {
	Search      string
	IsPublished *bool
	CategoryID  *int
	LocationID  *int
	PubDateFrom *time.Time
	PubDateTo   *time.Time
}

var (
	categoryColumns = []string{"title", "description", "slug", "is_published"}
	locationColumns = []string{"name", "is_published"}
	postColumns     = []string{"title", "text", "pub_date", "author_id", "location_id", "category_id", "is_published"}
)

func (r *Repository) Categories(ctx context.Context, s CategorySearch) ([]Category, error) {
	var categories []Category
	query := search(r.db.ModelContext(ctx, &categories), s.Search, "category.title", "category.description")

	if s.IsPublished != nil {
		query = query.Where(`"category"."is_published" = ?`, *s.IsPublished)
	}

	err := query.
		OrderExpr(`"category"."created_at" DESC, "category"."id" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{ID: categoryID}
	err := r.db.ModelContext(ctx, category).WherePK().Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) AddCategory(ctx context.Context, category *Category) (*Category, error) {
	_, err := r.db.ModelContext(ctx, category).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", mapWriteError(err))
	}

	return category, nil
}

// UpdateCategory writes every editable column; created_at is left untouched.
// It returns false when no row has the given id.
func (r *Repository) UpdateCategory(ctx context.Context, category *Category) (bool, error) {
	res, err := r.db.ModelContext(ctx, category).
		Column(categoryColumns...).
		WherePK().
		Returning("*").
		Update()
	if errors.Is(err, pg.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to update category: %w", mapWriteError(err))
	}

	return res.RowsAffected() > 0, nil
}

// DeleteCategory removes the category; its posts stay with category_id set to NULL.
func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Category{ID: categoryID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) Locations(ctx context.Context, s LocationSearch) ([]Location, error) {
	var locations []Location
	query := search(r.db.ModelContext(ctx, &locations), s.Search, "location.name")

	if s.IsPublished != nil {
		query = query.Where(`"location"."is_published" = ?`, *s.IsPublished)
	}

	err := query.
		OrderExpr(`"location"."created_at" DESC, "location"."id" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	return locations, nil
}

func (r *Repository) LocationByID(ctx context.Context, locationID int) (*Location, error) {
	location := &Location{ID: locationID}
	err := r.db.ModelContext(ctx, location).WherePK().Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get location by id: %w", err)
	}

	return location, nil
}

func (r *Repository) AddLocation(ctx context.Context, location *Location) (*Location, error) {
	_, err := r.db.ModelContext(ctx, location).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert location: %w", mapWriteError(err))
	}

	return location, nil
}

func (r *Repository) UpdateLocation(ctx context.Context, location *Location) (bool, error) {
	res, err := r.db.ModelContext(ctx, location).
		Column(locationColumns...).
		WherePK().
		Returning("*").
		Update()
	if errors.Is(err, pg.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to update location: %w", mapWriteError(err))
	}

	return res.RowsAffected() > 0, nil
}

// DeleteLocation removes the location; its posts stay with location_id set to NULL.
func (r *Repository) DeleteLocation(ctx context.Context, locationID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Location{ID: locationID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete location: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// Posts returns every post matching s regardless of visibility, newest first.
func (r *Repository) Posts(ctx context.Context, s PostSearch) ([]Post, error) {
	var posts []Post
	query := OrderByPubDate(WithRelated(r.db.ModelContext(ctx, &posts)))
	query = search(query, s.Search, "post.title", "post.text")

	if s.IsPublished != nil {
		query = query.Where(`"post"."is_published" = ?`, *s.IsPublished)
	}

	if s.CategoryID != nil {
		query = query.Where(`"post"."category_id" = ?`, *s.CategoryID)
	}

	if s.LocationID != nil {
		query = query.Where(`"post"."location_id" = ?`, *s.LocationID)
	}

	if s.PubDateFrom != nil {
		query = query.Where(`"post"."pub_date" >= ?`, *s.PubDateFrom)
	}

	if s.PubDateTo != nil {
		query = query.Where(`"post"."pub_date" < ?`, *s.PubDateTo)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// PostByID returns the post regardless of visibility, nil if it does not exist.
func (r *Repository) PostByID(ctx context.Context, postID int) (*Post, error) {
	post := &Post{}
	err := WithRelated(r.db.ModelContext(ctx, post)).
		Where(`"post"."id" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *Repository) AddPost(ctx context.Context, post *Post) (*Post, error) {
	_, err := r.db.ModelContext(ctx, post).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", mapWriteError(err))
	}

	return post, nil
}

func (r *Repository) UpdatePost(ctx context.Context, post *Post) (bool, error) {
	res, err := r.db.ModelContext(ctx, post).
		Column(postColumns...).
		WherePK().
		Returning("*").
		Update()
	if errors.Is(err, pg.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to update post: %w", mapWriteError(err))
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeletePost(ctx context.Context, postID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Post{ID: postID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) Authors(ctx context.Context) ([]Author, error) {
	var authors []Author
	err := r.db.ModelContext(ctx, &authors).
		OrderExpr(`"author"."username" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}

	return authors, nil
}

func (r *Repository) AddAuthor(ctx context.Context, author *Author) (*Author, error) {
	_, err := r.db.ModelContext(ctx, author).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert author: %w", mapWriteError(err))
	}

	return author, nil
}

// DeleteAuthor removes the author together with all of their posts.
func (r *Repository) DeleteAuthor(ctx context.Context, authorID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Author{ID: authorID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete author: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
