package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/blogicum/blogicum/internal/db"
)

const (
	titleMaxLength    = 256
	usernameMaxLength = 150
)

// ValidationError describes invalid admin input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// constraintFields maps storage constraints to input fields.
var constraintFields = map[string]*ValidationError{
	db.ConstraintCategorySlug:   invalid("slug", "category with this slug already exists"),
	db.ConstraintAuthorUsername: invalid("username", "author with this username already exists"),
	db.ConstraintPostAuthor:     invalid("authorId", "author does not exist"),
	db.ConstraintPostLocation:   invalid("locationId", "location does not exist"),
	db.ConstraintPostCategory:   invalid("categoryId", "category does not exist"),
}

// AdminRepository is the storage needed by the administrative operations.
type AdminRepository interface {
	Categories(ctx context.Context, s db.CategorySearch) ([]db.Category, error)
	CategoryByID(ctx context.Context, categoryID int) (*db.Category, error)
	AddCategory(ctx context.Context, category *db.Category) (*db.Category, error)
	UpdateCategory(ctx context.Context, category *db.Category) (bool, error)
	DeleteCategory(ctx context.Context, categoryID int) (bool, error)

	Locations(ctx context.Context, s db.LocationSearch) ([]db.Location, error)
	LocationByID(ctx context.Context, locationID int) (*db.Location, error)
	AddLocation(ctx context.Context, location *db.Location) (*db.Location, error)
	UpdateLocation(ctx context.Context, location *db.Location) (bool, error)
	DeleteLocation(ctx context.Context, locationID int) (bool, error)

	Posts(ctx context.Context, s db.PostSearch) ([]db.Post, error)
	PostByID(ctx context.Context, postID int) (*db.Post, error)
	AddPost(ctx context.Context, post *db.Post) (*db.Post, error)
	UpdatePost(ctx context.Context, post *db.Post) (bool, error)
	DeletePost(ctx context.Context, postID int) (bool, error)

	Authors(ctx context.Context) ([]db.Author, error)
	AddAuthor(ctx context.Context, author *db.Author) (*db.Author, error)
	DeleteAuthor(ctx context.Context, authorID int) (bool, error)
}

// Admin manages content regardless of its visibility.
type Admin struct {
	db    AdminRepository
	cache Cache
	log   *slog.Logger
}

func NewAdmin(repo AdminRepository, logger *slog.Logger) *Admin {
	return &Admin{
		db:  repo,
		log: logger,
	}
}

// WithCache makes every successful write flush c.
func (a *Admin) WithCache(c Cache) *Admin {
	a.cache = c
	return a
}

func (a *Admin) Categories(ctx context.Context, f CategoryFilter) ([]Category, error) {
	list, err := a.db.Categories(ctx, f.ToDB())
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

func (a *Admin) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	dbCategory, err := a.db.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if dbCategory == nil {
		return nil, ErrNotFound
	}

	category := NewCategory(*dbCategory)
	return &category, nil
}

func (a *Admin) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	if in.Slug == "" {
		in.Slug = GenerateSlug(in.Title)
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	dbCategory := &db.Category{
		Title:            in.Title,
		Description:      in.Description,
		Slug:             in.Slug,
		PublicationState: db.PublicationState{IsPublished: publishedOr(in.IsPublished, true)},
	}

	if _, err := a.db.AddCategory(ctx, dbCategory); err != nil {
		return nil, writeError("db add category", err)
	}

	a.flush(ctx)

	category := NewCategory(*dbCategory)
	return &category, nil
}

// UpdateCategory replaces the editable fields. Empty Slug keeps the current one.
func (a *Admin) UpdateCategory(ctx context.Context, categoryID int, in CategoryInput) (*Category, error) {
	current, err := a.db.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if current == nil {
		return nil, ErrNotFound
	}

	if in.Slug == "" {
		in.Slug = current.Slug
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	current.Title = in.Title
	current.Description = in.Description
	current.Slug = in.Slug
	current.IsPublished = publishedOr(in.IsPublished, current.IsPublished)

	if ok, err := a.db.UpdateCategory(ctx, current); err != nil {
		return nil, writeError("db update category", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	a.flush(ctx)

	category := NewCategory(*current)
	return &category, nil
}

// SetCategoryPublished changes only the publication flag of the category.
func (a *Admin) SetCategoryPublished(ctx context.Context, categoryID int, published bool) (*Category, error) {
	current, err := a.db.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if current == nil {
		return nil, ErrNotFound
	}

	current.IsPublished = published
	if ok, err := a.db.UpdateCategory(ctx, current); err != nil {
		return nil, writeError("db update category", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	a.flush(ctx)

	category := NewCategory(*current)
	return &category, nil
}

// DeleteCategory removes the category; its posts lose the category and stop being visible.
func (a *Admin) DeleteCategory(ctx context.Context, categoryID int) error {
	ok, err := a.db.DeleteCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("db delete category: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	a.flush(ctx)
	return nil
}

func (a *Admin) Locations(ctx context.Context, f LocationFilter) ([]Location, error) {
	list, err := a.db.Locations(ctx, f.ToDB())
	if err != nil {
		return nil, fmt.Errorf("db get locations: %w", err)
	}

	return NewLocations(list), nil
}

func (a *Admin) LocationByID(ctx context.Context, locationID int) (*Location, error) {
	dbLocation, err := a.db.LocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("db get location by id: %w", err)
	} else if dbLocation == nil {
		return nil, ErrNotFound
	}

	location := NewLocation(*dbLocation)
	return &location, nil
}

func (a *Admin) CreateLocation(ctx context.Context, in LocationInput) (*Location, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	dbLocation := &db.Location{
		Name:             in.Name,
		PublicationState: db.PublicationState{IsPublished: publishedOr(in.IsPublished, true)},
	}

	if _, err := a.db.AddLocation(ctx, dbLocation); err != nil {
		return nil, writeError("db add location", err)
	}

	a.flush(ctx)

	location := NewLocation(*dbLocation)
	return &location, nil
}

func (a *Admin) UpdateLocation(ctx context.Context, locationID int, in LocationInput) (*Location, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	current, err := a.db.LocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("db get location by id: %w", err)
	} else if current == nil {
		return nil, ErrNotFound
	}

	current.Name = in.Name
	current.IsPublished = publishedOr(in.IsPublished, current.IsPublished)

	if ok, err := a.db.UpdateLocation(ctx, current); err != nil {
		return nil, writeError("db update location", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	a.flush(ctx)

	location := NewLocation(*current)
	return &location, nil
}

// SetLocationPublished changes only the publication flag of the location.
func (a *Admin) SetLocationPublished(ctx context.Context, locationID int, published bool) (*Location, error) {
	current, err := a.db.LocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("db get location by id: %w", err)
	} else if current == nil {
		return nil, ErrNotFound
	}

	current.IsPublished = published
	if ok, err := a.db.UpdateLocation(ctx, current); err != nil {
		return nil, writeError("db update location", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	a.flush(ctx)

	location := NewLocation(*current)
	return &location, nil
}

// DeleteLocation removes the location; its posts stay without one.
func (a *Admin) DeleteLocation(ctx context.Context, locationID int) error {
	ok, err := a.db.DeleteLocation(ctx, locationID)
	if err != nil {
		return fmt.Errorf("db delete location: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	a.flush(ctx)
	return nil
}

func (a *Admin) Posts(ctx context.Context, f PostFilter) ([]Post, error) {
	list, err := a.db.Posts(ctx, f.ToDB())
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return NewPosts(list), nil
}

func (a *Admin) PostByID(ctx context.Context, postID int) (*Post, error) {
	dbPost, err := a.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	post := NewPost(*dbPost)
	return &post, nil
}

func (a *Admin) CreatePost(ctx context.Context, in PostInput) (*Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	dbPost := in.toDB()
	dbPost.IsPublished = publishedOr(in.IsPublished, true)

	if _, err := a.db.AddPost(ctx, dbPost); err != nil {
		return nil, writeError("db add post", err)
	}

	a.flush(ctx)

	post := NewPost(*dbPost)
	return &post, nil
}

func (a *Admin) UpdatePost(ctx context.Context, postID int, in PostInput) (*Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	current, err := a.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if current == nil {
		return nil, ErrNotFound
	}

	dbPost := in.toDB()
	dbPost.ID = current.ID
	dbPost.PublicationState = current.PublicationState
	dbPost.IsPublished = publishedOr(in.IsPublished, current.IsPublished)

	if ok, err := a.db.UpdatePost(ctx, dbPost); err != nil {
		return nil, writeError("db update post", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	a.flush(ctx)

	post := NewPost(*dbPost)
	return &post, nil
}

// SetPostPublished changes only the publication flag of the post.
func (a *Admin) SetPostPublished(ctx context.Context, postID int, published bool) (*Post, error) {
	current, err := a.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if current == nil {
		return nil, ErrNotFound
	}

	current.IsPublished = published
	if ok, err := a.db.UpdatePost(ctx, current); err != nil {
		return nil, writeError("db update post", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	a.flush(ctx)

	post := NewPost(*current)
	return &post, nil
}

func (a *Admin) DeletePost(ctx context.Context, postID int) error {
	ok, err := a.db.DeletePost(ctx, postID)
	if err != nil {
		return fmt.Errorf("db delete post: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	a.flush(ctx)
	return nil
}

func (a *Admin) Authors(ctx context.Context) ([]Author, error) {
	list, err := a.db.Authors(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get authors: %w", err)
	}

	return NewAuthors(list), nil
}

func (a *Admin) CreateAuthor(ctx context.Context, in AuthorInput) (*Author, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := in.validate(); err != nil {
		return nil, err
	}

	dbAuthor := &db.Author{Username: in.Username}
	if _, err := a.db.AddAuthor(ctx, dbAuthor); err != nil {
		return nil, writeError("db add author", err)
	}

	a.flush(ctx)

	author := NewAuthor(*dbAuthor)
	return &author, nil
}

// DeleteAuthor removes the author together with all of their posts.
func (a *Admin) DeleteAuthor(ctx context.Context, authorID int) error {
	ok, err := a.db.DeleteAuthor(ctx, authorID)
	if err != nil {
		return fmt.Errorf("db delete author: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	a.flush(ctx)
	return nil
}

// flush drops cached public results after a write.
func (a *Admin) flush(ctx context.Context) {
	if a.cache == nil {
		return
	}

	if err := a.cache.Flush(ctx); err != nil {
		a.log.ErrorContext(ctx, "cache flush failed", "error", err)
	}
}

// writeError turns known constraint violations into validation errors.
func writeError(op string, err error) error {
	var ce *db.ConstraintError
	if errors.As(err, &ce) {
		if verr, ok := constraintFields[ce.Constraint]; ok {
			return invalid(verr.Field, verr.Message)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (in CategoryInput) validate() error {
	if err := validateTitle("title", in.Title); err != nil {
		return err
	}

	if strings.TrimSpace(in.Description) == "" {
		return invalid("description", "is required")
	}

	if in.Slug == "" {
		return invalid("slug", "is required")
	}

	if !ValidSlug(in.Slug) {
		return invalid("slug", fmt.Sprintf("must be at most %d latin letters, digits, hyphens or underscores", slugMaxLength))
	}

	return nil
}

func (in LocationInput) validate() error {
	return validateTitle("name", in.Name)
}

func (in PostInput) validate() error {
	if err := validateTitle("title", in.Title); err != nil {
		return err
	}

	if strings.TrimSpace(in.Text) == "" {
		return invalid("text", "is required")
	}

	if in.PubDate.IsZero() {
		return invalid("pubDate", "is required")
	}

	if in.AuthorID <= 0 {
		return invalid("authorId", "is required")
	}

	return nil
}

func (in PostInput) toDB() *db.Post {
	return &db.Post{
		Title:      in.Title,
		Text:       in.Text,
		PubDate:    in.PubDate,
		AuthorID:   in.AuthorID,
		LocationID: in.LocationID,
		CategoryID: in.CategoryID,
	}
}

func (in AuthorInput) validate() error {
	if in.Username == "" {
		return invalid("username", "is required")
	}

	if utf8.RuneCountInString(in.Username) > usernameMaxLength {
		return invalid("username", fmt.Sprintf("must be at most %d characters", usernameMaxLength))
	}

	return nil
}

func validateTitle(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "is required")
	}

	if utf8.RuneCountInString(value) > titleMaxLength {
		return invalid(field, fmt.Sprintf("must be at most %d characters", titleMaxLength))
	}

	return nil
}
