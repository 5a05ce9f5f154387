package rpc

import (
	"context"
	"log/slog"

	"github.com/blogicum/blogicum/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

// CategoryService manages categories.
type CategoryService struct {
	zenrpc.Service
	admin *blog.Admin
	log   *slog.Logger
}

func NewCategoryService(admin *blog.Admin, log *slog.Logger) *CategoryService {
	return &CategoryService{admin: admin, log: log}
}

// List returns categories newest first.
//
//zenrpc:filter search and publication filter
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *CategoryService) List(ctx context.Context, filter *SearchFilter) ([]AdminCategory, error) {
	list, err := s.admin.Categories(ctx, filter.orEmpty().ToCategoryFilter())
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	return NewAdminCategories(list), nil
}

// Get returns a category by id.
//
//zenrpc:id category numeric ID
//zenrpc:404 category not found
func (s *CategoryService) Get(ctx context.Context, id int) (*AdminCategory, error) {
	category, err := s.admin.CategoryByID(ctx, id)
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	c := NewAdminCategory(*category)
	return &c, nil
}

// Create adds a category.
//
//zenrpc:category new category
//zenrpc:400 validation failed
func (s *CategoryService) Create(ctx context.Context, category CategoryInput) (*AdminCategory, error) {
	created, err := s.admin.CreateCategory(ctx, category.ToModel())
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	c := NewAdminCategory(*created)
	return &c, nil
}

// Update replaces the editable fields of a category.
//
//zenrpc:id category numeric ID
//zenrpc:category category fields
//zenrpc:400 validation failed
//zenrpc:404 category not found
func (s *CategoryService) Update(ctx context.Context, id int, category CategoryInput) (*AdminCategory, error) {
	updated, err := s.admin.UpdateCategory(ctx, id, category.ToModel())
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	c := NewAdminCategory(*updated)
	return &c, nil
}

// SetPublished changes only the publication flag of a category.
//
//zenrpc:id category numeric ID
//zenrpc:isPublished new publication state
//zenrpc:404 category not found
func (s *CategoryService) SetPublished(ctx context.Context, id int, isPublished bool) (*AdminCategory, error) {
	updated, err := s.admin.SetCategoryPublished(ctx, id, isPublished)
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	c := NewAdminCategory(*updated)
	return &c, nil
}

// Delete removes a category. Its posts stay without a category.
//
//zenrpc:id category numeric ID
//zenrpc:404 category not found
func (s *CategoryService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.admin.DeleteCategory(ctx, id); err != nil {
		return false, newError(ctx, s.log, err)
	}

	return true, nil
}

// LocationService manages locations.
type LocationService struct {
	zenrpc.Service
	admin *blog.Admin
	log   *slog.Logger
}

func NewLocationService(admin *blog.Admin, log *slog.Logger) *LocationService {
	return &LocationService{admin: admin, log: log}
}

// List returns locations newest first.
//
//zenrpc:filter search and publication filter
//zenrpc:return list of locations
func (s *LocationService) List(ctx context.Context, filter *SearchFilter) ([]AdminLocation, error) {
	list, err := s.admin.Locations(ctx, filter.orEmpty().ToLocationFilter())
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	return NewAdminLocations(list), nil
}

// Get returns a location by id.
//
//zenrpc:id location numeric ID
//zenrpc:404 location not found
func (s *LocationService) Get(ctx context.Context, id int) (*AdminLocation, error) {
	location, err := s.admin.LocationByID(ctx, id)
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	l := NewAdminLocation(*location)
	return &l, nil
}

// Create adds a location.
//
//zenrpc:location new location
//zenrpc:400 validation failed
func (s *LocationService) Create(ctx context.Context, location LocationInput) (*AdminLocation, error) {
	created, err := s.admin.CreateLocation(ctx, location.ToModel())
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	l := NewAdminLocation(*created)
	return &l, nil
}

// Update replaces the editable fields of a location.
//
//zenrpc:id location numeric ID
//zenrpc:location location fields
//zenrpc:400 validation failed
//zenrpc:404 location not found
func (s *LocationService) Update(ctx context.Context, id int, location LocationInput) (*AdminLocation, error) {
	updated, err := s.admin.UpdateLocation(ctx, id, location.ToModel())
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	l := NewAdminLocation(*updated)
	return &l, nil
}

// SetPublished changes only the publication flag of a location.
//
//zenrpc:id location numeric ID
//zenrpc:isPublished new publication state
//zenrpc:404 location not found
func (s *LocationService) SetPublished(ctx context.Context, id int, isPublished bool) (*AdminLocation, error) {
	updated, err := s.admin.SetLocationPublished(ctx, id, isPublished)
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	l := NewAdminLocation(*updated)
	return &l, nil
}

// Delete removes a location. Its posts stay without a location.
//
//zenrpc:id location numeric ID
//zenrpc:404 location not found
func (s *LocationService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.admin.DeleteLocation(ctx, id); err != nil {
		return false, newError(ctx, s.log, err)
	}

	return true, nil
}

// PostService manages posts regardless of their visibility.
type PostService struct {
	zenrpc.Service
	admin *blog.Admin
	log   *slog.Logger
}

func NewPostService(admin *blog.Admin, log *slog.Logger) *PostService {
	return &PostService{admin: admin, log: log}
}

// List returns posts by pub date, newest first.
//
//zenrpc:filter search, publication, category and location filter
//zenrpc:return list of posts
func (s *PostService) List(ctx context.Context, filter *PostFilter) ([]AdminPost, error) {
	list, err := s.admin.Posts(ctx, filter.ToModel())
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	return NewAdminPosts(list), nil
}

// Get returns a post by id.
//
//zenrpc:id post numeric ID
//zenrpc:404 post not found
func (s *PostService) Get(ctx context.Context, id int) (*AdminPost, error) {
	post, err := s.admin.PostByID(ctx, id)
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	p := NewAdminPost(*post)
	return &p, nil
}

// Create adds a post. A future pubDate defers its publication.
//
//zenrpc:post new post
//zenrpc:400 validation failed
func (s *PostService) Create(ctx context.Context, post PostInput) (*AdminPost, error) {
	created, err := s.admin.CreatePost(ctx, post.ToModel())
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	p := NewAdminPost(*created)
	return &p, nil
}

// Update replaces the editable fields of a post.
//
//zenrpc:id post numeric ID
//zenrpc:post post fields
//zenrpc:400 validation failed
//zenrpc:404 post not found
func (s *PostService) Update(ctx context.Context, id int, post PostInput) (*AdminPost, error) {
	updated, err := s.admin.UpdatePost(ctx, id, post.ToModel())
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	p := NewAdminPost(*updated)
	return &p, nil
}

// SetPublished changes only the publication flag of a post.
//
//zenrpc:id post numeric ID
//zenrpc:isPublished new publication state
//zenrpc:404 post not found
func (s *PostService) SetPublished(ctx context.Context, id int, isPublished bool) (*AdminPost, error) {
	updated, err := s.admin.SetPostPublished(ctx, id, isPublished)
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	p := NewAdminPost(*updated)
	return &p, nil
}

// Delete removes a post.
//
//zenrpc:id post numeric ID
//zenrpc:404 post not found
func (s *PostService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.admin.DeletePost(ctx, id); err != nil {
		return false, newError(ctx, s.log, err)
	}

	return true, nil
}

// AuthorService manages authors.
type AuthorService struct {
	zenrpc.Service
	admin *blog.Admin
	log   *slog.Logger
}

func NewAuthorService(admin *blog.Admin, log *slog.Logger) *AuthorService {
	return &AuthorService{admin: admin, log: log}
}

// List returns authors ordered by username.
//
//zenrpc:return list of authors
func (s *AuthorService) List(ctx context.Context) ([]Author, error) {
	list, err := s.admin.Authors(ctx)
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	return NewAuthors(list), nil
}

// Create adds an author.
//
//zenrpc:author new author
//zenrpc:400 validation failed
func (s *AuthorService) Create(ctx context.Context, author AuthorInput) (*Author, error) {
	created, err := s.admin.CreateAuthor(ctx, blog.AuthorInput{Username: author.Username})
	if err != nil {
		return nil, newError(ctx, s.log, err)
	}

	a := NewAuthor(*created)
	return &a, nil
}

// Delete removes an author together with all of their posts.
//
//zenrpc:id author numeric ID
//zenrpc:404 author not found
func (s *AuthorService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.admin.DeleteAuthor(ctx, id); err != nil {
		return false, newError(ctx, s.log, err)
	}

	return true, nil
}
