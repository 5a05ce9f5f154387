package rpc

import "github.com/blogicum/blogicum/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func newPublicationState(s blog.PublicationState) PublicationState {
	return PublicationState{
		IsPublished: s.IsPublished,
		CreatedAt:   s.CreatedAt,
	}
}

func NewAuthor(a blog.Author) Author {
	return Author{
		AuthorID: a.ID,
		Username: a.Username,
	}
}

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Title:       c.Title,
		Description: c.Description,
		Slug:        c.Slug,
	}
}

func NewLocation(l blog.Location) Location {
	return Location{
		LocationID: l.ID,
		Name:       l.Name,
	}
}

func NewPost(p blog.Post) Post {
	post := Post{
		PostID:       p.ID,
		Title:        p.Title,
		Text:         p.Text,
		PubDate:      p.PubDate,
		LocationName: p.LocationName(),
	}

	if p.Author != nil {
		author := NewAuthor(*p.Author)
		post.Author = &author
	}

	if p.Location != nil {
		location := NewLocation(*p.Location)
		post.Location = &location
	}

	if p.Category != nil {
		category := NewCategory(*p.Category)
		post.Category = &category
	}

	return post
}

func NewPosts(list []blog.Post) []Post { return Map(list, NewPost) }

func NewAdminCategory(c blog.Category) AdminCategory {
	return AdminCategory{
		Category:         NewCategory(c),
		PublicationState: newPublicationState(c.PublicationState),
	}
}

func NewAdminLocation(l blog.Location) AdminLocation {
	return AdminLocation{
		Location:         NewLocation(l),
		PublicationState: newPublicationState(l.PublicationState),
	}
}

func NewAdminPost(p blog.Post) AdminPost {
	return AdminPost{
		PostID:           p.ID,
		Title:            p.Title,
		Text:             p.Text,
		PubDate:          p.PubDate,
		AuthorID:         p.AuthorID,
		LocationID:       p.LocationID,
		CategoryID:       p.CategoryID,
		PublicationState: newPublicationState(p.PublicationState),
	}
}

func NewAuthors(list []blog.Author) []Author                 { return Map(list, NewAuthor) }
func NewAdminCategories(list []blog.Category) []AdminCategory { return Map(list, NewAdminCategory) }
func NewAdminLocations(list []blog.Location) []AdminLocation  { return Map(list, NewAdminLocation) }
func NewAdminPosts(list []blog.Post) []AdminPost              { return Map(list, NewAdminPost) }
