package blog

import "github.com/blogicum/blogicum/internal/db"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func newPublicationState(s db.PublicationState) PublicationState {
	return PublicationState{
		IsPublished: s.IsPublished,
		CreatedAt:   s.CreatedAt,
	}
}

func NewAuthor(a db.Author) Author {
	return Author{
		ID:       a.ID,
		Username: a.Username,
	}
}

func NewCategory(c db.Category) Category {
	return Category{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Slug:             c.Slug,
		PublicationState: newPublicationState(c.PublicationState),
	}
}

func NewLocation(l db.Location) Location {
	return Location{
		ID:               l.ID,
		Name:             l.Name,
		PublicationState: newPublicationState(l.PublicationState),
	}
}

func NewPost(p db.Post) Post {
	post := Post{
		ID:               p.ID,
		Title:            p.Title,
		Text:             p.Text,
		PubDate:          p.PubDate,
		AuthorID:         p.AuthorID,
		LocationID:       p.LocationID,
		CategoryID:       p.CategoryID,
		PublicationState: newPublicationState(p.PublicationState),
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

func NewAuthors(list []db.Author) []Author       { return Map(list, NewAuthor) }
func NewCategories(list []db.Category) []Category { return Map(list, NewCategory) }
func NewLocations(list []db.Location) []Location  { return Map(list, NewLocation) }
func NewPosts(list []db.Post) []Post              { return Map(list, NewPost) }

func (f CategoryFilter) ToDB() db.CategorySearch {
	return db.CategorySearch{
		Search:      f.Search,
		IsPublished: f.IsPublished,
	}
}

func (f LocationFilter) ToDB() db.LocationSearch {
	return db.LocationSearch{
		Search:      f.Search,
		IsPublished: f.IsPublished,
	}
}

func (f PostFilter) ToDB() db.PostSearch {
	return db.PostSearch{
		Search:      f.Search,
		IsPublished: f.IsPublished,
		CategoryID:  f.CategoryID,
		LocationID:  f.LocationID,
		PubDateFrom: f.PubDateFrom,
		PubDateTo:   f.PubDateTo,
	}
}

// publishedOr resolves an optional publication flag against a fallback.
func publishedOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
