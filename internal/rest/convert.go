package rest

import "github.com/blogicum/blogicum/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Title:       c.Title,
		Description: c.Description,
		Slug:        c.Slug,
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
		post.Author = &Author{
			AuthorID: p.Author.ID,
			Username: p.Author.Username,
		}
	}

	if p.Location != nil {
		post.Location = &Location{
			LocationID: p.Location.ID,
			Name:       p.Location.Name,
		}
	}

	if p.Category != nil {
		category := NewCategory(*p.Category)
		post.Category = &category
	}

	return post
}

func NewPosts(list []blog.Post) []Post { return Map(list, NewPost) }

func NewAdminPost(p blog.Post) AdminPost {
	return AdminPost{
		Post:        NewPost(p),
		IsPublished: p.IsPublished,
		CreatedAt:   p.CreatedAt,
	}
}

func NewAdminPosts(list []blog.Post) []AdminPost { return Map(list, NewAdminPost) }

func (r AdminPostsRequest) ToModel() blog.PostFilter {
	return blog.PostFilter{
		Search:      r.Search,
		IsPublished: r.IsPublished,
		CategoryID:  r.CategoryID,
		LocationID:  r.LocationID,
		PubDateFrom: r.PubDateFrom,
		PubDateTo:   r.PubDateTo,
	}
}
