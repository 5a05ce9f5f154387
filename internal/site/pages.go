package site

import (
	"fmt"
	"strconv"

	"github.com/blogicum/blogicum/internal/blog"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

const (
	siteName      = "Blogicum"
	dateFormat    = "2 January 2006, 15:04"
	previewLength = 10
)

func postURL(id int) string {
	return "/posts/" + strconv.Itoa(id) + "/"
}

func categoryURL(slug string) string {
	return "/category/" + slug + "/"
}

func navbarComponent() g.Node {
	return Nav(Class("nav"),
		Div(Class("brand"), A(Href("/"), g.Text(siteName))),
	)
}

func footerComponent() g.Node {
	return Footer(Class("footer"),
		Small(g.Textf("%s · a blog about everything", siteName)),
	)
}

func layout(title string, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
			),
			Body(
				Div(Class("container"),
					navbarComponent(),
					Main(g.Group(children)),
				),
				footerComponent(),
			),
		),
	)
}

// postMeta renders date, author, location and category of a post.
func postMeta(p blog.Post) g.Node {
	return P(Class("post-meta"),
		Span(Class("post-date"), g.Text(p.PubDate.Format(dateFormat))),
		g.Text(" · "),
		Span(Class("post-author"), g.Text("@"+p.AuthorName())),
		g.Text(" · "),
		Span(Class("post-location"), g.Text(p.LocationName())),
		g.If(p.Category != nil, g.Group([]g.Node{
			g.Text(" · "),
			categoryLink(p.Category),
		})),
	)
}

func categoryLink(c *blog.Category) g.Node {
	if c == nil {
		return nil
	}
	return A(Class("post-category"), Href(categoryURL(c.Slug)), g.Text(c.Title))
}

func postPreview(p blog.Post) g.Node {
	return Article(Class("post"),
		H2(A(Href(postURL(p.ID)), g.Text(p.Title))),
		postMeta(p),
		P(Class("post-preview"), g.Text(truncateWords(p.Text, previewLength))),
		A(Class("post-more"), Href(postURL(p.ID)), g.Text("Read more")),
	)
}

func postList(posts []blog.Post) g.Node {
	if len(posts) == 0 {
		return P(Class("empty"), g.Text("No posts yet."))
	}

	nodes := make([]g.Node, len(posts))
	for i := range posts {
		nodes[i] = postPreview(posts[i])
	}
	return Div(Class("post-list"), g.Group(nodes))
}

// IndexPage renders post_list on the main page.
func IndexPage(posts []blog.Post) g.Node {
	return layout(siteName,
		H1(g.Text("Latest posts")),
		postList(posts),
	)
}

// PostPage renders a single post with its text converted from Markdown.
func PostPage(post blog.Post) (g.Node, error) {
	text, err := toHTML(post.Text)
	if err != nil {
		return nil, fmt.Errorf("render post %d text: %w", post.ID, err)
	}

	return layout(post.Title+" | "+siteName,
		Article(Class("post post-detail"),
			H1(g.Text(post.Title)),
			postMeta(post),
			Div(Class("post-text"), g.Raw(text)),
		),
	), nil
}

// CategoryPage renders a category header and its post_list.
func CategoryPage(category blog.Category, posts []blog.Post) g.Node {
	return layout(category.Title+" | "+siteName,
		Header(Class("category"),
			H1(g.Text(category.Title)),
			P(Class("category-description"), g.Text(category.Description)),
		),
		postList(posts),
	)
}

func NotFoundPage() g.Node {
	return layout("Page not found | "+siteName,
		H1(g.Text("Page not found")),
		P(g.Text("The page you are looking for does not exist or is not published yet.")),
		A(Href("/"), g.Text("Back to the main page")),
	)
}

func ErrorPage() g.Node {
	return layout("Error | "+siteName,
		H1(g.Text("Something went wrong")),
		P(g.Text("Please try again later.")),
	)
}
