// Method dispatch and SMD schema of the RPC services, in the layout zenrpc generates.
// Running go generate replaces this file, so keep it in sync with the service methods.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	AuthorService   struct{ List, Create, Delete string }
	BlogService     struct{ Index, Post, Category string }
	CategoryService struct{ List, Get, Create, Update, SetPublished, Delete string }
	LocationService struct{ List, Get, Create, Update, SetPublished, Delete string }
	PostService     struct{ List, Get, Create, Update, SetPublished, Delete string }
}{
	AuthorService: struct{ List, Create, Delete string }{
		List:   "list",
		Create: "create",
		Delete: "delete",
	},
	BlogService: struct{ Index, Post, Category string }{
		Index:    "index",
		Post:     "post",
		Category: "category",
	},
	CategoryService: struct{ List, Get, Create, Update, SetPublished, Delete string }{
		List:         "list",
		Get:          "get",
		Create:       "create",
		Update:       "update",
		SetPublished: "setpublished",
		Delete:       "delete",
	},
	LocationService: struct{ List, Get, Create, Update, SetPublished, Delete string }{
		List:         "list",
		Get:          "get",
		Create:       "create",
		Update:       "update",
		SetPublished: "setpublished",
		Delete:       "delete",
	},
	PostService: struct{ List, Get, Create, Update, SetPublished, Delete string }{
		List:         "list",
		Get:          "get",
		Create:       "create",
		Update:       "update",
		SetPublished: "setpublished",
		Delete:       "delete",
	},
}

// unmarshalParams decodes named or positional params into args.
func unmarshalParams(params json.RawMessage, names []string, args interface{}) *zenrpc.Response {
	var err error
	if zenrpc.IsArray(params) {
		if params, err = zenrpc.ConvertToObject(names, params); err != nil {
			resp := zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			return &resp
		}
	}

	if len(params) > 0 {
		if err := json.Unmarshal(params, args); err != nil {
			resp := zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			return &resp
		}
	}

	return nil
}

func idParam(description string) smd.JSONSchema {
	return smd.JSONSchema{Name: "id", Type: smd.Integer, Description: description}
}

func (AuthorService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List returns authors ordered by username.`,
				Returns:     smd.JSONSchema{Description: `list of authors`, Type: smd.Array},
			},
			"Create": {
				Description: `Create adds an author.`,
				Parameters: []smd.JSONSchema{
					{Name: "author", Type: smd.Object, Description: `new author`},
				},
				Returns: smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:  map[int]string{400: "validation failed"},
			},
			"Delete": {
				Description: `Delete removes an author together with all of their posts.`,
				Parameters:  []smd.JSONSchema{idParam(`author numeric ID`)},
				Returns:     smd.JSONSchema{Type: smd.Boolean},
				Errors:      map[int]string{404: "author not found"},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s AuthorService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}

	switch method {
	case RPC.AuthorService.List:
		resp.Set(s.List(ctx))

	case RPC.AuthorService.Create:
		var args = struct {
			Author AuthorInput `json:"author"`
		}{}
		if r := unmarshalParams(params, []string{"author"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Create(ctx, args.Author))

	case RPC.AuthorService.Delete:
		var args = struct {
			Id int `json:"id"`
		}{}
		if r := unmarshalParams(params, []string{"id"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Delete(ctx, args.Id))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

func (BlogService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"Index": {
				Description: `Index returns the latest visible posts, newest first.`,
				Returns:     smd.JSONSchema{Description: `list of posts`, Type: smd.Array},
				Errors:      map[int]string{500: "internal server error"},
			},
			"Post": {
				Description: `Post returns a visible post by id.`,
				Parameters:  []smd.JSONSchema{idParam(`post numeric ID`)},
				Returns:     smd.JSONSchema{Description: `post with full text`, Type: smd.Object, Optional: true},
				Errors:      map[int]string{404: "post not found", 500: "internal server error"},
			},
			"Category": {
				Description: `Category returns a published category and its visible posts.`,
				Parameters: []smd.JSONSchema{
					{Name: "slug", Type: smd.String, Description: `category slug`},
				},
				Returns: smd.JSONSchema{Description: `category with posts`, Type: smd.Object, Optional: true},
				Errors:  map[int]string{404: "category not found", 500: "internal server error"},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s BlogService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}

	switch method {
	case RPC.BlogService.Index:
		resp.Set(s.Index(ctx))

	case RPC.BlogService.Post:
		var args = struct {
			Id int `json:"id"`
		}{}
		if r := unmarshalParams(params, []string{"id"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Post(ctx, args.Id))

	case RPC.BlogService.Category:
		var args = struct {
			Slug string `json:"slug"`
		}{}
		if r := unmarshalParams(params, []string{"slug"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Category(ctx, args.Slug))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

func (CategoryService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List returns categories newest first.`,
				Parameters: []smd.JSONSchema{
					{Name: "filter", Type: smd.Object, Optional: true, Description: `search and publication filter`},
				},
				Returns: smd.JSONSchema{Description: `list of categories`, Type: smd.Array},
				Errors:  map[int]string{500: "internal server error"},
			},
			"Get": {
				Description: `Get returns a category by id.`,
				Parameters:  []smd.JSONSchema{idParam(`category numeric ID`)},
				Returns:     smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:      map[int]string{404: "category not found"},
			},
			"Create": {
				Description: `Create adds a category.`,
				Parameters: []smd.JSONSchema{
					{Name: "category", Type: smd.Object, Description: `new category`},
				},
				Returns: smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:  map[int]string{400: "validation failed"},
			},
			"Update": {
				Description: `Update replaces the editable fields of a category.`,
				Parameters: []smd.JSONSchema{
					idParam(`category numeric ID`),
					{Name: "category", Type: smd.Object, Description: `category fields`},
				},
				Returns: smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:  map[int]string{400: "validation failed", 404: "category not found"},
			},
			"SetPublished": {
				Description: `SetPublished changes only the publication flag of a category.`,
				Parameters: []smd.JSONSchema{
					idParam(`category numeric ID`),
					{Name: "isPublished", Type: smd.Boolean, Description: `new publication state`},
				},
				Returns: smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:  map[int]string{404: "category not found"},
			},
			"Delete": {
				Description: `Delete removes a category. Its posts stay without a category.`,
				Parameters:  []smd.JSONSchema{idParam(`category numeric ID`)},
				Returns:     smd.JSONSchema{Type: smd.Boolean},
				Errors:      map[int]string{404: "category not found"},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s CategoryService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}

	switch method {
	case RPC.CategoryService.List:
		var args = struct {
			Filter *SearchFilter `json:"filter"`
		}{}
		if r := unmarshalParams(params, []string{"filter"}, &args); r != nil {
			return *r
		}
		resp.Set(s.List(ctx, args.Filter))

	case RPC.CategoryService.Get:
		var args = struct {
			Id int `json:"id"`
		}{}
		if r := unmarshalParams(params, []string{"id"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Get(ctx, args.Id))

	case RPC.CategoryService.Create:
		var args = struct {
			Category CategoryInput `json:"category"`
		}{}
		if r := unmarshalParams(params, []string{"category"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Create(ctx, args.Category))

	case RPC.CategoryService.Update:
		var args = struct {
			Id       int           `json:"id"`
			Category CategoryInput `json:"category"`
		}{}
		if r := unmarshalParams(params, []string{"id", "category"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Update(ctx, args.Id, args.Category))

	case RPC.CategoryService.SetPublished:
		var args = struct {
			Id          int  `json:"id"`
			IsPublished bool `json:"isPublished"`
		}{}
		if r := unmarshalParams(params, []string{"id", "isPublished"}, &args); r != nil {
			return *r
		}
		resp.Set(s.SetPublished(ctx, args.Id, args.IsPublished))

	case RPC.CategoryService.Delete:
		var args = struct {
			Id int `json:"id"`
		}{}
		if r := unmarshalParams(params, []string{"id"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Delete(ctx, args.Id))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

func (LocationService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List returns locations newest first.`,
				Parameters: []smd.JSONSchema{
					{Name: "filter", Type: smd.Object, Optional: true, Description: `search and publication filter`},
				},
				Returns: smd.JSONSchema{Description: `list of locations`, Type: smd.Array},
			},
			"Get": {
				Description: `Get returns a location by id.`,
				Parameters:  []smd.JSONSchema{idParam(`location numeric ID`)},
				Returns:     smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:      map[int]string{404: "location not found"},
			},
			"Create": {
				Description: `Create adds a location.`,
				Parameters: []smd.JSONSchema{
					{Name: "location", Type: smd.Object, Description: `new location`},
				},
				Returns: smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:  map[int]string{400: "validation failed"},
			},
			"Update": {
				Description: `Update replaces the editable fields of a location.`,
				Parameters: []smd.JSONSchema{
					idParam(`location numeric ID`),
					{Name: "location", Type: smd.Object, Description: `location fields`},
				},
				Returns: smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:  map[int]string{400: "validation failed", 404: "location not found"},
			},
			"SetPublished": {
				Description: `SetPublished changes only the publication flag of a location.`,
				Parameters: []smd.JSONSchema{
					idParam(`location numeric ID`),
					{Name: "isPublished", Type: smd.Boolean, Description: `new publication state`},
				},
				Returns: smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:  map[int]string{404: "location not found"},
			},
			"Delete": {
				Description: `Delete removes a location. Its posts stay without a location.`,
				Parameters:  []smd.JSONSchema{idParam(`location numeric ID`)},
				Returns:     smd.JSONSchema{Type: smd.Boolean},
				Errors:      map[int]string{404: "location not found"},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s LocationService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}

	switch method {
	case RPC.LocationService.List:
		var args = struct {
			Filter *SearchFilter `json:"filter"`
		}{}
		if r := unmarshalParams(params, []string{"filter"}, &args); r != nil {
			return *r
		}
		resp.Set(s.List(ctx, args.Filter))

	case RPC.LocationService.Get:
		var args = struct {
			Id int `json:"id"`
		}{}
		if r := unmarshalParams(params, []string{"id"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Get(ctx, args.Id))

	case RPC.LocationService.Create:
		var args = struct {
			Location LocationInput `json:"location"`
		}{}
		if r := unmarshalParams(params, []string{"location"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Create(ctx, args.Location))

	case RPC.LocationService.Update:
		var args = struct {
			Id       int           `json:"id"`
			Location LocationInput `json:"location"`
		}{}
		if r := unmarshalParams(params, []string{"id", "location"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Update(ctx, args.Id, args.Location))

	case RPC.LocationService.SetPublished:
		var args = struct {
			Id          int  `json:"id"`
			IsPublished bool `json:"isPublished"`
		}{}
		if r := unmarshalParams(params, []string{"id", "isPublished"}, &args); r != nil {
			return *r
		}
		resp.Set(s.SetPublished(ctx, args.Id, args.IsPublished))

	case RPC.LocationService.Delete:
		var args = struct {
			Id int `json:"id"`
		}{}
		if r := unmarshalParams(params, []string{"id"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Delete(ctx, args.Id))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}

func (PostService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List returns posts by pub date, newest first.`,
				Parameters: []smd.JSONSchema{
					{Name: "filter", Type: smd.Object, Optional: true, Description: `search, publication, category and location filter`},
				},
				Returns: smd.JSONSchema{Description: `list of posts`, Type: smd.Array},
			},
			"Get": {
				Description: `Get returns a post by id.`,
				Parameters:  []smd.JSONSchema{idParam(`post numeric ID`)},
				Returns:     smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:      map[int]string{404: "post not found"},
			},
			"Create": {
				Description: `Create adds a post. A future pubDate defers its publication.`,
				Parameters: []smd.JSONSchema{
					{Name: "post", Type: smd.Object, Description: `new post`},
				},
				Returns: smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:  map[int]string{400: "validation failed"},
			},
			"Update": {
				Description: `Update replaces the editable fields of a post.`,
				Parameters: []smd.JSONSchema{
					idParam(`post numeric ID`),
					{Name: "post", Type: smd.Object, Description: `post fields`},
				},
				Returns: smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:  map[int]string{400: "validation failed", 404: "post not found"},
			},
			"SetPublished": {
				Description: `SetPublished changes only the publication flag of a post.`,
				Parameters: []smd.JSONSchema{
					idParam(`post numeric ID`),
					{Name: "isPublished", Type: smd.Boolean, Description: `new publication state`},
				},
				Returns: smd.JSONSchema{Type: smd.Object, Optional: true},
				Errors:  map[int]string{404: "post not found"},
			},
			"Delete": {
				Description: `Delete removes a post.`,
				Parameters:  []smd.JSONSchema{idParam(`post numeric ID`)},
				Returns:     smd.JSONSchema{Type: smd.Boolean},
				Errors:      map[int]string{404: "post not found"},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s PostService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}

	switch method {
	case RPC.PostService.List:
		var args = struct {
			Filter *PostFilter `json:"filter"`
		}{}
		if r := unmarshalParams(params, []string{"filter"}, &args); r != nil {
			return *r
		}
		resp.Set(s.List(ctx, args.Filter))

	case RPC.PostService.Get:
		var args = struct {
			Id int `json:"id"`
		}{}
		if r := unmarshalParams(params, []string{"id"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Get(ctx, args.Id))

	case RPC.PostService.Create:
		var args = struct {
			Post PostInput `json:"post"`
		}{}
		if r := unmarshalParams(params, []string{"post"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Create(ctx, args.Post))

	case RPC.PostService.Update:
		var args = struct {
			Id   int       `json:"id"`
			Post PostInput `json:"post"`
		}{}
		if r := unmarshalParams(params, []string{"id", "post"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Update(ctx, args.Id, args.Post))

	case RPC.PostService.SetPublished:
		var args = struct {
			Id          int  `json:"id"`
			IsPublished bool `json:"isPublished"`
		}{}
		if r := unmarshalParams(params, []string{"id", "isPublished"}, &args); r != nil {
			return *r
		}
		resp.Set(s.SetPublished(ctx, args.Id, args.IsPublished))

	case RPC.PostService.Delete:
		var args = struct {
			Id int `json:"id"`
		}{}
		if r := unmarshalParams(params, []string{"id"}, &args); r != nil {
			return *r
		}
		resp.Set(s.Delete(ctx, args.Id))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
