package rpc

import (
	"log/slog"

	"github.com/blogicum/blogicum/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

// New returns the public RPC server.
func New(logger *slog.Logger, reader Reader) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("blog", NewBlogService(reader, logger))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blogicum", nil))

	return rpcServer
}

// NewAdmin returns the RPC server for content management.
func NewAdmin(logger *slog.Logger, admin *blog.Admin) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("category", NewCategoryService(admin, logger))
	rpcServer.Register("location", NewLocationService(admin, logger))
	rpcServer.Register("post", NewPostService(admin, logger))
	rpcServer.Register("author", NewAuthorService(admin, logger))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blogicum-admin", nil))

	return rpcServer
}
