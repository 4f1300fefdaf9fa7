//go:build wireinject

package di

import (
	"github.com/google/wire"

	"newsfeed/internal/config"
	"newsfeed/internal/handler"
	"newsfeed/internal/repository"
	"newsfeed/internal/server"
)

// InitializeServer wires the API components together.
func InitializeServer() (*server.Server, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		provideArticleRepository,
		wire.Bind(new(handler.ArticleStore), new(*repository.StaticArticleRepository)),
		handler.NewNewsHandler,
		provideRouter,
		provideServer,
	)
	return nil, nil
}
