package di

import (
	"log/slog"
	"os"

	"newsfeed/internal/config"
	"newsfeed/internal/handler"
	"newsfeed/internal/repository"
	"newsfeed/internal/server"

	"github.com/gin-gonic/gin"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

func provideArticleRepository(logger *slog.Logger) *repository.StaticArticleRepository {
	repo := repository.NewStaticArticleRepository(repository.SampleArticles())
	logger.Info("article catalog loaded", "count", repo.Count())
	return repo
}

func provideRouter(cfg *config.Config, h *handler.NewsHandler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	return handler.NewRouter(h, logger)
}

func provideServer(cfg *config.Config, router *gin.Engine, logger *slog.Logger) *server.Server {
	return server.New(cfg.Addr(), router, logger, cfg.ShutdownTimeout)
}
