package handler

import (
	"log/slog"
	"net/http"

	"newsfeed/internal/model"

	"github.com/gin-gonic/gin"
)

type ArticleStore interface {
	ListArticles() ([]model.Article, error)
}

type NewsHandler struct {
	repository ArticleStore
}

func NewNewsHandler(repository ArticleStore) *NewsHandler {
	return &NewsHandler{repository: repository}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	articles, err := h.repository.ListArticles()
	if err != nil {
		slog.Error("error listing articles", "error", err, "request_id", RequestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Article store error"})
		return
	}

	if articles == nil {
		articles = []model.Article{}
	}

	c.JSON(http.StatusOK, NewsResponse{
		Status:   StatusOK,
		Count:    len(articles),
		Articles: articles,
	})
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	articles, err := h.repository.ListArticles()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Articles: len(articles),
	})
}
