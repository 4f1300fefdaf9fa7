package tui

import (
	"newsfeed/internal/model"
	"newsfeed/internal/viewer"
)

type fetchDoneMsg struct {
	ticket   viewer.Ticket
	articles []model.Article
	err      error
}

// RefreshMsg asks the model to refresh as if the reader had pulled the list.
type RefreshMsg struct{}
