// Package viewer holds the news list view-model: fetch lifecycle state,
// card shaping and the dialogs shown to the reader. It has no I/O of its own.
package viewer

import (
	"fmt"

	"newsfeed/internal/model"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseRefreshing
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseRefreshing:
		return "refreshing"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

type ViewState struct {
	Articles   []model.Article
	Loading    bool
	Refreshing bool
}

// Ticket identifies one fetch. Only the most recently issued ticket may
// change the state; results carrying an older ticket are dropped.
type Ticket uint64

type Dialog struct {
	Title   string
	Message string
}

func ErrorDialog(err error) Dialog {
	return Dialog{
		Title:   "Error",
		Message: fmt.Sprintf("Couldn't load news: %s", err.Error()),
	}
}

func DetailDialog(a model.Article) Dialog {
	return Dialog{Title: a.Title, Message: a.Description}
}

// Feed is not safe for concurrent use. The presentation layer owns it from a
// single update loop.
type Feed struct {
	articles   []model.Article
	loading    bool
	refreshing bool
	latest     Ticket
}

func NewFeed() *Feed {
	return &Feed{
		articles: []model.Article{},
		loading:  true,
	}
}

func (f *Feed) BeginLoad() Ticket {
	if !f.refreshing {
		f.loading = true
	}
	return f.issue()
}

// BeginRefresh starts a pull-to-refresh. The current articles stay visible
// until the fetch completes.
func (f *Feed) BeginRefresh() Ticket {
	f.refreshing = true
	return f.issue()
}

func (f *Feed) issue() Ticket {
	f.latest++
	return f.latest
}

// Complete applies the result of the fetch identified by t. It reports
// whether the result was applied, and on failure returns the alert to show.
// A failed fetch leaves the article list untouched.
func (f *Feed) Complete(t Ticket, articles []model.Article, err error) (*Dialog, bool) {
	if t != f.latest {
		return nil, false
	}

	f.loading = false
	f.refreshing = false

	if err != nil {
		alert := ErrorDialog(err)
		return &alert, true
	}

	replaced := make([]model.Article, len(articles))
	copy(replaced, articles)
	f.articles = replaced

	return nil, true
}

func (f *Feed) Phase() Phase {
	switch {
	case f.refreshing:
		return PhaseRefreshing
	case f.loading:
		return PhaseLoading
	default:
		return PhaseReady
	}
}

// ShowLoader is true while the first load runs outside a refresh.
func (f *Feed) ShowLoader() bool {
	return f.loading && !f.refreshing
}

func (f *Feed) State() ViewState {
	articles := make([]model.Article, len(f.articles))
	copy(articles, f.articles)
	return ViewState{
		Articles:   articles,
		Loading:    f.loading,
		Refreshing: f.refreshing,
	}
}

func (f *Feed) Len() int {
	return len(f.articles)
}

func (f *Feed) Article(i int) (model.Article, bool) {
	if i < 0 || i >= len(f.articles) {
		return model.Article{}, false
	}
	return f.articles[i], true
}

func (f *Feed) Cards() []Card {
	cards := make([]Card, 0, len(f.articles))
	for _, a := range f.articles {
		cards = append(cards, NewCard(a))
	}
	return cards
}
