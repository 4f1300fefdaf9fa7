package viewer

import (
	"errors"
	"testing"

	"newsfeed/internal/model"
	"newsfeed/internal/repository"

	"github.com/go-playground/assert/v2"
)

func threeOthers() []model.Article {
	return []model.Article{
		{ID: 10, Title: "Rain Expected Over the Weekend", Description: "Forecasters expect heavy showers."},
		{ID: 11, Title: "Library Extends Opening Hours", Description: "Branches stay open until 9pm."},
		{ID: 12, Title: "Local Team Wins Final", Description: "A late goal settled the match."},
	}
}

func titles(cards []Card) []string {
	var out []string
	for _, c := range cards {
		out = append(out, c.Title[0])
	}
	return out
}

func TestNewFeed_StartsLoading(t *testing.T) {
	f := NewFeed()

	assert.Equal(t, PhaseLoading, f.Phase())
	assert.Equal(t, true, f.ShowLoader())
	assert.Equal(t, 0, f.Len())

	s := f.State()
	assert.Equal(t, true, s.Loading)
	assert.Equal(t, false, s.Refreshing)
}

func TestComplete_FirstLoadShowsSamplesInOrder(t *testing.T) {
	f := NewFeed()
	samples := repository.SampleArticles()

	ticket := f.BeginLoad()
	alert, applied := f.Complete(ticket, samples, nil)

	assert.Equal(t, true, applied)
	assert.Equal(t, true, alert == nil)
	assert.Equal(t, PhaseReady, f.Phase())

	cards := f.Cards()
	assert.Equal(t, 5, len(cards))
	for i, c := range cards {
		assert.Equal(t, samples[i].Title, c.Title[0])
		assert.Equal(t, samples[i].ImageURL, c.ImageURL)
	}
}

func TestComplete_UnreachableOnFirstLoad(t *testing.T) {
	f := NewFeed()

	ticket := f.BeginLoad()
	alert, applied := f.Complete(ticket, nil, errors.New("news fetch: connection refused"))

	assert.Equal(t, true, applied)
	assert.Equal(t, "Error", alert.Title)
	assert.Equal(t, "Couldn't load news: news fetch: connection refused", alert.Message)
	assert.Equal(t, PhaseReady, f.Phase())
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, 0, len(f.Cards()))
}

func TestComplete_FailedRefreshKeepsPreviousList(t *testing.T) {
	f := NewFeed()
	f.Complete(f.BeginLoad(), repository.SampleArticles(), nil)

	ticket := f.BeginRefresh()
	assert.Equal(t, PhaseRefreshing, f.Phase())
	assert.Equal(t, false, f.ShowLoader())
	assert.Equal(t, 5, f.Len())

	alert, applied := f.Complete(ticket, nil, errors.New("server responded 500"))

	assert.Equal(t, true, applied)
	assert.Equal(t, "Couldn't load news: server responded 500", alert.Message)
	assert.Equal(t, PhaseReady, f.Phase())
	assert.Equal(t, 5, f.Len())
}

func TestComplete_EmptyList(t *testing.T) {
	f := NewFeed()

	f.Complete(f.BeginLoad(), []model.Article{}, nil)

	assert.Equal(t, PhaseReady, f.Phase())
	assert.Equal(t, 0, len(f.Cards()))
}

func TestComplete_RefreshReplacesWholeList(t *testing.T) {
	f := NewFeed()
	f.Complete(f.BeginLoad(), repository.SampleArticles(), nil)
	assert.Equal(t, 5, f.Len())

	f.Complete(f.BeginRefresh(), threeOthers(), nil)

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []string{
		"Rain Expected Over the Weekend",
		"Library Extends Opening Hours",
		"Local Team Wins Final",
	}, titles(f.Cards()))
}

func TestComplete_FetchingTwiceIsIdempotent(t *testing.T) {
	f := NewFeed()
	samples := repository.SampleArticles()

	f.Complete(f.BeginLoad(), samples, nil)
	first := f.Cards()

	f.Complete(f.BeginRefresh(), samples, nil)
	second := f.Cards()

	assert.Equal(t, first, second)
}

func TestComplete_StaleResultIsDropped(t *testing.T) {
	f := NewFeed()

	initial := f.BeginLoad()
	refresh := f.BeginRefresh()

	_, applied := f.Complete(refresh, threeOthers(), nil)
	assert.Equal(t, true, applied)

	alert, applied := f.Complete(initial, repository.SampleArticles(), nil)
	assert.Equal(t, false, applied)
	assert.Equal(t, true, alert == nil)
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, PhaseReady, f.Phase())
}

func TestComplete_StaleErrorShowsNoAlert(t *testing.T) {
	f := NewFeed()

	initial := f.BeginLoad()
	refresh := f.BeginRefresh()

	alert, applied := f.Complete(initial, nil, errors.New("timeout"))
	assert.Equal(t, false, applied)
	assert.Equal(t, true, alert == nil)
	assert.Equal(t, PhaseRefreshing, f.Phase())

	f.Complete(refresh, threeOthers(), nil)
	assert.Equal(t, 3, f.Len())
}

func TestComplete_CallerSliceIsCopied(t *testing.T) {
	f := NewFeed()
	articles := threeOthers()

	f.Complete(f.BeginLoad(), articles, nil)
	articles[0].Title = "changed"

	a, ok := f.Article(0)
	assert.Equal(t, true, ok)
	assert.Equal(t, "Rain Expected Over the Weekend", a.Title)
}

func TestArticle_OutOfRange(t *testing.T) {
	f := NewFeed()

	_, ok := f.Article(0)
	assert.Equal(t, false, ok)

	_, ok = f.Article(-1)
	assert.Equal(t, false, ok)
}

func TestDetailDialog(t *testing.T) {
	a := repository.SampleArticles()[2]

	d := DetailDialog(a)

	assert.Equal(t, "AI Tool Helps Farmers Predict Crop Yields", d.Title)
	assert.Equal(t, "Machine learning models analyze satellite data to forecast production.", d.Message)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "refreshing", PhaseRefreshing.String())
}
