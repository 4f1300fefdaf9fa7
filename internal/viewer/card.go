package viewer

import (
	"strconv"
	"strings"

	"newsfeed/internal/model"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	CardWidth        = 56
	TitleLines       = 2
	DescriptionLines = 3
	maxKeyLength     = 50

	EmptyText   = "No articles available."
	LoadingText = "Loading news..."
	HeaderText  = "Top News"

	ellipsis = "…"
)

// Card is the fixed-size rendering of one article. Title and Description are
// always exactly TitleLines and DescriptionLines lines tall, each line at most
// CardWidth terminal cells wide.
type Card struct {
	Key         string
	Title       []string
	Description []string
	ImageURL    string
}

func NewCard(a model.Article) Card {
	return Card{
		Key:         KeyFor(a),
		Title:       ClampLines(a.Title, CardWidth, TitleLines),
		Description: ClampLines(a.Description, CardWidth, DescriptionLines),
		ImageURL:    ImageFor(a),
	}
}

// ImageFor prefers imageUrl over the legacy image field and falls back to
// the placeholder when neither is set.
func ImageFor(a model.Article) string {
	if a.ImageURL != "" {
		return a.ImageURL
	}
	if a.Image != "" {
		return a.Image
	}
	return model.PlaceholderImageURL
}

// KeyFor derives the list key: the id when set, otherwise the title, cut to
// 50 characters. Keys are not guaranteed unique.
func KeyFor(a model.Article) string {
	key := a.Title
	if a.ID != 0 {
		key = strconv.FormatInt(a.ID, 10)
	}
	return truncateRunes(key, maxKeyLength)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ClampLines word-wraps text to width terminal cells and returns exactly n
// lines. Overflow is cut and the last kept line ends in an ellipsis; short
// text is padded with empty lines. Words wider than the card are broken.
func ClampLines(text string, width, n int) []string {
	if n < 1 {
		return []string{}
	}
	if width < 1 {
		return make([]string, n)
	}

	wrapped := wrapCells(text, width)

	if len(wrapped) > n {
		wrapped = wrapped[:n]
		last := wrapped[n-1]
		if ansi.PrintableRuneWidth(last) > width-1 {
			last = truncate.String(last, uint(width-1))
		}
		wrapped[n-1] = last + ellipsis
	}

	for len(wrapped) < n {
		wrapped = append(wrapped, "")
	}
	return wrapped
}

func wrapCells(text string, width int) []string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return nil
	}

	out := wrap.String(wordwrap.String(normalized, width), width)

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
