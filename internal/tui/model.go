package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"newsfeed/internal/viewer"
	"newsfeed/pkg/news"

	tea "github.com/charmbracelet/bubbletea"
)

// Lines taken by one card: image, title, description and a spacer.
const cardHeight = 1 + viewer.TitleLines + viewer.DescriptionLines + 1

// chrome is the header, status line and key help around the list.
const chrome = 5

type Model struct {
	feed     *viewer.Feed
	fetcher  news.Fetcher
	logger   *slog.Logger
	selected int
	offset   int
	height   int
	// dialogs shown one at a time, oldest first; an alert that arrives while
	// another dialog is open waits for it to be dismissed.
	dialogs []viewer.Dialog
}

func New(fetcher news.Fetcher, logger *slog.Logger) Model {
	return Model{
		feed:    viewer.NewFeed(),
		fetcher: fetcher,
		logger:  logger,
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetch(m.feed.BeginLoad())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.scrollToSelection()
		return m, nil

	case fetchDoneMsg:
		return m.applyFetch(msg), nil

	case RefreshMsg:
		return m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	if len(m.dialogs) > 0 {
		if key == "enter" || key == "esc" {
			m.dialogs = m.dialogs[1:]
		}
		return m, nil
	}

	switch key {
	case "r":
		return m.refresh()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < m.feed.Len()-1 {
			m.selected++
		}
	case "enter":
		if a, ok := m.feed.Article(m.selected); ok {
			m.pushDialog(viewer.DetailDialog(a))
		}
	}

	m.scrollToSelection()
	return m, nil
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	return m, m.fetch(m.feed.BeginRefresh())
}

func (m Model) applyFetch(msg fetchDoneMsg) Model {
	alert, applied := m.feed.Complete(msg.ticket, msg.articles, msg.err)
	if !applied {
		m.logger.Debug("stale fetch result dropped", "ticket", uint64(msg.ticket))
		return m
	}

	if msg.err != nil {
		m.logger.Warn("error fetching articles", "error", msg.err)
		m.pushDialog(*alert)
	} else {
		m.logger.Info("articles loaded", "count", len(msg.articles))
	}

	if m.selected >= m.feed.Len() {
		m.selected = max(0, m.feed.Len()-1)
	}
	m.scrollToSelection()
	return m
}

func (m *Model) pushDialog(d viewer.Dialog) {
	m.dialogs = append(m.dialogs[:len(m.dialogs):len(m.dialogs)], d)
}

func (m Model) fetch(t viewer.Ticket) tea.Cmd {
	fetcher := m.fetcher
	return func() tea.Msg {
		articles, err := fetcher.Fetch(context.Background())
		return fetchDoneMsg{ticket: t, articles: articles, err: err}
	}
}

func (m Model) visibleCards() int {
	if m.height <= 0 {
		return m.feed.Len()
	}
	return max(1, (m.height-chrome)/cardHeight)
}

func (m *Model) scrollToSelection() {
	visible := m.visibleCards()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
	if m.offset > m.selected {
		m.offset = m.selected
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(viewer.HeaderText)
	b.WriteString("\n\n")

	switch {
	case len(m.dialogs) > 0:
		writeDialog(&b, m.dialogs[0])
	case m.feed.ShowLoader():
		b.WriteString(viewer.LoadingText)
		b.WriteString("\n")
	default:
		m.writeList(&b)
	}

	b.WriteString("\n")
	if len(m.dialogs) > 0 {
		b.WriteString("enter OK • q quit\n")
	} else {
		b.WriteString("r refresh • ↑/↓ select • enter open • q quit\n")
	}
	return b.String()
}

func (m Model) writeList(b *strings.Builder) {
	if m.feed.Phase() == viewer.PhaseRefreshing {
		b.WriteString("Refreshing...\n")
	}

	cards := m.feed.Cards()
	if len(cards) == 0 {
		b.WriteString(viewer.EmptyText)
		b.WriteString("\n")
		return
	}

	end := min(len(cards), m.offset+m.visibleCards())
	for i := m.offset; i < end; i++ {
		writeCard(b, cards[i], i == m.selected)
	}
}

func writeCard(b *strings.Builder, c viewer.Card, selected bool) {
	marker := "  "
	if selected {
		marker = "> "
	}

	fmt.Fprintf(b, "%s[image] %s\n", marker, c.ImageURL)
	for _, line := range c.Title {
		fmt.Fprintf(b, "  %s\n", line)
	}
	for _, line := range c.Description {
		fmt.Fprintf(b, "  %s\n", line)
	}
	b.WriteString("\n")
}

func writeDialog(b *strings.Builder, d viewer.Dialog) {
	rule := strings.Repeat("─", viewer.CardWidth)
	b.WriteString(rule + "\n")
	b.WriteString(d.Title + "\n\n")
	b.WriteString(d.Message + "\n")
	b.WriteString(rule + "\n")
}
