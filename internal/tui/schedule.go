package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"
)

// ScheduleRefresh sends a RefreshMsg through send on every tick of the cron
// spec. The returned scheduler is already running; stop it on exit.
func ScheduleRefresh(spec string, send func(tea.Msg)) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		send(RefreshMsg{})
	})
	if err != nil {
		return nil, fmt.Errorf("refresh schedule %q: %w", spec, err)
	}

	c.Start()
	return c, nil
}
