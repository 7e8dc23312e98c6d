package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/listmanager/internal/model"
	"github.com/idilsaglam/listmanager/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) Title() string       { return i.Item.Title }
func (i listItem) Description() string { return i.Item.Subtitle }
func (i listItem) FilterValue() string { return i.Item.Title + " " + i.Item.Subtitle }

// itemDelegate renders a three-line card: gradient title, subtitle, age.
type itemDelegate struct {
	highlightID string
	now         func() time.Time
}

func (d itemDelegate) Height() int                               { return 3 }
func (d itemDelegate) Spacing() int                              { return 1 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	width := m.Width() - 2
	if width < 10 {
		width = 80
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(t.SymCursor) + " "
	}

	lines := []string{
		prefix + ui.RowTitle(ui.Truncate(ui.OneLine(it.Item.Title), width), index, len(m.VisibleItems())),
		"  " + t.Muted.Render(ui.Truncate(ui.OneLine(it.Item.Subtitle), width)),
		"  " + t.Muted.Italic(true).Render(ui.RelativeTime(it.CreatedAt, d.now())),
	}
	block := strings.Join(lines, "\n")
	if it.ID == d.highlightID {
		block = t.Highlight.Width(lipgloss.Width(block) + 1).Render(block)
	}
	fmt.Fprint(w, block)
}
