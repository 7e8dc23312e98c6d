package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/listmanager/internal/model"
)

// Results of store calls. Each call runs in its own command goroutine and
// reports back through exactly one of these.
type (
	itemsLoadedMsg struct{}
	itemCreatedMsg struct{ item model.Item }
	itemUpdatedMsg struct{ id string }
	itemDeletedMsg struct{ id string }
	opFailedMsg    struct {
		op  string
		err error
	}
)

// Timers. The payload identifies which toast or highlight armed the timer
// so a stale one cannot clear a newer one.
type (
	toastExpiredMsg     struct{ seq int }
	highlightExpiredMsg struct{ id string }
)

func loadCmd(ctx context.Context, s ItemStore, seed []model.Item) tea.Cmd {
	return func() tea.Msg {
		if err := s.Load(ctx, seed); err != nil {
			return opFailedMsg{op: "load", err: err}
		}
		return itemsLoadedMsg{}
	}
}

func addCmd(ctx context.Context, s ItemStore, title, subtitle string) tea.Cmd {
	return func() tea.Msg {
		it, err := s.Add(ctx, title, subtitle)
		if err != nil {
			return opFailedMsg{op: "add", err: err}
		}
		return itemCreatedMsg{item: it}
	}
}

func editCmd(ctx context.Context, s ItemStore, id, title, subtitle string) tea.Cmd {
	return func() tea.Msg {
		if err := s.Edit(ctx, id, title, subtitle); err != nil {
			return opFailedMsg{op: "edit", err: err}
		}
		return itemUpdatedMsg{id: id}
	}
}

func deleteCmd(ctx context.Context, s ItemStore, id string) tea.Cmd {
	return func() tea.Msg {
		if err := s.Delete(ctx, id); err != nil {
			return opFailedMsg{op: "delete", err: err}
		}
		return itemDeletedMsg{id: id}
	}
}

func expireToast(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func expireHighlight(id string, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg { return highlightExpiredMsg{id: id} })
}
