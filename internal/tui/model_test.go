package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/listmanager/internal/model"
	"github.com/idilsaglam/listmanager/internal/store"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyCtrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
)

// loadedModel returns a sized model whose initial load has completed.
func loadedModel(t *testing.T, seed []model.Item) (Model, *store.Store) {
	t.Helper()
	ctx := context.Background()
	s := store.New(store.WithLatency(store.Latency{}), store.WithClock(func() time.Time { return testNow }))
	m := New(ctx, s, Options{Seed: seed, Now: func() time.Time { return testNow }})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	msg := loadCmd(ctx, s, seed)()
	require.IsType(t, itemsLoadedMsg{}, msg)
	m, _ = update(t, m, msg)
	return m, s
}

func listIDs(m Model) []string {
	var ids []string
	for _, li := range m.list.Items() {
		ids = append(ids, li.(listItem).ID)
	}
	return ids
}

func seedItems() []model.Item {
	return []model.Item{
		{ID: "a", Title: "Groceries", Subtitle: "Buy milk", CreatedAt: testNow.Add(-3 * time.Hour)},
		{ID: "b", Title: "Laundry", Subtitle: "Whites only", CreatedAt: testNow.Add(-2 * time.Hour)},
		{ID: "c", Title: "Dentist", Subtitle: "Call before noon", CreatedAt: testNow.Add(-time.Hour)},
	}
}

func TestLoadShowsNewestFirst(t *testing.T) {
	m, _ := loadedModel(t, seedItems())

	assert.Equal(t, []string{"c", "b", "a"}, listIDs(m))
	view := m.View()
	assert.Contains(t, view, "List Manager")
	assert.Contains(t, view, "3 items")
	assert.Contains(t, view, "Dentist")
}

func TestCreateItem(t *testing.T) {
	m, s := loadedModel(t, nil)
	assert.Contains(t, m.View(), "No items yet.")

	m, _ = update(t, m, keyRunes("n"))
	require.NotNil(t, m.form)
	assert.Equal(t, "Create Item", m.form.heading())
	assert.Equal(t, "Create", m.form.submitLabel())
	assert.Equal(t, focusTitle, m.form.focus)

	m.form.title.SetValue("  Groceries ")
	m.form.subtitle.SetValue("Buy milk")

	m, cmd := update(t, m, keyCtrlS)
	require.NotNil(t, cmd)
	require.NotNil(t, m.form)
	assert.True(t, m.form.submitting)
	assert.Equal(t, "Creating...", m.form.submitLabel())

	// a second submit while in flight is ignored
	_, again := update(t, m, keyCtrlS)
	assert.Nil(t, again)

	msg := cmd()
	created, ok := msg.(itemCreatedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "Groceries", created.item.Title)
	assert.Equal(t, "Buy milk", created.item.Subtitle)

	m, _ = update(t, m, msg)
	assert.Nil(t, m.form)
	require.NotNil(t, m.toast)
	assert.Equal(t, msgCreated, m.toast.text)
	assert.Equal(t, toastSuccess, m.toast.kind)
	assert.Equal(t, created.item.ID, m.highlightID)
	assert.Equal(t, []string{created.item.ID}, listIDs(m))
	assert.Equal(t, 1, s.Len())
	assert.Contains(t, m.View(), msgCreated)
}

func TestInvalidSubmitIsBlocked(t *testing.T) {
	m, s := loadedModel(t, nil)

	m, _ = update(t, m, keyRunes("n"))
	m.form.title.SetValue("ab")
	m.form.subtitle.SetValue("1234")

	m, cmd := update(t, m, keyCtrlS)
	assert.Nil(t, cmd)
	require.NotNil(t, m.form)
	assert.False(t, m.form.submitting)
	assert.Equal(t, "Title must be at least 3 characters.", m.form.errs.Title)
	assert.Equal(t, "Subtitle must be at least 5 characters.", m.form.errs.Subtitle)

	view := m.View()
	assert.Contains(t, view, "Title must be at least 3 characters.")
	assert.Contains(t, view, "Subtitle must be at least 5 characters.")
	assert.Equal(t, 0, s.Len())
}

func TestEditItem(t *testing.T) {
	m, s := loadedModel(t, seedItems()[:1])
	before, _ := s.Get("a")

	m, _ = update(t, m, keyRunes("e"))
	require.NotNil(t, m.form)
	assert.Equal(t, "Edit Item", m.form.heading())
	assert.Equal(t, "Update", m.form.submitLabel())
	assert.Equal(t, "Groceries", m.form.title.Value())
	assert.Equal(t, "Buy milk", m.form.subtitle.Value())

	m.form.title.SetValue("Groceries v2")
	m.form.subtitle.SetValue("Buy milk and eggs")
	m, cmd := update(t, m, keyCtrlS)
	require.NotNil(t, cmd)
	assert.Equal(t, "Updating...", m.form.submitLabel())

	msg := cmd()
	require.Equal(t, itemUpdatedMsg{id: "a"}, msg)
	m, _ = update(t, m, msg)

	assert.Nil(t, m.form)
	require.NotNil(t, m.toast)
	assert.Equal(t, msgUpdated, m.toast.text)
	assert.Empty(t, m.highlightID, "edits do not highlight")

	after, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Groceries v2", after.Title)
	assert.Equal(t, "Buy milk and eggs", after.Subtitle)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.Equal(t, "Groceries v2", m.list.Items()[0].(listItem).Item.Title)
}

func TestDeleteSelected(t *testing.T) {
	m, s := loadedModel(t, seedItems())

	m, cmd := update(t, m, keyRunes("d"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, itemDeletedMsg{id: "c"}, msg)

	m, _ = update(t, m, msg)
	assert.Equal(t, []string{"b", "a"}, listIDs(m))
	assert.Equal(t, 2, s.Len())
	assert.Nil(t, m.toast)
}

func TestEditAndDeleteOnEmptyListDoNothing(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m, cmd := update(t, m, keyRunes("e"))
	assert.Nil(t, cmd)
	assert.Nil(t, m.form)

	_, cmd = update(t, m, keyRunes("d"))
	assert.Nil(t, cmd)
}

func TestFailedCallShowsErrorToast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := store.New(store.WithLatency(store.Latency{Add: time.Hour}))
	m := New(ctx, s, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = update(t, m, keyRunes("n"))
	m.form.title.SetValue("Groceries")
	m.form.subtitle.SetValue("Buy milk")
	m, cmd := update(t, m, keyCtrlS)
	require.NotNil(t, cmd)

	msg := cmd()
	failed, ok := msg.(opFailedMsg)
	require.True(t, ok, "got %T", msg)
	assert.ErrorIs(t, failed.err, context.Canceled)

	m, _ = update(t, m, msg)
	assert.Nil(t, m.form, "modal closes after a failed call too")
	require.NotNil(t, m.toast)
	assert.Equal(t, msgFailed, m.toast.text)
	assert.Equal(t, toastError, m.toast.kind)
	assert.Empty(t, m.highlightID)
	assert.Equal(t, 0, s.Len())
}

func TestResultDoesNotCloseNewerModal(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m, _ = update(t, m, keyRunes("n"))
	m.form.title.SetValue("Groceries")
	m.form.subtitle.SetValue("Buy milk")
	m, cmd := update(t, m, keyCtrlS)
	require.NotNil(t, cmd)

	m, _ = update(t, m, keyEsc)
	m, _ = update(t, m, keyRunes("n"))
	require.NotNil(t, m.form)

	m, _ = update(t, m, cmd())
	assert.NotNil(t, m.form)
	assert.Equal(t, msgCreated, m.toast.text)
}

func TestFormNavigation(t *testing.T) {
	m, s := loadedModel(t, nil)

	m, _ = update(t, m, keyRunes("n"))
	m.form.title.SetValue("Groceries")

	m, _ = update(t, m, keyEnter)
	assert.Equal(t, focusSubtitle, m.form.focus)
	m.form.subtitle.SetValue("Buy milk")

	m, _ = update(t, m, keyTab)
	assert.Equal(t, focusSubmit, m.form.focus)
	m, _ = update(t, m, keyTab)
	assert.Equal(t, focusCancel, m.form.focus)
	m, _ = update(t, m, keyTab)
	assert.Equal(t, focusTitle, m.form.focus)
	m, _ = update(t, m, keyShiftTab)
	assert.Equal(t, focusCancel, m.form.focus)
	m, _ = update(t, m, keyShiftTab)
	assert.Equal(t, focusSubmit, m.form.focus)

	m, cmd := update(t, m, keyEnter)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Nil(t, m.form)
	assert.Equal(t, 1, s.Len())
}

func TestCancelButtonAndEscapeClose(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, keyShiftTab)
	require.Equal(t, focusCancel, m.form.focus)
	m, _ = update(t, m, keyEnter)
	assert.Nil(t, m.form)

	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, keyEsc)
	assert.Nil(t, m.form)
}

func TestTypingGoesToFocusedField(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, keyRunes("Gro"))
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, keyRunes("milk"))

	assert.Equal(t, "Gro", m.form.title.Value())
	assert.Equal(t, "milk", m.form.subtitle.Value())
}

func TestBackdropClickClosesModal(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m, _ = update(t, m, keyRunes("n"))
	x, y, w, h := m.formRect()
	require.Greater(t, x, 0)
	require.Greater(t, y, headerHeight-1)

	inside := tea.MouseMsg{X: x + w/2, Y: y + h/2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, inside)
	assert.NotNil(t, m.form)

	release := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, release)
	assert.NotNil(t, m.form)

	outside := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, outside)
	assert.Nil(t, m.form)
}

func TestStaleToastTimerKeepsNewerToast(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m.showToast("first", toastSuccess)
	first := m.toast.seq
	m.showToast("second", toastError)

	m, _ = update(t, m, toastExpiredMsg{seq: first})
	require.NotNil(t, m.toast)
	assert.Equal(t, "second", m.toast.text)

	m, _ = update(t, m, toastExpiredMsg{seq: m.toast.seq})
	assert.Nil(t, m.toast)
}

func TestHighlightExpiresOnlyForItsItem(t *testing.T) {
	m, _ := loadedModel(t, seedItems())
	m.highlightID = "c"

	m, _ = update(t, m, highlightExpiredMsg{id: "b"})
	assert.Equal(t, "c", m.highlightID)

	m, _ = update(t, m, highlightExpiredMsg{id: "c"})
	assert.Empty(t, m.highlightID)
}

func TestQuit(t *testing.T) {
	m, _ := loadedModel(t, nil)

	_, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

type fakeStore struct {
	loading bool
	items   []model.Item
}

func (f *fakeStore) Load(context.Context, []model.Item) error { return nil }
func (f *fakeStore) Add(context.Context, string, string) (model.Item, error) {
	return model.Item{}, nil
}
func (f *fakeStore) Edit(context.Context, string, string, string) error { return nil }
func (f *fakeStore) Delete(context.Context, string) error              { return nil }
func (f *fakeStore) Items() []model.Item                               { return f.items }
func (f *fakeStore) Loading() bool                                     { return f.loading }

func TestViewWhileLoading(t *testing.T) {
	fs := &fakeStore{loading: true}
	m := New(context.Background(), fs, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Contains(t, m.View(), "Loading...")

	fs.loading = false
	assert.Contains(t, m.View(), "No items yet.")
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, 3*time.Second, o.ToastLifetime)
	assert.Equal(t, 2*time.Second, o.HighlightLifetime)
	assert.NotNil(t, o.Logger)
	assert.NotNil(t, o.Now)
}

func TestMultilineSubtitleRendersAsOneRow(t *testing.T) {
	m, s := loadedModel(t, nil)

	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, keyRunes("Groceries"))
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, keyRunes("Buy milk"))
	m, _ = update(t, m, keyEnter)
	m, _ = update(t, m, keyRunes("and eggs"))
	m, cmd := update(t, m, keyCtrlS)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk\nand eggs", items[0].Subtitle)

	var buf bytes.Buffer
	d := m.delegate()
	d.Render(&buf, m.list, 0, m.list.Items()[0])
	lines := strings.Split(buf.String(), "\n")
	assert.Len(t, lines, d.Height())
	assert.Contains(t, lines[1], "Buy milk and eggs")
}

func TestFormShowsKeyHelp(t *testing.T) {
	m, _ := loadedModel(t, nil)

	m, _ = update(t, m, keyRunes("n"))
	view := m.View()
	assert.Contains(t, view, "ctrl+s")
	assert.Contains(t, view, "submit")
	assert.Contains(t, view, "esc")
}

func TestLongInputIsNotCapped(t *testing.T) {
	m, _ := loadedModel(t, nil)
	title := strings.Repeat("t", 300)
	subtitle := strings.Repeat("s", 1000)

	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, keyRunes(title))
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, keyRunes(subtitle))

	assert.Equal(t, title, m.form.title.Value())
	assert.Equal(t, subtitle, m.form.subtitle.Value())
}
