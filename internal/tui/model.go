package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/listmanager/internal/model"
	"github.com/idilsaglam/listmanager/internal/ui"
)

const (
	appTitle = "List Manager"

	msgCreated = "Item created successfully"
	msgUpdated = "Item updated successfully"
	msgFailed  = "Something went wrong"

	// header line + toast line
	headerHeight = 2
)

// ItemStore is what the TUI needs from the backing collection.
type ItemStore interface {
	Load(ctx context.Context, seed []model.Item) error
	Add(ctx context.Context, title, subtitle string) (model.Item, error)
	Edit(ctx context.Context, id, title, subtitle string) error
	Delete(ctx context.Context, id string) error
	Items() []model.Item
	Loading() bool
}

// Options tune timing and wiring of the TUI.
type Options struct {
	Seed              []model.Item
	ToastLifetime     time.Duration
	HighlightLifetime time.Duration
	Logger            *zap.Logger
	Now               func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ToastLifetime <= 0 {
		o.ToastLifetime = 3 * time.Second
	}
	if o.HighlightLifetime <= 0 {
		o.HighlightLifetime = 2 * time.Second
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

type toast struct {
	text string
	kind toastKind
	seq  int
}

// Model is the Bubble Tea model for the list manager screen.
type Model struct {
	ctx   context.Context
	store ItemStore
	opts  Options
	log   *zap.Logger
	keys  keyMap

	list    list.Model
	spinner spinner.Model

	form        *form
	toast       *toast
	toastSeq    int
	highlightID string

	width, height int
}

func New(ctx context.Context, s ItemStore, opts Options) Model {
	opts = opts.withDefaults()
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{now: opts.Now}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("item", "items")
	l.FilterInput.Prompt = "/ "
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp
	// d belongs to delete; q is handled before the list sees it
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l/pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h/pgup", "prev page"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.Current().Accent

	return Model{
		ctx:     ctx,
		store:   s,
		opts:    opts,
		log:     opts.Logger,
		keys:    keys,
		list:    l,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.store, m.opts.Seed))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(max(msg.Width-2, 0), max(msg.Height-headerHeight, 0))
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateList(msg)

	case tea.MouseMsg:
		if m.form != nil && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.insideForm(msg.X, msg.Y) {
			m.form = nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case itemsLoadedMsg:
		cmd := m.refresh()
		return m, cmd

	case itemCreatedMsg:
		m.closeSubmitting()
		m.highlightID = msg.item.ID
		m.log.Info("item created", zap.String("id", msg.item.ID))
		cmd := tea.Batch(
			m.showToast(msgCreated, toastSuccess),
			expireHighlight(msg.item.ID, m.opts.HighlightLifetime),
			m.refresh(),
		)
		return m, cmd

	case itemUpdatedMsg:
		m.closeSubmitting()
		m.log.Info("item updated", zap.String("id", msg.id))
		cmd := tea.Batch(m.showToast(msgUpdated, toastSuccess), m.refresh())
		return m, cmd

	case itemDeletedMsg:
		m.log.Info("item deleted", zap.String("id", msg.id))
		cmd := m.refresh()
		return m, cmd

	case opFailedMsg:
		m.closeSubmitting()
		m.log.Error("store call failed", zap.String("op", msg.op), zap.Error(msg.err))
		cmd := tea.Batch(m.showToast(msgFailed, toastError), m.refresh())
		return m, cmd

	case toastExpiredMsg:
		if m.toast != nil && m.toast.seq == msg.seq {
			m.toast = nil
		}
		return m, nil

	case highlightExpiredMsg:
		if m.highlightID == msg.id {
			m.highlightID = ""
			m.list.SetDelegate(m.delegate())
		}
		return m, nil
	}

	var cmds []tea.Cmd
	if m.form != nil {
		cmds = append(cmds, m.form.update(msg))
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter prompt is open every key is text.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Create):
		m.form = newForm(nil, m.keys.formHelp())
		return m, m.form.setFocus(focusTitle)

	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.selected(); ok {
			m.form = newForm(&it, m.keys.formHelp())
			return m, m.form.setFocus(focusTitle)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			return m, deleteCmd(m.ctx, m.store, it.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		m.form = nil
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()

	case key.Matches(msg, m.keys.Next):
		return m, f.next()

	case key.Matches(msg, m.keys.Prev):
		return m, f.prev()

	case msg.Type == tea.KeyEnter:
		switch f.focus {
		case focusTitle:
			return m, f.setFocus(focusSubtitle)
		case focusSubmit:
			return m, m.submit()
		case focusCancel:
			if !f.submitting {
				m.form = nil
			}
			return m, nil
		}
	}
	return m, f.update(msg)
}

// submit validates the open form and dispatches the store call.
func (m Model) submit() tea.Cmd {
	f := m.form
	if f == nil || f.submitting {
		return nil
	}
	if !f.validate() {
		return nil
	}
	f.submitting = true
	title, subtitle := f.values()
	if f.editing != nil {
		return editCmd(m.ctx, m.store, f.editing.ID, title, subtitle)
	}
	return addCmd(m.ctx, m.store, title, subtitle)
}

// closeSubmitting closes the modal once its call has returned. A modal
// opened after the call started is left alone.
func (m *Model) closeSubmitting() {
	if m.form != nil && m.form.submitting {
		m.form = nil
	}
}

func (m *Model) showToast(text string, kind toastKind) tea.Cmd {
	m.toastSeq++
	m.toast = &toast{text: text, kind: kind, seq: m.toastSeq}
	return expireToast(m.toastSeq, m.opts.ToastLifetime)
}

// refresh rebuilds the list from the store, newest first.
func (m *Model) refresh() tea.Cmd {
	items := model.Newest(m.store.Items())
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{it})
	}
	m.list.SetDelegate(m.delegate())
	return m.list.SetItems(li)
}

func (m Model) delegate() itemDelegate {
	return itemDelegate{highlightID: m.highlightID, now: m.opts.Now}
}

func (m Model) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.Item, true
}

// formRect is where the centered modal lands on screen.
func (m Model) formRect() (x, y, w, h int) {
	w, h = lipgloss.Size(m.form.view())
	bodyH := m.height - headerHeight
	x = max(m.width-w, 0) / 2
	y = headerHeight + max(bodyH-h, 0)/2
	return x, y, w, h
}

func (m Model) insideForm(px, py int) bool {
	x, y, w, h := m.formRect()
	return px >= x && px < x+w && py >= y && py < y+h
}

func (m Model) View() string {
	t := ui.Current()

	count := t.Muted.Render(fmt.Sprintf("%d items", len(m.list.Items())))
	hint := t.Accent.Render("n") + t.Muted.Render(" + Create")
	header := t.Title.Render(appTitle) + "  " + count
	if m.width > 0 {
		gap := m.width - lipgloss.Width(header) - lipgloss.Width(hint)
		header += strings.Repeat(" ", max(gap, 1)) + hint
	} else {
		header += "  " + hint
	}

	return header + "\n" + m.toastView() + "\n" + m.bodyView()
}

func (m Model) toastView() string {
	if m.toast == nil {
		return ""
	}
	t := ui.Current()
	s := t.Success.Render(t.SymOK + " " + m.toast.text)
	if m.toast.kind == toastError {
		s = t.Error.Render(t.SymFail + " " + m.toast.text)
	}
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, s)
	}
	return s
}

func (m Model) bodyView() string {
	t := ui.Current()

	if m.form != nil {
		fv := m.form.view()
		if m.width <= 0 || m.height <= headerHeight {
			return fv
		}
		return lipgloss.Place(m.width, m.height-headerHeight, lipgloss.Center, lipgloss.Center, fv,
			lipgloss.WithWhitespaceChars("░"),
			lipgloss.WithWhitespaceForeground(t.Backdrop.GetForeground()),
		)
	}

	switch {
	case m.store.Loading():
		return m.spinner.View() + " " + t.Muted.Render("Loading...")
	case len(m.list.Items()) == 0:
		return t.Muted.Render("No items yet.")
	}
	return m.list.View()
}
