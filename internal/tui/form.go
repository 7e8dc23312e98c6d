package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/listmanager/internal/model"
	"github.com/idilsaglam/listmanager/internal/ui"
)

const formWidth = 48

type formFocus int

const (
	focusTitle formFocus = iota
	focusSubtitle
	focusSubmit
	focusCancel
	focusCount
)

// form is the create/edit modal. editing is nil when creating.
type form struct {
	editing *model.Item

	title    textinput.Model
	subtitle textarea.Model
	focus    formFocus

	errs       model.FieldErrors
	submitting bool

	help  help.Model
	hints []key.Binding
}

// newForm builds the modal; hints are the bindings listed under the buttons.
// Neither field caps its length.
func newForm(editing *model.Item, hints []key.Binding) *form {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Title"
	ti.CharLimit = 0
	ti.Width = formWidth - 4

	ta := textarea.New()
	ta.Placeholder = "Subtitle"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetWidth(formWidth - 4)
	ta.SetHeight(3)

	if editing != nil {
		ti.SetValue(editing.Title)
		ti.CursorEnd()
		ta.SetValue(editing.Subtitle)
	}

	h := help.New()
	h.Styles.ShortKey = ui.Current().Accent
	h.Styles.ShortDesc = ui.Current().Muted
	h.Styles.ShortSeparator = ui.Current().Muted

	f := &form{editing: editing, title: ti, subtitle: ta, help: h, hints: hints}
	f.setFocus(focusTitle)
	return f
}

func (f *form) heading() string {
	if f.editing != nil {
		return "Edit Item"
	}
	return "Create Item"
}

func (f *form) submitLabel() string {
	switch {
	case f.submitting && f.editing != nil:
		return "Updating..."
	case f.submitting:
		return "Creating..."
	case f.editing != nil:
		return "Update"
	default:
		return "Create"
	}
}

func (f *form) setFocus(to formFocus) tea.Cmd {
	f.focus = (to + focusCount) % focusCount
	f.title.Blur()
	f.subtitle.Blur()
	switch f.focus {
	case focusTitle:
		return f.title.Focus()
	case focusSubtitle:
		return f.subtitle.Focus()
	}
	return nil
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// values returns the trimmed field contents.
func (f *form) values() (string, string) {
	return strings.TrimSpace(f.title.Value()), strings.TrimSpace(f.subtitle.Value())
}

func (f *form) validate() bool {
	f.errs = model.Validate(f.values())
	return f.errs.Valid()
}

// update forwards input to the focused field.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusSubtitle:
		f.subtitle, cmd = f.subtitle.Update(msg)
	}
	return cmd
}

func (f *form) view() string {
	t := ui.Current()

	field := func(input string, focused bool, errMsg string) string {
		border := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.BorderColor).
			Width(formWidth - 2)
		switch {
		case errMsg != "":
			border = border.BorderForeground(lipgloss.Color("9"))
		case focused:
			border = border.BorderForeground(lipgloss.Color("12"))
		}
		out := border.Render(input)
		if errMsg != "" {
			out += "\n" + t.Error.Render(errMsg)
		}
		return out
	}

	button := func(label string, focused bool) string {
		st := lipgloss.NewStyle().Padding(0, 2)
		switch {
		case f.submitting:
			st = st.Faint(true)
		case focused:
			st = st.Reverse(true).Bold(true)
		}
		return st.Render(label)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button("Cancel", f.focus == focusCancel),
		" ",
		button(f.submitLabel(), f.focus == focusSubmit),
	)

	body := strings.Join([]string{
		t.Title.Render(f.heading()),
		"",
		field(f.title.View(), f.focus == focusTitle, f.errs.Title),
		field(f.subtitle.View(), f.focus == focusSubtitle, f.errs.Subtitle),
		"",
		lipgloss.PlaceHorizontal(formWidth, lipgloss.Right, buttons),
		"",
		f.help.ShortHelpView(f.hints),
	}, "\n")

	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(1, 2).
		Render(body)
}
