// Package tui is the interactive checklist: a Bubble Tea list with inline
// add, check-off and clear.
package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// RefreshDelay is how long a checked-off row stays visible before the list
// is redrawn without it.
const RefreshDelay = time.Second

const clearPrompt = "Are you sure you want to clear the entire list? (y/n)"

// row adapts a model.Item to bubbles/list.Item
type row struct {
	item    model.Item
	checked bool
}

func (r row) Title() string       { return r.item.Item() }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.item.Item() }

// refreshMsg asks for the rows to be rebuilt from the session.
type refreshMsg struct{}

func refreshAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return refreshMsg{} })
}

// Custom delegate to control how items render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	fmt.Fprintln(w, prefix+ui.Row(r.item, r.checked))
}

var keys = struct {
	add, check, clear key.Binding
}{
	add:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	check: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check off")),
	clear: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
}

// Model is the Bubble Tea model. Every change goes through the session,
// which persists it; the rows are only a view of the session's list.
type Model struct {
	ctx  context.Context
	sess *app.Session

	list list.Model

	adding     bool
	ti         textinput.Model
	confirming bool

	status string
	err    error
	width  int
	height int
	delay  time.Duration
}

func New(ctx context.Context, sess *app.Session) Model {
	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.add, keys.check, keys.clear} }
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item..."
	ti.CharLimit = 200

	m := Model{
		ctx:    ctx,
		sess:   sess,
		list:   l,
		ti:     ti,
		width:  80,
		height: 24,
		delay:  RefreshDelay,
	}
	m.resize()
	m.rebuild()
	return m
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, sess *app.Session) error {
	p := tea.NewProgram(New(ctx, sess), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// rebuild replaces every row with the session's current snapshot. The
// returned command re-applies an active filter and must reach the list.
func (m *Model) rebuild() tea.Cmd {
	items := m.sess.Snapshot()
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{item: it})
	}
	m.list.Title = ui.Header(len(items))
	return m.list.SetItems(rows)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case refreshMsg:
		return m, m.rebuild()
	case list.FilterMatchesMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.confirming {
		return m.updateConfirm(msg)
	}
	if m.adding {
		return m.updateAdd(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case k.String() == "q" || (k.String() == "esc" && m.list.FilterState() == list.Unfiltered):
			return m, tea.Quit
		case key.Matches(k, keys.add):
			m.adding = true
			m.ti.SetValue("")
			m.resize()
			return m, m.ti.Focus()
		case key.Matches(k, keys.check):
			return m.checkSelected()
		case key.Matches(k, keys.clear):
			if m.sess.Len() > 0 {
				m.confirming = true
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			_, added, err := m.sess.Submit(m.ctx, m.ti.Value())
			if !added {
				return m, nil
			}
			m.err = err
			m.status = m.sess.Status()
			cmd := m.rebuild()
			if m.list.FilterState() == list.Unfiltered {
				m.list.Select(len(m.list.Items()) - 1)
			}
			// ready for the next entry
			m.ti.SetValue("")
			return m, cmd
		case "esc":
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			m.resize()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.confirming = false
	if k.String() != "y" && k.String() != "Y" {
		return m, nil
	}
	_, err := m.sess.Clear(m.ctx, nil)
	m.err = err
	m.status = ""
	return m, m.rebuild()
}

// checkSelected removes the selected entry right away and leaves its row
// ticked until the delayed refresh redraws the list.
func (m Model) checkSelected() (tea.Model, tea.Cmd) {
	r, ok := m.list.SelectedItem().(row)
	if !ok || r.checked {
		return m, nil
	}
	_, removed, err := m.sess.Check(m.ctx, r.item.ID())
	if !removed {
		return m, nil
	}
	m.err = err
	m.status = m.sess.Status()
	r.checked = true
	cmd := m.list.SetItem(m.list.GlobalIndex(), r)
	return m, tea.Batch(cmd, refreshAfter(m.delay))
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding {
		h -= 3
	}
	if h < 1 {
		h = 1
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().
			Border(ui.Current().Border).
			BorderForeground(ui.Current().BorderColor).
			Padding(0, 1)
		content += "\n" + bar.Render("Add new item\n"+m.ti.View())
	}
	switch {
	case m.confirming:
		content += "\n" + ui.Current().Pending.Render(clearPrompt)
	case m.err != nil:
		content += "\n" + ui.Current().Error.Render(m.err.Error())
	case m.status != "":
		content += "\n" + ui.Current().Muted.Render(m.status)
	}
	return ui.PanelString([]string{content})
}
