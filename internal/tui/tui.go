// Package tui is the interactive todo list. It renders the store and turns
// key presses into dispatched actions; it holds no list state of its own.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/todos"
)

// listItem adapts model.Todo to bubbles/list.Item.
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string       { return i.todo.Todo }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Todo }

// itemDelegate renders one todo per line: cursor, checkbox, label.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Todo
	if it.todo.Complete {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

// feed receives store notifications. The store calls back synchronously
// from Dispatch, so Update drains it right after dispatching.
type feed struct {
	latest []model.Todo
	dirty  bool
}

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind = key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle"))
	removeBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
)

// Model is the Bubble Tea model for the todo list.
type Model struct {
	store *todos.Store
	feed  *feed
	unsub func()

	list   list.Model
	width  int
	height int

	adding bool
	ti     textinput.Model
	addErr string
}

// New builds a model observing s.
func New(s *todos.Store) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, toggleBind, removeBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, toggleBind, removeBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200

	f := &feed{latest: s.Todos(), dirty: true}
	unsub := s.Subscribe(func(ts []model.Todo) {
		f.latest = ts
		f.dirty = true
	})

	m := Model{
		store: s,
		feed:  f,
		unsub: unsub,
		list:  l,
		ti:    ti,
	}
	m.sync()
	return m
}

// Run starts the program on the terminal's alternate screen and blocks
// until the user quits. Every change is already persisted by the store.
func Run(s *todos.Store) error {
	m := New(s)
	defer m.unsub()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// sync copies the latest store snapshot into the list. The returned command
// re-runs an active filter over the new items and must be handed back to
// the program.
func (m *Model) sync() tea.Cmd {
	if !m.feed.dirty {
		return nil
	}
	m.feed.dirty = false
	items := make([]list.Item, 0, len(m.feed.latest))
	for _, t := range m.feed.latest {
		items = append(items, listItem{todo: t})
	}
	cmd := m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	m.list.Title = header(m.feed.latest)
	return cmd
}

func header(ts []model.Todo) string {
	done, pending := stats(ts)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), len(ts),
	)
}

func stats(ts []model.Todo) (done, pending int) {
	for _, t := range ts {
		if t.Complete {
			done++
		} else {
			pending++
		}
	}
	return
}

func (m Model) selected() (model.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}

// Update and View implement Bubble Tea's Model.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// pick up changes dispatched outside this model
	pending := m.sync()
	next, cmd := m.update(msg)
	return next, tea.Batch(pending, cmd)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case k.String() == "q" || (k.String() == "esc" && m.list.FilterState() == list.Unfiltered):
			return m, tea.Quit
		case key.Matches(k, toggleBind):
			if t, ok := m.selected(); ok {
				m.store.Dispatch(todos.MakeToggle(t.ID))
				return m, m.sync()
			}
			return m, nil
		case key.Matches(k, removeBind):
			if t, ok := m.selected(); ok {
				m.store.Dispatch(todos.MakeRemove(t.ID))
				return m, m.sync()
			}
			return m, nil
		case key.Matches(k, addBind):
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.resize()
			return m, m.ti.Focus()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			if !m.store.Submit(m.ti.Value()) {
				// blank input: nothing dispatched, keep the prompt open
				m.addErr = "nothing to add"
				return m, nil
			}
			cmd := m.sync()
			if m.list.FilterState() == list.Unfiltered {
				m.list.Select(len(m.list.Items()) - 1)
			}
			m.closeInput()
			return m, cmd
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 4
	if m.adding {
		h -= 3
	}
	m.list.SetSize(m.width-4, max(h, 1))
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding {
		title := "Add todo"
		if m.addErr != "" {
			title += "  " + errorStyle.Render(m.addErr)
		}
		content += "\n" + frameStyle.Render(title+"\n"+m.ti.View())
	}
	return frameStyle.Render(strings.TrimRight(content, "\n"))
}
