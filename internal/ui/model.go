package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"listpick/internal/catalog"
	"listpick/internal/config"
	"listpick/internal/domain"
	"listpick/internal/ui/views"
)

// savedMessageFmt is shown after a successful save, before the delayed exit.
const savedMessageFmt = "Успешно! Список сохранен. Выход через %d сек..."

// exitTimerMsg fires when the post-save pause has elapsed
type exitTimerMsg time.Time

// previewDoneMsg contains the result of a file preview command
type previewDoneMsg struct {
	err error
}

// Model represents the UI state
type Model struct {
	catalog  *catalog.Catalog
	store    config.SelectionStore
	listsDir string

	keys        KeyMap
	help        help.Model
	renderer    *views.Renderer
	previewer   *Previewer
	showHelpBar bool
	exitDelay   time.Duration

	width  int
	height int

	saved         bool // selection written, waiting for the exit timer
	statusMessage string
	err           error
}

// NewModel creates a new UI model
func NewModel(cat *catalog.Catalog, store config.SelectionStore, listsDir string, ui config.UISettings, exitDelay time.Duration) *Model {
	return &Model{
		catalog:     cat,
		store:       store,
		listsDir:    listsDir,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		renderer:    views.NewRenderer(),
		previewer:   NewPreviewer(),
		showHelpBar: ui.ShowHelpBar,
		exitDelay:   exitDelay,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.previewer.SetProgram(p)
}

// Err returns the fatal error that ended the session, if any
func (m *Model) Err() error {
	return m.err
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case exitTimerMsg:
		return m, tea.Quit

	case previewDoneMsg:
		if msg.err != nil {
			log.Printf("Preview failed: %v", msg.err)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey maps a key press to a state transition
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always exits immediately with no write
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// The selection is already durable once saved; ignore input until the
	// exit timer fires.
	if m.saved {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.catalog.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.catalog.MoveDown()

	case key.Matches(msg, m.keys.Choose):
		item := m.catalog.CursorItem()
		if item.Kind == domain.KindEntry {
			m.catalog.Toggle()
			return m, nil
		}
		switch item.Action {
		case domain.ActionSave:
			return m.save()
		case domain.ActionCancel:
			log.Printf("Cancelled, selection file untouched")
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Preview):
		item := m.catalog.CursorItem()
		if item.Kind != domain.KindEntry {
			return m, nil
		}
		path := filepath.Join(m.listsDir, item.Entry.Name)
		return m, func() tea.Msg {
			return previewDoneMsg{err: m.previewer.ShowFileInPager(path)}
		}
	}

	return m, nil
}

// save persists the current selection, then schedules the delayed exit. The
// write completes before the pause begins, so the pause never races it.
func (m *Model) save() (tea.Model, tea.Cmd) {
	names := m.catalog.SelectedNames()
	if err := m.store.Save(names); err != nil {
		m.err = fmt.Errorf("failed to save selection: %w", err)
		return m, tea.Quit
	}
	log.Printf("Saved %d selected lists to %s", len(names), m.store.Path())

	m.saved = true
	m.statusMessage = fmt.Sprintf(savedMessageFmt, int(m.exitDelay.Seconds()))

	if m.exitDelay <= 0 {
		return m, tea.Quit
	}
	return m, tea.Tick(m.exitDelay, func(t time.Time) tea.Msg {
		return exitTimerMsg(t)
	})
}

// View renders the current frame
func (m *Model) View() string {
	state := views.ViewState{
		Items:         m.catalog.Items(),
		Cursor:        m.catalog.Cursor(),
		StatusMessage: m.statusMessage,
	}
	if m.showHelpBar && !m.saved {
		state.HelpView = m.help.View(m.keys)
	}
	return m.renderer.Render(state)
}
