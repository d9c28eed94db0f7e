package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lexcodex/lenscope/lens"
)

// Item pairs a placed lens with its resolved result.
type Item struct {
	Lens    *lens.Lens
	Result  lens.LensResult
	Outcome lens.Outcome
}

// ScanFunc produces the lenses for one file together with their resolved
// results. The browser re-invokes it on demand; each invocation is a fresh
// resolution pass.
type ScanFunc func(ctx context.Context) ([]Item, error)

// Run starts the interactive lens browser for the given file.
func Run(ctx context.Context, file string, scan ScanFunc) error {
	if scan == nil {
		return fmt.Errorf("scan function is required")
	}
	program := tea.NewProgram(
		NewModel(file, scan),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}

// Model implements the Bubble Tea model for the lens browser: a scan phase
// with a spinner, then a navigable list of lenses with expandable jump
// targets.
type Model struct {
	file string
	scan ScanFunc

	spinner  spinner.Model
	scanning bool
	err      error

	items    []Item
	cursor   int
	expanded map[int]bool

	width  int
	height int
}

// NewModel builds the browser model in its scanning state.
func NewModel(file string, scan ScanFunc) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		file:     file,
		scan:     scan,
		spinner:  sp,
		scanning: true,
		expanded: make(map[int]bool),
	}
}

type scanDoneMsg struct {
	items []Item
	err   error
}

func (m Model) scanCmd() tea.Cmd {
	scan := m.scan
	return func() tea.Msg {
		items, err := scan(context.Background())
		return scanDoneMsg{items: items, err: err}
	}
}

// Init kicks off the first scan.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scanCmd())
}

// Update handles key navigation and scan completion.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scanDoneMsg:
		m.scanning = false
		m.items = msg.items
		m.err = msg.err
		m.cursor = 0
		m.expanded = make(map[int]bool)
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(m.items) > 0 {
				m.expanded[m.cursor] = !m.expanded[m.cursor]
			}
		case "r":
			if !m.scanning {
				m.scanning = true
				m.err = nil
				return m, tea.Batch(m.spinner.Tick, m.scanCmd())
			}
		}
	}
	return m, nil
}
