package tui

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talhanuhuymaz/Renart-Case/internal/client"
	"github.com/talhanuhuymaz/Renart-Case/internal/view"
)

// cardWidth is the rendered width of one product card in terminal cells.
const cardWidth = 28

// pixelsPerColumn maps terminal columns onto the responsive pixel
// breakpoints (640/960/1280) so a typical 80-column terminal shows the
// widest layout.
const pixelsPerColumn = 16

// phase is the top-level display state. The fetch settles exactly once,
// moving Loading to one of the other three.
type phase int

const (
	phaseLoading phase = iota
	phaseError
	phaseEmpty
	phasePopulated
)

// catalogMsg carries a successfully fetched and normalized catalog.
type catalogMsg struct {
	products []client.Product
}

// catalogErrMsg carries a failed catalog fetch.
type catalogErrMsg struct {
	err error
}

// Model is the bubbletea model for the catalog browser.
type Model struct {
	api     *client.Client
	styles  Styles
	spinner spinner.Model

	phase    phase
	err      error
	products []client.Product
	cards    []view.CardState
	list     view.ListState
	focused  int
	width    int
}

// NewModel creates the catalog browser model for the given API client.
func NewModel(api *client.Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(view.SwatchColor("yellow")))

	return Model{
		api:     api,
		styles:  DefaultStyles(),
		spinner: sp,
		phase:   phaseLoading,
		width:   80,
	}
}

// Init starts the spinner and issues the initial catalog fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

// fetchCmd fetches the catalog asynchronously. The settled message
// transitions the display phase; tearing the program down before it
// arrives simply discards the result.
func (m Model) fetchCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		products, err := api.FetchCatalog(ctx)
		if err != nil {
			return catalogErrMsg{err: err}
		}
		return catalogMsg{products: products}
	}
}

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list = m.list.Resize(msg.Width * pixelsPerColumn)
		m.clampFocus()
		return m, nil

	case catalogMsg:
		m.products = msg.products
		if len(m.products) == 0 {
			m.phase = phaseEmpty
			return m, nil
		}
		m.phase = phasePopulated
		m.cards = make([]view.CardState, len(m.products))
		for i, p := range m.products {
			keys := make([]string, 0, len(p.Images))
			for key := range p.Images {
				keys = append(keys, key)
			}
			// Map iteration order is random; sort so unrecognized
			// variants keep a stable position across renders.
			sort.Strings(keys)
			m.cards[i] = view.NewCardState(keys)
		}
		m.list = view.NewListState(len(m.products), m.width*pixelsPerColumn)
		m.focused = 0
		return m, nil

	case catalogErrMsg:
		m.phase = phaseError
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses by display phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	switch m.phase {
	case phaseError:
		if msg.String() == "r" {
			// Full reload: back to Loading with fresh state.
			reset := NewModel(m.api)
			reset.width = m.width
			return reset, reset.Init()
		}
	case phasePopulated:
		return m.handleCatalogKey(msg)
	}

	return m, nil
}

// handleCatalogKey handles interaction while the catalog is shown.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.list = m.list.Page(-1)
		m.clampFocus()
	case "right", "l":
		m.list = m.list.Page(1)
		m.clampFocus()
	case "tab":
		if m.focused < len(m.products)-1 {
			m.focused++
			if m.focused >= m.list.Index+m.list.Visible {
				m.list = m.list.Page(1)
			}
		}
	case "shift+tab":
		if m.focused > 0 {
			m.focused--
			if m.focused < m.list.Index {
				m.list = m.list.Page(-1)
			}
		}
	case "[":
		m.selectOnFocused(func(s view.CardState) view.CardState { return s.CycleColor(-1) })
	case "]":
		m.selectOnFocused(func(s view.CardState) view.CardState { return s.CycleColor(1) })
	case "y":
		m.selectKeyword("yellow")
	case "w":
		m.selectKeyword("white")
	case "r":
		m.selectKeyword("rose")
	}
	return m, nil
}

// selectOnFocused applies a state transformation to the focused card only.
func (m *Model) selectOnFocused(f func(view.CardState) view.CardState) {
	if m.focused >= 0 && m.focused < len(m.cards) {
		m.cards[m.focused] = f(m.cards[m.focused])
	}
}

// selectKeyword selects the focused card's first variant matching the
// keyword, if any.
func (m *Model) selectKeyword(keyword string) {
	m.selectOnFocused(func(s view.CardState) view.CardState {
		for _, key := range s.ColorKeys {
			if strings.Contains(strings.ToLower(key), keyword) {
				return s.SelectColor(key)
			}
		}
		return s
	})
}

// clampFocus keeps the focused card inside the visible window.
func (m *Model) clampFocus() {
	if m.focused < m.list.Index {
		m.focused = m.list.Index
	}
	if max := m.list.Index + m.list.Visible - 1; m.focused > max {
		m.focused = max
	}
	if m.focused >= len(m.products) {
		m.focused = len(m.products) - 1
	}
	if m.focused < 0 {
		m.focused = 0
	}
}
