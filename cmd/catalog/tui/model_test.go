package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talhanuhuymaz/Renart-Case/internal/client"
)

func catalogFixture() []client.Product {
	products := make([]client.Product, 0, 8)
	for i := 0; i < 8; i++ {
		products = append(products, client.Product{
			ID:               "p-" + string(rune('0'+i)),
			Name:             "Ring",
			Price:            100,
			PopularityOutOf5: 4,
			Images: map[string]string{
				"yellow": "https://example.com/y.jpg",
				"white":  "https://example.com/w.jpg",
				"rose":   "https://example.com/r.jpg",
			},
		})
	}
	return products
}

func updated(t *testing.T, m tea.Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

// TestModel_StartsLoading verifies the initial display state.
func TestModel_StartsLoading(t *testing.T) {
	m := NewModel(client.NewClient("http://localhost:5000"))
	assert.Equal(t, phaseLoading, m.phase)
	assert.Contains(t, m.View(), "Loading products")
}

// TestModel_FetchSettles tests the one-shot phase transition.
func TestModel_FetchSettles(t *testing.T) {
	base := NewModel(client.NewClient("http://localhost:5000"))

	t.Run("success with items populates", func(t *testing.T) {
		m := updated(t, base, catalogMsg{products: catalogFixture()})
		assert.Equal(t, phasePopulated, m.phase)
		assert.Len(t, m.cards, 8)
		assert.Contains(t, m.View(), "Ring")
	})

	t.Run("success with zero items is empty, not error", func(t *testing.T) {
		m := updated(t, base, catalogMsg{products: nil})
		assert.Equal(t, phaseEmpty, m.phase)
		assert.Contains(t, m.View(), "No products available")
	})

	t.Run("failure is the error state with retry hint", func(t *testing.T) {
		m := updated(t, base, catalogErrMsg{err: assert.AnError})
		assert.Equal(t, phaseError, m.phase)
		assert.Contains(t, m.View(), "Failed to load products")
		assert.Contains(t, m.View(), "retry")
	})
}

// TestModel_RetryReloads verifies retry re-issues the fetch from Loading.
func TestModel_RetryReloads(t *testing.T) {
	m := updated(t, NewModel(client.NewClient("http://localhost:5000")), catalogErrMsg{err: assert.AnError})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	reloaded, ok := next.(Model)
	require.True(t, ok)

	assert.Equal(t, phaseLoading, reloaded.phase)
	assert.NotNil(t, cmd, "retry must re-issue the fetch command")
}

// TestModel_Paging tests list paging and progress.
func TestModel_Paging(t *testing.T) {
	m := NewModel(client.NewClient("http://localhost:5000"))
	m = updated(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}) // 1280px → 4 visible
	m = updated(t, m, catalogMsg{products: catalogFixture()})

	require.Equal(t, 4, m.list.Visible)
	assert.InDelta(t, 0, m.list.Progress(), 1e-9)

	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.list.Index)

	for i := 0; i < 10; i++ {
		m = updated(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, 4, m.list.Index, "clamped at the end")
	assert.InDelta(t, 1, m.list.Progress(), 1e-9)
}

// TestModel_ColorSelection tests that selection only touches the focused card.
func TestModel_ColorSelection(t *testing.T) {
	m := NewModel(client.NewClient("http://localhost:5000"))
	m = updated(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated(t, m, catalogMsg{products: catalogFixture()})

	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	assert.Equal(t, "white", m.cards[0].Selected)
	assert.Equal(t, 1, m.cards[0].CarouselIndex, "carousel follows the selection")
	assert.Equal(t, "yellow", m.cards[1].Selected, "other cards untouched")

	m = updated(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Equal(t, "rose", m.cards[1].Selected)
	assert.Equal(t, "white", m.cards[0].Selected, "first card keeps its selection")
}

// TestModel_ResizeReclamps tests that a resize re-clamps paging.
func TestModel_ResizeReclamps(t *testing.T) {
	m := NewModel(client.NewClient("http://localhost:5000"))
	m = updated(t, m, tea.WindowSizeMsg{Width: 30, Height: 24}) // 480px → 1 visible
	m = updated(t, m, catalogMsg{products: catalogFixture()})

	require.Equal(t, 1, m.list.Visible)
	for i := 0; i < 7; i++ {
		m = updated(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	require.Equal(t, 7, m.list.Index)

	m = updated(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}) // 4 visible
	assert.Equal(t, 4, m.list.Visible)
	assert.Equal(t, 4, m.list.Index)
}

// TestModel_Quit verifies q produces a quit command in any phase.
func TestModel_Quit(t *testing.T) {
	m := NewModel(client.NewClient("http://localhost:5000"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
