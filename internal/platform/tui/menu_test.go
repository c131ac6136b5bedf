package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/slime-siege/internal/storage"
)

func menuIndex(t *testing.T, m MenuModel, id string) int {
	t.Helper()
	for i, item := range m.items {
		if item.ModeID == id {
			return i
		}
	}
	t.Fatalf("mode %q not in menu", id)
	return -1
}

func TestMenuShowsBestWave(t *testing.T) {
	store := testStore(t)
	_, err := store.SaveRun(storage.Run{Mode: "tui-fake", Waves: 7})
	require.NoError(t, err)

	m := NewMenuModel(store, testConfig())
	idx := menuIndex(t, m, "tui-fake")
	assert.Equal(t, 7, m.items[idx].BestWave)
	assert.Equal(t, 1, m.items[idx].Runs)
	assert.Equal(t, "test mode", m.items[idx].Description)

	m.cursor = idx
	view := m.View()
	assert.Contains(t, view, "Fake Siege")
	assert.Contains(t, view, "best: wave 7")
	assert.Contains(t, view, "sieges played: 1")
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	idx := menuIndex(t, m, "tui-fake")
	for range idx {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	require.NotNil(t, m.Selected())
	assert.Equal(t, "tui-fake", m.Selected().ModeID)
	require.NotNil(t, cmd)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, next.(MenuModel).WantsScoreboard())

	next, _ = m.Update(runeKey("q"))
	assert.True(t, next.(MenuModel).IsQuitting())
	assert.Empty(t, next.(MenuModel).View())
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, next.(MenuModel).cursor)
}
