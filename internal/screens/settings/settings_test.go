package settings

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/store"
)

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newScreen(items ...pao.CustomItem) (*SettingsScreen, *custom.Store) {
	cs := custom.NewStore(items, nil)
	return New(screen.Deps{Table: pao.Default(), Custom: cs}, store.ThemeDark), cs
}

func selectRow(s *SettingsScreen, row int) tea.Cmd {
	for range row {
		s.Update(down)
	}
	_, cmd := s.Update(enter)
	return cmd
}

func TestThemeToggle(t *testing.T) {
	s, _ := newScreen()
	assert.Contains(t, s.View(100, 40), "Theme: Dark mode")

	cmd := selectRow(s, rowTheme)
	require.NotNil(t, cmd)
	assert.Equal(t, flow.ThemeChangedMsg{Theme: store.ThemeLight}, cmd())
	assert.Equal(t, store.ThemeLight, s.Theme())
	assert.Contains(t, s.View(100, 40), "Theme: Light mode")

	_, cmd = s.Update(key('t'))
	require.NotNil(t, cmd)
	assert.Equal(t, flow.ThemeChangedMsg{Theme: store.ThemeDark}, cmd())
}

func TestShowOnboarding(t *testing.T) {
	s, _ := newScreen()
	cmd := selectRow(s, 3)
	require.NotNil(t, cmd)
	assert.Equal(t, flow.ShowOnboardingMsg{}, cmd())
}

func TestExportThenImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pao.json")
	s, _ := newScreen(pao.CustomItem{ID: "a", Number: 7, Type: pao.Person, Title: "James Bond", ImageURL: "https://example.com/b.png"})

	selectRow(s, 1)
	assert.True(t, s.CapturesInput())
	assert.Equal(t, DefaultExportPath, s.path.Value())
	s.path.SetValue(path)
	_, cmd := s.Update(enter)
	assert.Nil(t, cmd)
	assert.False(t, s.CapturesInput())
	assert.Contains(t, s.View(120, 40), "Exported 1 items")
	_, err := os.Stat(path)
	require.NoError(t, err)

	other, cs := newScreen()
	selectRow(other, 2)
	other.path.SetValue(path)
	_, cmd = other.Update(enter)
	require.NotNil(t, cmd)
	assert.Equal(t, flow.DataChangedMsg{}, cmd())
	assert.Equal(t, 1, cs.Count())
	assert.Contains(t, other.View(120, 40), "Successfully imported 1 PAO items.")
}

func TestExportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pao.csv")
	s, _ := newScreen()
	selectRow(s, 1)
	s.path.SetValue(path)
	s.Update(enter)
	assert.Contains(t, s.View(120, 40), "No custom PAO data to export")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestImportFailureKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Number,Type,Title\n123,person,Nobody\n"), 0o644))

	s, cs := newScreen()
	selectRow(s, 2)
	s.path.SetValue(path)
	_, cmd := s.Update(enter)
	assert.Nil(t, cmd)
	assert.Zero(t, cs.Count())
	assert.Contains(t, s.View(120, 40), "Import failed")
}

func TestPathPromptCancel(t *testing.T) {
	s, _ := newScreen()
	selectRow(s, 2)
	assert.True(t, s.CapturesInput())

	s.Update(enter)
	assert.True(t, s.CapturesInput(), "an empty path keeps the prompt open")
	assert.Contains(t, s.View(100, 40), "Enter a file path")

	s.Update(esc)
	assert.False(t, s.CapturesInput())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "pao.csv"), expandHome("~/pao.csv"))
	assert.Equal(t, "rel/pao.csv", expandHome("rel/pao.csv"))
}
