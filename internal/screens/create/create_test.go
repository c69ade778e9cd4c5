package create

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/router"
	"github.com/abhisek/paomind/internal/screen"
)

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	tab   = tea.KeyPressMsg{Code: tea.KeyTab}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeText(s *CreateScreen, text string) {
	for _, r := range text {
		s.Update(key(r))
	}
}

func newScreen() (*CreateScreen, *custom.Store) {
	cs := custom.NewStore(nil, nil)
	return New(screen.Deps{Table: pao.Default(), Custom: cs}), cs
}

func addItem(s *CreateScreen, number, title string) tea.Cmd {
	s.Update(key('a'))
	typeText(s, number)
	s.Update(tab)
	typeText(s, title)
	_, cmd := s.Update(enter)
	return cmd
}

func isDataChanged(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(flow.DataChangedMsg)
	return ok
}

func TestAdd(t *testing.T) {
	s, cs := newScreen()
	assert.False(t, s.CapturesInput())

	s.Update(key('a'))
	assert.True(t, s.CapturesInput(), "the form takes typed keys")
	s.Update(esc)
	assert.Equal(t, modeList, s.mode)

	cmd := addItem(s, "07", "James Bond")
	assert.True(t, isDataChanged(cmd))
	assert.Equal(t, modeList, s.mode)

	items := cs.ByKind(pao.Person)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Number)
	assert.Equal(t, "James Bond", items[0].Title)
	assert.Contains(t, s.View(100, 40), "Added Person 07: James Bond")
}

func TestDuplicateScopedToKind(t *testing.T) {
	s, cs := newScreen()
	addItem(s, "5", "Bond")

	cmd := addItem(s, "05", "Other")
	assert.False(t, isDataChanged(cmd))
	assert.Equal(t, modeForm, s.mode, "form stays open on a duplicate")
	assert.True(t, s.statusErr)
	assert.Contains(t, s.status, "already")
	s.Update(esc)

	s.Update(right)
	assert.Equal(t, pao.Action, s.Kind())
	assert.True(t, isDataChanged(addItem(s, "05", "shaking")))
	assert.Equal(t, 2, cs.Count())
}

func TestInvalidNumber(t *testing.T) {
	s, cs := newScreen()
	cmd := addItem(s, "", "Nobody")
	assert.False(t, isDataChanged(cmd))
	assert.Equal(t, "Number must be between 00 and 99", s.status)
	assert.Zero(t, cs.Count())
}

func TestEmptyTitle(t *testing.T) {
	s, cs := newScreen()
	cmd := addItem(s, "3", "   ")
	assert.Nil(t, cmd)
	assert.Contains(t, s.status, "Title is required")
	assert.Zero(t, cs.Count())
}

func TestEdit(t *testing.T) {
	s, cs := newScreen()
	addItem(s, "1", "Einstein")
	addItem(s, "2", "Ballerina")
	assert.Equal(t, 1, s.selected, "a saved item becomes the selection")

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(key('e'))
	require.Equal(t, modeForm, s.mode)
	assert.Equal(t, "01", s.inputs[inputNumber].Value())
	assert.Equal(t, "Einstein", s.inputs[inputTitle].Value())
	assert.Empty(t, s.inputs[inputImage].Value(), "placeholder pictures are not shown for editing")

	s.Update(tab)
	typeText(s, " Jr")
	_, cmd := s.Update(enter)
	assert.True(t, isDataChanged(cmd))

	it, ok := cs.Get(cs.ByKind(pao.Person)[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Einstein Jr", it.Title)
	assert.Equal(t, 2, cs.Count())
}

func TestEditKeepsOwnNumber(t *testing.T) {
	s, _ := newScreen()
	addItem(s, "9", "Nine")
	s.Update(enter)
	_, cmd := s.Update(enter)
	assert.True(t, isDataChanged(cmd), "saving unchanged is not a duplicate of itself")
}

func TestDeleteConfirm(t *testing.T) {
	s, cs := newScreen()
	addItem(s, "1", "Einstein")
	addItem(s, "2", "Ballerina")
	s.Update(down)

	s.Update(key('d'))
	view := ansi.Strip(s.View(100, 40))
	assert.Contains(t, view, `Delete Person 02 "Ballerina"?`)
	assert.Contains(t, view, "Keep (N)")
	s.Update(key('n'))
	assert.Equal(t, modeList, s.mode)
	assert.Equal(t, 2, cs.Count())

	s.Update(key('d'))
	s.Update(right)
	s.Update(enter)
	assert.Equal(t, modeList, s.mode, "enter on Keep backs out")
	assert.Equal(t, 2, cs.Count())

	s.Update(key('d'))
	_, cmd := s.Update(key('y'))
	assert.True(t, isDataChanged(cmd))
	require.Equal(t, 1, cs.Count())
	assert.Equal(t, "Einstein", cs.All()[0].Title)
	assert.Equal(t, 0, s.selected)
}

func TestExternalChangeClampsSelection(t *testing.T) {
	s, cs := newScreen()
	addItem(s, "1", "A")
	addItem(s, "2", "B")
	s.Update(down)
	require.NoError(t, cs.Clear(context.Background()))
	s.Update(flow.DataChangedMsg{})
	assert.Equal(t, 0, s.selected)
	assert.True(t, strings.Contains(s.View(100, 40), "No custom person items yet"))
}

func TestOpenImport(t *testing.T) {
	s, _ := newScreen()
	_, cmd := s.Update(key('i'))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PushScreenMsg)
	assert.True(t, ok)
}
