package create

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/router"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/screens/aiimport"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
	"github.com/abhisek/paomind/internal/validation"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
)

const (
	inputNumber = iota
	inputTitle
	inputImage
)

// visibleRows caps how many items the list shows at once.
const visibleRows = 10

// CreateScreen edits the custom PAO collection one kind at a time.
type CreateScreen struct {
	deps      screen.Deps
	kind      pao.Kind
	selected  int
	mode      mode
	editingID string
	inputs    [3]components.TextInput
	focus     int
	confirm   components.ButtonRow
	status    string
	statusErr bool
}

var _ screen.Screen = (*CreateScreen)(nil)
var _ screen.KeyHintProvider = (*CreateScreen)(nil)
var _ screen.InputCapturer = (*CreateScreen)(nil)

func New(deps screen.Deps) *CreateScreen {
	s := &CreateScreen{deps: deps, kind: pao.Person}
	s.inputs = [3]components.TextInput{
		components.NewTextInput("00", true, 2),
		components.NewTextInput("Title", false, 80),
		components.NewTextInput("Image URL (optional)", false, 512),
	}
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	return s
}

func (s *CreateScreen) Init() tea.Cmd {
	return nil
}

func (s *CreateScreen) Title() string {
	return "Create"
}

func (s *CreateScreen) CapturesInput() bool { return s.mode == modeForm }

func (s *CreateScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeForm:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmDelete:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "←/→", Description: "Type"},
		{Key: "A", Description: "Add"},
		{Key: "E", Description: "Edit"},
		{Key: "D", Description: "Delete"},
		{Key: "I", Description: "AI import"},
	}
}

// Kind returns the active tab.
func (s *CreateScreen) Kind() pao.Kind { return s.kind }

func (s *CreateScreen) items() []pao.CustomItem {
	if s.deps.Custom == nil {
		return nil
	}
	return s.deps.Custom.ByKind(s.kind)
}

func (s *CreateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(flow.DataChangedMsg); ok {
		s.clampSelection()
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.mode == modeForm {
			var cmd tea.Cmd
			s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch s.mode {
	case modeForm:
		return s, s.updateForm(kmsg)
	case modeConfirmDelete:
		return s, s.updateConfirm(kmsg)
	}
	return s, s.updateList(kmsg)
}

func (s *CreateScreen) updateList(msg tea.KeyMsg) tea.Cmd {
	kinds := pao.Kinds()
	switch msg.String() {
	case "left", "h":
		s.switchKind(kinds[(s.kindIndex()+len(kinds)-1)%len(kinds)])
	case "right", "l":
		s.switchKind(kinds[(s.kindIndex()+1)%len(kinds)])
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.items())-1 {
			s.selected++
		}
	case "a":
		return s.openForm(pao.CustomItem{})
	case "e", "enter":
		if it, ok := s.current(); ok {
			return s.openForm(it)
		}
	case "d", "delete":
		if _, ok := s.current(); ok {
			s.mode = modeConfirmDelete
			s.confirm = components.NewButtonRow(
				components.NewButton("Delete", "y", s.deleteCurrent),
				components.NewButton("Keep", "n", s.keepCurrent),
			)
		}
	case "i":
		next := aiimport.New(s.deps)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return nil
}

func (s *CreateScreen) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "esc" {
		return s.keepCurrent()
	}
	var cmd tea.Cmd
	s.confirm, cmd = s.confirm.Update(msg)
	return cmd
}

func (s *CreateScreen) keepCurrent() tea.Cmd {
	s.mode = modeList
	return nil
}

func (s *CreateScreen) deleteCurrent() tea.Cmd {
	s.mode = modeList
	it, ok := s.current()
	if !ok {
		return nil
	}
	if err := s.deps.Custom.Delete(context.Background(), it.ID); err != nil {
		s.fail("delete", err)
		return nil
	}
	s.clampSelection()
	s.setStatus(fmt.Sprintf("Deleted %s %s", it.Type.Label(), pao.FormatNumber(it.Number)), false)
	return changed
}

func (s *CreateScreen) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.closeForm()
		return nil
	case "tab", "down":
		return s.setFocus((s.focus + 1) % len(s.inputs))
	case "shift+tab", "up":
		return s.setFocus((s.focus + len(s.inputs) - 1) % len(s.inputs))
	case "enter":
		return s.save()
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func (s *CreateScreen) kindIndex() int {
	for i, k := range pao.Kinds() {
		if k == s.kind {
			return i
		}
	}
	return 0
}

func (s *CreateScreen) switchKind(k pao.Kind) {
	s.kind = k
	s.selected = 0
	s.status = ""
}

func (s *CreateScreen) current() (pao.CustomItem, bool) {
	items := s.items()
	if s.selected < 0 || s.selected >= len(items) {
		return pao.CustomItem{}, false
	}
	return items[s.selected], true
}

func (s *CreateScreen) clampSelection() {
	s.selected = max(min(s.selected, len(s.items())-1), 0)
}

func (s *CreateScreen) openForm(it pao.CustomItem) tea.Cmd {
	s.mode = modeForm
	s.editingID = it.ID
	s.status = ""
	for i := range s.inputs {
		s.inputs[i].Reset()
	}
	if it.ID != "" {
		s.inputs[inputNumber].SetValue(pao.FormatNumber(it.Number))
		s.inputs[inputTitle].SetValue(it.Title)
		if it.ImageURL != pao.PlaceholderImage(it.Title) {
			s.inputs[inputImage].SetValue(it.ImageURL)
		}
	}
	return s.setFocus(inputNumber)
}

func (s *CreateScreen) closeForm() {
	s.mode = modeList
	s.editingID = ""
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
}

func (s *CreateScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	var cmd tea.Cmd
	for j := range s.inputs {
		if j == i {
			cmd = s.inputs[j].Focus()
		} else {
			s.inputs[j].Blur()
		}
	}
	return cmd
}

func (s *CreateScreen) save() tea.Cmd {
	if s.deps.Custom == nil {
		s.setStatus("Custom items are not available", true)
		return nil
	}
	n, ok := pao.ParseNumber(s.inputs[inputNumber].Value())
	if !ok {
		s.setStatus("Number must be between 00 and 99", true)
		return s.setFocus(inputNumber)
	}
	d := custom.Draft{
		Number:   n,
		Title:    s.inputs[inputTitle].Value(),
		ImageURL: s.inputs[inputImage].Value(),
	}

	ctx := context.Background()
	var (
		item pao.CustomItem
		err  error
		verb = "Added"
	)
	if s.editingID != "" {
		item, err = s.deps.Custom.Edit(ctx, s.editingID, d)
		verb = "Updated"
	} else {
		item, err = s.deps.Custom.Add(ctx, s.kind, d)
	}
	if err != nil {
		var fe validation.FieldErrors
		switch {
		case errors.Is(err, custom.ErrDuplicateNumber):
			s.setStatus(err.Error(), true)
			return s.setFocus(inputNumber)
		case errors.As(err, &fe):
			s.setStatus(fe.Error(), true)
			return nil
		}
		s.fail("save", err)
		return nil
	}

	s.closeForm()
	for i, it := range s.items() {
		if it.ID == item.ID {
			s.selected = i
		}
	}
	s.setStatus(fmt.Sprintf("%s %s %s: %s", verb, item.Type.Label(), pao.FormatNumber(item.Number), item.Title), false)
	return changed
}

func changed() tea.Msg { return flow.DataChangedMsg{} }

func (s *CreateScreen) setStatus(msg string, isErr bool) {
	s.status, s.statusErr = msg, isErr
}

func (s *CreateScreen) fail(op string, err error) {
	s.deps.Logger().Error("custom item "+op+" failed", zap.Error(err))
	s.setStatus("Could not "+op+": "+err.Error(), true)
}

func (s *CreateScreen) View(width, height int) string {
	w := components.ContentWidth(width)
	sections := []string{s.renderTabs()}

	switch s.mode {
	case modeForm:
		sections = append(sections, s.renderForm(w))
	default:
		sections = append(sections, s.renderList(w))
		if s.mode == modeConfirmDelete {
			if it, ok := s.current(); ok {
				sections = append(sections, theme.Incorrect.Render(
					fmt.Sprintf("Delete %s %s %q?", it.Type.Label(), pao.FormatNumber(it.Number), it.Title))+
					"\n"+s.confirm.View())
			}
		}
	}
	if s.status != "" {
		sections = append(sections, components.StatusLine(s.status, s.statusErr))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, strings.Join(sections, "\n\n"))
}

func (s *CreateScreen) renderTabs() string {
	var tabs []string
	for _, k := range pao.Kinds() {
		count := 0
		if s.deps.Custom != nil {
			count = s.deps.Custom.CountByKind(k)
		}
		label := fmt.Sprintf(" %s (%d) ", k.Label(), count)
		if k == s.kind {
			tabs = append(tabs, theme.ButtonActive.Render(label))
		} else {
			tabs = append(tabs, theme.ButtonInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (s *CreateScreen) renderList(width int) string {
	items := s.items()
	if len(items) == 0 {
		return components.Panel(theme.Hint.Render(
			fmt.Sprintf("No custom %s items yet. Press A to add one or I to import.", strings.ToLower(s.kind.Label()))), width)
	}

	start := max(0, min(s.selected-visibleRows/2, len(items)-visibleRows))
	end := min(start+visibleRows, len(items))

	var lines []string
	for i := start; i < end; i++ {
		it := items[i]
		line := fmt.Sprintf("%s  %s", pao.FormatNumber(it.Number), it.Title)
		if i == s.selected {
			lines = append(lines, theme.Selected.Render("▸ "+line))
		} else {
			lines = append(lines, theme.Unselected.Render("  "+line))
		}
	}
	if len(items) > visibleRows {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(items))))
	}
	return components.Panel(strings.Join(lines, "\n"), width)
}

func (s *CreateScreen) renderForm(width int) string {
	heading := "Add " + s.kind.Label()
	if s.editingID != "" {
		heading = "Edit " + s.kind.Label()
	}
	labels := []string{"Number", "Title", "Image URL"}

	var b strings.Builder
	b.WriteString(theme.Tag.Render(heading) + "\n\n")
	for i, label := range labels {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.focus {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(label) + "\n" + s.inputs[i].View() + "\n\n")
	}
	if n, ok := pao.ParseNumber(s.inputs[inputNumber].Value()); ok {
		if v, ok := s.deps.Table.LookupKind(s.kind, n); ok {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("Default for %s: %s", pao.FormatNumber(n), v)))
		}
	}
	return components.Panel(strings.TrimRight(b.String(), "\n"), width)
}
