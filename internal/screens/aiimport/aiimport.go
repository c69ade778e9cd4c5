package aiimport

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/aigen"
	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/router"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

type step int

const (
	stepPrompt step = iota
	stepPaste
	stepGenerating
	stepPreview
	stepDone
)

// previewRows is how many parsed items the preview lists.
const previewRows = 6

type generatedMsg struct {
	seq    int
	result *aigen.Result
	err    error
}

// ImportScreen walks through getting a PAO system out of an AI assistant:
// copy the prompt, paste the reply, check the preview, import.
type ImportScreen struct {
	deps      screen.Deps
	step      step
	area      textarea.Model
	items     []pao.CustomItem
	skipped   []string
	source    string
	status    string
	statusErr bool

	// seq identifies the in-flight generation; replies for an older seq are
	// dropped.
	seq    int
	cancel context.CancelFunc
}

var _ screen.Screen = (*ImportScreen)(nil)
var _ screen.KeyHintProvider = (*ImportScreen)(nil)
var _ screen.InputCapturer = (*ImportScreen)(nil)
var _ screen.Disposer = (*ImportScreen)(nil)

func New(deps screen.Deps) *ImportScreen {
	ta := textarea.New()
	ta.Placeholder = "Paste the JSON array (or NN - Person: ... lines) here"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(10)
	return &ImportScreen{deps: deps, area: ta}
}

func (s *ImportScreen) Init() tea.Cmd {
	return nil
}

func (s *ImportScreen) Title() string {
	return "Create with AI"
}

// CapturesInput keeps Esc inside the screen once it is past the prompt
// step.
func (s *ImportScreen) CapturesInput() bool {
	return s.step == stepPaste || s.step == stepGenerating || s.step == stepPreview
}

// Dispose abandons a running generation.
func (s *ImportScreen) Dispose() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}

func (s *ImportScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepPrompt:
		hints := []layout.KeyHint{
			{Key: "C", Description: "Copy prompt"},
			{Key: "Enter", Description: "Paste reply"},
		}
		if s.deps.Generator != nil {
			hints = append(hints, layout.KeyHint{Key: "G", Description: "Generate now"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	case stepPaste:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Preview"},
			{Key: "Esc", Description: "Back"},
		}
	case stepGenerating:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case stepPreview:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Import"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
}

func (s *ImportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return s, s.handleGenerated(msg)
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	if s.step == stepPaste {
		var cmd tea.Cmd
		s.area, cmd = s.area.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ImportScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch s.step {
	case stepPrompt:
		switch key {
		case "c":
			s.copyPrompt()
		case "enter", "p":
			s.step = stepPaste
			s.status = ""
			return s.area.Focus()
		case "g":
			return s.generate()
		case "esc":
			return pop
		}

	case stepPaste:
		switch key {
		case "esc":
			s.area.Blur()
			s.step = stepPrompt
			return nil
		case "ctrl+s":
			s.parse(s.area.Value(), "pasted text")
			return nil
		}
		var cmd tea.Cmd
		s.area, cmd = s.area.Update(msg)
		return cmd

	case stepGenerating:
		if key == "esc" {
			s.Dispose()
			s.step = stepPrompt
			s.setStatus("Generation cancelled", true)
		}

	case stepPreview:
		switch key {
		case "enter", "y":
			return s.importItems()
		case "esc", "n":
			s.step = stepPaste
			s.status = ""
			return s.area.Focus()
		}

	case stepDone:
		if key == "enter" || key == "esc" {
			return pop
		}
	}
	return nil
}

func pop() tea.Msg { return router.PopScreenMsg{} }

func (s *ImportScreen) copyPrompt() {
	if s.deps.Copy == nil {
		s.setStatus("Clipboard is not available", true)
		return
	}
	if err := s.deps.Copy(custom.Prompt()); err != nil {
		s.deps.Logger().Warn("clipboard copy failed", zap.Error(err))
		s.setStatus("Could not copy: "+err.Error(), true)
		return
	}
	s.setStatus("Prompt copied! Paste it into your AI assistant.", false)
}

// Parse reads pasted text: a JSON array when one is present, otherwise the
// line format. It returns the items and the lines that were skipped.
func Parse(text string) ([]pao.CustomItem, []string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, errors.New("please paste some data first")
	}
	if _, ok := custom.ExtractJSONArray(text); ok {
		items, err := aigen.Parse(text)
		return items, nil, err
	}
	items, report, err := custom.ParseText(strings.NewReader(text))
	return items, report.Skipped, err
}

func (s *ImportScreen) parse(text, source string) {
	items, skipped, err := Parse(text)
	if err != nil {
		s.setStatus(err.Error(), true)
		return
	}
	s.items, s.skipped, s.source = items, skipped, source
	s.area.Blur()
	s.step = stepPreview
	s.status = ""
}

func (s *ImportScreen) generate() tea.Cmd {
	g := s.deps.Generator
	if g == nil {
		s.setStatus("No AI provider configured. Set llm.provider or an API key.", true)
		return nil
	}
	s.Dispose()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.step = stepGenerating
	s.status = ""
	seq := s.seq
	return func() tea.Msg {
		res, err := g.Generate(ctx)
		return generatedMsg{seq: seq, result: res, err: err}
	}
}

func (s *ImportScreen) handleGenerated(msg generatedMsg) tea.Cmd {
	if msg.seq != s.seq || s.step != stepGenerating {
		return nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if msg.err != nil {
		s.deps.Logger().Warn("pao generation failed", zap.Error(msg.err))
		s.step = stepPrompt
		s.setStatus("Generation failed: "+msg.err.Error(), true)
		return nil
	}
	s.items, s.skipped = msg.result.Items, nil
	s.source = "generated by " + msg.result.Model
	s.step = stepPreview
	return nil
}

func (s *ImportScreen) importItems() tea.Cmd {
	if s.deps.Custom == nil {
		s.setStatus("Custom items are not available", true)
		return nil
	}
	n, err := s.deps.Custom.Import(context.Background(), custom.PrefixCreated, s.items)
	if err != nil {
		s.deps.Logger().Error("pao import failed", zap.Error(err))
		s.setStatus("Import failed: "+err.Error(), true)
		return nil
	}
	s.deps.Logger().Info("pao import", zap.Int("imported", n), zap.Int("skipped", len(s.skipped)), zap.String("source", s.source))
	s.step = stepDone
	s.setStatus(custom.ImportReport{Imported: n, Skipped: s.skipped}.Summary(), false)
	return func() tea.Msg { return flow.DataChangedMsg{} }
}

func (s *ImportScreen) setStatus(msg string, isErr bool) {
	s.status, s.statusErr = msg, isErr
}

func (s *ImportScreen) View(width, height int) string {
	w := components.ContentWidth(width)
	var sections []string

	switch s.step {
	case stepPrompt:
		sections = append(sections,
			theme.Title.Width(w).Render("Create your PAO with AI"),
			theme.Subtitle.Width(w).Render("Copy the prompt into ChatGPT, Claude, or any AI assistant, then paste its reply here."),
			components.Panel(clip(custom.Prompt(), 8), w),
		)
	case stepPaste:
		s.area.SetWidth(w - 4)
		sections = append(sections,
			theme.Tag.Render("Paste the AI reply"),
			components.Panel(s.area.View(), w),
		)
	case stepGenerating:
		model := ""
		if s.deps.Generator != nil {
			model = " with " + s.deps.Generator.Model()
		}
		sections = append(sections, theme.Hint.Render("Generating your PAO system"+model+"…"))
	case stepPreview:
		sections = append(sections, s.renderPreview(w))
	case stepDone:
		sections = append(sections, theme.Title.Width(w).Render("All set!"))
	}

	if s.status != "" {
		sections = append(sections, components.StatusLine(s.status, s.statusErr))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, strings.Join(sections, "\n\n"))
}

func (s *ImportScreen) renderPreview(width int) string {
	res := aigen.Result{Items: s.items}
	var b strings.Builder
	b.WriteString(theme.Tag.Render("Preview") + theme.Hint.Render("  "+s.source) + "\n")
	b.WriteString(theme.Body.Render(res.Summary()) + "\n\n")
	for i, it := range s.items {
		if i == previewRows {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("… and %d more", len(s.items)-previewRows)) + "\n")
			break
		}
		b.WriteString(fmt.Sprintf("%s  %-7s %s\n", pao.FormatNumber(it.Number), it.Type.Label(), it.Title))
	}
	if len(s.skipped) > 0 {
		b.WriteString("\n" + theme.Incorrect.Render(fmt.Sprintf("%d lines will be skipped", len(s.skipped))))
	}
	return components.Panel(strings.TrimRight(b.String(), "\n"), width)
}

func clip(text string, lines int) string {
	all := strings.Split(text, "\n")
	if len(all) <= lines {
		return text
	}
	return strings.Join(all[:lines], "\n") + "\n" + theme.Hint.Render(fmt.Sprintf("… %d more lines", len(all)-lines))
}
