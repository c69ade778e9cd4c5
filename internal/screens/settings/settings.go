// Package settings is the settings page: theme, file import and export of
// the custom collection, and a way back into onboarding.
package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/custom"
	"github.com/abhisek/paomind/internal/flow"
	"github.com/abhisek/paomind/internal/pao"
	"github.com/abhisek/paomind/internal/screen"
	"github.com/abhisek/paomind/internal/store"
	"github.com/abhisek/paomind/internal/ui/components"
	"github.com/abhisek/paomind/internal/ui/layout"
	"github.com/abhisek/paomind/internal/ui/theme"
)

// DefaultExportPath is offered when the export prompt opens.
const DefaultExportPath = "custom-pao-data.csv"

type mode int

const (
	modeMenu mode = iota
	modeExport
	modeImport
)

// rowTheme is the menu row whose label tracks the theme.
const rowTheme = 0

// SettingsScreen is the settings page.
type SettingsScreen struct {
	deps      screen.Deps
	theme     store.Theme
	menu      components.Menu
	mode      mode
	path      components.TextInput
	status    string
	statusErr bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)
var _ screen.InputCapturer = (*SettingsScreen)(nil)

func New(deps screen.Deps, current store.Theme) *SettingsScreen {
	if current == "" {
		current = store.ThemeDark
	}
	s := &SettingsScreen{deps: deps, theme: current}
	s.menu = components.NewMenu([]components.MenuItem{
		{Action: s.toggleTheme},
		{Label: "Export custom PAO to file", Action: s.openPath(modeExport)},
		{Label: "Import custom PAO from file", Action: s.openPath(modeImport)},
		{Label: "Show onboarding", Action: func() tea.Cmd {
			return func() tea.Msg { return flow.ShowOnboardingMsg{} }
		}},
	})
	s.syncThemeLabel()
	s.path = components.NewTextInput("path/to/file.csv", false, 1024)
	s.path.Blur()
	return s
}

func (s *SettingsScreen) Init() tea.Cmd { return nil }

func (s *SettingsScreen) Title() string { return "Settings" }

func (s *SettingsScreen) CapturesInput() bool { return s.mode != modeMenu }

// Theme is the theme the page last selected.
func (s *SettingsScreen) Theme() store.Theme { return s.theme }

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.mode != modeMenu {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "T", Description: "Toggle theme"},
	}
}

func (s *SettingsScreen) syncThemeLabel() {
	name := "Dark"
	if s.theme == store.ThemeLight {
		name = "Light"
	}
	s.menu.Items[rowTheme].Label = "Theme: " + name + " mode"
}

func (s *SettingsScreen) toggleTheme() tea.Cmd {
	next := store.ThemeLight
	if s.theme == store.ThemeLight {
		next = store.ThemeDark
	}
	s.theme = next
	s.syncThemeLabel()
	return func() tea.Msg { return flow.ThemeChangedMsg{Theme: next} }
}

func (s *SettingsScreen) openPath(m mode) func() tea.Cmd {
	return func() tea.Cmd {
		s.mode = m
		s.status = ""
		if m == modeExport {
			s.path.SetValue(DefaultExportPath)
		} else {
			s.path.Reset()
		}
		return s.path.Focus()
	}
}

func (s *SettingsScreen) closePath() {
	s.mode = modeMenu
	s.path.Blur()
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.mode != modeMenu {
			var cmd tea.Cmd
			s.path, cmd = s.path.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.mode != modeMenu {
		switch kmsg.String() {
		case "esc":
			s.closePath()
			return s, nil
		case "enter":
			return s, s.submitPath()
		}
		var cmd tea.Cmd
		s.path, cmd = s.path.Update(msg)
		return s, cmd
	}

	if kmsg.String() == "t" {
		return s, s.toggleTheme()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) submitPath() tea.Cmd {
	raw := strings.TrimSpace(s.path.Value())
	if raw == "" {
		s.setStatus("Enter a file path", true)
		return nil
	}
	path := expandHome(raw)
	format := custom.FormatForPath(path)

	if s.mode == modeExport {
		s.closePath()
		return s.export(path, format)
	}
	s.closePath()
	return s.importFrom(path, format)
}

func (s *SettingsScreen) export(path string, format custom.Format) tea.Cmd {
	var items []pao.CustomItem
	if s.deps.Custom != nil {
		items = s.deps.Custom.All()
	}
	if err := custom.ExportFile(path, format, items); err != nil {
		if errors.Is(err, custom.ErrNothingToExport) {
			s.setStatus("No custom PAO data to export", true)
			return nil
		}
		s.deps.Logger().Error("export failed", zap.String("path", path), zap.Error(err))
		s.setStatus("Export failed: "+err.Error(), true)
		return nil
	}
	s.deps.Logger().Info("exported custom items", zap.String("path", path), zap.String("format", string(format)), zap.Int("count", len(items)))
	s.setStatus(fmt.Sprintf("Exported %d items to %s", len(items), path), false)
	return nil
}

func (s *SettingsScreen) importFrom(path string, format custom.Format) tea.Cmd {
	if s.deps.Custom == nil {
		s.setStatus("Custom data is unavailable", true)
		return nil
	}
	report, err := s.deps.Custom.ImportFile(context.Background(), path, format)
	if err != nil {
		s.deps.Logger().Warn("import failed", zap.String("path", path), zap.Error(err))
		s.setStatus("Import failed: "+err.Error(), true)
		return nil
	}
	s.deps.Logger().Info("imported custom items", zap.String("path", path), zap.Int("count", report.Imported), zap.Int("skipped", len(report.Skipped)))
	s.setStatus(report.Summary(), false)
	return func() tea.Msg { return flow.DataChangedMsg{} }
}

func (s *SettingsScreen) setStatus(msg string, isErr bool) {
	s.status = msg
	s.statusErr = isErr
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func (s *SettingsScreen) View(width, height int) string {
	w := components.ContentWidth(width)

	var b strings.Builder
	if s.mode == modeMenu {
		b.WriteString(s.menu.View())
	} else {
		label := "Export to"
		if s.mode == modeImport {
			label = "Import from"
		}
		b.WriteString(theme.Tag.Render(label) + "\n")
		b.WriteString(s.path.View() + "\n\n")
		b.WriteString(theme.Hint.Render("Format follows the extension: .csv, .json or .txt"))
	}

	var info []string
	count := 0
	if s.deps.Custom != nil {
		count = s.deps.Custom.Count()
	}
	info = append(info, fmt.Sprintf("Custom items: %d", count))
	if s.deps.Generator != nil {
		info = append(info, "AI generation: configured")
	} else {
		info = append(info, "AI generation: not configured")
	}

	parts := []string{
		theme.Title.Width(w).Render("Settings"),
		"",
		components.Panel(b.String(), w),
		theme.Hint.Render(strings.Join(info, "  ·  ")),
	}
	if st := components.StatusLine(s.status, s.statusErr); st != "" {
		parts = append(parts, "", lipgloss.NewStyle().Width(w).Render(st))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, lipgloss.JoinVertical(lipgloss.Left, parts...))
}
