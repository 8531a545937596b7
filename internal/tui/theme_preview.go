package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgrowth/tppgUtil/internal/colorspace"
	"github.com/pgrowth/tppgUtil/internal/theme"
	"github.com/pgrowth/tppgUtil/internal/tui/components"
	"github.com/pgrowth/tppgUtil/internal/tui/styles"
)

// --- Theme preview model ---

type themeSwatch struct {
	property string
	hex      string
}

type themePreviewModel struct {
	primary  string
	swatches []themeSwatch

	width  int
	height int
}

// RunThemePreview shows the style properties a primary color derives.
// The TUI chrome itself adopts the previewed ramp, so the preview is
// rendered in the colors it describes.
func RunThemePreview(primary string) error {
	if err := styles.ApplyPrimary(primary); err != nil {
		return err
	}

	sink := theme.MapSink{}
	if err := theme.Apply(sink, primary); err != nil {
		return err
	}

	if primary == "" {
		primary = theme.DefaultPrimary
	}

	m := themePreviewModel{
		primary: primary,
		swatches: []themeSwatch{
			{property: theme.PrimaryProperty, hex: sink.Get(theme.PrimaryProperty)},
			{property: theme.AccentProperty, hex: sink.Get(theme.AccentProperty)},
		},
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m themePreviewModel) Init() tea.Cmd {
	return nil
}

func (m themePreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m themePreviewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "theme > preview", "")
	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: "q", Desc: "quit"},
	})

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	contentH := m.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	content := m.renderContent(contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m themePreviewModel) renderContent(height int) string {
	title := styles.Title.Render("Widget theme for " + m.primary)

	cardWidth := 64
	labelWidth := 18

	rows := make([]string, 0, len(m.swatches))
	for _, sw := range m.swatches {
		name := styles.Label.Width(labelWidth).Render(sw.property)
		block := lipgloss.NewStyle().Background(lipgloss.Color(sw.hex)).Render("        ")
		hex := styles.Value.Render(" " + sw.hex)
		rows = append(rows, name+block+hex+"  "+styles.MutedText.Render(hslLabel(sw.hex)))
	}

	content := ""
	for i, row := range rows {
		content += row
		if i < len(rows)-1 {
			content += "\n"
		}
	}

	card := styles.Card.Width(cardWidth).Render(content)

	note := styles.MutedText.Render("The accent keeps the primary's hue at lightness 90.")

	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card, "", note)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}

// hslLabel renders a hex color's HSL triple for display next to the
// swatch. Malformed values render as an empty string rather than failing
// the whole view.
func hslLabel(hex string) string {
	h, s, l, err := colorspace.HexToHSL(hex)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s, l)
}
