package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/services/auth"
	"github.com/pgrowth/tppgUtil/internal/tui/components"
	"github.com/pgrowth/tppgUtil/internal/tui/styles"
)

// --- Data center status ---

type dataCenterStatus struct {
	name   string
	origin string
	status string // "authenticated", "not authenticated", or error message
	ok     bool
}

// --- Auth status model ---

type authStatusModel struct {
	store auth.Store

	statuses []dataCenterStatus

	width  int
	height int
}

// collectStatuses probes the store for a token per data center.
func collectStatuses(store auth.Store) []dataCenterStatus {
	dataCenters := creator.DataCenters()

	statuses := make([]dataCenterStatus, 0, len(dataCenters))
	for _, dc := range dataCenters {
		s := dataCenterStatus{
			name:   dc,
			origin: creator.BaseURL(creator.DataCenter(dc)),
		}
		_, err := store.GetToken(dc)
		switch {
		case err == nil:
			s.status = "authenticated"
			s.ok = true
		case errors.Is(err, auth.ErrTokenNotFound):
			s.status = "not authenticated"
		default:
			s.status = fmt.Sprintf("error: %v", err)
		}
		statuses = append(statuses, s)
	}
	return statuses
}

// RunAuthStatus starts the full-window auth status TUI. One token can be
// stored per Zoho data center; every data center is listed with its API
// origin and whether a token is present.
func RunAuthStatus(store auth.Store) error {
	m := authStatusModel{
		store:    store,
		statuses: collectStatuses(store),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m authStatusModel) Init() tea.Cmd {
	return nil
}

func (m authStatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m authStatusModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "auth status", "")
	footerBindings := []components.KeyBinding{
		{Key: "q", Desc: "quit"},
	}
	footer := components.Footer(m.width, footerBindings)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	contentH := m.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	content := m.renderContent(contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m authStatusModel) renderContent(height int) string {
	title := styles.Title.Render("Zoho Data Centers")

	cardWidth := 64
	nameWidth := 6
	statusWidth := 22

	rows := make([]string, 0, len(m.statuses))
	for _, ds := range m.statuses {
		name := styles.Label.Width(nameWidth).Render(ds.name)

		var statusText string
		if ds.ok {
			statusText = styles.SuccessText.Width(statusWidth).Render("authenticated")
		} else {
			statusText = styles.MutedText.Width(statusWidth).Render(ds.status)
		}

		origin := styles.MutedText.Render(ds.origin)
		rows = append(rows, name+statusText+origin)
	}

	content := ""
	for i, row := range rows {
		content += row
		if i < len(rows)-1 {
			content += "\n"
		}
	}

	card := styles.Card.Width(cardWidth).Render(content)

	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}
