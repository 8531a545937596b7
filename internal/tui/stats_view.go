package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgrowth/tppgUtil/internal/records"
	"github.com/pgrowth/tppgUtil/internal/tui/components"
	"github.com/pgrowth/tppgUtil/internal/tui/styles"
)

// --- Stats view model ---

type statsViewModel struct {
	stats  records.Stats
	owner  string
	app    string
	report string

	width  int
	height int
}

// RunStatsView shows the records-per-day chart for a report full screen.
func RunStatsView(stats records.Stats, owner, app, report string) error {
	m := statsViewModel{
		stats:  stats,
		owner:  owner,
		app:    app,
		report: report,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m statsViewModel) Init() tea.Cmd {
	return nil
}

func (m statsViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m statsViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "records > stats > "+m.report, m.owner+"/"+m.app)
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

func (m statsViewModel) renderContent(height int) string {
	if m.stats.Total == 0 {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No records in this report."),
		)
	}

	counts, firstDay, lastDay := fillDaySeries(m.stats.Days)

	chartWidth := m.width - 12
	if chartWidth > 100 {
		chartWidth = 100
	}

	chart := components.DayChart("Records created per day", counts, firstDay, lastDay, chartWidth)

	summary := fmt.Sprintf("%s records total, %d active days",
		styles.Value.Bold(true).Render(fmt.Sprintf("%d", m.stats.Total)),
		len(m.stats.Days),
	)

	card := styles.Card.Width(chartWidth + 6).Render(chart)
	combined := lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render(m.report),
		"",
		card,
		"",
		styles.MutedText.Render(summary),
	)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}

// fillDaySeries turns per-day counts into a dense series for plotting.
// Days between the first and last observed day with no records become
// zeroes, so gaps show as dips instead of disappearing. Returns the
// series plus the first and last day labels.
func fillDaySeries(days []records.DayCount) ([]float64, string, string) {
	if len(days) == 0 {
		return nil, "", ""
	}

	const layout = "2006-01-02"

	first, err := time.Parse(layout, days[0].Day)
	if err != nil {
		return nil, "", ""
	}
	last, err := time.Parse(layout, days[len(days)-1].Day)
	if err != nil {
		return nil, "", ""
	}

	byDay := make(map[string]int, len(days))
	for _, d := range days {
		byDay[d.Day] = d.Count
	}

	var series []float64
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		series = append(series, float64(byDay[day.Format(layout)]))
	}

	return series, days[0].Day, days[len(days)-1].Day
}
