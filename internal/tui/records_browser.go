package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgrowth/tppgUtil/internal/auditlog"
	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/records"
	"github.com/pgrowth/tppgUtil/internal/tui/components"
	"github.com/pgrowth/tppgUtil/internal/tui/styles"
	"github.com/pgrowth/tppgUtil/internal/util"
)

// --- Messages ---

type recordsLoadedMsg struct {
	records []creator.Record
}

type recordsErrorMsg struct {
	err error
}

type recordDeletedMsg struct {
	id string
}

type recordDeleteErrorMsg struct {
	err error
}

// --- Record browser model ---

type browserPhase int

const (
	phaseList browserPhase = iota
	phaseDetail
	phaseConfirmDelete
)

// Table layout. Record IDs are 19 digits; field cells are shortened to a
// fixed width so arbitrary report data cannot break the layout.
const (
	idColWidth      = 21
	fieldColWidth   = 24
	maxFieldColumns = 3

	// chromeHeight approximates header + footer + status bar when sizing
	// the detail viewport.
	chromeHeight = 5
)

type recordBrowserModel struct {
	svc    *records.Service
	owner  string
	app    string
	report string

	records  []creator.Record
	filtered []creator.Record
	columns  []string

	cursor    int
	listStart int // for scrolling

	filtering bool
	filter    textinput.Model

	phase     browserPhase
	detail    viewport.Model
	selected  creator.Record
	confirmID string

	width  int
	height int

	loading          bool
	spinner          spinner.Model
	err              error
	status           string
	statusIsError    bool
	persistentStatus string
}

// RunRecordsBrowser starts the full-window record browser for a report.
func RunRecordsBrowser(svc *records.Service, owner, app, report string) error {
	m := newRecordBrowserModel(svc, owner, app, report)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newRecordBrowserModel(svc *records.Service, owner, app, report string) recordBrowserModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter records"
	ti.Width = 40

	return recordBrowserModel{
		svc:     svc,
		owner:   owner,
		app:     app,
		report:  report,
		filter:  ti,
		loading: true,
		spinner: s,
	}
}

func (m recordBrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadRecordsCmd(false))
}

// loadRecordsCmd fetches every record in the report. With refresh set the
// cached pages are dropped first so the reload reflects remote changes.
func (m recordBrowserModel) loadRecordsCmd(refresh bool) tea.Cmd {
	return func() tea.Msg {
		var (
			recs []creator.Record
			err  error
		)
		if refresh {
			recs, err = m.svc.Refresh(context.Background(), m.report, "")
		} else {
			recs, err = m.svc.ListAll(context.Background(), m.report, "")
		}
		if err != nil {
			return recordsErrorMsg{err}
		}
		return recordsLoadedMsg{recs}
	}
}

func (m recordBrowserModel) deleteRecordCmd(id string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		err := m.svc.Delete(context.Background(), m.report, id)
		recordAudit(m.app, "tppg records delete", auditlog.ResourceRecord, id, "", err, start)
		if err != nil {
			return recordDeleteErrorMsg{err}
		}
		return recordDeletedMsg{id}
	}
}

func (m *recordBrowserModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		m.filtered = m.records
	} else {
		m.filtered = make([]creator.Record, 0)
		for _, r := range m.records {
			if recordMatches(r, query) {
				m.filtered = append(m.filtered, r)
			}
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	}
	if m.listStart >= len(m.filtered) {
		m.listStart = 0
	}
}

// recordMatches reports whether any field value contains the query. The
// query is expected lowercased.
func recordMatches(rec creator.Record, query string) bool {
	for _, name := range rec.FieldNames() {
		if strings.Contains(strings.ToLower(rec.Field(name)), query) {
			return true
		}
	}
	return false
}

// pickColumns chooses the field columns for the table from the first
// record. Reports are schemaless, so the column set is whatever the data
// shows, capped to keep the table readable.
func pickColumns(recs []creator.Record) []string {
	if len(recs) == 0 {
		return nil
	}
	columns := make([]string, 0, maxFieldColumns)
	for _, name := range recs[0].FieldNames() {
		if name == "ID" {
			continue
		}
		columns = append(columns, name)
		if len(columns) == maxFieldColumns {
			break
		}
	}
	return columns
}

func (m recordBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.phase == phaseDetail {
			m.detail.Width = m.width
			m.detail.Height = m.contentHeight()
		}

	case tea.KeyMsg:
		return m.handleKey(msg)

	case recordsLoadedMsg:
		m.loading = false
		m.records = msg.records
		m.columns = pickColumns(m.records)
		m.applyFilter()

		status := fmt.Sprintf("Loaded %d records.", len(m.records))
		if m.persistentStatus != "" {
			status = m.persistentStatus + " | " + status
			m.persistentStatus = ""
		}
		m.status = status
		m.statusIsError = false

	case recordsErrorMsg:
		m.loading = false
		m.err = msg.err
		m.status = msg.err.Error()
		m.statusIsError = true

	case recordDeletedMsg:
		m.persistentStatus = fmt.Sprintf("Deleted record %s.", msg.id)
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadRecordsCmd(false))

	case recordDeleteErrorMsg:
		m.status = "Delete failed: " + msg.err.Error()
		m.statusIsError = true

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m recordBrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseDetail:
		return m.handleDetailKey(msg)
	case phaseConfirmDelete:
		return m.handleConfirmKey(msg)
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
			m.status = ""
			return m, nil
		}
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "/":
		m.filtering = true
		m.filter.Focus()
		m.status = ""
		return m, textinput.Blink
	case "r":
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.loadRecordsCmd(true))
	case "enter":
		if len(m.filtered) > 0 {
			m.selected = m.filtered[m.cursor]
			m.phase = phaseDetail
			m.detail = viewport.New(m.width, m.contentHeight())
			m.detail.SetContent(renderRecordDetail(m.selected))
		}
	case "d":
		if len(m.filtered) > 0 {
			m.confirmID = m.filtered[m.cursor].ID()
			m.phase = phaseConfirmDelete
			m.status = fmt.Sprintf("Delete record %s? This cannot be undone. (y/n)", m.confirmID)
			m.statusIsError = false
		}
	}

	return m, nil
}

func (m recordBrowserModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m recordBrowserModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "q":
		m.phase = phaseList
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m recordBrowserModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.phase = phaseList
		m.status = fmt.Sprintf("Deleting record %s...", m.confirmID)
		m.statusIsError = false
		return m, m.deleteRecordCmd(m.confirmID)
	case "n", "esc":
		m.phase = phaseList
		m.status = "Delete cancelled."
		m.statusIsError = false
	}
	return m, nil
}

func (m recordBrowserModel) contentHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// --- View ---

func (m recordBrowserModel) View() string {
	header := components.Header(m.width, "records > "+m.report, m.owner+"/"+m.app)

	footer := components.Footer(m.width, m.footerBindings())
	statusBar := components.StatusBar(m.width, m.status, m.statusIsError)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := m.height - headerH - footerH - statusH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.loading:
		content = fmt.Sprintf("\n  %s Loading records...", m.spinner.View())
	case m.err != nil:
		content = fmt.Sprintf("\n  %s", styles.ErrorText.Render(m.err.Error()))
	case m.phase == phaseDetail:
		content = m.detail.View()
	case len(m.records) == 0:
		content = "\n  No records in this report."
	default:
		content = m.renderFilterBar() + "\n" + m.renderTable(contentH-2)
	}

	lines := lipgloss.Height(content)
	if lines < contentH {
		content += lipgloss.NewStyle().Height(contentH - lines).Render("")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar, footer)
}

func (m recordBrowserModel) footerBindings() []components.KeyBinding {
	switch {
	case m.filtering:
		return []components.KeyBinding{
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "clear"},
		}
	case m.phase == phaseDetail:
		return []components.KeyBinding{
			{Key: "j/k", Desc: "scroll"},
			{Key: "esc", Desc: "back"},
		}
	case m.phase == phaseConfirmDelete:
		return []components.KeyBinding{
			{Key: "y", Desc: "delete"},
			{Key: "n", Desc: "cancel"},
		}
	default:
		return []components.KeyBinding{
			{Key: "j/k", Desc: "nav"},
			{Key: "enter", Desc: "show"},
			{Key: "d", Desc: "delete"},
			{Key: "/", Desc: "filter"},
			{Key: "r", Desc: "refresh"},
			{Key: "q", Desc: "quit"},
		}
	}
}

func (m recordBrowserModel) renderFilterBar() string {
	if m.filtering {
		return "  " + m.filter.View()
	}
	if query := strings.TrimSpace(m.filter.Value()); query != "" {
		return fmt.Sprintf("  Filter: %s  (%d of %d records)",
			styles.AccentText.Render(query), len(m.filtered), len(m.records))
	}
	return "  " + styles.MutedText.Render("Press / to filter")
}

func (m recordBrowserModel) renderTable(height int) string {
	if len(m.filtered) == 0 {
		return "\n  No records match current filter."
	}

	headerCells := make([]string, 0, len(m.columns)+1)
	headerCells = append(headerCells, fmt.Sprintf("  %-*s", idColWidth, "ID"))
	for _, col := range m.columns {
		headerCells = append(headerCells, fmt.Sprintf("%-*s", fieldColWidth, strings.ToUpper(col)))
	}

	var rows []string
	rows = append(rows, styles.TableHeader.Render(strings.Join(headerCells, " ")))

	if m.cursor < m.listStart {
		m.listStart = m.cursor
	} else if m.cursor >= m.listStart+(height-1) {
		m.listStart = m.cursor - (height - 2)
	}

	end := m.listStart + height - 1
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.listStart; i < end; i++ {
		r := m.filtered[i]

		cursor := " "
		rowStyle := styles.TableCell
		if i == m.cursor {
			cursor = styles.AccentText.Render(">")
			rowStyle = styles.TableSelectedRow
		}

		cells := make([]string, 0, len(m.columns)+1)
		cells = append(cells, fmt.Sprintf("%s %-*s", cursor, idColWidth, r.ID()))
		for _, col := range m.columns {
			value := util.Ellipsize(r.Field(col), fieldColWidth-1)
			cells = append(cells, fmt.Sprintf("%-*s", fieldColWidth, value))
		}

		rows = append(rows, rowStyle.Render(strings.Join(cells, " ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderRecordDetail lays out every field of a record as label/value
// lines for the detail viewport.
func renderRecordDetail(rec creator.Record) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, name := range rec.FieldNames() {
		label := styles.Label.Render(fmt.Sprintf("%-28s", name))
		b.WriteString("  " + label + styles.Value.Render(rec.Field(name)) + "\n")
	}
	return b.String()
}
