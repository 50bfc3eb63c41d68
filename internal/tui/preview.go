// internal/tui/preview.go
//
// Interactive preview of a generated roster. Like every bubbletea program it
// follows The Elm Architecture: the Preview holds the state, Update reacts to
// key and window messages, and View renders the table.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTableHeight = 5
	// title, border and footer rows around the table
	chromeHeight = 6
	noteColumn   = 7
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
	noteStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
)

// Preview is the bubbletea model for `roster preview`.
type Preview struct {
	title    string
	table    table.Model
	width    int
	height   int
	quitting bool
}

// NewPreview builds the model. header and every row must have the same
// length; the last column is the note column.
func NewPreview(title string, header []string, rows [][]string) Preview {
	columns := make([]table.Column, len(header))
	for i, h := range header {
		columns[i] = table.Column{Title: h, Width: columnWidth(i, h, rows)}
	}
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#5B8DEF")).
		Bold(false)
	t.SetStyles(styles)

	return Preview{title: title, table: t}
}

func columnWidth(col int, title string, rows [][]string) int {
	width := lipgloss.Width(title)
	for _, r := range rows {
		if col < len(r) {
			width = max(width, lipgloss.Width(r[col]))
		}
	}
	return width + 1
}

// Init implements tea.Model.
func (p Preview) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.table.SetHeight(max(minTableHeight, msg.Height-chromeHeight))
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			p.quitting = true
			return p, tea.Quit
		}
	}
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p Preview) View() string {
	if p.quitting {
		return ""
	}
	sections := []string{
		titleStyle.Render(p.title),
		boxStyle.Render(p.table.View()),
	}
	footer := "↑/↓ scroll    q quit"
	if note := p.SelectedNote(); note != "" {
		footer = noteStyle.Render(note) + "    " + footer
	}
	sections = append(sections, footerStyle.Render(footer))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Cursor returns the selected row index.
func (p Preview) Cursor() int {
	return p.table.Cursor()
}

// SelectedNote returns the note of the selected week, if any.
func (p Preview) SelectedNote() string {
	row := p.table.SelectedRow()
	if len(row) <= noteColumn {
		return ""
	}
	note := strings.TrimSpace(row[noteColumn])
	if note == "" {
		return ""
	}
	return fmt.Sprintf("week %s: %s", row[0], note)
}

// Run starts the preview on the terminal and blocks until the user quits.
func Run(p Preview, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(p, opts...).Run()
	return err
}
