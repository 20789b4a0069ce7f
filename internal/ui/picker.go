package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Styles for the list and result views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	goodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// PickerItem is one selectable row.
type PickerItem struct {
	Label  string
	Detail string
	// Fill in [0,1] drawn as a bar next to the label, or <0 for none.
	Fill float64
}

// PickerModel is a scrollable single-choice list.
type PickerModel struct {
	title  string
	items  []PickerItem
	cursor int
	width  int
	height int
}

// NewPickerModel creates a picker over items.
func NewPickerModel(title string, items []PickerItem) PickerModel {
	return PickerModel{title: title, items: items}
}

// SetSize updates the viewport size.
func (m PickerModel) SetSize(width, height int) PickerModel {
	m.width = width
	m.height = height
	return m
}

// Cursor returns the 0-based selected index.
func (m PickerModel) Cursor() int {
	return m.cursor
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if len(m.items) > 0 {
				m.cursor = len(m.items) - 1
			}
		}
	}

	return m, nil
}

// View renders the list.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString("  Nothing to choose from\n")
		return b.String()
	}

	maxRows := m.height - 4
	if maxRows < 3 {
		maxRows = 3
	}

	startIdx := 0
	if m.cursor >= maxRows {
		startIdx = m.cursor - maxRows + 1
	}
	endIdx := startIdx + maxRows
	if endIdx > len(m.items) {
		endIdx = len(m.items)
	}

	for i := startIdx; i < endIdx; i++ {
		item := m.items[i]
		row := fmt.Sprintf("%2d) %s", i+1, runewidth.FillRight(truncate(item.Label, 28), 28))
		if item.Fill >= 0 {
			row += " " + renderFillBar(item.Fill, 10)
		}

		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
		if item.Detail != "" {
			b.WriteString(dimStyle.Render("    " + item.Detail))
			b.WriteString("\n")
		}
	}

	if len(m.items) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d", startIdx+1, endIdx, len(m.items)))
	}

	return b.String()
}

// renderFillBar draws a fraction as a bracketed bar of the given width.
func renderFillBar(fill float64, width int) string {
	if fill < 0 {
		fill = 0
	}
	filled := int(fill * float64(width))
	if filled > width {
		filled = width
	}

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// truncate shortens s to maxWidth terminal cells without splitting a rune.
func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
