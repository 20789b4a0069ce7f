package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-missionplan/internal/mission"
)

const (
	fieldDate = iota
	fieldPayload
	fieldCount
)

// FormModel collects the start date and payload mass.
type FormModel struct {
	inputs      []textinput.Model
	focus       int
	defaultDate string
	err         error
}

// NewFormModel creates the input form. An empty date means defaultDate.
func NewFormModel(defaultDate string, defaultPayload float64) FormModel {
	date := textinput.New()
	date.Prompt = "Start date (YYYY-MM-DD): "
	date.Placeholder = defaultDate
	date.CharLimit = len(mission.DateLayout)
	date.Width = 12

	payload := textinput.New()
	payload.Prompt = "Payload mass (kg):       "
	payload.Placeholder = "0"
	payload.CharLimit = 12
	payload.Width = 12
	if defaultPayload > 0 {
		payload.SetValue(strconv.FormatFloat(defaultPayload, 'f', -1, 64))
	}

	m := FormModel{
		inputs:      []textinput.Model{date, payload},
		defaultDate: defaultDate,
	}
	return m.setFocus(fieldDate)
}

// Init implements the Bubble Tea model interface.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) setFocus(i int) FormModel {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return m
}

// Focused returns the index of the focused field.
func (m FormModel) Focused() int {
	return m.focus
}

// OnLastField reports whether the payload field has focus.
func (m FormModel) OnLastField() bool {
	return m.focus == fieldCount-1
}

// Next moves focus to the following field.
func (m FormModel) Next() FormModel {
	return m.setFocus((m.focus + 1) % fieldCount)
}

// SetError sets a validation error for display.
func (m FormModel) SetError(err error) FormModel {
	m.err = err
	return m
}

// Values parses the form. An empty date is the default date and an empty
// payload is 0; anything else must parse.
func (m FormModel) Values() (string, float64, error) {
	date := strings.TrimSpace(m.inputs[fieldDate].Value())
	if date == "" {
		date = m.defaultDate
	}
	if _, err := mission.ParseDate("start date", date); err != nil {
		return "", 0, err
	}

	raw := strings.TrimSpace(m.inputs[fieldPayload].Value())
	if raw == "" {
		return date, 0, nil
	}
	payload, err := strconv.ParseFloat(raw, 64)
	if err != nil || payload < 0 || math.IsNaN(payload) || math.IsInf(payload, 0) {
		return "", 0, fmt.Errorf("payload must be a non-negative number of kg, got %q", raw)
	}
	return date, payload, nil
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return m.setFocus((m.focus + 1) % fieldCount), nil
		case "shift+tab", "up":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
		}
		m.err = nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View renders the form.
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Mission Parameters"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString("  " + in.View() + "\n")
	}
	if m.err != nil {
		b.WriteString("\n  " + errorStyle.Render(m.err.Error()) + "\n")
	}
	return b.String()
}
