// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-missionplan/internal/catalog"
	"github.com/litescript/ls-missionplan/internal/mission"
	"github.com/litescript/ls-missionplan/internal/planner"
	"github.com/litescript/ls-missionplan/internal/version"
)

// Step is the current stage of the planning flow.
type Step int

const (
	StepRocket Step = iota
	StepBody
	StepInputs
	StepResult
)

// Msg types for Bubble Tea
type (
	// PlanDoneMsg carries a finished evaluation.
	PlanDoneMsg struct {
		Outcome *planner.Outcome
		Err     error
	}

	// SavedMsg reports the outcome of a report save.
	SavedMsg struct {
		Path string
		Err  error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	svc *planner.Service
	ctx context.Context

	// UI state
	step      Step
	width     int
	height    int
	ready     bool
	busy      bool
	statusMsg string

	// Sub-models
	rockets PickerModel
	bodies  PickerModel
	form    FormModel
	result  ResultModel

	outcome *planner.Outcome
}

// New creates a new root UI model.
func New(ctx context.Context, svc *planner.Service) Model {
	cat := svc.Catalog()
	cfg := svc.Config()

	return Model{
		svc:     svc,
		ctx:     ctx,
		step:    StepRocket,
		rockets: NewPickerModel("Select Rocket", rocketItems(cat, cfg.PayloadKg)),
		bodies:  NewPickerModel("Select Destination", bodyItems(cat)),
		form:    NewFormModel(cfg.StartDate, cfg.PayloadKg),
		result:  NewResultModel(),
	}
}

// rocketItems lists rockets with a capability bar for the configured
// payload, scaled to the largest body budget in the catalog.
func rocketItems(cat *catalog.Catalog, payloadKg float64) []PickerItem {
	maxRequired := 0.0
	for _, b := range cat.Bodies() {
		maxRequired = max(maxRequired, mission.BudgetFor(b).Total())
	}

	var items []PickerItem
	for _, r := range cat.Rockets() {
		capability := mission.Capability(r, payloadKg)
		fill := -1.0
		if maxRequired > 0 {
			fill = capability / maxRequired
		}
		items = append(items, PickerItem{
			Label:  r.Name,
			Detail: fmt.Sprintf("Isp %.0f s · payload LEO %.0f kg · %.2f km/s", r.IspSec, r.MaxPayloadKg, capability),
			Fill:   fill,
		})
	}
	return items
}

func bodyItems(cat *catalog.Catalog) []PickerItem {
	var items []PickerItem
	for _, b := range cat.Bodies() {
		items = append(items, PickerItem{
			Label: b.Name,
			Detail: fmt.Sprintf("needs %.2f km/s · synodic %.1f d · transit %.0f d",
				mission.BudgetFor(b).Total(), b.SynodicDays, b.TransitDays),
			Fill: -1,
		})
	}
	return items
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Step returns the current stage.
func (m Model) Step() Step {
	return m.step
}

// Outcome returns the last evaluation, if any.
func (m Model) Outcome() *planner.Outcome {
	return m.outcome
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes ~4 lines, footer ~2
		contentHeight := msg.Height - 6
		m.rockets = m.rockets.SetSize(msg.Width, contentHeight)
		m.bodies = m.bodies.SetSize(msg.Width, contentHeight)
		m.result = m.result.SetSize(msg.Width, contentHeight)

	case PlanDoneMsg:
		m.busy = false
		if msg.Err != nil {
			m.form = m.form.SetError(msg.Err)
			m.step = StepInputs
			break
		}
		m.outcome = msg.Outcome
		m.result = m.result.SetResult(msg.Outcome.Result).UpdateData(m.svc.Session().Snapshot())
		m.step = StepResult
		m.statusMsg = ""

	case SavedMsg:
		m.busy = false
		if msg.Err != nil {
			m.statusMsg = "Save failed: " + msg.Err.Error()
			break
		}
		m.result = m.result.SetSaved(msg.Path)
		m.statusMsg = ""

	default:
		if m.step == StepInputs {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	// Text inputs own every printable key.
	if m.step == StepInputs {
		switch key {
		case "esc":
			m.step = StepBody
			return m, nil
		case "enter":
			if !m.form.OnLastField() {
				m.form = m.form.Next()
				return m, nil
			}
			return m.submit()
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.step > StepRocket {
			m.step--
		}
		if m.step == StepInputs {
			return m, m.form.Init()
		}
	case "enter":
		switch m.step {
		case StepRocket:
			m.step = StepBody
		case StepBody:
			m.step = StepInputs
			return m, m.form.Init()
		case StepResult:
			m.step = StepRocket
		}
	case "s":
		if m.step == StepResult && m.outcome != nil {
			m.busy = true
			m.statusMsg = "Saving..."
			return m, m.saveCmd(m.outcome)
		}
	default:
		switch m.step {
		case StepRocket:
			m.rockets, _ = m.rockets.Update(msg)
		case StepBody:
			m.bodies, _ = m.bodies.Update(msg)
		}
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	date, payload, err := m.form.Values()
	if err != nil {
		m.form = m.form.SetError(err)
		return m, nil
	}

	cat := m.svc.Catalog()
	rocket, err := cat.Rocket(m.rockets.Cursor())
	if err != nil {
		m.form = m.form.SetError(err)
		return m, nil
	}
	body, err := cat.Body(m.bodies.Cursor())
	if err != nil {
		m.form = m.form.SetError(err)
		return m, nil
	}

	m.busy = true
	m.statusMsg = "Evaluating..."
	return m, m.planCmd(m.svc.Request(rocket, body, date, payload))
}

func (m Model) planCmd(req mission.Request) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		out, err := svc.Plan(ctx, req)
		return PlanDoneMsg{Outcome: out, Err: err}
	}
}

func (m Model) saveCmd(out *planner.Outcome) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		path, err := svc.Save(ctx, out)
		return SavedMsg{Path: path, Err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.step {
	case StepRocket:
		content = m.rockets.View()
	case StepBody:
		content = m.bodies.View()
	case StepInputs:
		content = m.form.View()
	case StepResult:
		content = m.result.View()
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderGradient("  LS-MISSIONPLAN"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  v%s · mission feasibility planner", version.Version)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

// renderGradient renders text with a horizontal truecolor gradient.
func renderGradient(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for col, r := range runes {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(gradientColor(col, len(runes))))
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// gradientColor returns a hex color for a position in the title gradient:
// blue -> purple -> magenta -> pink.
func gradientColor(col, width int) string {
	xRatio := float64(col) / float64(width)

	var r, g, b float64
	if xRatio < 0.33 {
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else if xRatio < 0.66 {
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	} else {
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	return int(min(max(v, 0), 255))
}

func (m Model) renderTabs() string {
	tabs := []string{"Rocket", "Destination", "Parameters", "Result"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	var parts []string
	for i, tab := range tabs {
		label := fmt.Sprintf("[%d] %s", i+1, tab)
		if Step(i) == m.step {
			parts = append(parts, activeStyle.Render("▶ "+label))
		} else {
			parts = append(parts, dimStyle.Render("  "+label))
		}
	}
	return "  " + strings.Join(parts, " ")
}

func (m Model) renderFooter() string {
	var help string
	switch m.step {
	case StepRocket, StepBody:
		help = "j/k: move | enter: select | esc: back | q: quit"
	case StepInputs:
		help = "tab: next field | enter: evaluate | esc: back | ctrl+c: quit"
	case StepResult:
		help = "s: save report | enter: new plan | esc: edit | q: quit"
	}

	footer := "  " + dimStyle.Render(help)
	if m.statusMsg != "" {
		footer += "\n  " + warnStyle.Render(m.statusMsg)
	}
	return footer
}
