package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-missionplan/internal/mission"
	"github.com/litescript/ls-missionplan/internal/report"
	"github.com/litescript/ls-missionplan/internal/state"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7B2CBF")).
	Padding(0, 1)

// ResultModel renders an evaluated mission.
type ResultModel struct {
	width    int
	height   int
	res      *mission.Result
	savedTo  string
	snapshot state.Snapshot
}

// NewResultModel creates an empty result view.
func NewResultModel() ResultModel {
	return ResultModel{}
}

// SetSize updates the viewport size.
func (m ResultModel) SetSize(width, height int) ResultModel {
	m.width = width
	m.height = height
	return m
}

// SetResult replaces the displayed result.
func (m ResultModel) SetResult(res *mission.Result) ResultModel {
	m.res = res
	m.savedTo = ""
	return m
}

// SetSaved records where the result was saved.
func (m ResultModel) SetSaved(path string) ResultModel {
	m.savedTo = path
	return m
}

// UpdateData updates the session counters.
func (m ResultModel) UpdateData(snapshot state.Snapshot) ResultModel {
	m.snapshot = snapshot
	return m
}

// View renders the result.
func (m ResultModel) View() string {
	if m.res == nil {
		return "No mission evaluated yet\n"
	}
	res := m.res

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s → %s", res.Rocket.Name, res.Body.Name)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  payload %.0f kg · start %s", res.PayloadKg, res.StartDate)))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	left := m.renderBudget()
	right := m.renderWindows()
	if m.width > 0 && m.width < 90 {
		b.WriteString(left + "\n" + right)
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	}
	b.WriteString("\n")

	if len(res.Chronology) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderChronology())
	}
	if !res.Success {
		b.WriteString("\n")
		b.WriteString(m.renderAlternatives())
	}

	if m.savedTo != "" {
		b.WriteString("\n" + goodStyle.Render("Saved to "+m.savedTo) + "\n")
	}
	if m.snapshot.Total > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\nSession: %d evaluated, %d feasible",
			m.snapshot.Total, m.snapshot.Feasible)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m ResultModel) renderStatus() string {
	res := m.res
	status := report.StatusLine(res)

	var line string
	switch {
	case !res.Success:
		line = errorStyle.Bold(true).Render(status)
	case res.Strategy == mission.Direct:
		line = goodStyle.Render(status)
	default:
		line = warnStyle.Render(status)
	}
	line += "  " + dimStyle.Render(res.Strategy.Label())

	if res.Note != "" {
		line += "\n" + rowStyle.Render(res.Note)
	}
	return line
}

func (m ResultModel) renderBudget() string {
	res := m.res
	var b strings.Builder

	b.WriteString(headerStyle.Render("Delta-V Budget (km/s)"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Earth ascent   %6.2f\n", res.Budget.Ascent)
	fmt.Fprintf(&b, "Transfer       %6.2f\n", res.Budget.Transfer)
	fmt.Fprintf(&b, "Capture        %6.2f\n", res.Budget.Capture)
	fmt.Fprintf(&b, "Required       %6.2f\n", res.Required)
	fmt.Fprintf(&b, "Capability     %6.2f\n", res.Capability)
	if res.BonusDv > 0 {
		fmt.Fprintf(&b, "Strategy bonus %6.2f\n", res.BonusDv)
	}
	if res.Tankers > 0 {
		fmt.Fprintf(&b, "Tankers        %6d\n", res.Tankers)
	}
	fmt.Fprintf(&b, "Final          %6.2f\n", res.FinalCapability)

	margin := fmt.Sprintf("Margin         %+6.2f", res.FinalMargin)
	if res.FinalMargin >= 0 {
		b.WriteString(goodStyle.Render(margin))
	} else {
		b.WriteString(errorStyle.Render(margin))
	}
	b.WriteString("\n")

	fill := 0.0
	if res.Required > 0 {
		fill = res.FinalCapability / res.Required
	}
	b.WriteString(renderFillBar(fill, 20))
	fmt.Fprintf(&b, " %3.0f%% tank", res.TankUsagePct)

	return boxStyle.Render(b.String())
}

func (m ResultModel) renderWindows() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Launch Windows · transit %.0f d", m.res.TransitDays)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-2s %-12s %-12s\n", "#", "Launch", "Arrival")
	for i, w := range m.res.Windows {
		fmt.Fprintf(&b, "%-2d %-12s %-12s\n", i+1,
			w.Launch.Format(mission.DateLayout), w.Arrival.Format(mission.DateLayout))
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m ResultModel) renderChronology() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Chronology"))
	b.WriteString("\n")
	for _, p := range m.res.Chronology {
		b.WriteString(fmt.Sprintf("  %-22s %-14s %s\n", p.Regime, dimStyle.Render(p.Time), p.Event))
	}
	return b.String()
}

func (m ResultModel) renderAlternatives() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Suggestions"))
	b.WriteString("\n")
	if len(m.res.Alternatives) == 0 {
		b.WriteString("  Reduce payload or select a different launcher\n")
		return b.String()
	}
	for _, alt := range m.res.Alternatives {
		b.WriteString(fmt.Sprintf("  %s (cap %.2f km/s)\n", alt.Rocket.Name, alt.Capability))
	}
	return b.String()
}
