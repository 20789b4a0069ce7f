// Package menu implements the numbered line-oriented planner menu.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/litescript/ls-missionplan/internal/mission"
	"github.com/litescript/ls-missionplan/internal/planner"
	"github.com/litescript/ls-missionplan/internal/report"
)

const banner = `
--- SPACE MISSION PLANNER ---

 - Estimates whether a selected rocket can fly a payload to a chosen body
 - Uses simplified delta-v budgets and empirical staging factors
 - Strategies: direct, Oberth/perigee kicks, gravity assist, LEO refueling, kick stage
`

// Menu runs the interactive menu over a reader and a writer.
type Menu struct {
	svc    *planner.Service
	in     *bufio.Reader
	out    io.Writer
	styles report.Styles
}

// New creates a menu reading answers from in and writing to out.
func New(svc *planner.Service, in io.Reader, out io.Writer, styles report.Styles) *Menu {
	return &Menu{
		svc:    svc,
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

// Run shows the main menu until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprint(m.out, banner)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out, "\nMain Menu:")
		fmt.Fprintln(m.out, " 1) List available rockets & targets")
		fmt.Fprintln(m.out, " 2) Plan a new mission")
		fmt.Fprintln(m.out, " 3) Quit")
		fmt.Fprint(m.out, "Selection > ")

		line, ok := m.readLine()
		if !ok {
			fmt.Fprintln(m.out)
			return nil
		}

		switch line {
		case "1":
			fmt.Fprintln(m.out)
			report.WriteCatalog(m.out, m.svc.Catalog(), m.styles)
		case "2":
			if err := m.Plan(ctx); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(m.out, "\nExiting. Safe travels!")
			return nil
		default:
			fmt.Fprintln(m.out, "\nInvalid selection. Try again.")
		}
	}
}

// Plan prompts for one mission, prints the summary and offers to save it.
// Out-of-range choices fall back to the first entry and bad payloads to 0.
func (m *Menu) Plan(ctx context.Context) error {
	cat := m.svc.Catalog()

	fmt.Fprintln(m.out, "\nSelect Rocket:")
	for i, r := range cat.Rockets() {
		fmt.Fprintf(m.out, " %d) %s\n", i+1, r.Name)
	}
	fmt.Fprint(m.out, "Selection > ")
	rocket, _ := cat.ClampRocket(m.readChoice())

	fmt.Fprintln(m.out, "\nSelect Destination:")
	for i, b := range cat.Bodies() {
		fmt.Fprintf(m.out, " %d) %s\n", i+1, b.Name)
	}
	fmt.Fprint(m.out, "Selection > ")
	body, _ := cat.ClampBody(m.readChoice())

	def := m.svc.Config().StartDate
	fmt.Fprintf(m.out, "\nStart Date (YYYY-MM-DD) [default: %s]: ", def)
	date, _ := m.readLine()
	if len(date) < 8 {
		date = def
	}

	fmt.Fprint(m.out, "Payload Mass (kg) [enter numeric value]: ")
	payload := m.readPayload()

	out, err := m.svc.Plan(ctx, m.svc.Request(rocket, body, date, payload))
	var dpe *mission.DateParseError
	if errors.As(err, &dpe) && dpe.Field == "start date" {
		m.styles.Warn.Fprintf(m.out, " %v; using %s\n", err, def)
		out, err = m.svc.Plan(ctx, m.svc.Request(rocket, body, def, payload))
	}
	if err != nil {
		// The session goes on; only this mission is dropped.
		m.styles.Bad.Fprintf(m.out, " Cannot evaluate mission: %v\n", err)
		return nil
	}

	fmt.Fprint(m.out, "\n\n")
	report.WriteSummary(m.out, out.Result, m.styles)

	fmt.Fprint(m.out, "\n Save mission summary to file? (y/N): ")
	answer, _ := m.readLine()
	if strings.HasPrefix(strings.ToLower(answer), "y") {
		if _, err := m.svc.Save(ctx, out); err != nil {
			m.styles.Bad.Fprintln(m.out, " Failed to save mission summary to file.")
		} else {
			m.styles.Good.Fprintln(m.out, " Saved mission summary to file.")
		}
	}
	return nil
}

// readLine returns the next trimmed line. ok is false once input is
// exhausted and nothing was read.
func (m *Menu) readLine() (string, bool) {
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// readChoice reads a 1-based selection; anything unparsable is 0, which
// the catalog clamps to the first entry.
func (m *Menu) readChoice() int {
	line, _ := m.readLine()
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0
	}
	return n
}

func (m *Menu) readPayload() float64 {
	line, _ := m.readLine()
	v, err := strconv.ParseFloat(line, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
