// Package report renders mission results as text and JSON and saves them
// to disk.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/litescript/ls-missionplan/internal/catalog"
	"github.com/litescript/ls-missionplan/internal/mission"
)

// Styles holds the colors used by the text writers.
type Styles struct {
	Frame   *color.Color
	Good    *color.Color
	Bad     *color.Color
	Warn    *color.Color
	Heading *color.Color
}

// NewStyles returns the report palette. With enabled false every color is
// a no-op, which is what file and pipe output want.
func NewStyles(enabled bool) Styles {
	s := Styles{
		Frame:   color.New(color.FgCyan, color.Bold),
		Good:    color.New(color.FgGreen, color.Bold),
		Bad:     color.New(color.FgRed, color.Bold),
		Warn:    color.New(color.FgYellow, color.Bold),
		Heading: color.New(color.FgMagenta, color.Bold),
	}
	for _, c := range []*color.Color{s.Frame, s.Good, s.Bad, s.Warn, s.Heading} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Plain is the colorless palette.
func Plain() Styles {
	return NewStyles(false)
}

const frameWidth = 80

func (s Styles) separator(w io.Writer) {
	s.Frame.Fprintln(w, "+"+strings.Repeat("-", frameWidth)+"+")
}

// WriteCatalog lists every rocket and body with its parameters.
func WriteCatalog(w io.Writer, cat *catalog.Catalog, s Styles) {
	s.Heading.Fprintln(w, "Available Rockets:")
	for i, r := range cat.Rockets() {
		fmt.Fprintf(w, " %d) %s [%s]\n", i+1, r.Name, r.Code)
		fmt.Fprintf(w, "    Wet mass:   %.0f kg | Dry mass: %.0f kg | Payload LEO: %.0f kg\n",
			r.WetMassKg, r.DryMassKg, r.MaxPayloadKg)
		fmt.Fprintf(w, "    Isp_avg:    %.1f s   | Staging factor: %.2f | Tanker DV/mission: %.2f km/s\n",
			r.IspSec, r.StagingFactor, r.RefuelDvPerTanker)
	}

	fmt.Fprintln(w)
	s.Heading.Fprintln(w, "Available Destinations:")
	for i, b := range cat.Bodies() {
		fmt.Fprintf(w, " %d) %s [%s]\n", i+1, b.Name, b.Code)
		fmt.Fprintf(w, "    DV transfer: %.2f km/s | DV capture: %.2f km/s | Synodic: %.1f days\n",
			b.TransferDv, b.CaptureDv, b.SynodicDays)
		fmt.Fprintf(w, "    Epoch: %s | Typical transit: %.0f days\n", b.Epoch, b.TransitDays)
	}
}

// StatusLine returns the headline verdict for a result.
func StatusLine(res *mission.Result) string {
	switch {
	case !res.Success:
		return "[ NOT FEASIBLE WITH CURRENT ASSUMPTIONS ]"
	case res.Strategy == mission.Direct:
		return "[ DIRECT MISSION FEASIBLE ]"
	default:
		return "[ ALTERNATE PROFILE FEASIBLE ]"
	}
}

// WriteSummary writes the full human-readable mission summary.
func WriteSummary(w io.Writer, res *mission.Result, s Styles) {
	s.separator(w)
	fmt.Fprintln(w, " MISSION SUMMARY")
	s.separator(w)
	fmt.Fprintf(w, " Rocket:  %s\n", res.Rocket.Name)
	fmt.Fprintf(w, " Target:  %s\n", res.Body.Name)
	fmt.Fprintf(w, " Launch date (start): %s\n", res.StartDate)
	fmt.Fprintf(w, " Payload mass: %.0f kg\n", res.PayloadKg)
	s.separator(w)

	switch {
	case !res.Success:
		s.Bad.Fprintf(w, " STATUS:   %s\n", StatusLine(res))
		s.Bad.Fprintln(w, " RECOMMENDATION: Reduce payload or select a different launcher / strategy")
	case res.Strategy == mission.Direct:
		s.Good.Fprintf(w, " STATUS:   %s\n", StatusLine(res))
	default:
		s.Warn.Fprintf(w, " STATUS:   %s\n", StatusLine(res))
	}
	if res.Success && res.Note != "" {
		s.Heading.Fprintf(w, " METHOD:   %s\n", res.Note)
	}

	fmt.Fprintf(w, "\n TANK USAGE (approx): %.1f %%\n", res.TankUsagePct)

	writeBudget(w, res, s)

	if res.Strategy == mission.OrbitalRefuel && res.Tankers > 0 {
		s.Warn.Fprintf(w, "\n Refueling Plan: Estimated tankers required: %d (each adds ~%.1f km/s)\n",
			res.Tankers, res.Rocket.RefuelDvPerTanker)
	}

	if !res.Success {
		fmt.Fprintln(w, "\n Suggestions:")
		if len(res.Alternatives) == 0 {
			fmt.Fprintln(w, "  - No other catalog rocket can fly this payload directly")
		}
		for _, alt := range res.Alternatives {
			fmt.Fprintf(w, "  - Use %s (cap %.2f km/s) could enable mission\n", alt.Rocket.Name, alt.Capability)
		}
	}

	if len(res.Chronology) > 0 {
		writeChronology(w, res, s)
	}

	WriteWindows(w, res, s)
}

func writeBudget(w io.Writer, res *mission.Result, s Styles) {
	fmt.Fprintln(w)
	s.Heading.Fprintln(w, " Delta-V Budget Breakdown (km/s):")
	fmt.Fprintf(w, "  - Earth ascent (LEO):      %.2f\n", res.Budget.Ascent)
	fmt.Fprintf(w, "  - Transfer DV (to target): %.2f\n", res.Budget.Transfer)
	fmt.Fprintf(w, "  - Capture DV (arrival):    %.2f\n", res.Budget.Capture)
	fmt.Fprintln(w, "  ---------------------------------")
	fmt.Fprintf(w, "  - Total required:          %.2f km/s\n", res.Required)
	fmt.Fprintf(w, "  - Rocket base capability:  %.2f km/s\n", res.Capability)
	fmt.Fprintf(w, "  - Final mission capability:%.2f km/s\n", res.FinalCapability)
	if res.FinalMargin >= 0 {
		s.Good.Fprintf(w, "  - Margin: +%.2f km/s [FEASIBLE]\n", res.FinalMargin)
	} else {
		s.Bad.Fprintf(w, "  - Margin: %.2f km/s [INSUFFICIENT]\n", res.FinalMargin)
	}
}

func writeChronology(w io.Writer, res *mission.Result, s Styles) {
	fmt.Fprintln(w)
	s.Frame.Fprintln(w, " Mission Chronology & Notes:")
	s.separator(w)
	fmt.Fprintf(w, " | %-24s | %-15s | %-34s |\n", "FLIGHT REGIME", "T-MINUS/PLUS", "ASTRODYNAMIC EVENT")
	s.separator(w)
	for _, p := range res.Chronology {
		fmt.Fprintf(w, " | %-24s | %-15s | %-34s |\n", p.Regime, p.Time, p.Event)
	}
	s.separator(w)
	if res.Note != "" {
		fmt.Fprintf(w, "\n Notes: %s\n", res.Note)
	}
}

// WriteWindows writes the launch window table.
func WriteWindows(w io.Writer, res *mission.Result, s Styles) {
	fmt.Fprintln(w)
	s.Frame.Fprintf(w, " NEXT %d LAUNCH WINDOWS (estimated):\n", len(res.Windows))
	fmt.Fprintf(w, " # | %-15s | %-15s\n", "LAUNCH DATE", "ARRIVAL (Est)")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for i, win := range res.Windows {
		fmt.Fprintf(w, " %d | %-15s | %-15s\n", i+1,
			win.Launch.Format(mission.DateLayout), win.Arrival.Format(mission.DateLayout))
	}
}
