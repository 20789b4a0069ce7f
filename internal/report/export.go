package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soniakeys/meeus/v3/julian"

	"github.com/litescript/ls-missionplan/internal/mission"
)

// MissionExport is the JSON-serializable representation of a result.
// Delta-v figures are rounded to two decimals and serialized as strings.
type MissionExport struct {
	GeneratedAt     time.Time         `json:"generated_at"`
	Rocket          string            `json:"rocket"`
	Target          string            `json:"target"`
	StartDate       string            `json:"start_date"`
	PayloadKg       decimal.Decimal   `json:"payload_kg"`
	Strategy        string            `json:"strategy"`
	Note            string            `json:"note,omitempty"`
	Success         bool              `json:"success"`
	Budget          BudgetExport      `json:"budget"`
	Capability      decimal.Decimal   `json:"capability_kmps"`
	FinalCapability decimal.Decimal   `json:"final_capability_kmps"`
	Margin          decimal.Decimal   `json:"margin_kmps"`
	BonusDv         decimal.Decimal   `json:"bonus_kmps"`
	Tankers         int               `json:"tankers,omitempty"`
	TransitDays     decimal.Decimal   `json:"transit_days"`
	Windows         []WindowExport    `json:"windows"`
	Alternatives    []AlternateExport `json:"alternatives,omitempty"`
}

// BudgetExport is the delta-v breakdown.
type BudgetExport struct {
	Ascent   decimal.Decimal `json:"ascent_kmps"`
	Transfer decimal.Decimal `json:"transfer_kmps"`
	Capture  decimal.Decimal `json:"capture_kmps"`
	Total    decimal.Decimal `json:"total_kmps"`
}

// WindowExport is one launch window. Julian dates are for 00:00 UTC.
type WindowExport struct {
	Launch    string          `json:"launch"`
	Arrival   string          `json:"arrival"`
	LaunchJD  decimal.Decimal `json:"launch_jd"`
	ArrivalJD decimal.Decimal `json:"arrival_jd"`
}

// AlternateExport is a rocket that could fly the mission instead.
type AlternateExport struct {
	Rocket     string          `json:"rocket"`
	Capability decimal.Decimal `json:"capability_kmps"`
}

// Kmps rounds a km/s figure to two decimals.
func Kmps(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// JulianDay returns the Julian day of 00:00 UTC on t's calendar date.
func JulianDay(t time.Time) decimal.Decimal {
	day := t.UTC().Truncate(24 * time.Hour)
	return decimal.NewFromFloat(julian.TimeToJD(day)).Round(1)
}

// Export converts a result to its exportable form.
func Export(res *mission.Result, generatedAt time.Time) *MissionExport {
	e := &MissionExport{
		GeneratedAt: generatedAt,
		Rocket:      res.Rocket.Name,
		Target:      res.Body.Name,
		StartDate:   res.StartDate,
		PayloadKg:   decimal.NewFromFloat(res.PayloadKg).Round(0),
		Strategy:    res.Strategy.String(),
		Note:        res.Note,
		Success:     res.Success,
		Budget: BudgetExport{
			Ascent:   Kmps(res.Budget.Ascent),
			Transfer: Kmps(res.Budget.Transfer),
			Capture:  Kmps(res.Budget.Capture),
			Total:    Kmps(res.Required),
		},
		Capability:      Kmps(res.Capability),
		FinalCapability: Kmps(res.FinalCapability),
		Margin:          Kmps(res.FinalMargin),
		BonusDv:         Kmps(res.BonusDv),
		Tankers:         res.Tankers,
		TransitDays:     decimal.NewFromFloat(res.TransitDays).Round(1),
		Windows:         make([]WindowExport, 0, len(res.Windows)),
	}

	for _, w := range res.Windows {
		e.Windows = append(e.Windows, WindowExport{
			Launch:    w.Launch.Format(mission.DateLayout),
			Arrival:   w.Arrival.Format(mission.DateLayout),
			LaunchJD:  JulianDay(w.Launch),
			ArrivalJD: JulianDay(w.Arrival),
		})
	}
	for _, alt := range res.Alternatives {
		e.Alternatives = append(e.Alternatives, AlternateExport{
			Rocket:     alt.Rocket.Name,
			Capability: Kmps(alt.Capability),
		})
	}
	return e
}

// WriteJSON writes the export as indented JSON to the given writer.
func (e *MissionExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
