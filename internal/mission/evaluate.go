package mission

import (
	"github.com/litescript/ls-missionplan/internal/catalog"
)

// DefaultStartDate is used when the caller has no start date.
const DefaultStartDate = "2025-01-01"

// Request describes one planning request.
type Request struct {
	Rocket      catalog.Rocket
	Body        catalog.Body
	StartDate   string
	PayloadKg   float64
	WindowCount int
}

// Result is the full outcome of a planning request.
type Result struct {
	Rocket    catalog.Rocket
	Body      catalog.Body
	StartDate string
	PayloadKg float64

	Assessment

	Windows      []Window
	TransitDays  float64
	Alternatives []Alternative // only when the mission is not feasible
	Chronology   []Phase       // only when the mission is feasible
	TankUsagePct float64
}

// Evaluate runs the feasibility planner and window projector for a request.
// The only error is a malformed start date or body epoch; infeasible
// missions are reported through Result.Success.
func Evaluate(cat *catalog.Catalog, req Request) (*Result, error) {
	if req.PayloadKg < 0 {
		req.PayloadKg = 0
	}
	if req.StartDate == "" {
		req.StartDate = DefaultStartDate
	}

	a := Plan(req.Rocket, req.Body, req.PayloadKg)

	proj, err := ProjectWindows(req.Body, req.StartDate, a.Strategy, req.WindowCount)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Rocket:       req.Rocket,
		Body:         req.Body,
		StartDate:    req.StartDate,
		PayloadKg:    req.PayloadKg,
		Assessment:   a,
		Windows:      proj.Windows(),
		TransitDays:  proj.TransitDays,
		TankUsagePct: TankUsagePct(a.Success),
	}

	if a.Success {
		res.Chronology = Chronology(a.Strategy)
	} else if cat != nil {
		res.Alternatives = Alternatives(cat, req.Rocket, req.PayloadKg, a.Required)
	}
	return res, nil
}
