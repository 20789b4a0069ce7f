package mission

import (
	"fmt"

	"github.com/litescript/ls-missionplan/internal/catalog"
)

// Delta-v constants (km/s).
const (
	// EarthAscentCost covers reaching LEO including gravity and drag losses.
	EarthAscentCost = 9.30

	GravityAssistBonus = 4.5 // VEEGA multi-flyby gain
	KickStageBonus     = 2.0 // solid kick stage
	PerigeeKickBonus   = 6.5 // phased perigee burns

	// KickStageThreshold is the largest shortfall a kick stage can close.
	KickStageThreshold = -1.5
)

// Budget is the delta-v requirement broken down by phase.
type Budget struct {
	Ascent   float64
	Transfer float64
	Capture  float64
}

// Total returns the summed requirement.
func (b Budget) Total() float64 {
	return b.Ascent + b.Transfer + b.Capture
}

// BudgetFor returns the requirement to reach a body.
func BudgetFor(b catalog.Body) Budget {
	return Budget{
		Ascent:   EarthAscentCost,
		Transfer: b.TransferDv,
		Capture:  b.CaptureDv,
	}
}

// Assessment is the outcome of the feasibility planner.
type Assessment struct {
	Strategy        Strategy
	Note            string
	Budget          Budget
	Required        float64 // km/s
	Capability      float64 // base rocket capability, km/s
	BonusDv         float64 // fixed strategy bonus, 0 for refuel and direct
	Tankers         int     // only set for OrbitalRefuel
	FinalCapability float64
	FinalMargin     float64
	Success         bool
}

// BaseMargin is the margin before any strategy is applied.
func (a Assessment) BaseMargin() float64 {
	return a.Capability - a.Required
}

// Plan decides the flight profile for carrying payloadKg to body b on
// rocket r and computes the resulting margin.
func Plan(r catalog.Rocket, b catalog.Body, payloadKg float64) Assessment {
	budget := BudgetFor(b)
	a := Assessment{
		Strategy:   Direct,
		Note:       "None",
		Budget:     budget,
		Required:   budget.Total(),
		Capability: Capability(r, payloadKg),
	}

	margin := a.Capability - a.Required
	if margin < 0 {
		switch {
		case b.GravityAssistCandidate:
			a.Strategy = GravityAssist
			a.BonusDv = GravityAssistBonus
			a.Note = "Alternate route: VEEGA gravity assist (~7 year flight)"
		case r.SupportsOrbitalRefuel:
			a.Strategy = OrbitalRefuel
			a.Note = "Assumption: LEO refueling by tanker missions"
		case margin > KickStageThreshold:
			a.Strategy = KickStage
			a.BonusDv = KickStageBonus
			a.Note = "Assumption: Added 'Star 48' solid kick stage"
		default:
			a.Strategy = Infeasible
			a.Note = "No feasible profile found with current assumptions"
		}
	} else if r.PerigeeKickMaxPayloadKg > 0 && b.PerigeeKickTarget && payloadKg <= r.PerigeeKickMaxPayloadKg {
		// Already feasible; the bonus only reflects the flight profile flown.
		a.Strategy = ObertPerigeeKick
		a.BonusDv = PerigeeKickBonus
		a.Note = fmt.Sprintf("Oberth/Kick-perigee method for low-mass %s mission", b.Name)
	}

	if a.Strategy == OrbitalRefuel {
		a.Tankers = TankerPlan(r, a.Required-a.Capability)
		a.FinalCapability = a.Capability + float64(a.Tankers)*r.RefuelDvPerTanker
		if a.Tankers > 0 {
			a.Note = fmt.Sprintf("LEO refueling: estimated %d tanker(s) required", a.Tankers)
		}
	} else {
		a.FinalCapability = a.Capability + a.BonusDv
	}

	a.FinalMargin = a.FinalCapability - a.Required
	a.Success = a.FinalMargin >= 0 && a.Strategy != Infeasible
	return a
}

// Alternative is another catalog rocket that could fly the mission directly.
type Alternative struct {
	Rocket     catalog.Rocket
	Capability float64
}

// Alternatives scans the catalog for rockets other than exclude whose base
// capability covers required with the same payload.
func Alternatives(cat *catalog.Catalog, exclude catalog.Rocket, payloadKg, required float64) []Alternative {
	var alts []Alternative
	for _, r := range cat.Rockets() {
		if r.Name == exclude.Name {
			continue
		}
		capDv := Capability(r, payloadKg)
		if capDv-required >= 0 {
			alts = append(alts, Alternative{Rocket: r, Capability: capDv})
		}
	}
	return alts
}
