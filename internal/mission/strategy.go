// Package mission implements the feasibility engine: delta-v budgets,
// strategy selection, tanker planning and launch window projection.
package mission

import "strings"

// Strategy is the flight profile chosen for a mission.
type Strategy int

const (
	Direct Strategy = iota
	ObertPerigeeKick
	GravityAssist
	OrbitalRefuel
	KickStage
	Infeasible
)

// String returns the strategy identifier.
func (s Strategy) String() string {
	switch s {
	case Direct:
		return "direct"
	case ObertPerigeeKick:
		return "perigee-kick"
	case GravityAssist:
		return "gravity-assist"
	case OrbitalRefuel:
		return "orbital-refuel"
	case KickStage:
		return "kick-stage"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Label returns a human readable name.
func (s Strategy) Label() string {
	switch s {
	case Direct:
		return "Direct injection"
	case ObertPerigeeKick:
		return "Oberth perigee kicks"
	case GravityAssist:
		return "Gravity assist"
	case OrbitalRefuel:
		return "Orbital refueling"
	case KickStage:
		return "Kick stage"
	case Infeasible:
		return "No feasible profile"
	default:
		return "Unknown"
	}
}

// ParseStrategy parses a strategy identifier. Unknown strings report false.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct":
		return Direct, true
	case "perigee-kick", "oberth":
		return ObertPerigeeKick, true
	case "gravity-assist", "assist":
		return GravityAssist, true
	case "orbital-refuel", "refuel":
		return OrbitalRefuel, true
	case "kick-stage":
		return KickStage, true
	case "infeasible":
		return Infeasible, true
	default:
		return Infeasible, false
	}
}
