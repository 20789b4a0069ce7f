package mission

// Phase is one row of the mission timeline.
type Phase struct {
	Regime string // flight regime
	Time   string // T-minus/plus marker
	Event  string
}

var (
	launchPhases = []Phase{
		{"Pre-Launch", "T- 00:00:10", "Final Systems Checkout"},
		{"Atmospheric Ascent", "T+ 00:01:00", "Max-Q / Stack Separation"},
		{"LEO Insertion", "T+ 00:08:30", "Circularize / Prepare for Ops"},
	}

	cruisePhases = []Phase{
		{"Interplanetary Cruise", "Months-Years", "Mid-course Corrections & Trajectory Maintenance"},
		{"Approach & Capture", "Arr - Days", "Terminal Descent & Insertion Ops"},
		{"Landing/Arrival", "Arrival", "Surface contact / Orbit achieved"},
	}
)

// Chronology returns the flight timeline for a strategy: the common launch
// phases, the departure phases specific to the strategy, then cruise and
// arrival.
func Chronology(s Strategy) []Phase {
	var departure []Phase
	switch s {
	case OrbitalRefuel:
		departure = []Phase{
			{"Orbital Rendezvous", "T+ 12h - 48h", "Tanker Docking & Fuel Transfer"},
			{"Departure Burn", "T+ 1-2d", "Full Injection to Interplanetary Trajectory"},
		}
	case KickStage:
		departure = []Phase{{"Kick Stage Ignition", "T+ 01:00:00", "Final Impulsive Injection"}}
	case GravityAssist:
		departure = []Phase{{"Gravity Assist Phase", "Years", "Multiple flybys (VEEGA/EGA approximation)"}}
	case ObertPerigeeKick:
		departure = []Phase{{"Oberth Kicks", "Days-Weeks", "Perigee burns to increase injection energy"}}
	default:
		departure = []Phase{{"Trans Injection", "T+ 1-3d", "Escape / Trans-Target Burn"}}
	}

	phases := make([]Phase, 0, len(launchPhases)+len(departure)+len(cruisePhases))
	phases = append(phases, launchPhases...)
	phases = append(phases, departure...)
	phases = append(phases, cruisePhases...)
	return phases
}

// TankUsagePct is the illustrative propellant usage shown with a result.
func TankUsagePct(success bool) float64 {
	if success {
		return 85
	}
	return 40
}
