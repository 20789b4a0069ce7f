// Package catalog holds the static rocket and destination reference data.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const epochLayout = "2006-01-02"

// ErrInvalidSelection is returned when a rocket or body reference does not
// resolve to a catalog entry.
var ErrInvalidSelection = errors.New("invalid selection")

// Rocket is a launch vehicle entry.
type Rocket struct {
	Code              string   // short handle for CLI use (e.g., "STARSHIP")
	Name              string   // display name
	Aliases           []string // alternative handles
	WetMassKg         float64  // fully fuelled mass
	DryMassKg         float64  // mass with empty tanks
	IspSec            float64  // average specific impulse (s)
	MaxPayloadKg      float64  // practical payload to LEO
	StagingFactor     float64  // empirical multi-stage multiplier, >= 1
	RefuelDvPerTanker float64  // km/s gained per tanker flight, 0 if not refuelable

	// Capability flags consulted by the planner.
	SupportsOrbitalRefuel   bool
	PerigeeKickMaxPayloadKg float64 // > 0 enables perigee kicks up to this payload
}

// Validate reports an inconsistent rocket entry.
func (r Rocket) Validate() error {
	if r.Name == "" {
		return errors.New("rocket has no name")
	}
	if r.DryMassKg >= r.WetMassKg {
		return fmt.Errorf("rocket %s: dry mass %.0f kg must be below wet mass %.0f kg", r.Name, r.DryMassKg, r.WetMassKg)
	}
	if r.MaxPayloadKg < 0 {
		return fmt.Errorf("rocket %s: negative payload capacity", r.Name)
	}
	if r.StagingFactor < 1 {
		return fmt.Errorf("rocket %s: staging factor %.2f below 1", r.Name, r.StagingFactor)
	}
	return nil
}

// Body is a mission destination entry.
type Body struct {
	Code        string
	Name        string
	Aliases     []string
	TransferDv  float64 // km/s from LEO to the target
	CaptureDv   float64 // km/s to brake on arrival
	SynodicDays float64 // days between favourable alignments
	Epoch       string  // reference launch window, YYYY-MM-DD
	TransitDays float64 // typical one-way cruise

	GravityAssistCandidate bool // reachable via multi-flyby routes
	PerigeeKickTarget      bool // perigee-kick profiles make sense
}

// Validate reports an inconsistent body entry.
func (b Body) Validate() error {
	if b.Name == "" {
		return errors.New("body has no name")
	}
	if b.SynodicDays <= 0 {
		return fmt.Errorf("body %s: synodic period must be positive", b.Name)
	}
	if b.TransitDays < 0 {
		return fmt.Errorf("body %s: negative transit time", b.Name)
	}
	if _, err := time.Parse(epochLayout, b.Epoch); err != nil {
		return fmt.Errorf("body %s: epoch %q is not YYYY-MM-DD", b.Name, b.Epoch)
	}
	return nil
}

// Catalog is an immutable set of rockets and bodies. It is built once and
// shared by pointer.
type Catalog struct {
	rockets []Rocket
	bodies  []Body

	rocketsByName map[string]int
	bodiesByName  map[string]int
}

// New builds a catalog, validating every entry.
func New(rockets []Rocket, bodies []Body) (*Catalog, error) {
	if len(rockets) == 0 || len(bodies) == 0 {
		return nil, errors.New("catalog needs at least one rocket and one body")
	}

	c := &Catalog{
		rockets:       append([]Rocket(nil), rockets...),
		bodies:        append([]Body(nil), bodies...),
		rocketsByName: make(map[string]int, len(rockets)*3),
		bodiesByName:  make(map[string]int, len(bodies)*3),
	}

	for i, r := range c.rockets {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		index(c.rocketsByName, i, r.Name, r.Code, r.Aliases)
	}
	for i, b := range c.bodies {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		index(c.bodiesByName, i, b.Name, b.Code, b.Aliases)
	}
	return c, nil
}

func index(m map[string]int, i int, name, code string, aliases []string) {
	m[normalizeName(name)] = i
	if code != "" {
		m[normalizeName(code)] = i
	}
	for _, a := range aliases {
		m[normalizeName(a)] = i
	}
}

// normalizeName lowercases a handle and drops everything that is not a
// letter or digit, so "New-Glenn" and "new glenn" match.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Rockets returns a copy of the rocket list in catalog order.
func (c *Catalog) Rockets() []Rocket {
	return append([]Rocket(nil), c.rockets...)
}

// Bodies returns a copy of the body list in catalog order.
func (c *Catalog) Bodies() []Body {
	return append([]Body(nil), c.bodies...)
}

// Rocket returns the rocket at 0-based index i.
func (c *Catalog) Rocket(i int) (Rocket, error) {
	if i < 0 || i >= len(c.rockets) {
		return Rocket{}, fmt.Errorf("rocket %d: %w", i+1, ErrInvalidSelection)
	}
	return c.rockets[i], nil
}

// Body returns the body at 0-based index i.
func (c *Catalog) Body(i int) (Body, error) {
	if i < 0 || i >= len(c.bodies) {
		return Body{}, fmt.Errorf("body %d: %w", i+1, ErrInvalidSelection)
	}
	return c.bodies[i], nil
}

// RocketByName resolves a rocket by name, code or alias (case-insensitive).
func (c *Catalog) RocketByName(name string) (Rocket, error) {
	i, ok := c.rocketsByName[normalizeName(name)]
	if !ok {
		return Rocket{}, fmt.Errorf("rocket %q: %w", name, ErrInvalidSelection)
	}
	return c.rockets[i], nil
}

// BodyByName resolves a body by name, code or alias (case-insensitive).
func (c *Catalog) BodyByName(name string) (Body, error) {
	i, ok := c.bodiesByName[normalizeName(name)]
	if !ok {
		return Body{}, fmt.Errorf("body %q: %w", name, ErrInvalidSelection)
	}
	return c.bodies[i], nil
}

// ClampRocket maps a 1-based menu choice to a rocket, falling back to the
// first entry when the choice is out of range.
func (c *Catalog) ClampRocket(choice int) (Rocket, bool) {
	if choice < 1 || choice > len(c.rockets) {
		return c.rockets[0], false
	}
	return c.rockets[choice-1], true
}

// ClampBody maps a 1-based menu choice to a body, falling back to the first
// entry when the choice is out of range.
func (c *Catalog) ClampBody(choice int) (Body, bool) {
	if choice < 1 || choice > len(c.bodies) {
		return c.bodies[0], false
	}
	return c.bodies[choice-1], true
}

// LookupRocket resolves a reference that is either a 1-based index or a name.
func (c *Catalog) LookupRocket(ref string) (Rocket, error) {
	if n, ok := parseIndex(ref); ok {
		return c.Rocket(n - 1)
	}
	return c.RocketByName(ref)
}

// LookupBody resolves a reference that is either a 1-based index or a name.
func (c *Catalog) LookupBody(ref string) (Body, error) {
	if n, ok := parseIndex(ref); ok {
		return c.Body(n - 1)
	}
	return c.BodyByName(ref)
}

func parseIndex(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
